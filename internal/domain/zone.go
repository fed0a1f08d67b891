package domain

import "time"

// Zone represents a delivery zone. The zone name doubles as the key into the
// pre-seeded distance matrix, so names must be unique across zones.
type Zone struct {
	ID          string
	Name        string
	Coordinates string  // "lat,lon", empty if not surveyed
	DefaultKm   float64 // Fallback distance from this zone, 0 if unset
	CreatedAt   time.Time
}

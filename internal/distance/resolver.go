package distance

import (
	"math"
	"strconv"
	"strings"

	"riderperf/internal/domain"
)

const earthRadiusKm = 6371.0

// Resolver produces a best-effort distance between two zones using a fixed
// strategy cascade, first success wins:
//
//  1. same zone → 0
//  2. GPS coordinates on both zones → haversine
//  3. pre-seeded distance matrix, by zone name
//  4. pickup zone's default distance
//  5. rough name-based heuristic
//
// It never fails; a missing zone resolves to "no distance available", which
// callers must treat as a blank field, not zero.
type Resolver struct {
	cfg Config
}

// NewResolver creates a Resolver with the given configuration.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve returns the estimated distance in kilometers between the pickup
// and delivery zones. ok is false when no distance could be determined.
func (r *Resolver) Resolve(pickup, delivery *domain.Zone) (km float64, ok bool) {
	if pickup == nil || delivery == nil {
		return 0, false
	}

	if pickup.ID == delivery.ID {
		return 0, true
	}

	if lat1, lon1, ok := ParseCoordinates(pickup.Coordinates); ok {
		if lat2, lon2, ok := ParseCoordinates(delivery.Coordinates); ok {
			return round1(haversineKm(lat1, lon1, lat2, lon2)), true
		}
	}

	if km, ok := r.cfg.Matrix.Lookup(pickup.Name, delivery.Name); ok {
		return km, true
	}

	if pickup.DefaultKm > 0 {
		return pickup.DefaultKm, true
	}

	return r.estimateByName(pickup.Name, delivery.Name), true
}

// ExpectedDeliveryMins estimates the delivery duration for a distance:
// travel at the assumed average speed plus the flat handling time, rounded
// up to whole minutes.
func (r *Resolver) ExpectedDeliveryMins(distanceKm float64) int {
	travelMins := distanceKm / r.cfg.AvgSpeedKmh * 60
	return int(math.Ceil(travelMins + float64(r.cfg.BaseHandlingMins)))
}

// estimateByName guesses a distance from zone names alone. Very rough, and
// only reached when every better strategy failed.
func (r *Resolver) estimateByName(pickupName, deliveryName string) float64 {
	if strings.Contains(pickupName, r.cfg.MetroName) && strings.Contains(deliveryName, r.cfg.MetroName) {
		return r.cfg.MetroKm
	}

	for _, city := range r.cfg.MajorCities {
		if strings.Contains(pickupName, city) && strings.Contains(deliveryName, city) {
			return r.cfg.SameCityKm
		}
	}

	return r.cfg.FallbackKm
}

// ParseCoordinates parses a "lat,lon" string, tolerating whitespace around
// the comma. Any other shape means "no coordinates available", not an error.
func ParseCoordinates(s string) (lat, lon float64, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}

	return lat, lon, true
}

// haversineKm returns the great-circle distance in kilometers between two
// points specified in decimal degrees.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

package domain

import "time"

// Rider represents a delivery rider registered in the system.
type Rider struct {
	ID       string
	Name     string
	Phone    string
	ZoneID   string // Home zone, optional
	Active   bool
	JoinedAt time.Time
}

package domain

import "time"

// DailySummary is a rider's daily check-in. At most one exists per rider per
// date. ReportingTime is either "HH:mm" or a full timestamp; empty means the
// rider never reported that day.
type DailySummary struct {
	ID            string
	RiderID       string
	Date          string // DateLayout
	ReportingTime string
	CreatedAt     time.Time
}

package domain

import "time"

// DateLayout is the calendar-day format used as the aggregation key for
// trips and daily summaries.
const DateLayout = "2006-01-02"

// Trip represents a single recorded delivery. Trips are immutable once
// created; scores are derived from them, never stored back.
//
// Optional timestamps use the zero time.Time to mean "not recorded".
// DistanceKm and ExpectedMins use 0 to mean "unset".
type Trip struct {
	ID                   string
	RiderID              string
	Date                 string // DateLayout, aggregation key
	PickupZoneID         string
	DeliveryZoneID       string
	PickupTime           time.Time
	ArrivalTime          time.Time
	DeliveryTimeRider    time.Time
	DeliveryTimeCustomer time.Time
	DistanceKm           float64
	ExpectedMins         int
	CustomerConfirmed    bool
	Notes                string
	CreatedAt            time.Time
}

// DeliveryTime returns the delivery timestamp used for scoring: the
// customer-confirmed time when present, otherwise the rider-reported one.
func (t *Trip) DeliveryTime() time.Time {
	if !t.DeliveryTimeCustomer.IsZero() {
		return t.DeliveryTimeCustomer
	}
	return t.DeliveryTimeRider
}

package scoring

import (
	"time"

	"riderperf/internal/domain"
)

// Scorer computes per-trip scores and aggregate performance metrics.
// It is pure: no I/O, no shared state, safe for concurrent use.
type Scorer struct {
	cfg Config
}

// NewScorer creates a Scorer with the given configuration.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// ScoredTrip is a trip annotated with its computed sub-scores and resolved
// zone display names.
type ScoredTrip struct {
	Trip              domain.Trip
	AvailabilityScore float64
	OnTimeScore       float64
	Score             float64
	PickupZoneName    string
	DeliveryZoneName  string
}

// AvailabilityScore rates how promptly the rider arrived for pickup, on a
// 5..10 scale. Either timestamp missing yields the neutral score. Arriving
// early or within the grace window scores 10; only lateness beyond it is
// penalized, in tiers.
func (s *Scorer) AvailabilityScore(pickupTime, arrivalTime time.Time) float64 {
	if pickupTime.IsZero() || arrivalTime.IsZero() {
		return s.cfg.NeutralScore
	}

	diffMins := minutesBetween(pickupTime, arrivalTime)

	switch {
	case diffMins <= s.cfg.GraceMins:
		return 10
	case diffMins <= 10:
		return 9
	case diffMins <= 15:
		return 8
	case diffMins <= 20:
		return 7
	case diffMins <= 30:
		return 6
	default:
		return 5
	}
}

// OnTimeScore rates the delivery against its expected duration, on a 5..10
// scale. The on-time band is centered: within the grace window either side
// scores 10. Early deliveries bottom out at 8.5, late ones at 5.
func (s *Scorer) OnTimeScore(pickupTime, deliveryTime time.Time, expectedMins int) float64 {
	if pickupTime.IsZero() || deliveryTime.IsZero() || expectedMins == 0 {
		return s.cfg.NeutralScore
	}

	actualMins := minutesBetween(pickupTime, deliveryTime)
	delta := actualMins - expectedMins

	if abs(delta) <= s.cfg.GraceMins {
		return 10
	}

	if delta < 0 {
		// Early delivery
		switch {
		case delta >= -10:
			return 9.5
		case delta >= -15:
			return 9
		default:
			return 8.5
		}
	}

	// Late delivery
	switch {
	case delta <= 10:
		return 9
	case delta <= 15:
		return 8
	case delta <= 20:
		return 7
	case delta <= 30:
		return 6
	default:
		return 5
	}
}

// TripScore computes the composite score for one trip: a weighted blend of
// the availability and on-time sub-scores, plus the confirmation bonus,
// clamped at MaxScore.
func (s *Scorer) TripScore(trip domain.Trip) float64 {
	availability := s.AvailabilityScore(trip.PickupTime, trip.ArrivalTime)
	onTime := s.OnTimeScore(trip.PickupTime, trip.DeliveryTime(), trip.ExpectedMins)

	score := availability*s.cfg.AvailabilityWeight + onTime*s.cfg.OnTimeWeight
	if trip.CustomerConfirmed {
		score += s.cfg.ConfirmationBonus
	}

	if score > s.cfg.MaxScore {
		return s.cfg.MaxScore
	}
	return score
}

// ScoreTrips annotates every trip with its sub-scores and zone display
// names. zoneNames maps zone IDs to display names; unknown IDs resolve to
// an empty name.
func (s *Scorer) ScoreTrips(trips []domain.Trip, zoneNames map[string]string) []ScoredTrip {
	scored := make([]ScoredTrip, 0, len(trips))
	for _, trip := range trips {
		scored = append(scored, ScoredTrip{
			Trip:              trip,
			AvailabilityScore: s.AvailabilityScore(trip.PickupTime, trip.ArrivalTime),
			OnTimeScore:       s.OnTimeScore(trip.PickupTime, trip.DeliveryTime(), trip.ExpectedMins),
			Score:             s.TripScore(trip),
			PickupZoneName:    zoneNames[trip.PickupZoneID],
			DeliveryZoneName:  zoneNames[trip.DeliveryZoneID],
		})
	}
	return scored
}

// minutesBetween returns the signed whole minutes from a to b, truncated
// toward zero.
func minutesBetween(a, b time.Time) int {
	return int(b.Sub(a) / time.Minute)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

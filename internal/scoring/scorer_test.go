package scoring

import (
	"testing"
	"time"

	"riderperf/internal/domain"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", value, err)
	}
	return ts
}

func TestAvailabilityScore_Tiers(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())
	pickup := mustTime(t, "2025-03-03T08:00:00Z")

	testCases := []struct {
		name    string
		arrival string
		want    float64
	}{
		{"early arrival", "2025-03-03T07:50:00Z", 10},
		{"on time", "2025-03-03T08:00:00Z", 10},
		{"within grace window", "2025-03-03T08:05:00Z", 10},
		{"six minutes late", "2025-03-03T08:06:00Z", 9},
		{"ten minutes late", "2025-03-03T08:10:00Z", 9},
		{"fifteen minutes late", "2025-03-03T08:15:00Z", 8},
		{"twenty minutes late", "2025-03-03T08:20:00Z", 7},
		{"thirty minutes late", "2025-03-03T08:30:00Z", 6},
		{"over thirty minutes late", "2025-03-03T08:31:00Z", 5},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := scorer.AvailabilityScore(pickup, mustTime(t, tc.arrival))
			if got != tc.want {
				t.Errorf("expected %.1f, got %.1f", tc.want, got)
			}
		})
	}
}

func TestAvailabilityScore_MissingTimestamps_Neutral(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())
	pickup := mustTime(t, "2025-03-03T08:00:00Z")

	if got := scorer.AvailabilityScore(time.Time{}, pickup); got != 5 {
		t.Errorf("expected neutral score 5 for missing pickup, got %.1f", got)
	}
	if got := scorer.AvailabilityScore(pickup, time.Time{}); got != 5 {
		t.Errorf("expected neutral score 5 for missing arrival, got %.1f", got)
	}
}

func TestAvailabilityScore_PartialMinutesTruncate(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())
	pickup := mustTime(t, "2025-03-03T08:00:00Z")
	// 5m59s late truncates to 5 whole minutes, still inside the grace window.
	arrival := pickup.Add(5*time.Minute + 59*time.Second)

	if got := scorer.AvailabilityScore(pickup, arrival); got != 10 {
		t.Errorf("expected 10 for 5m59s lateness, got %.1f", got)
	}
}

func TestOnTimeScore_Bands(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())
	pickup := mustTime(t, "2025-03-03T08:00:00Z")
	const expectedMins = 30

	testCases := []struct {
		name       string
		actualMins int
		want       float64
	}{
		{"exactly on time", 30, 10},
		{"five early", 25, 10},
		{"five late", 35, 10},
		{"six early", 24, 9.5},
		{"ten early", 20, 9.5},
		{"fifteen early", 15, 9},
		{"far too early", 10, 8.5},
		{"ten late", 40, 9},
		{"fifteen late", 45, 8},
		{"twenty late", 50, 7},
		{"thirty late", 60, 6},
		{"over thirty late", 61, 5},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			delivery := pickup.Add(time.Duration(tc.actualMins) * time.Minute)
			got := scorer.OnTimeScore(pickup, delivery, expectedMins)
			if got != tc.want {
				t.Errorf("expected %.1f, got %.1f", tc.want, got)
			}
		})
	}
}

func TestOnTimeScore_MissingInputs_Neutral(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())
	pickup := mustTime(t, "2025-03-03T08:00:00Z")
	delivery := pickup.Add(30 * time.Minute)

	if got := scorer.OnTimeScore(time.Time{}, delivery, 30); got != 5 {
		t.Errorf("expected neutral score for missing pickup, got %.1f", got)
	}
	if got := scorer.OnTimeScore(pickup, time.Time{}, 30); got != 5 {
		t.Errorf("expected neutral score for missing delivery, got %.1f", got)
	}
	if got := scorer.OnTimeScore(pickup, delivery, 0); got != 5 {
		t.Errorf("expected neutral score for unset expected duration, got %.1f", got)
	}
}

func TestTripScore_Blend(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())
	pickup := mustTime(t, "2025-03-03T10:00:00Z")

	// Availability 8 (12 minutes late), on-time 7 (17 minutes over).
	trip := domain.Trip{
		PickupTime:        pickup,
		ArrivalTime:       pickup.Add(12 * time.Minute),
		DeliveryTimeRider: pickup.Add(47 * time.Minute),
		ExpectedMins:      30,
	}

	cfg := DefaultConfig()
	got := scorer.TripScore(trip)
	want := 8*cfg.AvailabilityWeight + 7*cfg.OnTimeWeight // 7.4
	if got != want {
		t.Errorf("expected %.2f, got %.2f", want, got)
	}
}

func TestTripScore_ConfirmationBonusClampedAtMax(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())
	pickup := mustTime(t, "2025-03-03T09:00:00Z")

	// Availability 10, on-time 9.5, base 9.7; the bonus would push it to 10.2.
	trip := domain.Trip{
		PickupTime:        pickup,
		ArrivalTime:       pickup.Add(3 * time.Minute),
		DeliveryTimeRider: pickup.Add(32 * time.Minute),
		ExpectedMins:      40,
		CustomerConfirmed: true,
	}

	if got := scorer.TripScore(trip); got != 10 {
		t.Errorf("expected score clamped at 10, got %.2f", got)
	}
}

func TestTripScore_PrefersCustomerDeliveryTime(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())
	pickup := mustTime(t, "2025-03-03T09:00:00Z")

	// Rider-reported time would score on-time 10; the customer-confirmed
	// timestamp is 40 minutes later and must win.
	trip := domain.Trip{
		PickupTime:           pickup,
		ArrivalTime:          pickup,
		DeliveryTimeRider:    pickup.Add(30 * time.Minute),
		DeliveryTimeCustomer: pickup.Add(70 * time.Minute),
		ExpectedMins:         30,
	}

	// Delta of +40 bottoms out the on-time ladder at 5.
	cfg := DefaultConfig()
	got := scorer.TripScore(trip)
	want := 10*cfg.AvailabilityWeight + 5*cfg.OnTimeWeight
	if got != want {
		t.Errorf("expected %.2f, got %.2f", want, got)
	}
}

func TestScoreTrips_ResolvesZoneNames(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())
	trips := []domain.Trip{
		{ID: "t1", PickupZoneID: "z1", DeliveryZoneID: "z2"},
		{ID: "t2", PickupZoneID: "z2", DeliveryZoneID: "missing"},
	}
	zoneNames := map[string]string{"z1": "Madina", "z2": "Accra"}

	scored := scorer.ScoreTrips(trips, zoneNames)
	if len(scored) != 2 {
		t.Fatalf("expected 2 scored trips, got %d", len(scored))
	}
	if scored[0].PickupZoneName != "Madina" || scored[0].DeliveryZoneName != "Accra" {
		t.Errorf("unexpected zone names on first trip: %q / %q",
			scored[0].PickupZoneName, scored[0].DeliveryZoneName)
	}
	if scored[1].DeliveryZoneName != "" {
		t.Errorf("expected empty name for unknown zone, got %q", scored[1].DeliveryZoneName)
	}
	// All timestamps missing: both sub-scores neutral.
	if scored[0].AvailabilityScore != 5 || scored[0].OnTimeScore != 5 {
		t.Errorf("expected neutral sub-scores, got %.1f / %.1f",
			scored[0].AvailabilityScore, scored[0].OnTimeScore)
	}
}

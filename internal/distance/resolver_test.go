package distance

import (
	"math"
	"testing"

	"riderperf/internal/domain"
)

func TestResolve_SameZone_Zero(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(DefaultConfig())
	zone := &domain.Zone{ID: "z1", Name: "Madina"}

	km, ok := resolver.Resolve(zone, zone)
	if !ok {
		t.Fatal("expected distance to resolve")
	}
	if km != 0 {
		t.Errorf("expected 0 km for same zone, got %.1f", km)
	}
}

func TestResolve_MissingZone_NotResolved(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(DefaultConfig())
	zone := &domain.Zone{ID: "z1", Name: "Madina"}

	if _, ok := resolver.Resolve(nil, zone); ok {
		t.Error("expected no distance with missing pickup zone")
	}
	if _, ok := resolver.Resolve(zone, nil); ok {
		t.Error("expected no distance with missing delivery zone")
	}
}

func TestResolve_Coordinates_Haversine(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(DefaultConfig())

	// One degree of longitude along the equator is ~111.2 km.
	pickup := &domain.Zone{ID: "z1", Name: "A", Coordinates: "0,0"}
	delivery := &domain.Zone{ID: "z2", Name: "B", Coordinates: "0,1"}

	km, ok := resolver.Resolve(pickup, delivery)
	if !ok {
		t.Fatal("expected distance to resolve")
	}
	if km != 111.2 {
		t.Errorf("expected 111.2 km, got %.1f", km)
	}

	// Swapping the zones must give the same distance.
	back, ok := resolver.Resolve(delivery, pickup)
	if !ok || back != km {
		t.Errorf("expected symmetric distance, got %.1f and %.1f", km, back)
	}
}

func TestResolve_CoordinatesBeatMatrix(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(DefaultConfig())

	// Both zones carry coordinates and sit in the matrix; coordinates win.
	pickup := &domain.Zone{ID: "z1", Name: "Madina", Coordinates: "5.6837, -0.1668"}
	delivery := &domain.Zone{ID: "z2", Name: "Accra", Coordinates: "5.6037, -0.1870"}

	km, ok := resolver.Resolve(pickup, delivery)
	if !ok {
		t.Fatal("expected distance to resolve")
	}
	if km == 15 {
		t.Error("expected haversine distance, got the matrix entry")
	}
	if km <= 0 || km >= 30 {
		t.Errorf("implausible haversine distance: %.1f", km)
	}
}

func TestResolve_MatrixByName(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(DefaultConfig())

	testCases := []struct {
		pickup, delivery string
		want             float64
	}{
		{"Madina", "Accra", 15},
		{"Accra", "Madina", 15},
		{"Kumasi", "Takoradi", 240},
		{"Legon", "Achimota", 10},
	}

	for _, tc := range testCases {
		km, ok := resolver.Resolve(
			&domain.Zone{ID: "p", Name: tc.pickup},
			&domain.Zone{ID: "d", Name: tc.delivery},
		)
		if !ok {
			t.Fatalf("expected %s -> %s to resolve", tc.pickup, tc.delivery)
		}
		if km != tc.want {
			t.Errorf("%s -> %s: expected %.1f km, got %.1f", tc.pickup, tc.delivery, tc.want, km)
		}
	}
}

func TestResolve_PickupDefaultDistance(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(DefaultConfig())

	pickup := &domain.Zone{ID: "z1", Name: "Unknown Hub", DefaultKm: 7.5}
	delivery := &domain.Zone{ID: "z2", Name: "Nowhere"}

	km, ok := resolver.Resolve(pickup, delivery)
	if !ok {
		t.Fatal("expected distance to resolve")
	}
	if km != 7.5 {
		t.Errorf("expected pickup default 7.5 km, got %.1f", km)
	}
}

func TestResolve_NameHeuristics(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(DefaultConfig())

	testCases := []struct {
		name             string
		pickup, delivery string
		want             float64
	}{
		{"both in the metro", "Accra Central", "East Accra", 10},
		{"same major city", "Kumasi North", "Kumasi South", 15},
		{"no shared city", "Somewhere", "Elsewhere", 20},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			km, ok := resolver.Resolve(
				&domain.Zone{ID: "p", Name: tc.pickup},
				&domain.Zone{ID: "d", Name: tc.delivery},
			)
			if !ok {
				t.Fatal("expected distance to resolve")
			}
			if km != tc.want {
				t.Errorf("expected %.1f km, got %.1f", tc.want, km)
			}
		})
	}
}

func TestExpectedDeliveryMins(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(DefaultConfig())

	testCases := []struct {
		km   float64
		want int
	}{
		{0, 5},    // handling time only
		{7.2, 20}, // 14.4 travel minutes + 5, rounded up
		{15, 35},  // exact
		{30, 65},
	}

	for _, tc := range testCases {
		if got := resolver.ExpectedDeliveryMins(tc.km); got != tc.want {
			t.Errorf("ExpectedDeliveryMins(%.1f) = %d, want %d", tc.km, got, tc.want)
		}
	}
}

func TestParseCoordinates(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		lat     float64
		lon     float64
		ok      bool
	}{
		{"plain", "5.6037,-0.1870", 5.6037, -0.1870, true},
		{"spaces around comma", "5.6037 , -0.1870", 5.6037, -0.1870, true},
		{"empty", "", 0, 0, false},
		{"single value", "5.6037", 0, 0, false},
		{"three values", "1,2,3", 0, 0, false},
		{"not numeric", "lat,lon", 0, 0, false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			lat, lon, ok := ParseCoordinates(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseCoordinates(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if ok && (lat != tc.lat || lon != tc.lon) {
				t.Errorf("ParseCoordinates(%q) = %v,%v, want %v,%v", tc.input, lat, lon, tc.lat, tc.lon)
			}
		})
	}
}

func TestHaversine_IdenticalPoints_Zero(t *testing.T) {
	t.Parallel()

	if d := haversineKm(5.6037, -0.1870, 5.6037, -0.1870); d != 0 {
		t.Errorf("expected 0 distance for identical points, got %v", d)
	}
}

func TestHaversine_Symmetry(t *testing.T) {
	t.Parallel()

	a := haversineKm(5.6037, -0.1870, 6.6885, -1.6244)
	b := haversineKm(6.6885, -1.6244, 5.6037, -0.1870)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("expected symmetric haversine, got %v and %v", a, b)
	}
}

func TestDefaultMatrix_Symmetric(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default matrix should validate: %v", err)
	}
}

func TestValidate_AsymmetricEntry(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Matrix = Matrix{
		"A": {"B": 10},
		"B": {"A": 12},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for asymmetric entries")
	}
}

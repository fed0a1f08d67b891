package distance

import "fmt"

// Matrix is a pre-seeded zone-to-zone distance table in kilometers, keyed by
// canonical zone name in both directions.
type Matrix map[string]map[string]float64

// Lookup returns the seeded distance for the ordered pair, or false when the
// pair is absent.
func (m Matrix) Lookup(pickupName, deliveryName string) (float64, bool) {
	row, ok := m[pickupName]
	if !ok {
		return 0, false
	}
	km, ok := row[deliveryName]
	return km, ok
}

// Config contains the resolver's strategy data. The matrix and the
// name-based heuristic are deployment-specific reference data, kept here as
// configuration rather than logic so a different city set can be swapped in.
type Config struct {
	AvgSpeedKmh      float64 // Assumed average travel speed
	BaseHandlingMins int     // Flat pickup/handoff time added to every estimate

	Matrix Matrix

	MetroName   string   // Substring marking zones inside the metro area
	MetroKm     float64  // Guess when both zone names contain MetroName
	MajorCities []string // Cities whose shared presence in both names implies proximity
	SameCityKm  float64  // Guess when both names contain the same major city
	FallbackKm  float64  // Last-resort guess
}

// DefaultConfig returns the deployed resolver configuration, seeded with the
// Ghana reference points.
func DefaultConfig() Config {
	return Config{
		AvgSpeedKmh:      30, // City traffic
		BaseHandlingMins: 5,

		Matrix: DefaultMatrix(),

		MetroName:   "Accra",
		MetroKm:     10,
		MajorCities: []string{"Kumasi", "Takoradi", "Tema", "Cape Coast"},
		SameCityKm:  15,
		FallbackKm:  20,
	}
}

// DefaultMatrix returns the pre-seeded Ghana distance table. Both directions
// of every pair are stored explicitly.
func DefaultMatrix() Matrix {
	return Matrix{
		"Madina": {
			"Madina": 0, "Accra": 15, "Kasoa": 45, "Tema": 25,
			"Legon": 8, "Achimota": 12, "Kumasi": 250, "Takoradi": 220,
		},
		"Accra": {
			"Madina": 15, "Accra": 0, "Kasoa": 35, "Tema": 25,
			"Legon": 12, "Achimota": 8, "Kumasi": 245, "Takoradi": 200,
		},
		"Kasoa": {
			"Madina": 45, "Accra": 35, "Kasoa": 0, "Tema": 55,
			"Legon": 40, "Achimota": 30, "Kumasi": 220, "Takoradi": 180,
		},
		"Tema": {
			"Madina": 25, "Accra": 25, "Kasoa": 55, "Tema": 0,
			"Legon": 20, "Achimota": 30, "Kumasi": 270, "Takoradi": 225,
		},
		"Legon": {
			"Madina": 8, "Accra": 12, "Kasoa": 40, "Tema": 20,
			"Legon": 0, "Achimota": 10, "Kumasi": 248, "Takoradi": 212,
		},
		"Achimota": {
			"Madina": 12, "Accra": 8, "Kasoa": 30, "Tema": 30,
			"Legon": 10, "Achimota": 0, "Kumasi": 240, "Takoradi": 205,
		},
		"Kumasi": {
			"Madina": 250, "Accra": 245, "Kasoa": 220, "Tema": 270,
			"Legon": 248, "Achimota": 240, "Kumasi": 0, "Takoradi": 240,
		},
		"Takoradi": {
			"Madina": 220, "Accra": 200, "Kasoa": 180, "Tema": 225,
			"Legon": 212, "Achimota": 205, "Kumasi": 240, "Takoradi": 0,
		},
	}
}

// Validate checks the matrix for directed entries that disagree with their
// reverse. Lookups are expected to be symmetric; a mismatch is a
// configuration error, not a runtime condition.
func (c Config) Validate() error {
	for from, row := range c.Matrix {
		for to, km := range row {
			back, ok := c.Matrix[to][from]
			if ok && back != km {
				return fmt.Errorf("distance matrix asymmetric: %s->%s is %.1f but %s->%s is %.1f",
					from, to, km, to, from, back)
			}
		}
	}
	return nil
}

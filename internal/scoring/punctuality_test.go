package scoring

import "testing"

func TestIsPunctual(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())

	testCases := []struct {
		name          string
		reportingTime string
		want          bool
	}{
		{"well before cutoff", "07:45", true},
		{"exactly at cutoff", "08:30", true},
		{"one minute past cutoff", "08:31", false},
		{"afternoon", "14:00", false},
		{"midnight", "00:00", true},
		{"full timestamp before cutoff", "2025-01-01T08:29:00Z", true},
		{"full timestamp past cutoff", "2025-01-01T08:31:00Z", false},
		{"timestamp without zone", "2025-01-01T08:15:00", true},
		{"timestamp without seconds", "2025-01-01T08:15", true},
		{"empty", "", false},
		{"garbage", "not-a-time", false},
		{"garbage with T", "Tuesday", false},
		{"unpadded hour", "8:30", false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := scorer.IsPunctual(tc.reportingTime); got != tc.want {
				t.Errorf("IsPunctual(%q) = %v, want %v", tc.reportingTime, got, tc.want)
			}
		})
	}
}

func TestIsPunctual_CustomCutoff(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.PunctualityCutoff = "09:00"
	scorer := NewScorer(cfg)

	if !scorer.IsPunctual("08:45") {
		t.Error("expected 08:45 to be punctual with a 09:00 cutoff")
	}
	if scorer.IsPunctual("09:01") {
		t.Error("expected 09:01 to miss a 09:00 cutoff")
	}
}

package scoring

// Config contains the scoring thresholds and weights. All values the engine
// would otherwise hardcode live here so tests can vary them.
type Config struct {
	PunctualityCutoff string  // Latest "HH:mm" reporting time counted as punctual
	GraceMins         int     // Grace window for pickup arrival and delivery delta
	NeutralScore      float64 // Score used when required inputs are missing

	AvailabilityWeight float64 // Weight of the pickup-arrival sub-score
	OnTimeWeight       float64 // Weight of the delivery sub-score
	ConfirmationBonus  float64 // Flat bonus when the customer confirmed delivery
	MaxScore           float64 // Ceiling for a single trip score

	RatingScoreWeight       float64 // Weight of the average ride score in the overall rating
	RatingPunctualityWeight float64 // Weight of the punctuality ratio in the overall rating

	ActiveDayThreshold int // Distinct trip days needed to count a rider as active
	WorkweekDays       int // Assumed workdays per week, reported regardless of range length
}

// DefaultConfig returns the deployed scoring configuration.
func DefaultConfig() Config {
	return Config{
		PunctualityCutoff: "08:30",
		GraceMins:         5,
		NeutralScore:      5,

		AvailabilityWeight: 0.4,
		OnTimeWeight:       0.6, // On-time delivery weighted above pickup punctuality
		ConfirmationBonus:  0.5,
		MaxScore:           10,

		RatingScoreWeight:       0.7,
		RatingPunctualityWeight: 0.3,

		ActiveDayThreshold: 5,
		WorkweekDays:       6,
	}
}

package domain

// PerformanceMetrics is the derived performance report for a rider over a
// date range. It is recomputed on every request and never persisted.
type PerformanceMetrics struct {
	WorkPeriod       string // "dd/MM/yyyy – dd/MM/yyyy"
	AverageRideScore float64
	TotalTrips       int
	TopDay           TopDay
	MostFrequentZone string // Top 3 zone names joined with " / ", or "N/A"
	Punctuality      Punctuality
	Availability     Availability
	OverallRating    float64
	Days             []DayScore
}

// TopDay is the date with the highest average trip score in the period.
type TopDay struct {
	Date  string
	Score float64
}

// Punctuality counts days the rider reported before the cutoff, out of all
// days that had at least one trip.
type Punctuality struct {
	IsPunctual   bool // True only when there is at least one day and all are punctual
	PunctualDays int
	TotalDays    int
}

// Availability reports active days against an assumed fixed workweek length.
type Availability struct {
	IsActive      bool
	ActiveDays    int
	TotalWorkdays int
}

// DayScore is the per-day breakdown behind the aggregate metrics.
type DayScore struct {
	Date          string
	Score         float64
	Trips         int
	Punctual      bool
	ReportingTime string
}

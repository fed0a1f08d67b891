package scoring

import (
	"math"
	"sort"
	"strings"
	"time"

	"riderperf/internal/domain"
)

// Display format for dates in the final report.
const reportDateLayout = "02/01/2006"

type dayGroup struct {
	date          string
	scoreSum      float64
	trips         int
	punctual      bool
	reportingTime string
}

// ComputeMetrics folds a rider's trips and daily summaries over a date range
// into a single performance report. Grouping and tie-breaking follow input
// order, so the result is deterministic for a given snapshot.
func (s *Scorer) ComputeMetrics(
	trips []domain.Trip,
	summaries []domain.DailySummary,
	start, end time.Time,
	zoneNames map[string]string,
) domain.PerformanceMetrics {
	scored := s.ScoreTrips(trips, zoneNames)

	var scoreSum float64
	for _, st := range scored {
		scoreSum += st.Score
	}
	averageRideScore := 0.0
	if len(scored) > 0 {
		averageRideScore = scoreSum / float64(len(scored))
	}

	// Group trips by calendar day, preserving first-seen date order.
	groups := make(map[string]*dayGroup)
	var dates []string
	for _, st := range scored {
		g, ok := groups[st.Trip.Date]
		if !ok {
			g = &dayGroup{date: st.Trip.Date}
			groups[st.Trip.Date] = g
			dates = append(dates, st.Trip.Date)
		}
		g.scoreSum += st.Score
		g.trips++
	}

	// Attach punctuality from the matching daily summary; a day with trips
	// but no summary counts as not punctual.
	for _, summary := range summaries {
		if g, ok := groups[summary.Date]; ok {
			g.punctual = s.IsPunctual(summary.ReportingTime)
			g.reportingTime = summary.ReportingTime
		}
	}

	punctualDays := 0
	topDate := ""
	topScore := 0.0
	days := make([]domain.DayScore, 0, len(dates))
	for _, date := range dates {
		g := groups[date]
		avg := g.scoreSum / float64(g.trips)
		if g.punctual {
			punctualDays++
		}
		// Strict comparison keeps the first occurrence on ties.
		if topDate == "" || avg > topScore {
			topDate = date
			topScore = avg
		}
		days = append(days, domain.DayScore{
			Date:          date,
			Score:         round1(avg),
			Trips:         g.trips,
			Punctual:      g.punctual,
			ReportingTime: g.reportingTime,
		})
	}
	totalDays := len(dates)

	topDay := domain.TopDay{Date: start.Format(reportDateLayout)}
	if topDate != "" {
		topDay = domain.TopDay{Date: formatReportDate(topDate), Score: round1(topScore)}
	}

	punctualityRatio := 0.0
	if totalDays > 0 {
		punctualityRatio = float64(punctualDays) / float64(totalDays)
	}

	overallRating := averageRideScore*s.cfg.RatingScoreWeight +
		punctualityRatio*10*s.cfg.RatingPunctualityWeight

	return domain.PerformanceMetrics{
		WorkPeriod:       start.Format(reportDateLayout) + " – " + end.Format(reportDateLayout),
		AverageRideScore: round1(averageRideScore),
		TotalTrips:       len(trips),
		TopDay:           topDay,
		MostFrequentZone: mostFrequentZones(scored),
		Punctuality: domain.Punctuality{
			IsPunctual:   totalDays > 0 && punctualDays == totalDays,
			PunctualDays: punctualDays,
			TotalDays:    totalDays,
		},
		Availability: domain.Availability{
			IsActive:      totalDays >= s.cfg.ActiveDayThreshold,
			ActiveDays:    totalDays,
			TotalWorkdays: s.cfg.WorkweekDays,
		},
		OverallRating: round1(overallRating),
		Days:          days,
	}
}

// mostFrequentZones tallies pickup and delivery zone names together and
// returns the top three by count, joined with " / ". Ties keep first-seen
// order. Returns "N/A" when no zone resolved to a name.
func mostFrequentZones(scored []ScoredTrip) string {
	counts := make(map[string]int)
	var order []string
	tally := func(name string) {
		if name == "" {
			return
		}
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}
	for _, st := range scored {
		tally(st.PickupZoneName)
		tally(st.DeliveryZoneName)
	}

	if len(order) == 0 {
		return "N/A"
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 3 {
		order = order[:3]
	}
	return strings.Join(order, " / ")
}

// formatReportDate converts an aggregation-key date to the report display
// format, leaving the raw value untouched if it does not parse.
func formatReportDate(date string) string {
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format(reportDateLayout)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

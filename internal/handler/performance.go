package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"riderperf/internal/domain"
	"riderperf/internal/scoring"
	"riderperf/internal/service"
)

// PerformanceHandler handles HTTP requests for performance reports.
type PerformanceHandler struct {
	performanceService *service.PerformanceService
}

// NewPerformanceHandler creates a new PerformanceHandler.
func NewPerformanceHandler(performanceService *service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{performanceService: performanceService}
}

// PerformanceResponse is the HTTP response for a performance report.
type PerformanceResponse struct {
	Rider   RiderResponse        `json:"rider"`
	Metrics MetricsResponse      `json:"metrics"`
	Trips   []ScoredTripResponse `json:"trips"`
}

// MetricsResponse mirrors domain.PerformanceMetrics.
type MetricsResponse struct {
	WorkPeriod       string               `json:"work_period"`
	AverageRideScore float64              `json:"average_ride_score"`
	TotalTrips       int                  `json:"total_trips"`
	TopDay           TopDayResponse       `json:"top_day"`
	MostFrequentZone string               `json:"most_frequent_zone"`
	Punctuality      PunctualityResponse  `json:"punctuality"`
	Availability     AvailabilityResponse `json:"availability"`
	OverallRating    float64              `json:"overall_rating"`
	Days             []DayScoreResponse   `json:"days"`
}

// TopDayResponse is the best-scoring day in the period.
type TopDayResponse struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// PunctualityResponse reports punctual days against days with trips.
type PunctualityResponse struct {
	IsPunctual   bool `json:"is_punctual"`
	PunctualDays int  `json:"punctual_days"`
	TotalDays    int  `json:"total_days"`
}

// AvailabilityResponse reports active days against the assumed workweek.
type AvailabilityResponse struct {
	IsActive      bool `json:"is_active"`
	ActiveDays    int  `json:"active_days"`
	TotalWorkdays int  `json:"total_workdays"`
}

// DayScoreResponse is the per-day breakdown.
type DayScoreResponse struct {
	Date          string  `json:"date"`
	Score         float64 `json:"score"`
	Trips         int     `json:"trips"`
	Punctual      bool    `json:"punctual"`
	ReportingTime string  `json:"reporting_time,omitempty"`
}

// ScoredTripResponse is a trip annotated with its computed scores.
type ScoredTripResponse struct {
	TripResponse
	PickupZone        string  `json:"pickup_zone,omitempty"`
	DeliveryZone      string  `json:"delivery_zone,omitempty"`
	AvailabilityScore float64 `json:"availability_score"`
	OnTimeScore       float64 `json:"on_time_score"`
	TripScore         float64 `json:"trip_score"`
}

// GetReport handles GET /v1/riders/:id/performance
func (h *PerformanceHandler) GetReport(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "start_date and end_date are required"})
		return
	}

	report, err := h.performanceService.Report(c.Request.Context(), c.Param("id"), startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PerformanceResponse{
		Rider:   riderToResponse(report.Rider),
		Metrics: metricsToResponse(report.Metrics),
		Trips:   scoredTripsToResponse(report.Trips),
	})
}

func metricsToResponse(m domain.PerformanceMetrics) MetricsResponse {
	days := make([]DayScoreResponse, 0, len(m.Days))
	for _, d := range m.Days {
		days = append(days, DayScoreResponse{
			Date:          d.Date,
			Score:         d.Score,
			Trips:         d.Trips,
			Punctual:      d.Punctual,
			ReportingTime: d.ReportingTime,
		})
	}

	return MetricsResponse{
		WorkPeriod:       m.WorkPeriod,
		AverageRideScore: m.AverageRideScore,
		TotalTrips:       m.TotalTrips,
		TopDay:           TopDayResponse{Date: m.TopDay.Date, Score: m.TopDay.Score},
		MostFrequentZone: m.MostFrequentZone,
		Punctuality: PunctualityResponse{
			IsPunctual:   m.Punctuality.IsPunctual,
			PunctualDays: m.Punctuality.PunctualDays,
			TotalDays:    m.Punctuality.TotalDays,
		},
		Availability: AvailabilityResponse{
			IsActive:      m.Availability.IsActive,
			ActiveDays:    m.Availability.ActiveDays,
			TotalWorkdays: m.Availability.TotalWorkdays,
		},
		OverallRating: m.OverallRating,
		Days:          days,
	}
}

func scoredTripsToResponse(scored []scoring.ScoredTrip) []ScoredTripResponse {
	response := make([]ScoredTripResponse, 0, len(scored))
	for _, st := range scored {
		trip := st.Trip
		response = append(response, ScoredTripResponse{
			TripResponse:      tripToResponse(&trip),
			PickupZone:        st.PickupZoneName,
			DeliveryZone:      st.DeliveryZoneName,
			AvailabilityScore: st.AvailabilityScore,
			OnTimeScore:       st.OnTimeScore,
			TripScore:         st.Score,
		})
	}
	return response
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"riderperf/internal/domain"
	"riderperf/internal/service"
)

// SummaryHandler handles HTTP requests for daily summaries.
type SummaryHandler struct {
	summaryService *service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// CreateSummaryRequest is the HTTP request body for a daily check-in.
type CreateSummaryRequest struct {
	RiderID       string `json:"rider_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	ReportingTime string `json:"reporting_time,omitempty"`
}

// SummaryResponse is the HTTP response for summary operations.
type SummaryResponse struct {
	ID            string `json:"id"`
	RiderID       string `json:"rider_id"`
	Date          string `json:"date"`
	ReportingTime string `json:"reporting_time,omitempty"`
}

func summaryToResponse(summary *domain.DailySummary) SummaryResponse {
	return SummaryResponse{
		ID:            summary.ID,
		RiderID:       summary.RiderID,
		Date:          summary.Date,
		ReportingTime: summary.ReportingTime,
	}
}

// CreateSummary handles POST /v1/daily-summaries
func (h *SummaryHandler) CreateSummary(c *gin.Context) {
	var req CreateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	summary, err := h.summaryService.CreateSummary(c.Request.Context(), service.CreateSummaryRequest{
		RiderID:       req.RiderID,
		Date:          req.Date,
		ReportingTime: req.ReportingTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, summaryToResponse(summary))
}

// GetAll handles GET /v1/daily-summaries
func (h *SummaryHandler) GetAll(c *gin.Context) {
	summaries, err := h.summaryService.GetAllSummaries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]SummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, summaryToResponse(summary))
	}

	c.JSON(http.StatusOK, response)
}

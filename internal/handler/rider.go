package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"riderperf/internal/domain"
	"riderperf/internal/service"
)

// RiderHandler handles HTTP requests for riders.
type RiderHandler struct {
	riderService *service.RiderService
}

// NewRiderHandler creates a new RiderHandler.
func NewRiderHandler(riderService *service.RiderService) *RiderHandler {
	return &RiderHandler{riderService: riderService}
}

// RegisterRiderRequest is the HTTP request body for registering a rider.
type RegisterRiderRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
	ZoneID string `json:"zone_id,omitempty"`
}

// RiderResponse is the HTTP response for rider operations.
type RiderResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	ZoneID   string `json:"zone_id,omitempty"`
	Active   bool   `json:"active"`
	JoinedAt string `json:"joined_at"`
}

func riderToResponse(rider *domain.Rider) RiderResponse {
	return RiderResponse{
		ID:       rider.ID,
		Name:     rider.Name,
		Phone:    rider.Phone,
		ZoneID:   rider.ZoneID,
		Active:   rider.Active,
		JoinedAt: rider.JoinedAt.Format(time.RFC3339),
	}
}

// Register handles POST /v1/riders
func (h *RiderHandler) Register(c *gin.Context) {
	var req RegisterRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rider, err := h.riderService.Register(c.Request.Context(), service.RegisterRiderRequest{
		Name:   req.Name,
		Phone:  req.Phone,
		ZoneID: req.ZoneID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, riderToResponse(rider))
}

// GetRider handles GET /v1/riders/:id
func (h *RiderHandler) GetRider(c *gin.Context) {
	rider, err := h.riderService.GetRider(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, riderToResponse(rider))
}

// GetAll handles GET /v1/riders
func (h *RiderHandler) GetAll(c *gin.Context) {
	riders, err := h.riderService.GetAllRiders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RiderResponse, 0, len(riders))
	for _, rider := range riders {
		response = append(response, riderToResponse(rider))
	}

	c.JSON(http.StatusOK, response)
}

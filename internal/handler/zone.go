package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"riderperf/internal/domain"
	"riderperf/internal/service"
)

// ZoneHandler handles HTTP requests for zones and distance estimates.
type ZoneHandler struct {
	zoneService *service.ZoneService
	tripService *service.TripService
}

// NewZoneHandler creates a new ZoneHandler.
func NewZoneHandler(zoneService *service.ZoneService, tripService *service.TripService) *ZoneHandler {
	return &ZoneHandler{
		zoneService: zoneService,
		tripService: tripService,
	}
}

// CreateZoneRequest is the HTTP request body for creating a zone.
type CreateZoneRequest struct {
	Name        string  `json:"name"`
	Coordinates string  `json:"coordinates,omitempty"` // "lat,lon"
	DefaultKm   float64 `json:"default_km,omitempty"`
}

// ZoneResponse is the HTTP response for zone operations.
type ZoneResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Coordinates string  `json:"coordinates,omitempty"`
	DefaultKm   float64 `json:"default_km,omitempty"`
}

func zoneToResponse(zone *domain.Zone) ZoneResponse {
	return ZoneResponse{
		ID:          zone.ID,
		Name:        zone.Name,
		Coordinates: zone.Coordinates,
		DefaultKm:   zone.DefaultKm,
	}
}

// CreateZone handles POST /v1/zones
func (h *ZoneHandler) CreateZone(c *gin.Context) {
	var req CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	zone, err := h.zoneService.CreateZone(c.Request.Context(), service.CreateZoneRequest{
		Name:        req.Name,
		Coordinates: req.Coordinates,
		DefaultKm:   req.DefaultKm,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, zoneToResponse(zone))
}

// GetAll handles GET /v1/zones
func (h *ZoneHandler) GetAll(c *gin.Context) {
	zones, err := h.zoneService.GetAllZones(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ZoneResponse, 0, len(zones))
	for _, zone := range zones {
		response = append(response, zoneToResponse(zone))
	}

	c.JSON(http.StatusOK, response)
}

// DistanceEstimateResponse is the HTTP response for a distance estimate.
// When resolved is false the distance fields are absent and the caller
// should leave the form fields blank.
type DistanceEstimateResponse struct {
	Resolved     bool     `json:"resolved"`
	DistanceKm   *float64 `json:"distance_km,omitempty"`
	ExpectedMins *int     `json:"expected_mins,omitempty"`
}

// EstimateDistance handles GET /v1/zones/distance
func (h *ZoneHandler) EstimateDistance(c *gin.Context) {
	estimate, err := h.tripService.EstimateDistance(
		c.Request.Context(),
		c.Query("pickup_zone_id"),
		c.Query("delivery_zone_id"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	response := DistanceEstimateResponse{Resolved: estimate.Resolved}
	if estimate.Resolved {
		response.DistanceKm = &estimate.DistanceKm
		response.ExpectedMins = &estimate.ExpectedMins
	}

	respondJSON(c, http.StatusOK, response)
}

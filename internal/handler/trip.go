package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"riderperf/internal/domain"
	"riderperf/internal/service"
)

// TripHandler handles HTTP requests for trips.
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// CreateTripRequest is the HTTP request body for recording a trip.
// Timestamps are ISO-8601 strings; every field after date is optional.
type CreateTripRequest struct {
	RiderID              string  `json:"rider_id"`
	Date                 string  `json:"date"` // YYYY-MM-DD
	PickupZoneID         string  `json:"pickup_zone_id,omitempty"`
	DeliveryZoneID       string  `json:"delivery_zone_id,omitempty"`
	PickupTime           string  `json:"pickup_time,omitempty"`
	ArrivalTime          string  `json:"arrival_time,omitempty"`
	DeliveryTimeRider    string  `json:"delivery_time_rider,omitempty"`
	DeliveryTimeCustomer string  `json:"delivery_time_customer,omitempty"`
	DistanceKm           float64 `json:"distance_km,omitempty"`
	ExpectedMins         int     `json:"expected_mins,omitempty"`
	CustomerConfirmed    bool    `json:"customer_confirmed,omitempty"`
	Notes                string  `json:"notes,omitempty"`
}

// TripResponse is the HTTP response for trip operations.
type TripResponse struct {
	ID                   string  `json:"id"`
	RiderID              string  `json:"rider_id"`
	Date                 string  `json:"date"`
	PickupZoneID         string  `json:"pickup_zone_id,omitempty"`
	DeliveryZoneID       string  `json:"delivery_zone_id,omitempty"`
	PickupTime           string  `json:"pickup_time,omitempty"`
	ArrivalTime          string  `json:"arrival_time,omitempty"`
	DeliveryTimeRider    string  `json:"delivery_time_rider,omitempty"`
	DeliveryTimeCustomer string  `json:"delivery_time_customer,omitempty"`
	DistanceKm           float64 `json:"distance_km,omitempty"`
	ExpectedMins         int     `json:"expected_mins,omitempty"`
	CustomerConfirmed    bool    `json:"customer_confirmed"`
	Notes                string  `json:"notes,omitempty"`
}

func tripToResponse(trip *domain.Trip) TripResponse {
	return TripResponse{
		ID:                   trip.ID,
		RiderID:              trip.RiderID,
		Date:                 trip.Date,
		PickupZoneID:         trip.PickupZoneID,
		DeliveryZoneID:       trip.DeliveryZoneID,
		PickupTime:           formatOptionalTimestamp(trip.PickupTime),
		ArrivalTime:          formatOptionalTimestamp(trip.ArrivalTime),
		DeliveryTimeRider:    formatOptionalTimestamp(trip.DeliveryTimeRider),
		DeliveryTimeCustomer: formatOptionalTimestamp(trip.DeliveryTimeCustomer),
		DistanceKm:           trip.DistanceKm,
		ExpectedMins:         trip.ExpectedMins,
		CustomerConfirmed:    trip.CustomerConfirmed,
		Notes:                trip.Notes,
	}
}

// CreateTrip handles POST /v1/trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	serviceReq := service.CreateTripRequest{
		RiderID:           req.RiderID,
		Date:              req.Date,
		PickupZoneID:      req.PickupZoneID,
		DeliveryZoneID:    req.DeliveryZoneID,
		DistanceKm:        req.DistanceKm,
		ExpectedMins:      req.ExpectedMins,
		CustomerConfirmed: req.CustomerConfirmed,
		Notes:             req.Notes,
	}

	var err error
	if serviceReq.PickupTime, err = parseOptionalTimestamp(req.PickupTime); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pickup_time"})
		return
	}
	if serviceReq.ArrivalTime, err = parseOptionalTimestamp(req.ArrivalTime); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid arrival_time"})
		return
	}
	if serviceReq.DeliveryTimeRider, err = parseOptionalTimestamp(req.DeliveryTimeRider); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid delivery_time_rider"})
		return
	}
	if serviceReq.DeliveryTimeCustomer, err = parseOptionalTimestamp(req.DeliveryTimeCustomer); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid delivery_time_customer"})
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), serviceReq)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, tripToResponse(trip))
}

// GetTrip handles GET /v1/trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, tripToResponse(trip))
}

// GetAll handles GET /v1/trips
func (h *TripHandler) GetAll(c *gin.Context) {
	trips, err := h.tripService.GetAllTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TripResponse, 0, len(trips))
	for _, trip := range trips {
		response = append(response, tripToResponse(trip))
	}

	c.JSON(http.StatusOK, response)
}

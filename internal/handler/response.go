package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"riderperf/internal/repository"
	"riderperf/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidRiderID),
		errors.Is(err, service.ErrInvalidRiderName),
		errors.Is(err, service.ErrInvalidZoneID),
		errors.Is(err, service.ErrInvalidZoneName),
		errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidDateRange):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrZoneNameTaken),
		errors.Is(err, service.ErrPhoneTaken),
		errors.Is(err, service.ErrSummaryExists),
		errors.Is(err, service.ErrSummaryInProgress):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}

// Timestamp layouts accepted in request bodies. Trip events arrive as full
// ISO-8601 timestamps.
var requestTimestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseOptionalTimestamp parses an optional ISO-8601 timestamp field.
// An empty value yields the zero time.
func parseOptionalTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	var firstErr error
	for _, layout := range requestTimestampLayouts {
		ts, err := time.Parse(layout, value)
		if err == nil {
			return ts, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// formatOptionalTimestamp renders a timestamp, empty when unset.
func formatOptionalTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

package service

import "errors"

var (
	// ErrInvalidRiderID is returned when rider ID is empty.
	ErrInvalidRiderID = errors.New("invalid rider id")

	// ErrInvalidRiderName is returned when rider name is empty.
	ErrInvalidRiderName = errors.New("invalid rider name")

	// ErrPhoneTaken is returned when a rider with the phone already exists.
	ErrPhoneTaken = errors.New("phone already registered")

	// ErrInvalidZoneID is returned when zone ID is empty.
	ErrInvalidZoneID = errors.New("invalid zone id")

	// ErrInvalidZoneName is returned when zone name is empty.
	ErrInvalidZoneName = errors.New("invalid zone name")

	// ErrZoneNameTaken is returned when a zone with the name already exists.
	// Zone names key the distance matrix, so a collision is a configuration
	// error, not a silent lookup ambiguity.
	ErrZoneNameTaken = errors.New("zone name already in use")

	// ErrInvalidTripID is returned when trip ID is empty.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrInvalidDate is returned when a date does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDateRange is returned when the end date is before the start date.
	ErrInvalidDateRange = errors.New("end date before start date")

	// ErrSummaryExists is returned when a daily summary already exists for
	// the rider and date.
	ErrSummaryExists = errors.New("daily summary already exists for this date")

	// ErrSummaryInProgress is returned when a concurrent request is already
	// creating the same daily summary.
	ErrSummaryInProgress = errors.New("daily summary creation already in progress")
)

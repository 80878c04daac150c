package services

import (
	"errors"
	"fmt"

	"github.com/linskybing/reserve-go/models"
)

var (
	ErrForbidden           = errors.New("forbidden")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrReservationNotFound = errors.New("reservation not found")

	ErrInvalidWindow       = errors.New("end time must be after start time")
	ErrWindowInPast        = errors.New("cannot make a reservation in the past")
	ErrEmptyName           = errors.New("resource name must not be empty")
	ErrInvalidResourceType = errors.New("invalid resource type")
	ErrInvalidRate         = errors.New("hourly rate must be greater than zero")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrInvalidState        = errors.New("reservation status does not allow this operation")

	// ErrBookingConflict is the target for errors.Is on *ConflictError.
	ErrBookingConflict = errors.New("resource is already booked for this time period")
)

// ConflictError reports a booking conflict and names the blocking window.
type ConflictError struct {
	Blocking models.Reservation
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("resource %d is already booked from %s to %s",
		e.Blocking.RID,
		e.Blocking.StartTime.Format("2006-01-02 15:04"),
		e.Blocking.EndTime.Format("2006-01-02 15:04"))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrBookingConflict
}

// IsValidationError reports whether err is a malformed-input failure, as
// opposed to a conflict, permission or state error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidWindow) ||
		errors.Is(err, ErrWindowInPast) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrInvalidResourceType) ||
		errors.Is(err, ErrInvalidRate) ||
		errors.Is(err, ErrInvalidStatus)
}

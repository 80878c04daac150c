package services

import (
	"time"

	"github.com/linskybing/reserve-go/models"
)

// ValidateWindow checks the shape of a proposed booking window. The past
// check applies to window-submitting operations (create, reschedule) only;
// status transitions never re-validate the window.
func ValidateWindow(start, end, now time.Time) error {
	if !start.Before(end) {
		return ErrInvalidWindow
	}
	if start.Before(now) {
		return ErrWindowInPast
	}
	return nil
}

// FindConflict scans the active reservations of one resource for a window
// overlapping [start, end). Windows are half-open: a reservation ending
// exactly at start does not conflict. excludeID skips the caller's own
// reservation on reschedule checks; pass 0 to exclude nothing.
//
// Returns the first blocking reservation, or nil if the window is free.
func FindConflict(active []models.Reservation, start, end time.Time, excludeID uint) *models.Reservation {
	for i := range active {
		r := &active[i]
		if r.ResvID == excludeID {
			continue
		}
		if !r.IsActive() {
			continue
		}
		if r.Overlaps(start, end) {
			return r
		}
	}
	return nil
}

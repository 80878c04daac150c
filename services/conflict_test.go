package services

import (
	"errors"
	"testing"
	"time"

	"github.com/linskybing/reserve-go/models"
)

func window(t *testing.T, startHour, endHour int) (time.Time, time.Time) {
	t.Helper()
	day := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	return day.Add(time.Duration(startHour) * time.Hour), day.Add(time.Duration(endHour) * time.Hour)
}

func TestValidateWindow(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	start, end := window(t, 10, 11)
	if err := ValidateWindow(start, end, now); err != nil {
		t.Fatalf("valid window rejected: %v", err)
	}

	if err := ValidateWindow(end, start, now); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
	if err := ValidateWindow(start, start, now); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("zero-length window: expected ErrInvalidWindow, got %v", err)
	}

	past := now.Add(-time.Hour)
	if err := ValidateWindow(past, now.Add(time.Hour), now); !errors.Is(err, ErrWindowInPast) {
		t.Fatalf("expected ErrWindowInPast, got %v", err)
	}
}

func TestFindConflict(t *testing.T) {
	existingStart, existingEnd := window(t, 10, 11)
	existing := []models.Reservation{
		{ResvID: 1, RID: 7, StartTime: existingStart, EndTime: existingEnd, Status: string(models.ReservationConfirmed)},
	}

	cases := []struct {
		name      string
		startHour int
		endHour   int
		exclude   uint
		conflict  bool
	}{
		{"overlap middle", 10, 12, 0, true},
		{"contained", 10, 11, 0, true},
		{"straddles start", 9, 11, 0, true},
		{"covers whole", 9, 12, 0, true},
		{"touches end boundary", 11, 12, 0, false},
		{"touches start boundary", 9, 10, 0, false},
		{"disjoint after", 12, 13, 0, false},
		{"excluded self", 10, 12, 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := window(t, tc.startHour, tc.endHour)
			blocking := FindConflict(existing, start, end, tc.exclude)
			if tc.conflict && blocking == nil {
				t.Fatal("expected a conflict, got none")
			}
			if !tc.conflict && blocking != nil {
				t.Fatalf("expected no conflict, got reservation %d", blocking.ResvID)
			}
			if tc.conflict && blocking.ResvID != 1 {
				t.Fatalf("conflict names reservation %d, want 1", blocking.ResvID)
			}
		})
	}
}

func TestFindConflictIgnoresInactive(t *testing.T) {
	start, end := window(t, 10, 11)
	existing := []models.Reservation{
		{ResvID: 1, StartTime: start, EndTime: end, Status: string(models.ReservationRejected)},
		{ResvID: 2, StartTime: start, EndTime: end, Status: string(models.ReservationCompleted)},
	}

	if blocking := FindConflict(existing, start, end, 0); blocking != nil {
		t.Fatalf("rejected/completed reservations must not block, got %d", blocking.ResvID)
	}
}

func TestConflictErrorIsBookingConflict(t *testing.T) {
	start, end := window(t, 10, 11)
	err := &ConflictError{Blocking: models.Reservation{ResvID: 3, RID: 7, StartTime: start, EndTime: end}}

	if !errors.Is(err, ErrBookingConflict) {
		t.Fatal("ConflictError should match ErrBookingConflict")
	}
}

package models

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationRejected  ReservationStatus = "rejected"
	ReservationCompleted ReservationStatus = "completed"
)

func ValidReservationStatus(s string) bool {
	switch ReservationStatus(s) {
	case ReservationPending, ReservationConfirmed, ReservationRejected, ReservationCompleted:
		return true
	}
	return false
}

// Reservation books a resource for the half-open window [StartTime, EndTime).
type Reservation struct {
	ResvID    uint      `gorm:"primaryKey;column:resv_id" json:"reservation_id"`
	UID       uint      `gorm:"column:u_id;not null;index" json:"user_id"`
	RID       uint      `gorm:"column:r_id;not null;index" json:"resource_id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	Status    string    `gorm:"size:20;default:'pending';not null" json:"status"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

// IsActive reports whether the reservation counts toward conflict checks.
func (r *Reservation) IsActive() bool {
	return r.Status == string(ReservationPending) || r.Status == string(ReservationConfirmed)
}

// Overlaps reports whether [start, end) intersects this reservation's window.
// Touching boundaries (r.EndTime == start) do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}

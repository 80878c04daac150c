package models

import "time"

// ReservationWithResource joins a user's reservation with a summary of the
// booked resource.
type ReservationWithResource struct {
	ResvID       uint      `json:"reservation_id"`
	RID          uint      `json:"resource_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `gorm:"column:create_at" json:"created_at"`
	ResourceName *string   `json:"resource_name"`
	ResourceType *string   `json:"resource_type"`
	HourlyRate   *float64  `json:"hourly_rate"`
}

// ReservationAdminView joins a reservation with user and resource summaries.
// The joined columns are nullable: a reservation may outlive its user record,
// and listings must surface such rows instead of failing.
type ReservationAdminView struct {
	ResvID       uint      `json:"reservation_id"`
	UID          uint      `gorm:"column:u_id" json:"user_id"`
	RID          uint      `gorm:"column:r_id" json:"resource_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `gorm:"column:create_at" json:"created_at"`
	UserName     *string   `json:"user_name"`
	UserEmail    *string   `json:"user_email"`
	ResourceName *string   `json:"resource_name"`
}

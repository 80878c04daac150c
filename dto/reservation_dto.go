package dto

import "time"

type CreateReservationInput struct {
	ResourceID uint      `json:"resource_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
}

type RescheduleInput struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type ReservationStatusInput struct {
	Status string `json:"status" binding:"required"`
}

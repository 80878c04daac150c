package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reserve-go/dto"
	"github.com/linskybing/reserve-go/models"
	"github.com/linskybing/reserve-go/repositories"
	"github.com/linskybing/reserve-go/types"
	"github.com/linskybing/reserve-go/utils"
	"gorm.io/gorm"
)

type ReservationService struct {
	Repos  *repositories.Repos
	Events *EventBus
}

func NewReservationService(repos *repositories.Repos, events *EventBus) *ReservationService {
	return &ReservationService{
		Repos:  repos,
		Events: events,
	}
}

// CreateReservation books a window on a resource for the caller. The overlap
// check and the insert run in one transaction holding the resource row lock,
// so two concurrent requests for overlapping windows cannot both commit.
func (s *ReservationService) CreateReservation(p types.Principal, input dto.CreateReservationInput) (*models.Reservation, error) {
	if err := ValidateWindow(input.StartTime, input.EndTime, time.Now().UTC()); err != nil {
		return nil, err
	}

	var created *models.Reservation
	err := s.Repos.ExecTx(func(tx *repositories.Repos) error {
		if _, err := tx.Resource.GetResourceByIDForUpdate(input.ResourceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}

		active, err := tx.Reservation.ListActiveByResourceID(input.ResourceID)
		if err != nil {
			return err
		}
		if blocking := FindConflict(active, input.StartTime, input.EndTime, 0); blocking != nil {
			return &ConflictError{Blocking: *blocking}
		}

		resv := &models.Reservation{
			UID:       p.ID,
			RID:       input.ResourceID,
			StartTime: input.StartTime,
			EndTime:   input.EndTime,
			Status:    string(models.ReservationPending),
		}
		if err := tx.Reservation.CreateReservation(resv); err != nil {
			return err
		}
		created = resv
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(ReservationEvent{Action: EventReservationCreated, Reservation: *created})
	return created, nil
}

// Reschedule moves the caller's reservation to a new window. The status
// always drops back to pending so the new window goes through admin review
// again, even when the reservation was already confirmed.
func (s *ReservationService) Reschedule(p types.Principal, id uint, input dto.RescheduleInput) (*models.Reservation, error) {
	resv, err := s.Repos.Reservation.GetReservationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if resv.UID != p.ID {
		return nil, ErrForbidden
	}
	if !resv.IsActive() {
		return nil, ErrInvalidState
	}
	if err := ValidateWindow(input.StartTime, input.EndTime, time.Now().UTC()); err != nil {
		return nil, err
	}

	var updated *models.Reservation
	err = s.Repos.ExecTx(func(tx *repositories.Repos) error {
		if _, err := tx.Resource.GetResourceByIDForUpdate(resv.RID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}

		active, err := tx.Reservation.ListActiveByResourceID(resv.RID)
		if err != nil {
			return err
		}
		if blocking := FindConflict(active, input.StartTime, input.EndTime, resv.ResvID); blocking != nil {
			return &ConflictError{Blocking: *blocking}
		}

		resv.StartTime = input.StartTime
		resv.EndTime = input.EndTime
		resv.Status = string(models.ReservationPending)
		if err := tx.Reservation.UpdateReservation(resv); err != nil {
			return err
		}
		updated = resv
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(ReservationEvent{Action: EventReservationRescheduled, Reservation: *updated})
	return updated, nil
}

// Cancel removes the caller's own reservation while it is still active.
// Rejected and completed reservations are terminal for the owner.
func (s *ReservationService) Cancel(p types.Principal, id uint) error {
	resv, err := s.Repos.Reservation.GetReservationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReservationNotFound
		}
		return err
	}
	if resv.UID != p.ID {
		return ErrForbidden
	}
	if !resv.IsActive() {
		return ErrInvalidState
	}

	if err := s.Repos.Reservation.DeleteReservation(id); err != nil {
		return err
	}

	s.Events.Publish(ReservationEvent{Action: EventReservationCancelled, Reservation: *resv})
	return nil
}

// SetStatus lets an admin set any status value. There is deliberately no
// transition guard; transitions out of a terminal state are flagged in the
// audit trail pending product clarification.
func (s *ReservationService) SetStatus(c *gin.Context, p types.Principal, id uint, status string) (*models.Reservation, error) {
	if !p.IsAdmin() {
		return nil, ErrForbidden
	}
	if !models.ValidReservationStatus(status) {
		return nil, ErrInvalidStatus
	}

	resv, err := s.Repos.Reservation.GetReservationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	oldResv := *resv
	note := ""
	if !resv.IsActive() && models.ReservationStatus(status) != models.ReservationStatus(resv.Status) {
		note = fmt.Sprintf("transition out of terminal status %s", resv.Status)
		log.Printf("reservation %d: admin %d set status %s -> %s", resv.ResvID, p.ID, resv.Status, status)
	}

	resv.Status = status
	if err := s.Repos.Reservation.UpdateReservation(resv); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "set_status", "reservation", fmt.Sprintf("resv_id=%d", resv.ResvID), oldResv, *resv, note, s.Repos.Audit)
	s.Events.Publish(ReservationEvent{Action: EventReservationStatusChanged, Reservation: *resv})
	return resv, nil
}

func (s *ReservationService) ListMine(p types.Principal) ([]models.ReservationWithResource, error) {
	return s.Repos.Reservation.ListByUserID(p.ID)
}

func (s *ReservationService) ListAll(p types.Principal) ([]models.ReservationAdminView, error) {
	if !p.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.Repos.Reservation.ListAllWithSummaries()
}

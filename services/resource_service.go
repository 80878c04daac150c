package services

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reserve-go/dto"
	"github.com/linskybing/reserve-go/models"
	"github.com/linskybing/reserve-go/repositories"
	"github.com/linskybing/reserve-go/types"
	"github.com/linskybing/reserve-go/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ResourceService struct {
	Repos  *repositories.Repos
	Events *EventBus
}

func NewResourceService(repos *repositories.Repos, events *EventBus) *ResourceService {
	return &ResourceService{
		Repos:  repos,
		Events: events,
	}
}

func (s *ResourceService) ListPublished() ([]models.Resource, error) {
	return s.Repos.Resource.ListPublished()
}

func (s *ResourceService) ListAll(p types.Principal) ([]models.Resource, error) {
	if !p.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.Repos.Resource.ListAll()
}

// GetResource has no auth: drafts stay reachable by direct link even though
// they are hidden from the public listing.
func (s *ResourceService) GetResource(rid uint) (*models.Resource, error) {
	resource, err := s.Repos.Resource.GetResourceByID(rid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) CreateResource(c *gin.Context, p types.Principal, input dto.CreateResourceInput) (*models.Resource, error) {
	if !p.IsAdmin() {
		return nil, ErrForbidden
	}
	if input.Name == "" {
		return nil, ErrEmptyName
	}
	if !models.ValidResourceType(input.Type) {
		return nil, ErrInvalidResourceType
	}
	if input.HourlyRate <= 0 {
		return nil, ErrInvalidRate
	}

	resource := &models.Resource{
		Name:          input.Name,
		Type:          input.Type,
		Details:       datatypes.JSON(input.Details),
		Description:   input.Description,
		HourlyRate:    input.HourlyRate,
		Status:        string(models.ResourceAvailable),
		PublishStatus: string(models.PublishPublished),
	}
	if input.Status != nil {
		if !models.ValidResourceStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		resource.Status = *input.Status
	}
	if input.PublishStatus != nil {
		if !models.ValidPublishStatus(*input.PublishStatus) {
			return nil, ErrInvalidStatus
		}
		resource.PublishStatus = *input.PublishStatus
	}

	if err := s.Repos.Resource.CreateResource(resource); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "resource", fmt.Sprintf("r_id=%d", resource.RID), nil, *resource, "", s.Repos.Audit)
	return resource, nil
}

// UpdateResource merges the provided fields onto the stored record. Only the
// whitelisted fields of UpdateResourceInput can change; unset fields keep
// their stored values.
func (s *ResourceService) UpdateResource(c *gin.Context, p types.Principal, rid uint, input dto.UpdateResourceInput) (*models.Resource, error) {
	if !p.IsAdmin() {
		return nil, ErrForbidden
	}

	existing, err := s.Repos.Resource.GetResourceByID(rid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	oldResource := *existing

	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrEmptyName
		}
		existing.Name = *input.Name
	}
	if input.Type != nil {
		if !models.ValidResourceType(*input.Type) {
			return nil, ErrInvalidResourceType
		}
		existing.Type = *input.Type
	}
	if input.Details != nil {
		existing.Details = datatypes.JSON(*input.Details)
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.HourlyRate != nil {
		if *input.HourlyRate <= 0 {
			return nil, ErrInvalidRate
		}
		existing.HourlyRate = *input.HourlyRate
	}
	if input.Status != nil {
		if !models.ValidResourceStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		existing.Status = *input.Status
	}
	if input.PublishStatus != nil {
		if !models.ValidPublishStatus(*input.PublishStatus) {
			return nil, ErrInvalidStatus
		}
		existing.PublishStatus = *input.PublishStatus
	}

	if err := s.Repos.Resource.UpdateResource(existing); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "resource", fmt.Sprintf("r_id=%d", existing.RID), oldResource, *existing, "", s.Repos.Audit)
	return existing, nil
}

// DeleteResource removes a resource and every reservation referencing it in
// one transaction. If the reservation sweep fails the resource survives; a
// reader never sees a deleted resource with reservations still pointing at
// it.
func (s *ResourceService) DeleteResource(c *gin.Context, p types.Principal, rid uint) error {
	if !p.IsAdmin() {
		return ErrForbidden
	}

	var resource *models.Resource
	var swept int64
	err := s.Repos.ExecTx(func(tx *repositories.Repos) error {
		// Take the resource row lock before sweeping: booking writers hold
		// the same lock across their overlap check and insert, so a create
		// in flight commits or aborts before the sweep can miss its row.
		var err error
		resource, err = tx.Resource.GetResourceByIDForUpdate(rid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}

		swept, err = tx.Reservation.CountByResourceID(rid)
		if err != nil {
			return err
		}
		if err := tx.Reservation.DeleteByResourceID(rid); err != nil {
			return err
		}
		return tx.Resource.DeleteResource(rid)
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "resource", fmt.Sprintf("r_id=%d", resource.RID), *resource, nil,
		fmt.Sprintf("cascade-deleted %d reservations", swept), s.Repos.Audit)
	s.Events.Publish(ReservationEvent{Action: EventReservationCascadeDelete, Reservation: models.Reservation{RID: rid}})
	return nil
}

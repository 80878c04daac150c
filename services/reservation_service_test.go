package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/reserve-go/dto"
	"github.com/linskybing/reserve-go/models"
	"github.com/linskybing/reserve-go/repositories"
	"github.com/linskybing/reserve-go/repositories/mock_repositories"
	"github.com/linskybing/reserve-go/types"
	"github.com/linskybing/reserve-go/utils"
	"gorm.io/gorm"
)

func setupReservationMocks(t *testing.T) (*ReservationService,
	*mock_repositories.MockReservationRepo,
	*mock_repositories.MockResourceRepo,
	*gin.Context) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockResv := mock_repositories.NewMockReservationRepo(ctrl)
	mockResource := mock_repositories.NewMockResourceRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)

	repos := &repositories.Repos{
		Reservation: mockResv,
		Resource:    mockResource,
		Audit:       mockAudit,
	}

	svc := NewReservationService(repos, NewEventBus())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	utils.LogAuditWithConsole = func(c *gin.Context, action, entityType, entityID string, oldData, newData interface{}, msg string, repos repositories.AuditRepo) {
	}

	return svc, mockResv, mockResource, c
}

func futureWindow(t *testing.T, startHour, endHour int) (time.Time, time.Time) {
	t.Helper()
	base := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
	return base.Add(time.Duration(startHour) * time.Hour), base.Add(time.Duration(endHour) * time.Hour)
}

func TestCreateReservation(t *testing.T) {
	user := types.Principal{ID: 1, Role: "user"}
	resource := &models.Resource{RID: 7, Name: "gpu-a100-1"}

	t.Run("success", func(t *testing.T) {
		svc, mockResv, mockResource, _ := setupReservationMocks(t)
		start, end := futureWindow(t, 10, 11)

		mockResource.EXPECT().GetResourceByIDForUpdate(uint(7)).Return(resource, nil)
		mockResv.EXPECT().ListActiveByResourceID(uint(7)).Return(nil, nil)
		mockResv.EXPECT().CreateReservation(gomock.Any()).DoAndReturn(func(r *models.Reservation) error {
			r.ResvID = 100
			return nil
		})

		resv, err := svc.CreateReservation(user, dto.CreateReservationInput{
			ResourceID: 7, StartTime: start, EndTime: end,
		})
		if err != nil {
			t.Fatalf("CreateReservation failed: %v", err)
		}
		if resv.Status != string(models.ReservationPending) {
			t.Fatalf("new reservation status = %s, want pending", resv.Status)
		}
		if resv.UID != 1 || resv.RID != 7 {
			t.Fatalf("unexpected ownership: uid=%d rid=%d", resv.UID, resv.RID)
		}
	})

	t.Run("conflict names blocking window", func(t *testing.T) {
		svc, mockResv, mockResource, _ := setupReservationMocks(t)
		start, end := futureWindow(t, 10, 11)
		blockStart, blockEnd := futureWindow(t, 10, 12)
		existing := []models.Reservation{
			{ResvID: 55, RID: 7, StartTime: blockStart, EndTime: blockEnd, Status: string(models.ReservationPending)},
		}

		mockResource.EXPECT().GetResourceByIDForUpdate(uint(7)).Return(resource, nil)
		mockResv.EXPECT().ListActiveByResourceID(uint(7)).Return(existing, nil)

		_, err := svc.CreateReservation(user, dto.CreateReservationInput{
			ResourceID: 7, StartTime: start, EndTime: end,
		})
		if !errors.Is(err, ErrBookingConflict) {
			t.Fatalf("expected booking conflict, got %v", err)
		}
		var conflict *ConflictError
		if !errors.As(err, &conflict) || conflict.Blocking.ResvID != 55 {
			t.Fatalf("conflict must name the blocking reservation, got %v", err)
		}
	})

	t.Run("boundary touch is not a conflict", func(t *testing.T) {
		svc, mockResv, mockResource, _ := setupReservationMocks(t)
		existingStart, existingEnd := futureWindow(t, 10, 11)
		existing := []models.Reservation{
			{ResvID: 55, RID: 7, StartTime: existingStart, EndTime: existingEnd, Status: string(models.ReservationConfirmed)},
		}
		start, end := futureWindow(t, 11, 12)

		mockResource.EXPECT().GetResourceByIDForUpdate(uint(7)).Return(resource, nil)
		mockResv.EXPECT().ListActiveByResourceID(uint(7)).Return(existing, nil)
		mockResv.EXPECT().CreateReservation(gomock.Any()).Return(nil)

		if _, err := svc.CreateReservation(user, dto.CreateReservationInput{
			ResourceID: 7, StartTime: start, EndTime: end,
		}); err != nil {
			t.Fatalf("back-to-back booking rejected: %v", err)
		}
	})

	t.Run("missing resource", func(t *testing.T) {
		svc, _, mockResource, _ := setupReservationMocks(t)
		start, end := futureWindow(t, 10, 11)

		mockResource.EXPECT().GetResourceByIDForUpdate(uint(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CreateReservation(user, dto.CreateReservationInput{
			ResourceID: 9, StartTime: start, EndTime: end,
		})
		if !errors.Is(err, ErrResourceNotFound) {
			t.Fatalf("expected ErrResourceNotFound, got %v", err)
		}
	})

	t.Run("past window", func(t *testing.T) {
		svc, _, _, _ := setupReservationMocks(t)
		start := time.Now().UTC().Add(-2 * time.Hour)

		_, err := svc.CreateReservation(user, dto.CreateReservationInput{
			ResourceID: 7, StartTime: start, EndTime: start.Add(time.Hour),
		})
		if !errors.Is(err, ErrWindowInPast) {
			t.Fatalf("expected ErrWindowInPast, got %v", err)
		}
	})
}

func TestReschedule(t *testing.T) {
	owner := types.Principal{ID: 1, Role: "user"}
	resource := &models.Resource{RID: 7}

	t.Run("confirmed resets to pending", func(t *testing.T) {
		svc, mockResv, mockResource, _ := setupReservationMocks(t)
		oldStart, oldEnd := futureWindow(t, 10, 11)
		newStart, newEnd := futureWindow(t, 14, 15)
		resv := &models.Reservation{
			ResvID: 100, UID: 1, RID: 7,
			StartTime: oldStart, EndTime: oldEnd,
			Status: string(models.ReservationConfirmed),
		}

		mockResv.EXPECT().GetReservationByID(uint(100)).Return(resv, nil)
		mockResource.EXPECT().GetResourceByIDForUpdate(uint(7)).Return(resource, nil)
		mockResv.EXPECT().ListActiveByResourceID(uint(7)).Return([]models.Reservation{*resv}, nil)
		mockResv.EXPECT().UpdateReservation(resv).Return(nil)

		updated, err := svc.Reschedule(owner, 100, dto.RescheduleInput{StartTime: newStart, EndTime: newEnd})
		if err != nil {
			t.Fatalf("Reschedule failed: %v", err)
		}
		if updated.Status != string(models.ReservationPending) {
			t.Fatalf("rescheduled status = %s, want pending", updated.Status)
		}
		if !updated.StartTime.Equal(newStart) || !updated.EndTime.Equal(newEnd) {
			t.Fatal("window not updated")
		}
	})

	t.Run("own window excluded from conflict check", func(t *testing.T) {
		svc, mockResv, mockResource, _ := setupReservationMocks(t)
		oldStart, oldEnd := futureWindow(t, 10, 12)
		newStart, newEnd := futureWindow(t, 11, 13)
		resv := &models.Reservation{
			ResvID: 100, UID: 1, RID: 7,
			StartTime: oldStart, EndTime: oldEnd,
			Status: string(models.ReservationPending),
		}

		mockResv.EXPECT().GetReservationByID(uint(100)).Return(resv, nil)
		mockResource.EXPECT().GetResourceByIDForUpdate(uint(7)).Return(resource, nil)
		mockResv.EXPECT().ListActiveByResourceID(uint(7)).Return([]models.Reservation{*resv}, nil)
		mockResv.EXPECT().UpdateReservation(resv).Return(nil)

		if _, err := svc.Reschedule(owner, 100, dto.RescheduleInput{StartTime: newStart, EndTime: newEnd}); err != nil {
			t.Fatalf("shifting own window must not self-conflict: %v", err)
		}
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		svc, mockResv, _, _ := setupReservationMocks(t)
		start, end := futureWindow(t, 10, 11)
		resv := &models.Reservation{ResvID: 100, UID: 2, RID: 7, Status: string(models.ReservationPending)}

		mockResv.EXPECT().GetReservationByID(uint(100)).Return(resv, nil)

		_, err := svc.Reschedule(owner, 100, dto.RescheduleInput{StartTime: start, EndTime: end})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("terminal status rejected", func(t *testing.T) {
		svc, mockResv, _, _ := setupReservationMocks(t)
		start, end := futureWindow(t, 10, 11)
		resv := &models.Reservation{ResvID: 100, UID: 1, RID: 7, Status: string(models.ReservationCompleted)}

		mockResv.EXPECT().GetReservationByID(uint(100)).Return(resv, nil)

		_, err := svc.Reschedule(owner, 100, dto.RescheduleInput{StartTime: start, EndTime: end})
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestCancel(t *testing.T) {
	owner := types.Principal{ID: 1, Role: "user"}

	t.Run("owner cancels pending", func(t *testing.T) {
		svc, mockResv, _, _ := setupReservationMocks(t)
		resv := &models.Reservation{ResvID: 100, UID: 1, Status: string(models.ReservationPending)}

		mockResv.EXPECT().GetReservationByID(uint(100)).Return(resv, nil)
		mockResv.EXPECT().DeleteReservation(uint(100)).Return(nil)

		if err := svc.Cancel(owner, 100); err != nil {
			t.Fatalf("Cancel failed: %v", err)
		}
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		svc, mockResv, _, _ := setupReservationMocks(t)
		resv := &models.Reservation{ResvID: 100, UID: 2, Status: string(models.ReservationConfirmed)}

		mockResv.EXPECT().GetReservationByID(uint(100)).Return(resv, nil)

		if err := svc.Cancel(owner, 100); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("rejected reservation is terminal", func(t *testing.T) {
		svc, mockResv, _, _ := setupReservationMocks(t)
		resv := &models.Reservation{ResvID: 100, UID: 1, Status: string(models.ReservationRejected)}

		mockResv.EXPECT().GetReservationByID(uint(100)).Return(resv, nil)

		if err := svc.Cancel(owner, 100); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("completed reservation is terminal", func(t *testing.T) {
		svc, mockResv, _, _ := setupReservationMocks(t)
		resv := &models.Reservation{ResvID: 100, UID: 1, Status: string(models.ReservationCompleted)}

		mockResv.EXPECT().GetReservationByID(uint(100)).Return(resv, nil)

		if err := svc.Cancel(owner, 100); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestSetStatus(t *testing.T) {
	admin := types.Principal{ID: 9, Role: "admin"}
	user := types.Principal{ID: 1, Role: "user"}

	t.Run("admin confirms pending", func(t *testing.T) {
		svc, mockResv, _, c := setupReservationMocks(t)
		resv := &models.Reservation{ResvID: 100, UID: 1, Status: string(models.ReservationPending)}

		mockResv.EXPECT().GetReservationByID(uint(100)).Return(resv, nil)
		mockResv.EXPECT().UpdateReservation(resv).Return(nil)

		updated, err := svc.SetStatus(c, admin, 100, string(models.ReservationConfirmed))
		if err != nil {
			t.Fatalf("SetStatus failed: %v", err)
		}
		if updated.Status != string(models.ReservationConfirmed) {
			t.Fatalf("status = %s, want confirmed", updated.Status)
		}
	})

	t.Run("backward transition allowed but flagged", func(t *testing.T) {
		svc, mockResv, _, c := setupReservationMocks(t)
		resv := &models.Reservation{ResvID: 100, UID: 1, Status: string(models.ReservationCompleted)}

		mockResv.EXPECT().GetReservationByID(uint(100)).Return(resv, nil)
		mockResv.EXPECT().UpdateReservation(resv).Return(nil)

		updated, err := svc.SetStatus(c, admin, 100, string(models.ReservationPending))
		if err != nil {
			t.Fatalf("permissive transition rejected: %v", err)
		}
		if updated.Status != string(models.ReservationPending) {
			t.Fatalf("status = %s, want pending", updated.Status)
		}
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc, _, _, c := setupReservationMocks(t)

		_, err := svc.SetStatus(c, user, 100, string(models.ReservationConfirmed))
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc, _, _, c := setupReservationMocks(t)

		_, err := svc.SetStatus(c, admin, 100, "approved")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestListAllRequiresAdmin(t *testing.T) {
	svc, mockResv, _, _ := setupReservationMocks(t)

	if _, err := svc.ListAll(types.Principal{ID: 1, Role: "user"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	missingUser := models.ReservationAdminView{ResvID: 1, UID: 42, RID: 7}
	mockResv.EXPECT().ListAllWithSummaries().Return([]models.ReservationAdminView{missingUser}, nil)

	rows, err := svc.ListAll(types.Principal{ID: 9, Role: "admin"})
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(rows) != 1 || rows[0].UserName != nil {
		t.Fatal("rows with deleted users must survive with nil summaries")
	}
}

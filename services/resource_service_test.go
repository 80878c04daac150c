package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

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

var (
	adminPrincipal = types.Principal{ID: 9, Role: "admin"}
	userPrincipal  = types.Principal{ID: 1, Role: "user"}
)

func setupResourceMocks(t *testing.T) (*ResourceService,
	*mock_repositories.MockResourceRepo,
	*mock_repositories.MockReservationRepo,
	*gin.Context) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockResource := mock_repositories.NewMockResourceRepo(ctrl)
	mockResv := mock_repositories.NewMockReservationRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)

	repos := &repositories.Repos{
		Resource:    mockResource,
		Reservation: mockResv,
		Audit:       mockAudit,
	}

	svc := NewResourceService(repos, NewEventBus())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	utils.LogAuditWithConsole = func(c *gin.Context, action, entityType, entityID string, oldData, newData interface{}, msg string, repos repositories.AuditRepo) {
	}

	return svc, mockResource, mockResv, c
}

func TestCreateResourceValidation(t *testing.T) {
	cases := []struct {
		name  string
		input dto.CreateResourceInput
		want  error
	}{
		{"empty name", dto.CreateResourceInput{Type: "vm", HourlyRate: 1}, ErrEmptyName},
		{"bad type", dto.CreateResourceInput{Name: "x", Type: "fpga", HourlyRate: 1}, ErrInvalidResourceType},
		{"zero rate", dto.CreateResourceInput{Name: "x", Type: "vm"}, ErrInvalidRate},
		{"negative rate", dto.CreateResourceInput{Name: "x", Type: "gpu", HourlyRate: -3}, ErrInvalidRate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _, c := setupResourceMocks(t)
			if _, err := svc.CreateResource(c, adminPrincipal, tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc, _, _, c := setupResourceMocks(t)
		input := dto.CreateResourceInput{Name: "vm-1", Type: "vm", HourlyRate: 2.5}
		if _, err := svc.CreateResource(c, userPrincipal, input); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestCreateResourceDefaults(t *testing.T) {
	svc, mockResource, _, c := setupResourceMocks(t)

	mockResource.EXPECT().CreateResource(gomock.Any()).DoAndReturn(func(r *models.Resource) error {
		r.RID = 1
		return nil
	})

	resource, err := svc.CreateResource(c, adminPrincipal, dto.CreateResourceInput{
		Name: "gpu-a100-1", Type: "gpu", HourlyRate: 4.5,
	})
	if err != nil {
		t.Fatalf("CreateResource failed: %v", err)
	}
	if resource.Status != string(models.ResourceAvailable) {
		t.Fatalf("default status = %s, want available", resource.Status)
	}
	if resource.PublishStatus != string(models.PublishPublished) {
		t.Fatalf("default publish status = %s, want published", resource.PublishStatus)
	}
}

func TestUpdateResourceMerge(t *testing.T) {
	svc, mockResource, _, c := setupResourceMocks(t)

	existing := &models.Resource{
		RID: 1, Name: "vm-small", Type: "vm",
		Description: "2 vCPU / 4 GB", HourlyRate: 1.5,
		Status:        string(models.ResourceAvailable),
		PublishStatus: string(models.PublishPublished),
	}

	mockResource.EXPECT().GetResourceByID(uint(1)).Return(existing, nil)
	mockResource.EXPECT().UpdateResource(existing).Return(nil)

	newRate := 2.0
	draft := string(models.PublishDraft)
	updated, err := svc.UpdateResource(c, adminPrincipal, 1, dto.UpdateResourceInput{
		HourlyRate:    &newRate,
		PublishStatus: &draft,
	})
	if err != nil {
		t.Fatalf("UpdateResource failed: %v", err)
	}
	if updated.HourlyRate != 2.0 || updated.PublishStatus != draft {
		t.Fatal("provided fields not merged")
	}
	if updated.Name != "vm-small" || updated.Description != "2 vCPU / 4 GB" {
		t.Fatal("unset fields must keep their stored values")
	}
}

func TestUpdateResourceRejectsBadFields(t *testing.T) {
	svc, mockResource, _, c := setupResourceMocks(t)

	existing := &models.Resource{RID: 1, Name: "vm-small", Type: "vm", HourlyRate: 1.5}
	mockResource.EXPECT().GetResourceByID(uint(1)).Return(existing, nil)

	badRate := -1.0
	if _, err := svc.UpdateResource(c, adminPrincipal, 1, dto.UpdateResourceInput{HourlyRate: &badRate}); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate, got %v", err)
	}
}

func TestUpdateResourceNotFound(t *testing.T) {
	svc, mockResource, _, c := setupResourceMocks(t)

	mockResource.EXPECT().GetResourceByID(uint(42)).Return(nil, gorm.ErrRecordNotFound)

	if _, err := svc.UpdateResource(c, adminPrincipal, 42, dto.UpdateResourceInput{}); !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestDeleteResourceCascades(t *testing.T) {
	svc, mockResource, mockResv, c := setupResourceMocks(t)

	resource := &models.Resource{RID: 1, Name: "gpu-a100-1"}

	// The row lock comes first so the cascade serializes with booking
	// writers, then the sweep, then the resource itself.
	gomock.InOrder(
		mockResource.EXPECT().GetResourceByIDForUpdate(uint(1)).Return(resource, nil),
		mockResv.EXPECT().CountByResourceID(uint(1)).Return(int64(2), nil),
		mockResv.EXPECT().DeleteByResourceID(uint(1)).Return(nil),
		mockResource.EXPECT().DeleteResource(uint(1)).Return(nil),
	)

	if err := svc.DeleteResource(c, adminPrincipal, 1); err != nil {
		t.Fatalf("DeleteResource failed: %v", err)
	}
}

func TestDeleteResourceFailClosed(t *testing.T) {
	svc, mockResource, mockResv, c := setupResourceMocks(t)

	resource := &models.Resource{RID: 1}
	sweepErr := errors.New("reservation sweep failed")

	mockResource.EXPECT().GetResourceByIDForUpdate(uint(1)).Return(resource, nil)
	mockResv.EXPECT().CountByResourceID(uint(1)).Return(int64(1), nil)
	mockResv.EXPECT().DeleteByResourceID(uint(1)).Return(sweepErr)

	// The resource delete must not run when the sweep fails.
	if err := svc.DeleteResource(c, adminPrincipal, 1); !errors.Is(err, sweepErr) {
		t.Fatalf("expected sweep error to propagate, got %v", err)
	}
}

func TestDeleteResourceNotFound(t *testing.T) {
	svc, mockResource, _, c := setupResourceMocks(t)

	mockResource.EXPECT().GetResourceByIDForUpdate(uint(42)).Return(nil, gorm.ErrRecordNotFound)

	if err := svc.DeleteResource(c, adminPrincipal, 42); !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestGetResourceIncludesDrafts(t *testing.T) {
	svc, mockResource, _, _ := setupResourceMocks(t)

	draft := &models.Resource{RID: 3, Name: "gpu-h100-0", PublishStatus: string(models.PublishDraft)}
	mockResource.EXPECT().GetResourceByID(uint(3)).Return(draft, nil)

	got, err := svc.GetResource(3)
	if err != nil {
		t.Fatalf("GetResource failed: %v", err)
	}
	if got.PublishStatus != string(models.PublishDraft) {
		t.Fatal("draft resources must stay fetchable by id")
	}
}

func TestListAllResourcesRequiresAdmin(t *testing.T) {
	svc, _, _, _ := setupResourceMocks(t)

	if _, err := svc.ListAll(userPrincipal); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

type ResourceType string

const (
	ResourceVM  ResourceType = "vm"
	ResourceGPU ResourceType = "gpu"
)

func ValidResourceType(t string) bool {
	switch ResourceType(t) {
	case ResourceVM, ResourceGPU:
		return true
	}
	return false
}

type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "available"
	ResourceInUse       ResourceStatus = "in-use"
	ResourceMaintenance ResourceStatus = "maintenance"
)

func ValidResourceStatus(s string) bool {
	switch ResourceStatus(s) {
	case ResourceAvailable, ResourceInUse, ResourceMaintenance:
		return true
	}
	return false
}

type PublishStatus string

const (
	PublishPublished PublishStatus = "published"
	PublishDraft     PublishStatus = "draft"
)

func ValidPublishStatus(s string) bool {
	switch PublishStatus(s) {
	case PublishPublished, PublishDraft:
		return true
	}
	return false
}

// Resource is a single exclusively-bookable unit (one VM, one GPU card).
// Details carries per-type spec attributes (vcpu, ram_gb, storage_gb,
// gpu_model, ...) without a fixed schema.
type Resource struct {
	RID           uint           `gorm:"primaryKey;column:r_id" json:"resource_id"`
	Name          string         `gorm:"size:100;not null" json:"name"`
	Type          string         `gorm:"size:20;not null" json:"type"`
	Details       datatypes.JSON `gorm:"type:jsonb" json:"details"`
	Description   string         `gorm:"type:text" json:"description"`
	HourlyRate    float64        `gorm:"not null" json:"hourly_rate"`
	Status        string         `gorm:"size:20;default:'available';not null" json:"status"`
	PublishStatus string         `gorm:"size:20;default:'published';not null" json:"publish_status"`
	CreatedAt     time.Time      `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

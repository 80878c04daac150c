package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	AID         uint           `gorm:"primaryKey;column:a_id" json:"audit_id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Action      string         `gorm:"size:50;not null" json:"action"`
	EntityType  string         `gorm:"size:50;not null" json:"entity_type"`
	EntityID    string         `gorm:"size:100" json:"entity_id"`
	OldData     datatypes.JSON `gorm:"type:jsonb" json:"old_data,omitempty"`
	NewData     datatypes.JSON `gorm:"type:jsonb" json:"new_data,omitempty"`
	IPAddress   string         `gorm:"size:64" json:"ip_address"`
	UserAgent   string         `gorm:"size:255" json:"user_agent"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"column:create_at;autoCreateTime" json:"created_at"`
}

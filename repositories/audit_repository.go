package repositories

import (
	"time"

	"github.com/linskybing/reserve-go/models"
	"gorm.io/gorm"
)

type AuditQueryParams struct {
	UserID     *uint
	EntityType *string
	Action     *string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Offset     int
}

type AuditRepo interface {
	CreateAuditLog(audit *models.AuditLog) error
	GetAuditLogs(params AuditQueryParams) ([]models.AuditLog, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) CreateAuditLog(audit *models.AuditLog) error {
	return r.db.Create(audit).Error
}

func (r *DBAuditRepo) GetAuditLogs(params AuditQueryParams) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	query := r.db.Model(&models.AuditLog{})

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}
	if params.EntityType != nil {
		query = query.Where("entity_type = ?", *params.EntityType)
	}
	if params.Action != nil {
		query = query.Where("action = ?", *params.Action)
	}
	if params.StartTime != nil {
		query = query.Where("create_at >= ?", *params.StartTime)
	}
	if params.EndTime != nil {
		query = query.Where("create_at <= ?", *params.EndTime)
	}

	query = query.Order("create_at DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	return &DBAuditRepo{db: tx}
}

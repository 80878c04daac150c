package repositories

import (
	"errors"

	"github.com/linskybing/reserve-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResourceRepo interface {
	CreateResource(resource *models.Resource) error
	GetResourceByID(rid uint) (*models.Resource, error)
	// GetResourceByIDForUpdate locks the resource row for the duration of the
	// surrounding transaction, serializing reservation writers per resource.
	GetResourceByIDForUpdate(rid uint) (*models.Resource, error)
	UpdateResource(resource *models.Resource) error
	DeleteResource(rid uint) error
	ListPublished() ([]models.Resource, error)
	ListAll() ([]models.Resource, error)
	WithTx(tx *gorm.DB) ResourceRepo
}

type DBResourceRepo struct {
	db *gorm.DB
}

func NewResourceRepo(db *gorm.DB) *DBResourceRepo {
	return &DBResourceRepo{db: db}
}

func (r *DBResourceRepo) CreateResource(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

func (r *DBResourceRepo) GetResourceByID(rid uint) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.First(&resource, "r_id = ?", rid).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *DBResourceRepo) GetResourceByIDForUpdate(rid uint) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&resource, "r_id = ?", rid).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *DBResourceRepo) UpdateResource(resource *models.Resource) error {
	if resource.RID == 0 {
		return errors.New("resource RID is required")
	}
	return r.db.Save(resource).Error
}

func (r *DBResourceRepo) DeleteResource(rid uint) error {
	return r.db.Delete(&models.Resource{}, "r_id = ?", rid).Error
}

func (r *DBResourceRepo) ListPublished() ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.
		Where("publish_status = ?", string(models.PublishPublished)).
		Order("r_id").
		Find(&resources).Error
	return resources, err
}

func (r *DBResourceRepo) ListAll() ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.Order("r_id").Find(&resources).Error
	return resources, err
}

func (r *DBResourceRepo) WithTx(tx *gorm.DB) ResourceRepo {
	return &DBResourceRepo{db: tx}
}

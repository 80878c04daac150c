package repositories

import (
	"github.com/linskybing/reserve-go/models"
	"gorm.io/gorm"
)

type ReservationRepo interface {
	CreateReservation(resv *models.Reservation) error
	GetReservationByID(id uint) (*models.Reservation, error)
	UpdateReservation(resv *models.Reservation) error
	DeleteReservation(id uint) error
	// ListActiveByResourceID returns the pending/confirmed reservations of a
	// resource, the set conflict checks run against.
	ListActiveByResourceID(rid uint) ([]models.Reservation, error)
	DeleteByResourceID(rid uint) error
	CountByResourceID(rid uint) (int64, error)
	ListByUserID(uid uint) ([]models.ReservationWithResource, error)
	ListAllWithSummaries() ([]models.ReservationAdminView, error)
	WithTx(tx *gorm.DB) ReservationRepo
}

type DBReservationRepo struct {
	db *gorm.DB
}

func NewReservationRepo(db *gorm.DB) *DBReservationRepo {
	return &DBReservationRepo{db: db}
}

func (r *DBReservationRepo) CreateReservation(resv *models.Reservation) error {
	return r.db.Create(resv).Error
}

func (r *DBReservationRepo) GetReservationByID(id uint) (*models.Reservation, error) {
	var resv models.Reservation
	err := r.db.First(&resv, "resv_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &resv, nil
}

func (r *DBReservationRepo) UpdateReservation(resv *models.Reservation) error {
	return r.db.Save(resv).Error
}

func (r *DBReservationRepo) DeleteReservation(id uint) error {
	return r.db.Delete(&models.Reservation{}, "resv_id = ?", id).Error
}

func (r *DBReservationRepo) ListActiveByResourceID(rid uint) ([]models.Reservation, error) {
	var resvs []models.Reservation
	err := r.db.
		Where("r_id = ? AND status IN ?", rid, []string{
			string(models.ReservationPending),
			string(models.ReservationConfirmed),
		}).
		Order("start_time").
		Find(&resvs).Error
	return resvs, err
}

func (r *DBReservationRepo) DeleteByResourceID(rid uint) error {
	return r.db.Delete(&models.Reservation{}, "r_id = ?", rid).Error
}

func (r *DBReservationRepo) CountByResourceID(rid uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Reservation{}).Where("r_id = ?", rid).Count(&count).Error
	return count, err
}

func (r *DBReservationRepo) ListByUserID(uid uint) ([]models.ReservationWithResource, error) {
	var rows []models.ReservationWithResource
	err := r.db.Model(&models.Reservation{}).
		Select(`reservations.resv_id, reservations.r_id, reservations.start_time,
			reservations.end_time, reservations.status, reservations.create_at,
			resources.name AS resource_name, resources.type AS resource_type,
			resources.hourly_rate`).
		Joins("LEFT JOIN resources ON resources.r_id = reservations.r_id").
		Where("reservations.u_id = ?", uid).
		Order("reservations.start_time").
		Scan(&rows).Error
	return rows, err
}

func (r *DBReservationRepo) ListAllWithSummaries() ([]models.ReservationAdminView, error) {
	var rows []models.ReservationAdminView
	err := r.db.Model(&models.Reservation{}).
		Select(`reservations.resv_id, reservations.u_id, reservations.r_id,
			reservations.start_time, reservations.end_time, reservations.status,
			reservations.create_at,
			users.name AS user_name, users.email AS user_email,
			resources.name AS resource_name`).
		Joins("LEFT JOIN users ON users.u_id = reservations.u_id").
		Joins("LEFT JOIN resources ON resources.r_id = reservations.r_id").
		Order("reservations.start_time").
		Scan(&rows).Error
	return rows, err
}

func (r *DBReservationRepo) WithTx(tx *gorm.DB) ReservationRepo {
	return &DBReservationRepo{db: tx}
}

package repositories

import (
	"errors"

	"github.com/linskybing/reserve-go/models"
	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(user *models.User) error
	GetUserByID(uid uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *DBUserRepo) GetUserByID(uid uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "u_id = ?", uid).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *DBUserRepo) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	return &DBUserRepo{db: tx}
}

package services

import (
	"errors"
	"time"

	"github.com/linskybing/reserve-go/dto"
	"github.com/linskybing/reserve-go/middleware"
	"github.com/linskybing/reserve-go/models"
	"github.com/linskybing/reserve-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input dto.RegisterInput) (*models.User, string, error) {
	existing, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", ErrPasswordHashFailure
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     string(models.UserRoleUser),
	}
	if err := s.Repos.User.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := middleware.GenerateToken(user.UID, user.Name, user.Role, 5*time.Hour)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Login(input dto.LoginInput) (*models.User, string, error) {
	user, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.UID, user.Name, user.Role, 5*time.Hour)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

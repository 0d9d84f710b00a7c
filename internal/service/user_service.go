package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campusconnect/campus-events-backend/internal/apperror"
	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/repository"
	jwtPkg "github.com/campusconnect/campus-events-backend/pkg/jwt"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateAnonymous creates a display-name-only participant and hands back a
// token so every later mutation carries an explicit credential.
func (s *UserService) CreateAnonymous(name string) (*models.AuthResponse, error) {
	user := &models.User{
		Role:        models.RoleParticipant,
		Name:        name,
		IsAnonymous: true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create anonymous user: %w", err)
	}

	token, err := jwtPkg.GenerateToken(user.ID, "", user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

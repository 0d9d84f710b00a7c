package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusconnect/campus-events-backend/internal/apperror"
	"github.com/campusconnect/campus-events-backend/internal/models"
)

func TestCreateAnonymous(t *testing.T) {
	userRepo := &mockUserRepo{
		createFn: func(user *models.User) error {
			user.ID = 7
			return nil
		},
	}
	svc := NewUserService(userRepo)

	resp, err := svc.CreateAnonymous("Asha")

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleParticipant, resp.User.Role)
	assert.True(t, resp.User.IsAnonymous)
	assert.Nil(t, resp.User.Email)
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc := NewUserService(&mockUserRepo{})

	_, err := svc.GetByID(404)

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

package service

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campusconnect/campus-events-backend/internal/apperror"
	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/repository"
	"github.com/campusconnect/campus-events-backend/pkg/bcrypt"
	jwtPkg "github.com/campusconnect/campus-events-backend/pkg/jwt"
	"github.com/campusconnect/campus-events-backend/pkg/utils"
)

const otpTTL = 10 * time.Minute

// OTPMailer delivers one-time codes. Satisfied by pkg/email.
type OTPMailer interface {
	SendOTPEmail(to, code string) error
}

type AuthService struct {
	otpRepo  repository.OtpRepository
	userRepo repository.UserRepository
	mailer   OTPMailer
	logger   *zap.Logger
}

func NewAuthService(otpRepo repository.OtpRepository, userRepo repository.UserRepository, mailer OTPMailer, logger *zap.Logger) *AuthService {
	return &AuthService{
		otpRepo:  otpRepo,
		userRepo: userRepo,
		mailer:   mailer,
		logger:   logger,
	}
}

// SendOTP issues a fresh code for the email, replacing any live one.
func (s *AuthService) SendOTP(email string) error {
	code := utils.GenerateOTP()

	hash, err := bcrypt.HashCode(code)
	if err != nil {
		return fmt.Errorf("hash OTP: %w", err)
	}

	otp := &models.OtpCode{
		Email:     email,
		CodeHash:  hash,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.otpRepo.Replace(otp); err != nil {
		return fmt.Errorf("store OTP: %w", err)
	}

	if err := s.mailer.SendOTPEmail(email, code); err != nil {
		return fmt.Errorf("send OTP email: %w", err)
	}

	s.logger.Info("OTP issued", zap.String("email", email))
	return nil
}

// VerifyOTP consumes the live code and signs the caller in as an organizer,
// creating the organizer user on first sign-in.
func (s *AuthService) VerifyOTP(email, code string) (*models.AuthResponse, error) {
	otp, err := s.otpRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("No OTP found for this email")
		}
		return nil, fmt.Errorf("load OTP: %w", err)
	}

	if time.Now().After(otp.ExpiresAt) {
		if err := s.otpRepo.Delete(otp.ID); err != nil {
			return nil, fmt.Errorf("delete expired OTP: %w", err)
		}
		return nil, apperror.Expired("OTP has expired")
	}

	if err := bcrypt.CompareCode(otp.CodeHash, code); err != nil {
		return nil, apperror.Validation("Invalid OTP")
	}

	if err := s.otpRepo.Delete(otp.ID); err != nil {
		return nil, fmt.Errorf("consume OTP: %w", err)
	}

	user, err := s.getOrCreateOrganizer(email)
	if err != nil {
		return nil, err
	}

	token, err := jwtPkg.GenerateToken(user.ID, email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.logger.Info("organizer signed in", zap.String("email", email), zap.Uint("user_id", user.ID))

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *AuthService) getOrCreateOrganizer(email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load user: %w", err)
	}

	user = &models.User{
		Role:  models.RoleOrganizer,
		Email: &email,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create organizer: %w", err)
	}
	return user, nil
}

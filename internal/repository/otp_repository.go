package repository

import (
	"github.com/campusconnect/campus-events-backend/internal/models"
	"gorm.io/gorm"
)

type OtpRepository interface {
	// Replace drops any live code for the email and stores the new one,
	// keeping at most one live code per email.
	Replace(otp *models.OtpCode) error
	GetByEmail(email string) (*models.OtpCode, error)
	Delete(id uint) error
}

type otpRepository struct {
	db *gorm.DB
}

func NewOtpRepository(db *gorm.DB) OtpRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Replace(otp *models.OtpCode) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", otp.Email).Delete(&models.OtpCode{}).Error; err != nil {
			return err
		}
		return tx.Create(otp).Error
	})
}

func (r *otpRepository) GetByEmail(email string) (*models.OtpCode, error) {
	var otp models.OtpCode
	if err := r.db.Where("email = ?", email).First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) Delete(id uint) error {
	return r.db.Delete(&models.OtpCode{}, id).Error
}

package repository

import (
	"context"
	"errors"

	"plantbook/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OTPRepository interface {
	Create(ctx context.Context, otp *entity.OTP) error
	// FindLatestByUser returns the most recently created code for the
	// user, or nil when none exists. Older records are ignored, not
	// invalidated.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.OTP, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type otpRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Create(ctx context.Context, otp *entity.OTP) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

func (r *otpRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.OTP, error) {
	var otp entity.OTP
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&otp).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.OTP{}).
		Error
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OTP is one issued verification code. A user may have several live
// records at once; only the most recently created one counts during
// validation.
type OTP struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	Code      string    `gorm:"type:varchar(10);not null"`
	ExpiresAt time.Time `gorm:"not null"`

	CreatedAt time.Time
}

func (o *OTP) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

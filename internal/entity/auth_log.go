package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuthAction string

const (
	SignedUp      AuthAction = "signed_up"
	EmailVerified AuthAction = "email_verified"
	LoginSuccess  AuthAction = "login_success"
	LoginFailed   AuthAction = "login_failed"
	PasswordReset AuthAction = "password_reset"
	LoggedOut     AuthAction = "logged_out"
)

type AuthLog struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	UserID *uuid.UUID `gorm:"type:uuid;index"`
	User   *User      `gorm:"constraint:OnDelete:SET NULL"`

	Action   AuthAction `gorm:"type:varchar(30);not null"`
	Metadata datatypes.JSON

	CreatedAt time.Time
}

func (l *AuthLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

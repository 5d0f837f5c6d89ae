package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

type AuthConfig struct {
	OTPTTL time.Duration
}

type EmailSender interface {
	SendVerificationOTP(ctx context.Context, email string, code string) error
	SendPasswordResetOTP(ctx context.Context, email string, code string) error
}

type PasswordHasher interface {
	Hash(password string) string
	Verify(password string, hash string) bool
}

type TokenIssuer interface {
	IssueToken(userID string, email string, role string) (string, error)
}

type CodeGenerator interface {
	Generate() (string, error)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// HMACPasswordHasher reproduces the original credential scheme: an
// HMAC-SHA256 of the password keyed by one shared salt, hex encoded.
// Deterministic, so equal passwords share a digest across users. Kept
// for compatibility; see DESIGN.md before relying on it anywhere new.
type HMACPasswordHasher struct {
	Salt []byte
}

func (h HMACPasswordHasher) Hash(password string) string {
	mac := hmac.New(sha256.New, h.Salt)
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}

func (h HMACPasswordHasher) Verify(password string, hash string) bool {
	return hmac.Equal([]byte(h.Hash(password)), []byte(hash))
}

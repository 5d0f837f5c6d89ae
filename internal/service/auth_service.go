package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"plantbook/internal/dto"
	"plantbook/internal/entity"
	"plantbook/internal/repository"
	"plantbook/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuthService struct {
	users    repository.UserRepository
	otps     repository.OTPRepository
	authLogs repository.AuthLogRepository

	emailSender  EmailSender
	passwordHash PasswordHasher
	tokens       TokenIssuer
	codes        CodeGenerator
	clock        Clock
	config       AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	otps repository.OTPRepository,
	authLogs repository.AuthLogRepository,
	emailSender EmailSender,
	passwordHash PasswordHasher,
	tokens TokenIssuer,
	codes CodeGenerator,
	clock Clock,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:        users,
		otps:         otps,
		authLogs:     authLogs,
		emailSender:  emailSender,
		passwordHash: passwordHash,
		tokens:       tokens,
		codes:        codes,
		clock:        clock,
		config:       config,
	}
}

// Signup creates an unverified account and emails a verification code.
// User, code and email are three separate steps; a mail failure leaves
// the first two persisted.
func (s *AuthService) Signup(ctx context.Context, input dto.SignupRequest) (*entity.User, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	role := entity.UserRole(input.Role)
	if role == "" {
		role = entity.UserRoleUser
	}
	user := &entity.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: s.passwordHash.Hash(input.Password),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	code, err := s.issueOTP(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.emailSender.SendVerificationOTP(ctx, email, code); err != nil {
		return nil, err
	}

	s.logAuth(ctx, &user.ID, entity.SignedUp, map[string]any{"email": email})
	return user, nil
}

// VerifyEmail checks the submitted code against the user's most recent
// OTP, then marks the account verified and issues a bearer token. The
// matched code is deleted so it cannot be replayed.
func (s *AuthService) VerifyEmail(ctx context.Context, input dto.VerifyEmailRequest) (*entity.User, error) {
	user, err := s.findUser(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	otp, err := s.validateOTP(ctx, user.ID, input.OTP)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.IssueToken(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	user.IsEmailVerified = true
	user.Token = &token
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := s.otps.Delete(ctx, otp.ID); err != nil {
		return nil, err
	}

	s.logAuth(ctx, &user.ID, entity.EmailVerified, nil)
	return user, nil
}

// ResendOTP re-sends the user's latest code while it is still live and
// only issues a fresh one when none exists or it has expired.
func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return err
	}

	otp, err := s.otps.FindLatestByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if otp == nil || !s.now().Before(otp.ExpiresAt) {
		code, err := s.issueOTP(ctx, user.ID)
		if err != nil {
			return err
		}
		return s.emailSender.SendVerificationOTP(ctx, user.Email, code)
	}
	return s.emailSender.SendVerificationOTP(ctx, user.Email, otp.Code)
}

// Login requires a correct password and a verified email, in that
// order: a wrong password on an unverified account reports the
// password, not the verification state.
func (s *AuthService) Login(ctx context.Context, input dto.LoginRequest) (*entity.User, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.findUser(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if !s.passwordHash.Verify(input.Password, user.PasswordHash) {
		s.logAuth(ctx, &user.ID, entity.LoginFailed, map[string]any{"email": user.Email})
		return nil, ErrInvalidPassword
	}
	if !user.IsEmailVerified {
		return nil, ErrEmailNotVerified
	}

	token, err := s.tokens.IssueToken(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	user.Token = &token
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logAuth(ctx, &user.ID, entity.LoginSuccess, nil)
	return user, nil
}

// ForgotPassword always issues a fresh code, even when an unexpired one
// is still live for the user.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return err
	}

	code, err := s.issueOTP(ctx, user.ID)
	if err != nil {
		return err
	}
	return s.emailSender.SendPasswordResetOTP(ctx, user.Email, code)
}

// VerifyOTP validates and consumes the user's latest code without
// touching the account. Nothing records that it succeeded;
// ResetPassword trusts the caller to have gone through this first.
func (s *AuthService) VerifyOTP(ctx context.Context, input dto.VerifyOTPRequest) error {
	user, err := s.findUser(ctx, input.Email)
	if err != nil {
		return err
	}

	otp, err := s.validateOTP(ctx, user.ID, input.OTP)
	if err != nil {
		return err
	}
	return s.otps.Delete(ctx, otp.ID)
}

// ResetPassword overwrites the password and reissues a token. It does
// not re-check any OTP; the only gate is the separate VerifyOTP call.
func (s *AuthService) ResetPassword(ctx context.Context, input dto.ResetPasswordRequest) (*entity.User, error) {
	if strings.TrimSpace(input.NewPassword) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.findUser(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.IssueToken(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	user.PasswordHash = s.passwordHash.Hash(input.NewPassword)
	user.Token = &token
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logAuth(ctx, &user.ID, entity.PasswordReset, nil)
	return user, nil
}

// Logout clears the stored token copy. Any token already handed out
// keeps verifying until its embedded expiry.
func (s *AuthService) Logout(ctx context.Context, email string) error {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return err
	}

	user.Token = nil
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logAuth(ctx, &user.ID, entity.LoggedOut, nil)
	return nil
}

func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) findUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) issueOTP(ctx context.Context, userID uuid.UUID) (string, error) {
	code, err := s.codes.Generate()
	if err != nil {
		return "", err
	}
	otp := &entity.OTP{
		UserID:    userID,
		Code:      code,
		ExpiresAt: s.now().Add(s.otpTTL()),
	}
	if err := s.otps.Create(ctx, otp); err != nil {
		return "", err
	}
	return code, nil
}

// validateOTP checks the most recent code for the user. Mismatch is
// reported before expiry, so a wrong code on a stale record still
// comes back as invalid rather than expired.
func (s *AuthService) validateOTP(ctx context.Context, userID uuid.UUID, code string) (*entity.OTP, error) {
	otp, err := s.otps.FindLatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if otp == nil {
		return nil, ErrOTPNotFound
	}
	if otp.Code != code {
		return nil, ErrOTPInvalid
	}
	if !s.now().Before(otp.ExpiresAt) {
		return nil, ErrOTPExpired
	}
	return otp, nil
}

func (s *AuthService) logAuth(ctx context.Context, userID *uuid.UUID, action entity.AuthAction, metadata map[string]any) {
	if s.authLogs == nil {
		return
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return
		}
		payload = datatypes.JSON(bytes)
	}
	_ = s.authLogs.Log(ctx, &entity.AuthLog{
		UserID:   userID,
		Action:   action,
		Metadata: payload,
	})
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) otpTTL() time.Duration {
	if s.config.OTPTTL > 0 {
		return s.config.OTPTTL
	}
	return 10 * time.Minute
}

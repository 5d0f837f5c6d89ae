package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrEmailAlreadyRegistered = errors.New("email already exists")
	ErrUserNotFound           = errors.New("user does not exist")
	ErrOTPNotFound            = errors.New("otp not found")
	ErrOTPInvalid             = errors.New("invalid otp")
	ErrOTPExpired             = errors.New("otp has expired")
	ErrInvalidPassword        = errors.New("invalid password")
	ErrEmailNotVerified       = errors.New("email not verified")
)

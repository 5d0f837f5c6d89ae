package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"plantbook/internal/dto"
	"plantbook/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Service  *service.AuthService
	Validate *validator.Validate
}

func NewAuthHandler(svc *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		Service:  svc,
		Validate: validate,
	}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := h.bind(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err.Error(), nil)
	}
	user, err := h.Service.Signup(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeSuccess(c, http.StatusCreated, "User signed up successfully", dto.UserResponseFromEntity(user))
}

func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req dto.VerifyEmailRequest
	if err := h.bind(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err.Error(), nil)
	}
	user, err := h.Service.VerifyEmail(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "Email verified successfully", dto.UserResponseFromEntity(user))
}

func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req dto.EmailRequest
	if err := h.bind(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err.Error(), nil)
	}
	if err := h.Service.ResendOTP(c.Request().Context(), req.Email); err != nil {
		return writeServiceError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "OTP resent successfully", nil)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := h.bind(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err.Error(), nil)
	}
	user, err := h.Service.Login(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "User logged in successfully", dto.UserResponseFromEntity(user))
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req dto.EmailRequest
	if err := h.bind(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err.Error(), nil)
	}
	if err := h.Service.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return writeServiceError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "OTP sent successfully", nil)
}

func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req dto.VerifyOTPRequest
	if err := h.bind(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err.Error(), nil)
	}
	if err := h.Service.VerifyOTP(c.Request().Context(), req); err != nil {
		return writeServiceError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "OTP verified successfully", nil)
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req dto.ResetPasswordRequest
	if err := h.bind(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err.Error(), nil)
	}
	user, err := h.Service.ResetPassword(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "Password reset successfully", dto.UserResponseFromEntity(user))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	var req dto.EmailRequest
	if err := h.bind(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err.Error(), nil)
	}
	if err := h.Service.Logout(c.Request().Context(), req.Email); err != nil {
		return writeServiceError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "User logged out successfully", nil)
}

func (h *AuthHandler) bind(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	if err := decoder.Decode(target); err != nil {
		return err
	}
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(target)
}

func writeSuccess(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, dto.SuccessEnvelope(status, message, data))
}

func writeError(c echo.Context, status int, message string, detail any) error {
	return c.JSON(status, dto.ErrorEnvelope(status, message, detail))
}

func writeServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrOTPNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		status = http.StatusConflict
	case errors.Is(err, service.ErrOTPInvalid), errors.Is(err, service.ErrOTPExpired):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidPassword), errors.Is(err, service.ErrEmailNotVerified):
		status = http.StatusUnauthorized
	}
	if status == http.StatusInternalServerError {
		// Internal failures include the error detail in the envelope.
		return writeError(c, status, "Something went wrong", err.Error())
	}
	return writeError(c, status, err.Error(), nil)
}

package routes

import (
	"net/http"

	"plantbook/api/handler"
	"plantbook/api/middleware"
	"plantbook/internal/dto"

	"github.com/labstack/echo/v4"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	User           *handler.UserHandler
	AuthMiddleware middleware.AuthMiddleware
}

func NewRouter(e *echo.Echo, authHandler *handler.AuthHandler, userHandler *handler.UserHandler, authMiddleware middleware.AuthMiddleware) *Router {
	return &Router{
		Echo:           e,
		Auth:           authHandler,
		User:           userHandler,
		AuthMiddleware: authMiddleware,
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.SuccessEnvelope(http.StatusOK, "Welcome to Plant Book API", nil))
	})

	auth := e.Group("/api/v1/auth")
	auth.POST("/signup", r.Auth.Signup)
	auth.POST("/verify-email", r.Auth.VerifyEmail)
	auth.POST("/resend-otp", r.Auth.ResendOTP)
	auth.POST("/login", r.Auth.Login)
	auth.POST("/forgot-password", r.Auth.ForgotPassword)
	auth.POST("/verify-otp", r.Auth.VerifyOTP)
	auth.POST("/reset-password", r.Auth.ResetPassword)
	auth.POST("/logout", r.Auth.Logout)

	user := e.Group("/api/v1/user")
	user.GET("/user-details", r.User.UserDetails, r.AuthMiddleware.RequireAuth)
}

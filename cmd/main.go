package main

import (
	"net/http"
	"os"
	"time"

	"plantbook/api/handler"
	apiMiddleware "plantbook/api/middleware"
	"plantbook/api/routes"
	"plantbook/config"
	"plantbook/internal/entity"
	"plantbook/internal/repository"
	"plantbook/internal/service"
	"plantbook/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	db := config.ConnectionDB()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if err := db.AutoMigrate(&entity.User{}, &entity.OTP{}, &entity.AuthLog{}); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}
	passwordSalt := []byte(os.Getenv("PASSWORD_SALT"))
	if len(passwordSalt) == 0 {
		logger.Fatal("PASSWORD_SALT is required")
	}

	jwtManager := utils.JWTManager{
		Secret:   jwtSecret,
		Issuer:   os.Getenv("JWT_ISSUER"),
		TokenTTL: 24 * time.Hour,
	}

	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	authLogRepo := repository.NewAuthLogRepository(db)

	emailSender := service.NewResendEmailSender(
		os.Getenv("RESEND_API_KEY"),
		os.Getenv("EMAIL_FROM"),
	)

	authService := service.NewAuthService(
		userRepo,
		otpRepo,
		authLogRepo,
		emailSender,
		service.HMACPasswordHasher{Salt: passwordSalt},
		service.JWTTokenIssuer{Manager: &jwtManager},
		service.RandomCodeGenerator{},
		service.RealClock{},
		service.AuthConfig{
			OTPTTL: 10 * time.Minute,
		},
	)

	authHandler := handler.NewAuthHandler(authService, validate)
	userHandler := handler.NewUserHandler(authService)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &jwtManager}
	router := routes.NewRouter(app, authHandler, userHandler, authMiddleware)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

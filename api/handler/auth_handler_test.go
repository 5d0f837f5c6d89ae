package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"plantbook/api/handler"
	"plantbook/api/middleware"
	"plantbook/api/routes"
	"plantbook/internal/dto"
	"plantbook/internal/entity"
	"plantbook/internal/repository"
	"plantbook/internal/service"
	"plantbook/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubEmailSender struct {
	lastCode string
}

func (s *stubEmailSender) SendVerificationOTP(ctx context.Context, email string, code string) error {
	s.lastCode = code
	return nil
}

func (s *stubEmailSender) SendPasswordResetOTP(ctx context.Context, email string, code string) error {
	s.lastCode = code
	return nil
}

type fixedCode struct{}

func (fixedCode) Generate() (string, error) {
	return "1234", nil
}

func newTestServer(t *testing.T) (*echo.Echo, *stubEmailSender) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "plantbook.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.OTP{}, &entity.AuthLog{}))

	jwtManager := &utils.JWTManager{
		Secret:   []byte("test-secret"),
		Issuer:   "plantbook-test",
		TokenTTL: time.Hour,
	}
	mail := &stubEmailSender{}

	svc := service.NewAuthService(
		repository.NewUserRepository(db),
		repository.NewOTPRepository(db),
		repository.NewAuthLogRepository(db),
		mail,
		service.HMACPasswordHasher{Salt: []byte("shared-salt")},
		service.JWTTokenIssuer{Manager: jwtManager},
		fixedCode{},
		service.RealClock{},
		service.AuthConfig{OTPTTL: 10 * time.Minute},
	)

	e := echo.New()
	router := routes.NewRouter(
		e,
		handler.NewAuthHandler(svc, validator.New()),
		handler.NewUserHandler(svc),
		middleware.AuthMiddleware{JWT: jwtManager},
	)
	router.RegisterRoutes()
	return e, mail
}

func doJSON(t *testing.T, e *echo.Echo, method string, path string, body string, header http.Header) (int, dto.Envelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var envelope dto.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec.Code, envelope
}

func TestSignupEndpoint(t *testing.T) {
	e, mail := newTestServer(t)

	status, envelope := doJSON(t, e, http.MethodPost, "/api/v1/auth/signup",
		`{"name":"Test User","email":"A@X.com","password":"password1"}`, nil)

	assert.Equal(t, http.StatusCreated, status)
	assert.True(t, envelope.Success)
	assert.Equal(t, http.StatusCreated, envelope.Code)
	assert.Equal(t, "Created", envelope.Status)
	assert.Equal(t, "User signed up successfully", envelope.Message)
	assert.Equal(t, "1234", mail.lastCode)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", data["email"])
	assert.Equal(t, false, data["isEmailVerified"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "passwordHash")
}

func TestSignupEndpointConflict(t *testing.T) {
	e, _ := newTestServer(t)

	payload := `{"name":"Test User","email":"a@x.com","password":"password1"}`
	status, _ := doJSON(t, e, http.MethodPost, "/api/v1/auth/signup", payload, nil)
	require.Equal(t, http.StatusCreated, status)

	status, envelope := doJSON(t, e, http.MethodPost, "/api/v1/auth/signup", payload, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, envelope.Success)
	assert.Equal(t, http.StatusConflict, envelope.Code)
	assert.NotNil(t, envelope.Error)
}

func TestSignupEndpointValidation(t *testing.T) {
	e, _ := newTestServer(t)

	status, envelope := doJSON(t, e, http.MethodPost, "/api/v1/auth/signup",
		`{"name":"Test User","email":"not-an-email","password":"password1"}`, nil)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, envelope.Success)
}

func TestLoginEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	_, _ = doJSON(t, e, http.MethodPost, "/api/v1/auth/signup",
		`{"name":"Test User","email":"a@x.com","password":"password1"}`, nil)

	status, envelope := doJSON(t, e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@x.com","password":"wrongpass"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, envelope.Success)

	status, _ = doJSON(t, e, http.MethodPost, "/api/v1/auth/verify-email",
		`{"email":"a@x.com","otp":"1234"}`, nil)
	require.Equal(t, http.StatusOK, status)

	status, envelope = doJSON(t, e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@x.com","password":"password1"}`, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, token)
}

func TestVerifyEmailEndpointNotFoundAfterConsume(t *testing.T) {
	e, _ := newTestServer(t)

	_, _ = doJSON(t, e, http.MethodPost, "/api/v1/auth/signup",
		`{"name":"Test User","email":"a@x.com","password":"password1"}`, nil)

	status, _ := doJSON(t, e, http.MethodPost, "/api/v1/auth/verify-email",
		`{"email":"a@x.com","otp":"1234"}`, nil)
	require.Equal(t, http.StatusOK, status)

	status, envelope := doJSON(t, e, http.MethodPost, "/api/v1/auth/verify-email",
		`{"email":"a@x.com","otp":"1234"}`, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "otp not found", envelope.Message)
}

func TestUserDetailsEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	_, _ = doJSON(t, e, http.MethodPost, "/api/v1/auth/signup",
		`{"name":"Test User","email":"a@x.com","password":"password1"}`, nil)
	status, envelope := doJSON(t, e, http.MethodPost, "/api/v1/auth/verify-email",
		`{"email":"a@x.com","otp":"1234"}`, nil)
	require.Equal(t, http.StatusOK, status)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)

	status, _ = doJSON(t, e, http.MethodGet, "/api/v1/user/user-details", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	status, envelope = doJSON(t, e, http.MethodGet, "/api/v1/user/user-details", "", header)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, envelope.Success)

	data, ok = envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", data["email"])
}

func TestWelcomeRoute(t *testing.T) {
	e, _ := newTestServer(t)

	status, envelope := doJSON(t, e, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Welcome to Plant Book API", envelope.Message)
}

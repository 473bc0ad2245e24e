package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lostandfound/internal/model"
	"lostandfound/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	signupErr error
	loginErr  error
	sendErr   error
	verifyErr error
}

func (s *stubAuthService) Signup(_ context.Context, req model.SignupRequest) (*model.User, string, error) {
	if s.signupErr != nil {
		return nil, "", s.signupErr
	}
	return &model.User{Email: req.Email}, "signup-token", nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (*model.User, string, error) {
	if s.loginErr != nil {
		return nil, "", s.loginErr
	}
	return &model.User{Email: email}, "login-token", nil
}

func (s *stubAuthService) SendVerificationCode(_ context.Context, _ string) error {
	return s.sendErr
}

func (s *stubAuthService) VerifyPhoneNumber(_ context.Context, _, _ string) (string, error) {
	if s.verifyErr != nil {
		return "", s.verifyErr
	}
	return "verify-token", nil
}

func setupAuthRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidations()
	router := gin.New()
	api := router.Group("/api")
	NewAuthHandler(svc).RegisterAuthRoutes(api)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	router := setupAuthRouter(&stubAuthService{})

	w := postJSON(router, "/api/auth/signup",
		`{"email":"a@x.com","password":"secret1","name":"Ann","phoneNumber":"+15551234567"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User created successfully")
	assert.Contains(t, w.Body.String(), "signup-token")
}

func TestAuthHandler_Signup_Validation(t *testing.T) {
	router := setupAuthRouter(&stubAuthService{})

	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad email", `{"email":"nope","password":"secret1","name":"Ann","phoneNumber":"+15551234567"}`, "email"},
		{"short password", `{"email":"a@x.com","password":"abc","name":"Ann","phoneNumber":"+15551234567"}`, "password"},
		{"missing name", `{"email":"a@x.com","password":"secret1","phoneNumber":"+15551234567"}`, "name"},
		{"bad phone", `{"email":"a@x.com","password":"secret1","name":"Ann","phoneNumber":"12345"}`, "phoneNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/auth/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	router := setupAuthRouter(&stubAuthService{signupErr: service.ErrEmailTaken})

	w := postJSON(router, "/api/auth/signup",
		`{"email":"a@x.com","password":"secret1","name":"Ann","phoneNumber":"+15551234567"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")
}

func TestAuthHandler_Login(t *testing.T) {
	router := setupAuthRouter(&stubAuthService{})

	w := postJSON(router, "/api/auth/login", `{"email":"a@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "login-token")
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	router := setupAuthRouter(&stubAuthService{loginErr: service.ErrInvalidCredentials})

	w := postJSON(router, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestAuthHandler_Verify_BadCode(t *testing.T) {
	router := setupAuthRouter(&stubAuthService{verifyErr: service.ErrInvalidCode})

	w := postJSON(router, "/api/auth/verify", `{"phoneNumber":"+15551234567","code":"000000"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid verification code")
}

func TestAuthHandler_Verify(t *testing.T) {
	router := setupAuthRouter(&stubAuthService{})

	w := postJSON(router, "/api/auth/verify", `{"phoneNumber":"+15551234567","code":"123456"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "verify-token")
}

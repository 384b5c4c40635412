package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	emails map[string]bool
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{emails: map[string]bool{}}
}

func (s *fakeAuthService) Register(_ context.Context, req domain.RegisterRequest) (string, error) {
	if s.emails[req.Email] {
		return "", domain.ErrEmailExists
	}
	switch strings.ToLower(req.Role) {
	case domain.RoleFoodLover:
		s.emails[req.Email] = true
		return domain.MessageSuccessRegisterFoodLover, nil
	case domain.RoleChef:
		if req.Experience == nil {
			return "", domain.ErrExperienceRequired
		}
		s.emails[req.Email] = true
		return domain.MessageSuccessRegisterChef, nil
	default:
		return "", domain.ErrInvalidRole
	}
}

func (s *fakeAuthService) Login(_ context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if !s.emails[req.Email] {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}
	return domain.LoginResponse{Token: "token", Role: domain.RoleFoodLover, UserID: 1, Email: req.Email}, nil
}

func (s *fakeAuthService) Profile(_ context.Context, userID uint, role string) (domain.ProfileResponse, error) {
	return domain.ProfileResponse{UserID: userID, Role: role, Name: "Lina"}, nil
}

type staticJWTService struct{}

func (staticJWTService) GenerateToken(uint, string) string { return "token" }

func (staticJWTService) ValidateToken(string) (*jwtlib.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (staticJWTService) GetUserByToken(token string) (uint, string, error) {
	if token != "token" {
		return 0, "", domain.ErrTokenInvalid
	}
	return 1, domain.RoleFoodLover, nil
}

func newAuthTestApp(svc *fakeAuthService) *fiber.App {
	app := fiber.New()
	handler := NewAuthHandler(svc, validator.New())
	mw := middleware.NewMiddleware()

	api := app.Group("/api/auth")
	api.Post("/register", handler.Register)
	api.Post("/login", handler.Login)
	api.Get("/profile", mw.AuthMiddleware(staticJWTService{}), handler.Profile)
	api.Get("/test", handler.Test)
	return app
}

func registerForm(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("writing field %s: %v", key, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func foodLoverFields() map[string]string {
	return map[string]string{
		"role":           "foodlover",
		"name":           "Lina",
		"email":          "lina@example.com",
		"password":       "secret123",
		"gender":         "female",
		"contact_number": "0812345678",
		"address":        "Jakarta",
	}
}

func TestRegisterFoodLoverRoute(t *testing.T) {
	app := newAuthTestApp(newFakeAuthService())

	resp, err := app.Test(registerForm(t, foodLoverFields()))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	res := decodeResponse(t, resp.Body)
	assert.True(t, res.Status)
	assert.Equal(t, domain.MessageSuccessRegisterFoodLover, res.Message)
}

func TestRegisterChefWithoutExperience(t *testing.T) {
	app := newAuthTestApp(newFakeAuthService())

	fields := foodLoverFields()
	fields["role"] = "chef"

	resp, err := app.Test(registerForm(t, fields))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	res := decodeResponse(t, resp.Body)
	assert.Equal(t, "Experience is required for chefs", res.Error)
}

func TestRegisterDuplicateEmailRoute(t *testing.T) {
	app := newAuthTestApp(newFakeAuthService())

	resp, err := app.Test(registerForm(t, foodLoverFields()))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(registerForm(t, foodLoverFields()))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	res := decodeResponse(t, resp.Body)
	assert.Equal(t, "Email already exists", res.Error)
}

func TestRegisterShortPassword(t *testing.T) {
	app := newAuthTestApp(newFakeAuthService())

	fields := foodLoverFields()
	fields["password"] = "abc"

	resp, err := app.Test(registerForm(t, fields))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	res := decodeResponse(t, resp.Body)
	assert.Equal(t, "Validation failed", res.Message)
}

func TestLoginUnknownEmailRoute(t *testing.T) {
	app := newAuthTestApp(newFakeAuthService())

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email": "ghost@example.com", "password": "secret123",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	res := decodeResponse(t, resp.Body)
	assert.Equal(t, "Invalid email or password", res.Message)
	assert.Equal(t, "Invalid email or password", res.Error)
}

func TestProfileRequiresToken(t *testing.T) {
	app := newAuthTestApp(newFakeAuthService())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProfileRejectsBadToken(t *testing.T) {
	app := newAuthTestApp(newFakeAuthService())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProfileWithToken(t *testing.T) {
	app := newAuthTestApp(newFakeAuthService())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	res := decodeResponse(t, resp.Body)
	assert.Equal(t, domain.MessageSuccessGetProfile, res.Message)
}

func TestAuthTestRoute(t *testing.T) {
	app := newAuthTestApp(newFakeAuthService())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/test", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

package presenters

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name     string `validate:"required,max=5"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestFormatValidationErrors(t *testing.T) {
	err := validator.New().Struct(sampleRequest{
		Name:     "toolongname",
		Email:    "not-an-email",
		Password: "abc",
	})

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		t.Fatalf("expected validator.ValidationErrors, got %T", err)
	}

	got := formatValidationErrors(vErrs)
	assert.Equal(t, []string{
		"Name cannot exceed 5 characters",
		"Email must be a valid email address",
		"Password must be at least 6",
	}, got)
}

func TestErrorResponseExpandsValidationErrors(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		err := validator.New().Struct(sampleRequest{})
		return ErrorResponse(c, fiber.StatusBadRequest, "ignored", err)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var res Response
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.False(t, res.Status)
	assert.Equal(t, "Validation failed", res.Message)
	assert.Empty(t, res.Error)
	assert.Len(t, res.Errors, 3)
}

func TestErrorResponsePlainError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusNotFound, "resource not found", errors.New("recipe not found"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var res Response
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "resource not found", res.Message)
	assert.Equal(t, "recipe not found", res.Error)
	assert.Empty(t, res.Errors)
}

func TestSuccessResponseEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return SuccessResponse(c, fiber.Map{"id": 1}, fiber.StatusOK, "ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res Response
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Status)
	assert.Equal(t, "ok", res.Message)
	assert.NotNil(t, res.Data)
}

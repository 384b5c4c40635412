package handlers

import (
	"errors"
	"strconv"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Profile(c *fiber.Ctx) error
		Test(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
		validator   *validator.Validate
	}
)

func NewAuthHandler(authService auth.AuthService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		authService: authService,
		validator:   validator,
	}
}

// Register consumes multipart form data; the profile image (chef only) rides
// along under the "image" field.
func (h *authHandler) Register(c *fiber.Ctx) error {
	req := domain.RegisterRequest{
		Role:          c.FormValue("role"),
		Name:          c.FormValue("name"),
		Email:         c.FormValue("email"),
		Password:      c.FormValue("password"),
		Gender:        c.FormValue("gender"),
		ContactNumber: c.FormValue("contact_number"),
		Address:       c.FormValue("address"),
	}

	if raw := c.FormValue("experience"); raw != "" {
		experience, err := strconv.Atoi(raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
		}
		req.Experience = &experience
	}

	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	message, err := h.authService.Register(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, message)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	res, err := h.authService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

// Profile reads the identity the auth middleware recovered from the token.
func (h *authHandler) Profile(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	role, okRole := c.Locals("role").(string)
	if !ok || !okRole {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthenticated, domain.ErrTokenNotFound)
	}

	res, err := h.authService.Profile(c.Context(), userID, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetProfile, err)
		}
		if errors.Is(err, domain.ErrInvalidUserRole) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProfile, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProfile, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *authHandler) Test(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "API is working"})
}

package handlers

import (
	"errors"
	"strconv"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/pkg/admin"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetAdmins(c *fiber.Ctx) error
		GetAdmin(c *fiber.Ctx) error
		CreateAdmin(c *fiber.Ctx) error
		UpdateAdmin(c *fiber.Ctx) error
		DeleteAdmin(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		validator    *validator.Validate
	}
)

func NewAdminHandler(adminService admin.AdminService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		validator:    validator,
	}
}

func (h *adminHandler) GetAdmins(c *fiber.Ctx) error {
	admins, err := h.adminService.GetAdmins(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAdmins, err)
	}
	return presenters.SuccessResponse(c, admins, fiber.StatusOK, domain.MessageSuccessGetAdmins)
}

func (h *adminHandler) GetAdmin(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAdmins, err)
	}

	res, err := h.adminService.GetAdmin(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAdmins, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAdmin)
}

func (h *adminHandler) CreateAdmin(c *fiber.Ctx) error {
	req := new(domain.AdminRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	res, err := h.adminService.CreateAdmin(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateAdmin, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateAdmin)
}

func (h *adminHandler) UpdateAdmin(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAdmin, err)
	}

	req := new(domain.AdminRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if req.ID != id {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageIDMismatch, domain.ErrIDMismatch)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	if err := h.adminService.UpdateAdmin(c.Context(), id, *req); err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateAdmin, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *adminHandler) DeleteAdmin(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteAdmin, err)
	}

	if err := h.adminService.DeleteAdmin(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteAdmin, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseID reads the numeric {id} path segment.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return uint(id), nil
}

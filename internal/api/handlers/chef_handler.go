package handlers

import (
	"errors"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/pkg/chef"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ChefHandler interface {
		GetChefs(c *fiber.Ctx) error
		GetChef(c *fiber.Ctx) error
		CreateChef(c *fiber.Ctx) error
		UpdateChef(c *fiber.Ctx) error
		DeleteChef(c *fiber.Ctx) error
	}

	chefHandler struct {
		chefService chef.ChefService
		validator   *validator.Validate
	}
)

func NewChefHandler(chefService chef.ChefService, validator *validator.Validate) ChefHandler {
	return &chefHandler{
		chefService: chefService,
		validator:   validator,
	}
}

func (h *chefHandler) GetChefs(c *fiber.Ctx) error {
	chefs, err := h.chefService.GetChefs(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetChefs, err)
	}
	return presenters.SuccessResponse(c, chefs, fiber.StatusOK, domain.MessageSuccessGetChefs)
}

func (h *chefHandler) GetChef(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChefs, err)
	}

	res, err := h.chefService.GetChef(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrChefNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetChefs, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChef)
}

func (h *chefHandler) CreateChef(c *fiber.Ctx) error {
	req := new(domain.ChefRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	res, err := h.chefService.CreateChef(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateChef, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateChef)
}

func (h *chefHandler) UpdateChef(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateChef, err)
	}

	req := new(domain.ChefRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if req.ID != id {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageIDMismatch, domain.ErrIDMismatch)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	if err := h.chefService.UpdateChef(c.Context(), id, *req); err != nil {
		if errors.Is(err, domain.ErrChefNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateChef, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *chefHandler) DeleteChef(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteChef, err)
	}

	if err := h.chefService.DeleteChef(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrChefNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteChef, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package handlers

import (
	"errors"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/pkg/foodlover"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodLoverHandler interface {
		GetFoodLovers(c *fiber.Ctx) error
		GetFoodLover(c *fiber.Ctx) error
		CreateFoodLover(c *fiber.Ctx) error
		UpdateFoodLover(c *fiber.Ctx) error
		DeleteFoodLover(c *fiber.Ctx) error
	}

	foodLoverHandler struct {
		foodLoverService foodlover.FoodLoverService
		validator        *validator.Validate
	}
)

func NewFoodLoverHandler(foodLoverService foodlover.FoodLoverService, validator *validator.Validate) FoodLoverHandler {
	return &foodLoverHandler{
		foodLoverService: foodLoverService,
		validator:        validator,
	}
}

func (h *foodLoverHandler) GetFoodLovers(c *fiber.Ctx) error {
	foodLovers, err := h.foodLoverService.GetFoodLovers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodLovers, err)
	}
	return presenters.SuccessResponse(c, foodLovers, fiber.StatusOK, domain.MessageSuccessGetFoodLovers)
}

func (h *foodLoverHandler) GetFoodLover(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodLovers, err)
	}

	res, err := h.foodLoverService.GetFoodLover(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrFoodLoverNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodLovers, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodLover)
}

func (h *foodLoverHandler) CreateFoodLover(c *fiber.Ctx) error {
	req := new(domain.FoodLoverRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	res, err := h.foodLoverService.CreateFoodLover(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateFoodLover, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFoodLover)
}

func (h *foodLoverHandler) UpdateFoodLover(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodLover, err)
	}

	req := new(domain.FoodLoverRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if req.ID != id {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageIDMismatch, domain.ErrIDMismatch)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	if err := h.foodLoverService.UpdateFoodLover(c.Context(), id, *req); err != nil {
		if errors.Is(err, domain.ErrFoodLoverNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateFoodLover, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *foodLoverHandler) DeleteFoodLover(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodLover, err)
	}

	if err := h.foodLoverService.DeleteFoodLover(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrFoodLoverNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteFoodLover, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

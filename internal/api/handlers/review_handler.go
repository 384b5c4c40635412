package handlers

import (
	"errors"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/pkg/review"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewHandler interface {
		GetReviews(c *fiber.Ctx) error
		GetReview(c *fiber.Ctx) error
		CreateReview(c *fiber.Ctx) error
		DeleteReview(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *reviewHandler) GetReviews(c *fiber.Ctx) error {
	reviews, err := h.reviewService.GetReviews(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReviews, err)
	}
	return presenters.SuccessResponse(c, reviews, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) GetReview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReviews, err)
	}

	res, err := h.reviewService.GetReview(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReviews, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReview)
}

func (h *reviewHandler) CreateReview(c *fiber.Ctx) error {
	req := new(domain.ReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	res, err := h.reviewService.CreateReview(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateReview, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReview)
}

func (h *reviewHandler) DeleteReview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReview, err)
	}

	if err := h.reviewService.DeleteReview(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteReview, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

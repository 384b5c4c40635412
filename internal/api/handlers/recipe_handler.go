package handlers

import (
	"errors"
	"mime/multipart"
	"strconv"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		GetChefRecipes(c *fiber.Ctx) error
		CreateChefRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		HealthCheck(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	res, err := h.recipeService.GetRecipe(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

func (h *recipeHandler) GetChefRecipes(c *fiber.Ctx) error {
	chefID, err := strconv.ParseUint(c.Params("chefId"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, domain.ErrInvalidID)
	}

	res, err := h.recipeService.GetChefRecipes(c.Context(), uint(chefID))
	if err != nil {
		if errors.Is(err, domain.ErrChefNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

// CreateChefRecipe consumes multipart form data: text fields plus an optional
// image file under any field name (clients are loose about the field name).
func (h *recipeHandler) CreateChefRecipe(c *fiber.Ctx) error {
	required := []string{
		"title", "description", "ingredients", "instructions",
		"cooking_time", "servings", "difficulty_level", "cuisine_type", "chef_id",
	}
	for _, field := range required {
		if c.FormValue(field) == "" {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageAllFieldsRequired, domain.ErrAllFieldsRequired)
		}
	}

	cookingTime, err := strconv.Atoi(c.FormValue("cooking_time"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}
	servings, err := strconv.Atoi(c.FormValue("servings"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}
	chefID, err := strconv.ParseUint(c.FormValue("chef_id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	req := domain.CreateRecipeRequest{
		Title:           c.FormValue("title"),
		Description:     c.FormValue("description"),
		Ingredients:     c.FormValue("ingredients"),
		Instructions:    c.FormValue("instructions"),
		CookingTime:     cookingTime,
		Servings:        servings,
		DifficultyLevel: c.FormValue("difficulty_level"),
		CuisineType:     c.FormValue("cuisine_type"),
		ChefID:          uint(chefID),
		Image:           formImage(c),
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFileType) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidFileType, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	req := new(domain.RecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if req.ID != id {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageIDMismatch, domain.ErrIDMismatch)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	if err := h.recipeService.UpdateRecipe(c.Context(), id, *req); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateRecipe, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteRecipe, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *recipeHandler) HealthCheck(c *fiber.Ctx) error {
	res, err := h.recipeService.HealthCheck(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedHealthCheck, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessHealthCheck)
}

// formImage returns the first uploaded file of the request, if any.
func formImage(c *fiber.Ctx) *multipart.FileHeader {
	if file, err := c.FormFile("image"); err == nil {
		return file
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	for _, files := range form.File {
		if len(files) > 0 {
			return files[0]
		}
	}
	return nil
}

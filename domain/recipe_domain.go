package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes   = "success get recipes"
	MessageSuccessGetRecipe    = "success get recipe detail"
	MessageSuccessCreateRecipe = "recipe created successfully"
	MessageSuccessHealthCheck  = "Database connection successful"

	MessageFailedGetRecipes   = "An error occurred while fetching recipes"
	MessageFailedCreateRecipe = "An error occurred while creating the recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedHealthCheck  = "Health check failed"

	MessageAllFieldsRequired = "All required fields must be provided."
	MessageInvalidFileType   = "Invalid file type. Only JPG, JPEG, PNG, and GIF files are allowed."

	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrAllFieldsRequired = errors.New("All required fields must be provided.")
	ErrInvalidFileType   = errors.New("Invalid file type. Only JPG, JPEG, PNG, and GIF files are allowed.")
)

type (
	// CreateRecipeRequest carries the multipart form fields of POST /api/recipe/chef.
	// Numeric fields arrive as strings and are parsed by the handler before the
	// service sees them.
	CreateRecipeRequest struct {
		Title           string `validate:"required,max=100"`
		Description     string `validate:"required"`
		Ingredients     string `validate:"required"`
		Instructions    string `validate:"required"`
		CookingTime     int    `validate:"min=0"`
		Servings        int    `validate:"min=0"`
		DifficultyLevel string `validate:"required,max=20"`
		CuisineType     string `validate:"required,max=50"`
		ChefID          uint   `validate:"required"`

		Image *multipart.FileHeader `validate:"-"`
	}

	// RecipeRequest is the JSON body of PUT /api/recipe/{id} (full replace).
	RecipeRequest struct {
		ID              uint    `json:"recipe_id"`
		Title           string  `json:"title" validate:"required,max=100"`
		Description     string  `json:"description" validate:"required"`
		Ingredients     string  `json:"ingredients" validate:"required"`
		Instructions    string  `json:"instructions" validate:"required"`
		Image           *string `json:"image,omitempty"`
		Rating          float64 `json:"rating"`
		ChefID          uint    `json:"chef_id" validate:"required"`
		FoodLoverID     *uint   `json:"foodlover_id,omitempty"`
		DifficultyLevel string  `json:"difficulty_level" validate:"required,max=20"`
		CuisineType     string  `json:"cuisine_type" validate:"required,max=50"`
		CookingTime     int     `json:"cooking_time" validate:"min=0"`
		Servings        int     `json:"servings" validate:"min=0"`
	}

	RecipeChefSummary struct {
		ChefID uint   `json:"chef_id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
	}

	RecipeReviewSummary struct {
		ReviewID  uint      `json:"review_id"`
		Rating    float64   `json:"rating"`
		Comment   string    `json:"comment"`
		CreatedAt time.Time `json:"created_at"`
	}

	// RecipeResponse is the joined row shape of recipe listings; Image carries
	// the /uploads/-prefixed path when an image exists.
	RecipeResponse struct {
		RecipeID        uint                  `json:"recipe_id"`
		Title           string                `json:"title"`
		Description     string                `json:"description"`
		Ingredients     string                `json:"ingredients"`
		Instructions    string                `json:"instructions"`
		Image           *string               `json:"image"`
		Rating          float64               `json:"rating"`
		DifficultyLevel string                `json:"difficulty_level"`
		CuisineType     string                `json:"cuisine_type"`
		CookingTime     int                   `json:"cooking_time"`
		Servings        int                   `json:"servings"`
		CreatedAt       time.Time             `json:"created_at"`
		Chef            RecipeChefSummary     `json:"chef"`
		Reviews         []RecipeReviewSummary `json:"reviews"`
	}

	RecipeHealthResponse struct {
		Message     string `json:"message"`
		RecipeCount int64  `json:"recipeCount"`
	}
)

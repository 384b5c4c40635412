package domain

import (
	"errors"
)

var (
	MessageSuccessGetReviews   = "reviews retrieved successfully"
	MessageSuccessGetReview    = "review retrieved successfully"
	MessageSuccessCreateReview = "review created successfully"

	MessageFailedGetReviews   = "failed to retrieve reviews"
	MessageFailedCreateReview = "failed to create review"
	MessageFailedDeleteReview = "failed to delete review"

	ErrReviewNotFound = errors.New("review not found")
)

type (
	ReviewRequest struct {
		RecipeID    uint    `json:"recipe_id" validate:"required"`
		FoodLoverID uint    `json:"foodlover_id" validate:"required"`
		Rating      float64 `json:"rating" validate:"required,min=0,max=5"`
		Comment     string  `json:"comment" validate:"required"`
	}
)

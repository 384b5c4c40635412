package domain

import (
	"errors"
)

var (
	MessageSuccessGetFoodLovers   = "food lovers retrieved successfully"
	MessageSuccessGetFoodLover    = "food lover retrieved successfully"
	MessageSuccessCreateFoodLover = "food lover created successfully"

	MessageFailedGetFoodLovers   = "failed to retrieve food lovers"
	MessageFailedCreateFoodLover = "failed to create food lover"
	MessageFailedUpdateFoodLover = "failed to update food lover"
	MessageFailedDeleteFoodLover = "failed to delete food lover"

	ErrFoodLoverNotFound = errors.New("food lover not found")
)

type (
	FoodLoverRequest struct {
		ID            uint   `json:"foodlover_id"`
		Name          string `json:"name" validate:"required,max=100"`
		Email         string `json:"email" validate:"required,email,max=100"`
		Password      string `json:"password" validate:"required"`
		Gender        string `json:"gender" validate:"required,max=10"`
		ContactNumber string `json:"contact_number" validate:"required,max=15"`
		Address       string `json:"address" validate:"required,max=200"`
	}
)

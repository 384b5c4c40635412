package domain

import (
	"errors"
)

var (
	MessageSuccessGetChefs   = "chefs retrieved successfully"
	MessageSuccessGetChef    = "chef retrieved successfully"
	MessageSuccessCreateChef = "chef created successfully"

	MessageFailedGetChefs   = "failed to retrieve chefs"
	MessageFailedCreateChef = "failed to create chef"
	MessageFailedUpdateChef = "failed to update chef"
	MessageFailedDeleteChef = "failed to delete chef"

	ErrChefNotFound = errors.New("chef not found")
)

type (
	ChefRequest struct {
		ID            uint    `json:"chef_id"`
		Name          string  `json:"name" validate:"required,max=100"`
		Email         string  `json:"email" validate:"required,email,max=100"`
		Password      string  `json:"password" validate:"required"`
		Gender        string  `json:"gender" validate:"required,max=10"`
		ContactNumber string  `json:"contact_number" validate:"required,max=15"`
		Address       string  `json:"address" validate:"required"`
		Experience    *int    `json:"experience" validate:"required"`
		Image         *string `json:"image,omitempty"`
	}
)

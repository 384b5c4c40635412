package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRegisterFoodLover = "FoodLover registered successfully"
	MessageSuccessRegisterChef      = "Chef registered successfully"
	MessageSuccessLogin             = "login successful"
	MessageSuccessGetProfile        = "profile retrieved successfully"

	MessageFailedRegister   = "Registration failed"
	MessageFailedLogin      = "Invalid email or password"
	MessageFailedGetProfile = "Error fetching profile"
	MessageUnauthenticated  = "User not authenticated"

	ErrEmailExists        = errors.New("Email already exists")
	ErrExperienceRequired = errors.New("Experience is required for chefs")
	ErrInvalidRole        = errors.New("Invalid role")
	ErrInvalidUserRole    = errors.New("Invalid user role")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUserNotFound       = errors.New("User not found")
)

type (
	RegisterRequest struct {
		Role          string `form:"role" validate:"required"`
		Name          string `form:"name" validate:"required,max=100"`
		Email         string `form:"email" validate:"required,email,max=100"`
		Password      string `form:"password" validate:"required,min=6"`
		Gender        string `form:"gender" validate:"required,max=10"`
		ContactNumber string `form:"contact_number" validate:"required,max=15"`
		Address       string `form:"address" validate:"required"`
		Experience    *int   `form:"experience"`

		Image *multipart.FileHeader `form:"-" validate:"-"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token  string  `json:"token"`
		Role   string  `json:"role"`
		UserID uint    `json:"userId"`
		Name   string  `json:"name"`
		Email  string  `json:"email"`
		Image  *string `json:"image,omitempty"`
	}

	ProfileResponse struct {
		Name          string  `json:"name"`
		Email         string  `json:"email"`
		Gender        string  `json:"gender"`
		ContactNumber string  `json:"contactNumber"`
		Address       string  `json:"address"`
		Image         *string `json:"image,omitempty"`
		Experience    *int    `json:"experience,omitempty"`
		Role          string  `json:"role"`
		UserID        uint    `json:"userId"`
	}
)

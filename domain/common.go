package domain

import (
	"errors"
)

const (
	RoleFoodLover = "foodlover"
	RoleChef      = "chef"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedValidation     = "Validation failed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageNotFound             = "resource not found"
	MessageIDMismatch           = "path id and body id do not match"

	ErrInvalidID     = errors.New("invalid id")
	ErrIDMismatch    = errors.New("path id and body id do not match")
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
)

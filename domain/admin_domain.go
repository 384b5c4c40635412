package domain

import (
	"errors"
)

var (
	MessageSuccessGetAdmins   = "admins retrieved successfully"
	MessageSuccessGetAdmin    = "admin retrieved successfully"
	MessageSuccessCreateAdmin = "admin created successfully"

	MessageFailedGetAdmins   = "failed to retrieve admins"
	MessageFailedCreateAdmin = "failed to create admin"
	MessageFailedUpdateAdmin = "failed to update admin"
	MessageFailedDeleteAdmin = "failed to delete admin"

	ErrAdminNotFound = errors.New("admin not found")
)

type (
	AdminRequest struct {
		ID       uint   `json:"admin_id"`
		Name     string `json:"name" validate:"required,max=100"`
		Email    string `json:"email" validate:"required,email,max=100"`
		Password string `json:"password" validate:"required"`
	}
)

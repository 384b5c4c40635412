package presenters

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool     `json:"status"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes the error envelope. Validator errors expand into a
// field-level message list so clients see every failing field at once.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()

		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			res.Message = "Validation failed"
			res.Error = ""
			res.Errors = formatValidationErrors(vErrs)
		}
	}
	return c.Status(code).JSON(res)
}

func formatValidationErrors(errs validator.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			out = append(out, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		case "max":
			out = append(out, fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param()))
		case "min":
			out = append(out, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		default:
			out = append(out, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return out
}

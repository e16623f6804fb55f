package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Success response without custom code (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success response with custom code (e.g. 201 for created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Simple error response
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Error response with multiple field errors
func ErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  details,
	})
}

// ✅ Validation errors (validator.v10) as a field→tag map
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errorsMap)
}

// FromAppError maps the service error taxonomy onto HTTP responses.
func FromAppError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicate):
		return Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidArgument):
		return Error(c, fiber.StatusBadRequest, err.Error())
	default:
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return ValidationError(c, err)
		}
		return Error(c, fiber.StatusInternalServerError, fallback)
	}
}

package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RespondWithError sends a JSON error response.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// FormatValidationErrors flattens validator/v10 errors into readable strings.
func FormatValidationErrors(err error) []string {
	var errors []string
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			element := fmt.Sprintf("Field '%s' failed on the '%s' tag", err.Field(), err.Tag())
			if err.Param() != "" {
				element = fmt.Sprintf("%s (value: %s)", element, err.Param())
			}
			errors = append(errors, element)
		}
	}
	return errors
}

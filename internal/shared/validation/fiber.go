package validation

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var ErrInvalidBody = errors.New("Invalid request body")

// Bind parses the request body into out and validates it.
func Bind(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return ErrInvalidBody
	}
	return Struct(out)
}

// BadRequest writes a 400 response for a Bind or validation error.
func BadRequest(c *fiber.Ctx, err error) error {
	var verr *Error
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  verr.Error(),
			"fields": verr.Fields,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

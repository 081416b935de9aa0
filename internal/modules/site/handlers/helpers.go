package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/soundzyworld/swg-site-be/internal/core/audit"
	"github.com/soundzyworld/swg-site-be/internal/core/auth"
	"github.com/soundzyworld/swg-site-be/internal/core/upload"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
)

// Auditor records admin changes; satisfied by audit.Service
type Auditor interface {
	LogChange(ctx context.Context, actor audit.Actor, action, entity, entityID string, oldValue, newValue interface{})
}

type noopAuditor struct{}

func (noopAuditor) LogChange(context.Context, audit.Actor, string, string, string, interface{}, interface{}) {
}

func auditorOrNoop(a Auditor) Auditor {
	if a == nil {
		return noopAuditor{}
	}
	return a
}

func actorFrom(c *fiber.Ctx) audit.Actor {
	return audit.Actor{
		ID:        auth.UserID(c),
		Email:     auth.Email(c),
		IPAddress: c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}
}

func parseID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
}

func noFile(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
}

// statusFor maps service errors onto HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	}
	if status := upload.StatusFor(err); status != fiber.StatusInternalServerError {
		return status
	}
	return fiber.StatusInternalServerError
}

// fail writes the error response; 5xx details are logged and replaced by msg
func fail(c *fiber.Ctx, err error, msg string) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("❌ " + msg)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}
	return c.Status(status).JSON(fiber.Map{"error": cleanMessage(err)})
}

// cleanMessage drops the sentinel prefix, "invalid input: name is required" -> "name is required"
func cleanMessage(err error) string {
	msg := err.Error()
	for _, prefix := range []string{services.ErrInvalidInput.Error() + ": ", services.ErrConflict.Error() + ": ", services.ErrForbidden.Error() + ": "} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	return msg
}

package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db          Pinger
	llmProvider string
	storage     string
}

func NewHealthHandler(db Pinger, llmProvider, storage string) *HealthHandler {
	return &HealthHandler{db: db, llmProvider: llmProvider, storage: storage}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API and database are alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	status, code, database := "ok", fiber.StatusOK, "up"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			status, code, database = "degraded", fiber.StatusServiceUnavailable, "down"
		}
	}
	return c.Status(code).JSON(fiber.Map{
		"status":   status,
		"service":  "swg-site-api",
		"database": database,
		"llm":      h.llmProvider,
		"storage":  h.storage,
	})
}

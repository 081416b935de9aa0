package audit

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListLogs godoc
// @Summary List audit logs
// @Description Admin changes, newest first
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Param entity query string false "Entity name"
// @Param action query string false "Action"
// @Param entity_id query string false "Entity ID"
// @Param from query string false "Start date (RFC3339)"
// @Param to query string false "End date (RFC3339)"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} LogResponse
// @Router /admin/audit-logs [get]
func (h *Handler) ListLogs(c *fiber.Ctx) error {
	filter := Filter{
		Entity:   c.Query("entity"),
		Action:   c.Query("action"),
		EntityID: c.Query("entity_id"),
		ActorID:  c.Query("actor_id"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 50),
	}

	for param, dst := range map[string]**time.Time{"from": &filter.StartDate, "to": &filter.EndDate} {
		if v := c.Query(param); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid " + param + " date, use RFC3339"})
			}
			*dst = &t
		}
	}

	resp, err := h.svc.GetLogs(c.UserContext(), filter)
	if err != nil {
		log.Error().Err(err).Msg("❌ Failed to list audit logs")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list audit logs"})
	}

	return c.JSON(resp)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
)

type LayoutHandler struct {
	layoutService *services.LayoutService
}

func NewLayoutHandler(layoutService *services.LayoutService) *LayoutHandler {
	return &LayoutHandler{layoutService: layoutService}
}

// GenerateUILayout godoc
// @Summary Suggest a card layout for a video or DJ tape
// @Description Always answers 200. When generation fails the default uiVariant is returned together with an error field.
// @Tags Layout
// @Accept json
// @Produce json
// @Param request body models.LayoutRequest true "Content to lay out"
// @Success 200 {object} map[string]interface{}
// @Router /generate-ui-layout [post]
func (h *LayoutHandler) GenerateUILayout(c *fiber.Ctx) error {
	var req models.LayoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn().Err(err).Msg("⚠️ Invalid layout request, using default layout")
		return c.JSON(fiber.Map{"error": "invalid request body", "uiVariant": services.DefaultVariant()})
	}

	variant, err := h.layoutService.Generate(c.UserContext(), req.ContentType, req.ContentData)
	if err != nil {
		log.Warn().Err(err).Str("content_type", req.ContentType).Msg("⚠️ Layout generation failed, using default layout")
		return c.JSON(fiber.Map{"error": err.Error(), "uiVariant": variant})
	}
	return c.JSON(fiber.Map{"uiVariant": variant})
}

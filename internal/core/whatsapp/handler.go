package whatsapp

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetChatLink godoc
// @Summary Click-to-chat link
// @Description wa.me link to the business number with optional prefilled text
// @Tags WhatsApp
// @Produce json
// @Param text query string false "Prefilled message"
// @Success 200 {object} map[string]interface{}
// @Router /whatsapp/link [get]
func (h *Handler) GetChatLink(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"url": h.svc.ChatLink(c.Query("text")),
	})
}

// GetChatQR godoc
// @Summary Click-to-chat QR code
// @Description PNG QR code encoding the wa.me link
// @Tags WhatsApp
// @Produce png
// @Param text query string false "Prefilled message"
// @Param size query int false "Image size in pixels" default(256)
// @Success 200 {file} binary
// @Router /whatsapp/qr [get]
func (h *Handler) GetChatQR(c *fiber.Ctx) error {
	png, err := QRCode(h.svc.ChatLink(c.Query("text")), c.QueryInt("size", 256))
	if err != nil {
		log.Error().Err(err).Msg("❌ Failed to generate QR code")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate QR code"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(png)
}

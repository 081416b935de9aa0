package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
	"github.com/soundzyworld/swg-site-be/internal/shared/validation"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat godoc
// @Summary Send a message to the site assistant
// @Description Persists the message, generates a reply and returns quick replies for the detected intent
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Visitor message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{} "error and fallback response"
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil || req.Message == "" || req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message and sessionId are required"})
	}

	resp, err := h.chatService.Chat(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": cleanMessage(err)})
		}
		log.Error().Err(err).Str("session_id", req.SessionID).Msg("❌ Chat function error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":    err.Error(),
			"response": h.chatService.FallbackMessage(),
		})
	}
	return c.JSON(resp)
}

// NewSession godoc
// @Summary Start a chat session
// @Tags Chat
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /chat/session [post]
func (h *ChatHandler) NewSession(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sessionId": services.NewSessionID()})
}

// SaveMessage godoc
// @Summary Append a message to a chat session
// @Description Used by the widget for its own greeting and system messages
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.SaveMessageRequest true "Message"
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} map[string]interface{}
// @Router /chat/messages [post]
func (h *ChatHandler) SaveMessage(c *fiber.Ctx) error {
	var req models.SaveMessageRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	msg, err := h.chatService.SaveMessage(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, "Failed to save message")
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// ListSessions godoc
// @Summary List chat sessions
// @Description Sessions with their message count and last activity, most recent first
// @Tags Admin Chat
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20)"
// @Success 200 {object} map[string]interface{}
// @Router /admin/chat/sessions [get]
func (h *ChatHandler) ListSessions(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	sessions, total, err := h.chatService.ListSessions(c.UserContext(), page, pageSize)
	if err != nil {
		return fail(c, err, "Failed to load chat sessions")
	}
	return c.JSON(fiber.Map{"data": sessions, "total": total, "page": page})
}

// Transcript godoc
// @Summary Messages of one chat session
// @Tags Admin Chat
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/chat/sessions/{sessionId} [get]
func (h *ChatHandler) Transcript(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	msgs, err := h.chatService.Transcript(c.UserContext(), sessionID)
	if err != nil {
		return fail(c, err, "Failed to load transcript")
	}
	return c.JSON(fiber.Map{"session_id": sessionID, "data": msgs, "total": len(msgs)})
}

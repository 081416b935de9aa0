package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/soundzyworld/swg-site-be/internal/core/auth"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
	"github.com/soundzyworld/swg-site-be/internal/shared/validation"
)

type CommunityHandler struct {
	communityService *services.CommunityService
}

func NewCommunityHandler(communityService *services.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

func currentUser(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(auth.UserID(c))
	return id, err == nil
}

// List godoc
// @Summary Community feed
// @Description Posts with the author's full_name and avatar_url, newest first
// @Tags Community
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /community/posts [get]
func (h *CommunityHandler) List(c *fiber.Ctx) error {
	posts, err := h.communityService.List(c.UserContext(), c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	if err != nil {
		return fail(c, err, "Failed to load posts")
	}
	return c.JSON(fiber.Map{"data": posts, "total": len(posts)})
}

// Create godoc
// @Summary Share a post
// @Tags Community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCommunityPostRequest true "Post"
// @Success 201 {object} models.CommunityPost
// @Router /community/posts [post]
func (h *CommunityHandler) Create(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	var req models.CreateCommunityPostRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	post, err := h.communityService.Create(c.UserContext(), userID, &req)
	if err != nil {
		return fail(c, err, "Failed to create post")
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// Delete godoc
// @Summary Delete a post
// @Description Authors may delete their own posts; admins may delete any
// @Tags Community
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /community/posts/{id} [delete]
func (h *CommunityHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	if _, err := h.communityService.Delete(c.UserContext(), id, userID, auth.IsAdmin(c)); err != nil {
		return fail(c, err, "Failed to delete post")
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

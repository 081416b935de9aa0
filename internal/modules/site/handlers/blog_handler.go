package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soundzyworld/swg-site-be/internal/core/audit"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
	"github.com/soundzyworld/swg-site-be/internal/shared/validation"
)

const entityBlogPost = "blog_post"

type BlogHandler struct {
	blogService *services.BlogService
	siteURL     string
	auditor     Auditor
}

// NewBlogHandler; siteURL is the public site root used for RSS links
func NewBlogHandler(blogService *services.BlogService, siteURL string, auditor Auditor) *BlogHandler {
	return &BlogHandler{blogService: blogService, siteURL: siteURL, auditor: auditorOrNoop(auditor)}
}

// ListPublished godoc
// @Summary List published posts
// @Tags Blog
// @Produce json
// @Param limit query int false "Max posts"
// @Success 200 {object} map[string]interface{}
// @Router /blog [get]
func (h *BlogHandler) ListPublished(c *fiber.Ctx) error {
	posts, err := h.blogService.ListPublished(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return fail(c, err, "Failed to load posts")
	}
	return c.JSON(fiber.Map{"data": posts, "total": len(posts)})
}

// GetBySlug godoc
// @Summary Read a post
// @Tags Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} map[string]interface{}
// @Router /blog/{slug} [get]
func (h *BlogHandler) GetBySlug(c *fiber.Ctx) error {
	post, err := h.blogService.GetPublished(c.UserContext(), c.Params("slug"))
	if err != nil {
		return fail(c, err, "Failed to load post")
	}
	return c.JSON(post)
}

// RSS godoc
// @Summary Blog RSS feed
// @Tags Blog
// @Produce application/rss+xml
// @Success 200 {string} string
// @Router /blog/rss [get]
func (h *BlogHandler) RSS(c *fiber.Ctx) error {
	rss, err := h.blogService.Feed(c.UserContext(), h.siteURL)
	if err != nil {
		return fail(c, err, "Failed to build feed")
	}
	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.SendString(rss)
}

// List godoc
// @Summary List all posts
// @Tags Admin Blog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/blog [get]
func (h *BlogHandler) List(c *fiber.Ctx) error {
	posts, err := h.blogService.ListAll(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to load posts")
	}
	return c.JSON(fiber.Map{"data": posts, "total": len(posts)})
}

// Get godoc
// @Summary Get a post by id
// @Tags Admin Blog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} models.BlogPost
// @Router /admin/blog/{id} [get]
func (h *BlogHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	post, err := h.blogService.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Failed to load post")
	}
	return c.JSON(post)
}

// Create godoc
// @Summary Write a post
// @Description The slug is derived from the title when empty and made unique
// @Tags Admin Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.BlogPostRequest true "Post"
// @Success 201 {object} models.BlogPost
// @Failure 409 {object} map[string]interface{}
// @Router /admin/blog [post]
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var req models.BlogPostRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	post, err := h.blogService.Create(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, "Failed to create post")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionCreate, entityBlogPost, post.ID.String(), nil, post)
	return c.Status(fiber.StatusCreated).JSON(post)
}

// Update godoc
// @Summary Edit a post
// @Tags Admin Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body models.BlogPostRequest true "Post"
// @Success 200 {object} models.BlogPost
// @Router /admin/blog/{id} [put]
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	var req models.BlogPostRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	old, updated, err := h.blogService.Update(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err, "Failed to update post")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpdate, entityBlogPost, id.String(), old, updated)
	return c.JSON(updated)
}

// Delete godoc
// @Summary Delete a post
// @Tags Admin Blog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/blog/{id} [delete]
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	old, err := h.blogService.Delete(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Failed to delete post")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionDelete, entityBlogPost, id.String(), old, nil)
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

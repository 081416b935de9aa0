package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/soundzyworld/swg-site-be/internal/core/audit"
	"github.com/soundzyworld/swg-site-be/internal/core/auth"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
	"github.com/soundzyworld/swg-site-be/internal/shared/validation"
)

const entityAnnouncement = "announcement"

type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
	auditor             Auditor
}

func NewAnnouncementHandler(announcementService *services.AnnouncementService, auditor Auditor) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService, auditor: auditorOrNoop(auditor)}
}

// ListVisible godoc
// @Summary List visible announcements
// @Description Published, unexpired announcements ordered pinned first, then by priority, then newest
// @Tags Announcements
// @Produce json
// @Param limit query int false "Max items (1-10, default 3)"
// @Success 200 {object} map[string]interface{}
// @Router /announcements [get]
func (h *AnnouncementHandler) ListVisible(c *fiber.Ctx) error {
	list, err := h.announcementService.ListVisible(c.UserContext(), c.QueryInt("limit", services.DefaultAnnouncementLimit))
	if err != nil {
		return fail(c, err, "Failed to load announcements")
	}
	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// Banner godoc
// @Summary Top announcement for the site banner
// @Tags Announcements
// @Produce json
// @Param exclude query string false "Announcement id the visitor dismissed"
// @Success 200 {object} map[string]interface{}
// @Router /announcements/banner [get]
func (h *AnnouncementHandler) Banner(c *fiber.Ctx) error {
	banner, err := h.announcementService.Banner(c.UserContext(), c.Query("exclude"))
	if err != nil {
		return fail(c, err, "Failed to load banner")
	}
	return c.JSON(fiber.Map{"data": banner})
}

// List godoc
// @Summary List all announcements
// @Tags Admin Announcements
// @Produce json
// @Security BearerAuth
// @Param status query string false "draft, published or archived"
// @Param type query string false "Announcement type"
// @Param priority query string false "normal, high or urgent"
// @Success 200 {object} map[string]interface{}
// @Router /admin/announcements [get]
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	list, err := h.announcementService.List(c.UserContext(), models.AnnouncementFilter{
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Priority: c.Query("priority"),
	})
	if err != nil {
		return fail(c, err, "Failed to load announcements")
	}
	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// Stats godoc
// @Summary Announcement counters
// @Tags Admin Announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AnnouncementStats
// @Router /admin/announcements/stats [get]
func (h *AnnouncementHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.announcementService.Stats(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to compute stats")
	}
	return c.JSON(stats)
}

// Get godoc
// @Summary Get an announcement
// @Tags Admin Announcements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 200 {object} models.Announcement
// @Failure 404 {object} map[string]interface{}
// @Router /admin/announcements/{id} [get]
func (h *AnnouncementHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	a, err := h.announcementService.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Failed to load announcement")
	}
	return c.JSON(a)
}

// Create godoc
// @Summary Create an announcement
// @Tags Admin Announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AnnouncementRequest true "Announcement"
// @Success 201 {object} models.Announcement
// @Failure 400 {object} map[string]interface{}
// @Router /admin/announcements [post]
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var req models.AnnouncementRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}

	var createdBy *uuid.UUID
	if uid, err := uuid.Parse(auth.UserID(c)); err == nil {
		createdBy = &uid
	}

	a, err := h.announcementService.Create(c.UserContext(), &req, createdBy)
	if err != nil {
		return fail(c, err, "Failed to create announcement")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionCreate, entityAnnouncement, a.ID.String(), nil, a)
	return c.Status(fiber.StatusCreated).JSON(a)
}

// Update godoc
// @Summary Update an announcement
// @Tags Admin Announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Param request body models.AnnouncementRequest true "Announcement"
// @Success 200 {object} models.Announcement
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	var req models.AnnouncementRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}

	old, updated, err := h.announcementService.Update(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err, "Failed to update announcement")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpdate, entityAnnouncement, id.String(), old, updated)
	return c.JSON(updated)
}

// Delete godoc
// @Summary Delete an announcement
// @Tags Admin Announcements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	old, err := h.announcementService.Delete(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Failed to delete announcement")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionDelete, entityAnnouncement, id.String(), old, nil)
	return c.JSON(fiber.Map{"message": "Announcement deleted"})
}

// UploadMedia godoc
// @Summary Upload an announcement attachment
// @Description Stores the file in the bucket for media_type and returns its URL
// @Tags Admin Announcements
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param media_type formData string true "image, audio or video"
// @Param file formData file true "Attachment"
// @Success 201 {object} upload.UploadResult
// @Failure 400 {object} map[string]interface{}
// @Router /admin/announcements/media [post]
func (h *AnnouncementHandler) UploadMedia(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return noFile(c)
	}
	result, err := h.announcementService.UploadMedia(c.UserContext(), c.FormValue("media_type"), fh)
	if err != nil {
		return fail(c, err, "Failed to upload media")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpload, result.Bucket, result.Key, nil, result)
	return c.Status(fiber.StatusCreated).JSON(result)
}

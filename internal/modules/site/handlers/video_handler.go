package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soundzyworld/swg-site-be/internal/core/audit"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
	"github.com/soundzyworld/swg-site-be/internal/shared/validation"
)

const entityVideo = "video_embed"

type VideoHandler struct {
	videoService *services.VideoService
	auditor      Auditor
}

func NewVideoHandler(videoService *services.VideoService, auditor Auditor) *VideoHandler {
	return &VideoHandler{videoService: videoService, auditor: auditorOrNoop(auditor)}
}

// ListActive godoc
// @Summary List showreel videos
// @Tags Videos
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /videos [get]
func (h *VideoHandler) ListActive(c *fiber.Ctx) error {
	list, err := h.videoService.ListActive(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to load videos")
	}
	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// List godoc
// @Summary List all videos
// @Tags Admin Videos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/videos [get]
func (h *VideoHandler) List(c *fiber.Ctx) error {
	list, err := h.videoService.ListAll(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to load videos")
	}
	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// Get godoc
// @Summary Get a video
// @Tags Admin Videos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Video ID"
// @Success 200 {object} models.VideoEmbed
// @Failure 404 {object} map[string]interface{}
// @Router /admin/videos/{id} [get]
func (h *VideoHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	v, err := h.videoService.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Failed to load video")
	}
	return c.JSON(v)
}

// Create godoc
// @Summary Add a video
// @Description The URL is rewritten to the platform's embed form and a layout hint is attached
// @Tags Admin Videos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.VideoRequest true "Video"
// @Success 201 {object} models.VideoEmbed
// @Failure 400 {object} map[string]interface{}
// @Router /admin/videos [post]
func (h *VideoHandler) Create(c *fiber.Ctx) error {
	var req models.VideoRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	v, err := h.videoService.Create(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, "Failed to create video")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionCreate, entityVideo, v.ID.String(), nil, v)
	return c.Status(fiber.StatusCreated).JSON(v)
}

// Update godoc
// @Summary Update a video
// @Tags Admin Videos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Video ID"
// @Param request body models.VideoRequest true "Video"
// @Success 200 {object} models.VideoEmbed
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/videos/{id} [put]
func (h *VideoHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	var req models.VideoRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	old, updated, err := h.videoService.Update(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err, "Failed to update video")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpdate, entityVideo, id.String(), old, updated)
	return c.JSON(updated)
}

// Delete godoc
// @Summary Delete a video
// @Tags Admin Videos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Video ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/videos/{id} [delete]
func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	old, err := h.videoService.Delete(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Failed to delete video")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionDelete, entityVideo, id.String(), old, nil)
	return c.JSON(fiber.Map{"message": "Video deleted"})
}

// UploadFile godoc
// @Summary Upload a video file
// @Description For video_type=upload; stored in video-files
// @Tags Admin Videos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Video file"
// @Success 201 {object} upload.UploadResult
// @Router /admin/videos/upload [post]
func (h *VideoHandler) UploadFile(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return noFile(c)
	}
	result, err := h.videoService.UploadVideoFile(c.UserContext(), fh)
	if err != nil {
		return fail(c, err, "Failed to upload video")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpload, result.Bucket, result.Key, nil, result)
	return c.Status(fiber.StatusCreated).JSON(result)
}

// UploadThumbnail godoc
// @Summary Upload a video thumbnail
// @Tags Admin Videos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Success 201 {object} upload.UploadResult
// @Router /admin/videos/thumbnail [post]
func (h *VideoHandler) UploadThumbnail(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return noFile(c)
	}
	result, err := h.videoService.UploadThumbnail(c.UserContext(), fh)
	if err != nil {
		return fail(c, err, "Failed to upload thumbnail")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpload, result.Bucket, result.Key, nil, result)
	return c.Status(fiber.StatusCreated).JSON(result)
}

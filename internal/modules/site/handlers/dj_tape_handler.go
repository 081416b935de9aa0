package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soundzyworld/swg-site-be/internal/core/audit"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
	"github.com/soundzyworld/swg-site-be/internal/shared/validation"
)

const entityDJTape = "dj_tape"

type DJTapeHandler struct {
	tapeService *services.DJTapeService
	auditor     Auditor
}

func NewDJTapeHandler(tapeService *services.DJTapeService, auditor Auditor) *DJTapeHandler {
	return &DJTapeHandler{tapeService: tapeService, auditor: auditorOrNoop(auditor)}
}

// ListPublished godoc
// @Summary List DJ mixtapes
// @Tags DJ Tapes
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /dj-tapes [get]
func (h *DJTapeHandler) ListPublished(c *fiber.Ctx) error {
	tapes, err := h.tapeService.ListPublished(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to load DJ tapes")
	}
	return c.JSON(fiber.Map{"data": tapes, "total": len(tapes)})
}

// List godoc
// @Summary List all DJ tapes
// @Tags Admin DJ Tapes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/dj-tapes [get]
func (h *DJTapeHandler) List(c *fiber.Ctx) error {
	tapes, err := h.tapeService.ListAll(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to load DJ tapes")
	}
	return c.JSON(fiber.Map{"data": tapes, "total": len(tapes)})
}

// Get godoc
// @Summary Get a DJ tape
// @Tags Admin DJ Tapes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tape ID"
// @Success 200 {object} models.DJTape
// @Router /admin/dj-tapes/{id} [get]
func (h *DJTapeHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	t, err := h.tapeService.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Failed to load DJ tape")
	}
	return c.JSON(t)
}

// Create godoc
// @Summary Add a DJ tape
// @Tags Admin DJ Tapes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DJTapeRequest true "Tape"
// @Success 201 {object} models.DJTape
// @Router /admin/dj-tapes [post]
func (h *DJTapeHandler) Create(c *fiber.Ctx) error {
	var req models.DJTapeRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	t, err := h.tapeService.Create(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, "Failed to create DJ tape")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionCreate, entityDJTape, t.ID.String(), nil, t)
	return c.Status(fiber.StatusCreated).JSON(t)
}

// Update godoc
// @Summary Update a DJ tape
// @Tags Admin DJ Tapes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tape ID"
// @Param request body models.DJTapeRequest true "Tape"
// @Success 200 {object} models.DJTape
// @Router /admin/dj-tapes/{id} [put]
func (h *DJTapeHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	var req models.DJTapeRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	old, updated, err := h.tapeService.Update(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err, "Failed to update DJ tape")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpdate, entityDJTape, id.String(), old, updated)
	return c.JSON(updated)
}

// Delete godoc
// @Summary Delete a DJ tape
// @Tags Admin DJ Tapes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tape ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/dj-tapes/{id} [delete]
func (h *DJTapeHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	old, err := h.tapeService.Delete(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Failed to delete DJ tape")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionDelete, entityDJTape, id.String(), old, nil)
	return c.JSON(fiber.Map{"message": "DJ tape deleted"})
}

// Upload godoc
// @Summary Upload a mix or its cover art
// @Tags Admin DJ Tapes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param type query string false "audio (default) or cover"
// @Param file formData file true "Audio or image"
// @Success 201 {object} upload.UploadResult
// @Router /admin/dj-tapes/upload [post]
func (h *DJTapeHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return noFile(c)
	}
	result, err := h.tapeService.Upload(c.UserContext(), c.Query("type"), fh)
	if err != nil {
		return fail(c, err, "Failed to upload file")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpload, result.Bucket, result.Key, nil, result)
	return c.Status(fiber.StatusCreated).JSON(result)
}

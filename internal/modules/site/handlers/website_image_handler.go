package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/soundzyworld/swg-site-be/internal/core/audit"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
	"github.com/soundzyworld/swg-site-be/internal/shared/validation"
)

const entityWebsiteImage = "website_image"

type WebsiteImageHandler struct {
	imageService *services.WebsiteImageService
	auditor      Auditor
}

func NewWebsiteImageHandler(imageService *services.WebsiteImageService, auditor Auditor) *WebsiteImageHandler {
	return &WebsiteImageHandler{imageService: imageService, auditor: auditorOrNoop(auditor)}
}

// GetByKey godoc
// @Summary Resolve an image slot
// @Description Returns the image for key. With fallback set, a missing slot answers 200 with the fallback url.
// @Tags Website Images
// @Produce json
// @Param key path string true "Slot key, e.g. home.hero"
// @Param fallback query string false "URL to use when the slot has no image"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /website-images/{key} [get]
func (h *WebsiteImageHandler) GetByKey(c *fiber.Ctx) error {
	key := c.Params("key")
	img, err := h.imageService.Get(c.UserContext(), key)
	if err != nil {
		if fallback := c.Query("fallback"); fallback != "" && errors.Is(err, services.ErrNotFound) {
			return c.JSON(fiber.Map{"key": key, "url": fallback, "fallback": true})
		}
		return fail(c, err, "Failed to load image")
	}
	return c.JSON(fiber.Map{"key": img.Key, "url": img.URL, "fallback": false, "data": img})
}

// ListPublic godoc
// @Summary List image slots
// @Tags Website Images
// @Produce json
// @Param page query string false "Page name, e.g. home"
// @Success 200 {object} map[string]interface{}
// @Router /website-images [get]
func (h *WebsiteImageHandler) ListPublic(c *fiber.Ctx) error {
	list, err := h.imageService.List(c.UserContext(), c.Query("page"))
	if err != nil {
		return fail(c, err, "Failed to load images")
	}
	urls := make(map[string]string, len(list))
	for _, img := range list {
		urls[img.Key] = img.URL
	}
	return c.JSON(fiber.Map{"data": list, "urls": urls, "total": len(list)})
}

// List godoc
// @Summary List image slots for the admin grid
// @Tags Admin Website Images
// @Produce json
// @Security BearerAuth
// @Param page query string false "Page name"
// @Success 200 {object} map[string]interface{}
// @Router /admin/website-images [get]
func (h *WebsiteImageHandler) List(c *fiber.Ctx) error {
	list, err := h.imageService.List(c.UserContext(), c.Query("page"))
	if err != nil {
		return fail(c, err, "Failed to load images")
	}
	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// Seed godoc
// @Summary Seed image slots from the registry
// @Description Creates missing slots with the placeholder url; existing urls are left alone
// @Tags Admin Website Images
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SeedResult
// @Router /admin/website-images/seed [post]
func (h *WebsiteImageHandler) Seed(c *fiber.Ctx) error {
	result, err := h.imageService.Seed(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to seed images")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionSeed, entityWebsiteImage, "", nil, result)
	return c.JSON(result)
}

// Update godoc
// @Summary Point a slot at a new url
// @Tags Admin Website Images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Slot key"
// @Param request body models.UpdateWebsiteImageRequest true "New url"
// @Success 200 {object} models.WebsiteImage
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/website-images/{key} [put]
func (h *WebsiteImageHandler) Update(c *fiber.Ctx) error {
	key := c.Params("key")
	var req models.UpdateWebsiteImageRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	old, updated, err := h.imageService.UpdateURL(c.UserContext(), key, &req)
	if err != nil {
		return fail(c, err, "Failed to update image")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpdate, entityWebsiteImage, key, old, updated)
	return c.JSON(updated)
}

// Upload godoc
// @Summary Replace a slot's image
// @Description Uploads to site-images as <key>-<ms>.<ext> and updates the slot url
// @Tags Admin Website Images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param key path string true "Slot key"
// @Param file formData file true "Image"
// @Success 200 {object} models.WebsiteImage
// @Router /admin/website-images/{key}/upload [post]
func (h *WebsiteImageHandler) Upload(c *fiber.Ctx) error {
	key := c.Params("key")
	fh, err := c.FormFile("file")
	if err != nil {
		return noFile(c)
	}
	old, updated, err := h.imageService.Replace(c.UserContext(), key, fh)
	if err != nil {
		return fail(c, err, "Failed to upload image")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpload, entityWebsiteImage, key, old, updated)
	return c.JSON(updated)
}

// Delete godoc
// @Summary Remove an image slot
// @Tags Admin Website Images
// @Produce json
// @Security BearerAuth
// @Param key path string true "Slot key"
// @Success 200 {object} map[string]interface{}
// @Router /admin/website-images/{key} [delete]
func (h *WebsiteImageHandler) Delete(c *fiber.Ctx) error {
	key := c.Params("key")
	old, err := h.imageService.Delete(c.UserContext(), key)
	if err != nil {
		return fail(c, err, "Failed to delete image")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionDelete, entityWebsiteImage, key, old, nil)
	return c.JSON(fiber.Map{"message": "Image deleted"})
}

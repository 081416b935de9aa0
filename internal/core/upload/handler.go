package upload

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Handler exposes the media library over the storage buckets
type Handler struct {
	uploadService *Service
}

// NewHandler creates a new upload handler
func NewHandler(uploadService *Service) *Handler {
	return &Handler{
		uploadService: uploadService,
	}
}

// ListBuckets godoc
// @Summary List media buckets
// @Tags Media
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/media [get]
func (h *Handler) ListBuckets(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"buckets":  Buckets(),
		"provider": h.uploadService.GetProviderName(),
	})
}

// ListObjects godoc
// @Summary List files in a bucket
// @Tags Media
// @Produce json
// @Security BearerAuth
// @Param bucket path string true "Bucket name" Enums(audio-files, video-files, site-images, cover-art)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /admin/media/{bucket} [get]
func (h *Handler) ListObjects(c *fiber.Ctx) error {
	bucket := c.Params("bucket")

	objects, err := h.uploadService.List(c.UserContext(), bucket)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"bucket": bucket,
		"data":   objects,
		"total":  len(objects),
	})
}

// UploadFile godoc
// @Summary Upload a file to a bucket
// @Description Stores the file under "<unix-ms>-<filename>" and returns its public URL
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param bucket path string true "Bucket name"
// @Param file formData file true "File to upload"
// @Success 201 {object} UploadResult
// @Failure 400 {object} map[string]interface{}
// @Failure 413 {object} map[string]interface{}
// @Router /admin/media/{bucket} [post]
func (h *Handler) UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	result, err := h.uploadService.UploadMultipart(c.UserContext(), c.Params("bucket"), "", fileHeader)
	if err != nil {
		return h.fail(c, err)
	}

	log.Info().Str("bucket", result.Bucket).Str("key", result.Key).Msg("📁 File uploaded")
	return c.Status(fiber.StatusCreated).JSON(result)
}

// DeleteFile godoc
// @Summary Delete a file from a bucket
// @Tags Media
// @Produce json
// @Security BearerAuth
// @Param bucket path string true "Bucket name"
// @Param name query string true "Object name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/media/{bucket} [delete]
func (h *Handler) DeleteFile(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	if err := h.uploadService.Delete(c.UserContext(), c.Params("bucket"), name); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "File deleted successfully",
	})
}

// StatusFor maps storage errors to HTTP status codes
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownBucket), errors.Is(err, ErrInvalidKey), errors.Is(err, ErrTypeNotAllowed):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, ErrObjectNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("bucket", c.Params("bucket")).Msg("❌ Storage operation failed")
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soundzyworld/swg-site-be/internal/core/audit"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
	"github.com/soundzyworld/swg-site-be/internal/shared/validation"
)

const entityProduct = "product"

type ProductHandler struct {
	productService *services.ProductService
	auditor        Auditor
}

func NewProductHandler(productService *services.ProductService, auditor Auditor) *ProductHandler {
	return &ProductHandler{productService: productService, auditor: auditorOrNoop(auditor)}
}

func productFilter(c *fiber.Ctx, activeOnly bool) models.ProductFilter {
	return models.ProductFilter{
		Category:   c.Query("category"),
		SearchTerm: c.Query("search"),
		ActiveOnly: activeOnly,
		Page:       c.QueryInt("page", 1),
		PageSize:   c.QueryInt("page_size", 12),
	}
}

// ListPublic godoc
// @Summary List shop products
// @Tags Products
// @Produce json
// @Param category query string false "Category"
// @Param search query string false "Matches name or description"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 12, max 100)"
// @Success 200 {object} models.ProductListResponse
// @Router /products [get]
func (h *ProductHandler) ListPublic(c *fiber.Ctx) error {
	resp, err := h.productService.List(c.UserContext(), productFilter(c, true))
	if err != nil {
		return fail(c, err, "Failed to load products")
	}
	return c.JSON(resp)
}

// GetPublic godoc
// @Summary Get a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]interface{}
// @Router /products/{id} [get]
func (h *ProductHandler) GetPublic(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	p, err := h.productService.Get(c.UserContext(), id, true)
	if err != nil {
		return fail(c, err, "Failed to load product")
	}
	return c.JSON(p)
}

// List godoc
// @Summary List all products
// @Tags Admin Products
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category"
// @Param search query string false "Search term"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} models.ProductListResponse
// @Router /admin/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	resp, err := h.productService.List(c.UserContext(), productFilter(c, false))
	if err != nil {
		return fail(c, err, "Failed to load products")
	}
	return c.JSON(resp)
}

// Get godoc
// @Summary Get a product, active or not
// @Tags Admin Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Router /admin/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	p, err := h.productService.Get(c.UserContext(), id, false)
	if err != nil {
		return fail(c, err, "Failed to load product")
	}
	return c.JSON(p)
}

// Create godoc
// @Summary Create a product
// @Tags Admin Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProductRequest true "Product"
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]interface{}
// @Router /admin/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req models.ProductRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	p, err := h.productService.Create(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, "Failed to create product")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionCreate, entityProduct, p.ID.String(), nil, p)
	return c.Status(fiber.StatusCreated).JSON(p)
}

// Update godoc
// @Summary Update a product
// @Tags Admin Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body models.ProductRequest true "Product"
// @Success 200 {object} models.Product
// @Router /admin/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	var req models.ProductRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	old, updated, err := h.productService.Update(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err, "Failed to update product")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpdate, entityProduct, id.String(), old, updated)
	return c.JSON(updated)
}

// Delete godoc
// @Summary Delete a product
// @Tags Admin Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	old, err := h.productService.Delete(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Failed to delete product")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionDelete, entityProduct, id.String(), old, nil)
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// UploadImage godoc
// @Summary Upload a product photo
// @Tags Admin Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param file formData file true "Image"
// @Success 200 {object} models.Product
// @Router /admin/products/{id}/image [post]
func (h *ProductHandler) UploadImage(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return noFile(c)
	}
	old, updated, err := h.productService.UploadImage(c.UserContext(), id, fh)
	if err != nil {
		return fail(c, err, "Failed to upload product image")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpload, entityProduct, id.String(), old, updated)
	return c.JSON(updated)
}

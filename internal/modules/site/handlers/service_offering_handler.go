package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soundzyworld/swg-site-be/internal/core/audit"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
	"github.com/soundzyworld/swg-site-be/internal/shared/validation"
)

const entityServiceOffering = "service_offering"

type ServiceOfferingHandler struct {
	offeringService *services.ServiceOfferingService
	auditor         Auditor
}

func NewServiceOfferingHandler(offeringService *services.ServiceOfferingService, auditor Auditor) *ServiceOfferingHandler {
	return &ServiceOfferingHandler{offeringService: offeringService, auditor: auditorOrNoop(auditor)}
}

// ListActive godoc
// @Summary List services on offer
// @Tags Services
// @Produce json
// @Param category query string false "dj, creative, rental or production"
// @Success 200 {object} map[string]interface{}
// @Router /services [get]
func (h *ServiceOfferingHandler) ListActive(c *fiber.Ctx) error {
	list, err := h.offeringService.List(c.UserContext(), c.Query("category"), true)
	if err != nil {
		return fail(c, err, "Failed to load services")
	}
	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// List godoc
// @Summary List all service cards
// @Tags Admin Services
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category"
// @Success 200 {object} map[string]interface{}
// @Router /admin/services [get]
func (h *ServiceOfferingHandler) List(c *fiber.Ctx) error {
	list, err := h.offeringService.List(c.UserContext(), c.Query("category"), false)
	if err != nil {
		return fail(c, err, "Failed to load services")
	}
	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// Create godoc
// @Summary Add a service card
// @Tags Admin Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ServiceOfferingRequest true "Service"
// @Success 201 {object} models.ServiceOffering
// @Router /admin/services [post]
func (h *ServiceOfferingHandler) Create(c *fiber.Ctx) error {
	var req models.ServiceOfferingRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	o, err := h.offeringService.Create(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, "Failed to create service")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionCreate, entityServiceOffering, o.ID.String(), nil, o)
	return c.Status(fiber.StatusCreated).JSON(o)
}

// Update godoc
// @Summary Update a service card
// @Tags Admin Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body models.ServiceOfferingRequest true "Service"
// @Success 200 {object} models.ServiceOffering
// @Router /admin/services/{id} [put]
func (h *ServiceOfferingHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	var req models.ServiceOfferingRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	old, updated, err := h.offeringService.Update(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err, "Failed to update service")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpdate, entityServiceOffering, id.String(), old, updated)
	return c.JSON(updated)
}

// Delete godoc
// @Summary Delete a service card
// @Tags Admin Services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/services/{id} [delete]
func (h *ServiceOfferingHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	old, err := h.offeringService.Delete(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Failed to delete service")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionDelete, entityServiceOffering, id.String(), old, nil)
	return c.JSON(fiber.Map{"message": "Service deleted"})
}

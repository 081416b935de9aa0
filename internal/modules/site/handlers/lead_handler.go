package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/soundzyworld/swg-site-be/internal/core/audit"
	"github.com/soundzyworld/swg-site-be/internal/core/export"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
	"github.com/soundzyworld/swg-site-be/internal/shared/validation"
)

const entityLead = "lead"

type LeadHandler struct {
	leadService *services.LeadService
	auditor     Auditor
}

func NewLeadHandler(leadService *services.LeadService, auditor Auditor) *LeadHandler {
	return &LeadHandler{leadService: leadService, auditor: auditorOrNoop(auditor)}
}

// Create godoc
// @Summary Submit a contact or booking enquiry
// @Description Needs a name and a phone or email. The team is alerted by WhatsApp and email.
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body models.CreateLeadRequest true "Enquiry"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var req models.CreateLeadRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	lead, err := h.leadService.Create(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, "Failed to submit enquiry")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thanks! We will get back to you shortly.",
		"id":      lead.ID,
	})
}

// List godoc
// @Summary List leads
// @Tags Admin Leads
// @Produce json
// @Security BearerAuth
// @Param status query string false "new, contacted, qualified, won or lost"
// @Param limit query int false "Max rows"
// @Success 200 {object} map[string]interface{}
// @Router /admin/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	leads, err := h.leadService.List(c.UserContext(), models.LeadFilter{
		Status: c.Query("status"),
		Limit:  c.QueryInt("limit", 0),
	})
	if err != nil {
		return fail(c, err, "Failed to load leads")
	}
	return c.JSON(fiber.Map{"data": leads, "total": len(leads)})
}

// UpdateStatus godoc
// @Summary Move a lead through the pipeline
// @Tags Admin Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param request body models.UpdateLeadStatusRequest true "Status"
// @Success 200 {object} models.Lead
// @Router /admin/leads/{id}/status [put]
func (h *LeadHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	var req models.UpdateLeadStatusRequest
	if err := validation.Bind(c, &req); err != nil {
		return validation.BadRequest(c, err)
	}
	old, updated, err := h.leadService.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return fail(c, err, "Failed to update lead")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionUpdate, entityLead, id.String(), old, updated)
	return c.JSON(updated)
}

// Delete godoc
// @Summary Delete a lead
// @Tags Admin Leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/leads/{id} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	old, err := h.leadService.Delete(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Failed to delete lead")
	}
	h.auditor.LogChange(c.UserContext(), actorFrom(c), audit.ActionDelete, entityLead, id.String(), old, nil)
	return c.JSON(fiber.Map{"message": "Lead deleted"})
}

// Export godoc
// @Summary Download leads as a spreadsheet or PDF
// @Tags Admin Leads
// @Produce application/octet-stream
// @Security BearerAuth
// @Param format query string false "xlsx (default) or pdf"
// @Param status query string false "Only leads with this status"
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Router /admin/leads/export [get]
func (h *LeadHandler) Export(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	file, err := h.leadService.Export(c.UserContext(), format, c.Query("status"))
	if err != nil {
		return fail(c, err, "Failed to export leads")
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Data)
}

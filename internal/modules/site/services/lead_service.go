package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soundzyworld/swg-site-be/internal/core/export"
	"github.com/soundzyworld/swg-site-be/internal/core/notification"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/repositories"
)

type LeadService struct {
	repo     repositories.LeadRepo
	notifier Notifier
	exporter *export.Service
	now      clock
}

// NewLeadService; notifier may be nil
func NewLeadService(repo repositories.LeadRepo, notifier Notifier, exporter *export.Service) *LeadService {
	return &LeadService{repo: repo, notifier: notifier, exporter: exporter, now: time.Now}
}

// Create stores an enquiry and alerts the team in the background
func (s *LeadService) Create(ctx context.Context, req *models.CreateLeadRequest) (*models.Lead, error) {
	lead := &models.Lead{
		Name:      trimSpace(req.Name),
		Phone:     trimSpace(req.Phone),
		Email:     trimSpace(req.Email),
		Service:   trimSpace(req.Service),
		EventDate: trimSpace(req.EventDate),
		Message:   trimSpace(req.Message),
		Source:    orDefault(req.Source, "website"),
		Status:    models.LeadStatusNew,
	}
	if lead.Name == "" {
		return nil, invalid("name is required")
	}
	if lead.Phone == "" && lead.Email == "" {
		return nil, invalid("phone or email is required")
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to save lead: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyAsync(notification.LeadAlert(
			lead.Name, lead.Phone, lead.Email, lead.Service, lead.EventDate, lead.Message, lead.Source,
		))
	}
	return lead, nil
}

func (s *LeadService) List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	leads, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

func (s *LeadService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Lead, *models.Lead, error) {
	switch status {
	case models.LeadStatusNew, models.LeadStatusContacted, models.LeadStatusQualified, models.LeadStatusWon, models.LeadStatusLost:
	default:
		return nil, nil, invalid("unknown lead status %q", status)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, translate("lead", err)
	}
	old := *current

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, nil, translate("lead", err)
	}
	current.Status = status
	return &old, current, nil
}

func (s *LeadService) Delete(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate("lead", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, translate("lead", err)
	}
	return current, nil
}

// ExportFile is a rendered lead export
type ExportFile struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Export renders leads (optionally one status) as xlsx or pdf
func (s *LeadService) Export(ctx context.Context, format export.Format, status string) (*ExportFile, error) {
	leads, err := s.List(ctx, models.LeadFilter{Status: status})
	if err != nil {
		return nil, err
	}

	table := LeadsTable(leads, s.now())
	if format == export.FormatPDF {
		table.Style.Landscape = true
	}

	data, contentType, err := s.exporter.Export(table, format)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Data:        data,
		ContentType: contentType,
		Filename:    s.exporter.Filename("leads", table, format),
	}, nil
}

// LeadsTable lays leads out for export
func LeadsTable(leads []models.Lead, now time.Time) *export.Table {
	rows := make([][]interface{}, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, []interface{}{
			l.CreatedAt.Format("2006-01-02 15:04"),
			l.Name,
			l.Phone,
			l.Email,
			l.Service,
			l.EventDate,
			l.Status,
			l.Source,
			l.Message,
		})
	}

	style := export.DefaultStyle()
	style.ColumnWidths = map[int]float64{0: 18, 1: 24, 3: 28, 8: 48}
	return &export.Table{
		Title:       "Soundzy World Global - Leads",
		Description: fmt.Sprintf("%d leads", len(leads)),
		CreatedAt:   now,
		Headers:     []string{"Received", "Name", "Phone", "Email", "Service", "Event date", "Status", "Source", "Message"},
		Rows:        rows,
		Style:       style,
	}
}

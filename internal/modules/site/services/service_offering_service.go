package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/repositories"
)

type ServiceOfferingService struct {
	repo repositories.ServiceOfferingRepo
}

func NewServiceOfferingService(repo repositories.ServiceOfferingRepo) *ServiceOfferingService {
	return &ServiceOfferingService{repo: repo}
}

// List is ordered by sort_order; activeOnly for visitors
func (s *ServiceOfferingService) List(ctx context.Context, category string, activeOnly bool) ([]models.ServiceOffering, error) {
	list, err := s.repo.List(ctx, category, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return list, nil
}

func (s *ServiceOfferingService) Get(ctx context.Context, id uuid.UUID) (*models.ServiceOffering, error) {
	o, err := s.repo.GetByID(ctx, id)
	return o, translate("service", err)
}

func (s *ServiceOfferingService) Create(ctx context.Context, req *models.ServiceOfferingRequest) (*models.ServiceOffering, error) {
	o := &models.ServiceOffering{IsActive: true}
	if err := applyOffering(o, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return o, nil
}

func (s *ServiceOfferingService) Update(ctx context.Context, id uuid.UUID, req *models.ServiceOfferingRequest) (*models.ServiceOffering, *models.ServiceOffering, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	old := *current

	if err := applyOffering(current, req); err != nil {
		return nil, nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, nil, fmt.Errorf("failed to update service: %w", err)
	}
	return &old, current, nil
}

func (s *ServiceOfferingService) Delete(ctx context.Context, id uuid.UUID) (*models.ServiceOffering, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, translate("service", err)
	}
	return current, nil
}

func applyOffering(o *models.ServiceOffering, req *models.ServiceOfferingRequest) error {
	title := trimSpace(req.Title)
	if title == "" || trimSpace(req.Category) == "" {
		return invalid("title and category are required")
	}
	o.Category = trimSpace(req.Category)
	o.Title = title
	o.Description = trimSpace(req.Description)
	o.Icon = trimSpace(req.Icon)
	o.ImageURL = trimSpace(req.ImageURL)
	o.PriceFrom = req.PriceFrom
	o.SortOrder = req.SortOrder
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}
	return nil
}

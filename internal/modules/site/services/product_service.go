package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/soundzyworld/swg-site-be/internal/core/upload"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/repositories"
)

type ProductService struct {
	repo     repositories.ProductRepo
	uploader Uploader
}

func NewProductService(repo repositories.ProductRepo, uploader Uploader) *ProductService {
	return &ProductService{repo: repo, uploader: uploader}
}

func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) (*models.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 12
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	return &models.ProductListResponse{
		Products:   products,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Get returns a product; inactive products are hidden when publicOnly
func (s *ProductService) Get(ctx context.Context, id uuid.UUID, publicOnly bool) (*models.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate("product", err)
	}
	if publicOnly && !p.IsActive {
		return nil, fmt.Errorf("product %w", ErrNotFound)
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, req *models.ProductRequest) (*models.Product, error) {
	p := &models.Product{InStock: true, IsActive: true}
	if err := applyProduct(p, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *models.ProductRequest) (*models.Product, *models.Product, error) {
	current, err := s.Get(ctx, id, false)
	if err != nil {
		return nil, nil, err
	}
	old := *current

	if err := applyProduct(current, req); err != nil {
		return nil, nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &old, current, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	current, err := s.Get(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, translate("product", err)
	}
	return current, nil
}

// UploadImage stores the image in site-images and sets image_url
func (s *ProductService) UploadImage(ctx context.Context, id uuid.UUID, file *multipart.FileHeader) (*models.Product, *models.Product, error) {
	current, err := s.Get(ctx, id, false)
	if err != nil {
		return nil, nil, err
	}
	old := *current

	result, err := s.uploader.UploadMultipart(ctx, upload.BucketSiteImages, "", file)
	if err != nil {
		return nil, nil, err
	}
	current.ImageURL = result.URL
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, nil, fmt.Errorf("failed to update product image: %w", err)
	}
	return &old, current, nil
}

func applyProduct(p *models.Product, req *models.ProductRequest) error {
	name := trimSpace(req.Name)
	if name == "" {
		return invalid("name is required")
	}
	if req.Price < 0 {
		return invalid("price cannot be negative")
	}
	if req.OriginalPrice != nil && *req.OriginalPrice < req.Price {
		return invalid("original_price must not be lower than price")
	}

	p.Name = name
	p.Description = trimSpace(req.Description)
	p.Category = trimSpace(req.Category)
	p.Price = req.Price
	p.OriginalPrice = req.OriginalPrice
	p.Features = cleanList(req.Features)
	p.ImageURL = trimSpace(req.ImageURL)
	if req.InStock != nil {
		p.InStock = *req.InStock
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	return nil
}

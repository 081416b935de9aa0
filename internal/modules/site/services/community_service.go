package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/repositories"
)

type CommunityService struct {
	repo repositories.CommunityRepo
}

func NewCommunityService(repo repositories.CommunityRepo) *CommunityService {
	return &CommunityService{repo: repo}
}

func (s *CommunityService) List(ctx context.Context, page, pageSize int) ([]models.CommunityPostView, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	posts, err := s.repo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *CommunityService) Create(ctx context.Context, userID uuid.UUID, req *models.CreateCommunityPostRequest) (*models.CommunityPost, error) {
	title := trimSpace(req.Title)
	content := trimSpace(req.Content)
	if title == "" || content == "" {
		return nil, invalid("title and content are required")
	}

	post := &models.CommunityPost{
		UserID:   userID,
		Title:    title,
		Content:  content,
		ImageURL: trimPtr(req.ImageURL),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// Delete is allowed for the author and for admins
func (s *CommunityService) Delete(ctx context.Context, id, userID uuid.UUID, isAdmin bool) (*models.CommunityPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate("post", err)
	}
	if post.UserID != userID && !isAdmin {
		return nil, fmt.Errorf("%w: only the author can delete this post", ErrForbidden)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, translate("post", err)
	}
	return post, nil
}

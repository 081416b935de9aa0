package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/feeds"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/repositories"
)

const feedSize = 20

type BlogService struct {
	repo repositories.BlogRepo
	now  clock
}

func NewBlogService(repo repositories.BlogRepo) *BlogService {
	return &BlogService{repo: repo, now: time.Now}
}

func (s *BlogService) ListPublished(ctx context.Context, limit int) ([]models.BlogPost, error) {
	posts, err := s.repo.List(ctx, models.StatusPublished, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

func (s *BlogService) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.repo.List(ctx, "", 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

// GetPublished looks a post up by slug; drafts are not found
func (s *BlogService) GetPublished(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.repo.GetBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, translate("blog post", err)
	}
	if post.Status != models.StatusPublished {
		return nil, fmt.Errorf("blog post %w", ErrNotFound)
	}
	return post, nil
}

func (s *BlogService) Get(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	return post, translate("blog post", err)
}

func (s *BlogService) Create(ctx context.Context, req *models.BlogPostRequest) (*models.BlogPost, error) {
	post := &models.BlogPost{}
	if err := s.apply(ctx, post, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}
	return post, nil
}

func (s *BlogService) Update(ctx context.Context, id uuid.UUID, req *models.BlogPostRequest) (*models.BlogPost, *models.BlogPost, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	old := *current

	if err := s.apply(ctx, current, req); err != nil {
		return nil, nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, nil, fmt.Errorf("failed to update blog post: %w", err)
	}
	return &old, current, nil
}

func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, translate("blog post", err)
	}
	return current, nil
}

// apply fills post from req. An explicit slug must be free; a generated one gets -2, -3... until free.
func (s *BlogService) apply(ctx context.Context, post *models.BlogPost, req *models.BlogPostRequest) error {
	title := trimSpace(req.Title)
	if title == "" || trimSpace(req.Content) == "" {
		return invalid("title and content are required")
	}

	explicit := trimSpace(req.Slug) != ""
	base := Slugify(req.Slug)
	if !explicit {
		base = Slugify(title)
	}
	if base == "" {
		return invalid("slug could not be derived from title")
	}

	slug, err := s.uniqueSlug(ctx, base, post.ID, explicit)
	if err != nil {
		return err
	}

	post.Slug = slug
	post.Title = title
	post.Excerpt = trimSpace(req.Excerpt)
	post.Content = req.Content
	post.CoverImageURL = trimSpace(req.CoverImageURL)
	post.Author = trimSpace(req.Author)
	post.Tags = cleanList(req.Tags)
	post.Status = orDefault(req.Status, models.StatusDraft)

	if post.Status == models.StatusPublished && post.PublishedAt == nil {
		now := s.now()
		post.PublishedAt = &now
	}
	return nil
}

func (s *BlogService) uniqueSlug(ctx context.Context, base string, selfID uuid.UUID, explicit bool) (string, error) {
	slug := base
	for i := 2; ; i++ {
		taken, err := s.repo.SlugExists(ctx, slug, selfID)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !taken {
			return slug, nil
		}
		if explicit {
			return "", fmt.Errorf("%w: slug %q is already used", ErrConflict, slug)
		}
		if i > 50 {
			return "", fmt.Errorf("%w: no free slug for %q", ErrConflict, base)
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// Feed renders the latest published posts as RSS 2.0
func (s *BlogService) Feed(ctx context.Context, siteURL string) (string, error) {
	posts, err := s.ListPublished(ctx, feedSize)
	if err != nil {
		return "", err
	}

	siteURL = strings.TrimRight(siteURL, "/")
	feed := &feeds.Feed{
		Title:       "Soundzy World Global Blog",
		Link:        &feeds.Link{Href: siteURL + "/blog"},
		Description: "News, tips and stories from Soundzy World Global",
		Created:     s.now(),
	}

	for _, p := range posts {
		created := p.CreatedAt
		if p.PublishedAt != nil {
			created = *p.PublishedAt
		}
		description := p.Excerpt
		if description == "" {
			description = truncate(p.Content, 280)
		}
		link := siteURL + "/blog/" + p.Slug
		item := &feeds.Item{
			Id:          link,
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Description: description,
			Created:     created,
			Updated:     p.UpdatedAt,
		}
		if p.Author != "" {
			item.Author = &feeds.Author{Name: p.Author}
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		return "", fmt.Errorf("failed to render RSS: %w", err)
	}
	return rss, nil
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}

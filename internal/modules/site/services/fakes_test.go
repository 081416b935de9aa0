package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundzyworld/swg-site-be/internal/core/notification"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
)

type fakeAnnouncementRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Announcement
}

func newFakeAnnouncementRepo(rows ...models.Announcement) *fakeAnnouncementRepo {
	r := &fakeAnnouncementRepo{rows: map[uuid.UUID]models.Announcement{}}
	for _, a := range rows {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.rows[a.ID] = a
	}
	return r
}

func (r *fakeAnnouncementRepo) Create(ctx context.Context, a *models.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = a.BeforeCreate(nil)
	a.CreatedAt = time.Now()
	r.rows[a.ID] = *a
	return nil
}

func (r *fakeAnnouncementRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *fakeAnnouncementRepo) List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Announcement
	for _, a := range r.rows {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, a)
	}
	models.SortAnnouncements(out)
	return out, nil
}

// ListVisible returns every row unfiltered so the service-side filter is exercised
func (r *fakeAnnouncementRepo) ListVisible(ctx context.Context, now time.Time, limit int) ([]models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Announcement, 0, len(r.rows))
	for _, a := range r.rows {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAnnouncementRepo) Update(ctx context.Context, a *models.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[a.ID] = *a
	return nil
}

func (r *fakeAnnouncementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeAnnouncementRepo) Stats(ctx context.Context, now time.Time) (*models.AnnouncementStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &models.AnnouncementStats{}
	for _, a := range r.rows {
		stats.Total++
		if a.IsVisible(now) {
			stats.Active++
		}
		if a.Priority == models.PriorityUrgent {
			stats.Urgent++
		}
		if a.IsExpired(now) {
			stats.Expired++
		}
	}
	return stats, nil
}

func (r *fakeAnnouncementRepo) ArchiveExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, a := range r.rows {
		if a.Status == models.StatusPublished && a.IsExpired(now) {
			a.Status = models.StatusArchived
			r.rows[id] = a
			n++
		}
	}
	return n, nil
}

type fakeChatRepo struct {
	mu      sync.Mutex
	msgs    []models.ChatMessage
	failErr error
}

func (r *fakeChatRepo) Append(ctx context.Context, msg *models.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	r.msgs = append(r.msgs, *msg)
	return nil
}

func (r *fakeChatRepo) ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ChatMessage
	for _, m := range r.msgs {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) ListSessions(ctx context.Context, limit, offset int) ([]models.ChatSession, int64, error) {
	return nil, 0, nil
}

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (g *fakeGenerator) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	g.calls++
	return g.reply, g.err
}

func (g *fakeGenerator) Model() string {
	return "test-model"
}

type fakeNotifier struct {
	mu     sync.Mutex
	alerts []notification.Alert
}

func (n *fakeNotifier) NotifyAsync(alert notification.Alert) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, alert)
}

type fakeLeadRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{rows: map[uuid.UUID]models.Lead{}}
}

func (r *fakeLeadRepo) Create(ctx context.Context, l *models.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = l.BeforeCreate(nil)
	l.CreatedAt = time.Now()
	r.rows[l.ID] = *l
	return nil
}

func (r *fakeLeadRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (r *fakeLeadRepo) List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Lead
	for _, l := range r.rows {
		if filter.Status == "" || l.Status == filter.Status {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeLeadRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	l.Status = status
	r.rows[id] = l
	return nil
}

func (r *fakeLeadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

type fakeImageRepo struct {
	mu   sync.Mutex
	rows map[string]models.WebsiteImage
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{rows: map[string]models.WebsiteImage{}}
}

func (r *fakeImageRepo) GetByKey(ctx context.Context, key string) (*models.WebsiteImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.rows[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &img, nil
}

func (r *fakeImageRepo) List(ctx context.Context, page string) ([]models.WebsiteImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.WebsiteImage
	for _, img := range r.rows {
		if page == "" || img.Page == page {
			out = append(out, img)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (r *fakeImageRepo) InsertMissing(ctx context.Context, images []models.WebsiteImage) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var created []string
	for _, img := range images {
		if _, ok := r.rows[img.Key]; ok {
			continue
		}
		img.ID = uuid.New()
		r.rows[img.Key] = img
		created = append(created, img.Key)
	}
	return created, nil
}

func (r *fakeImageRepo) UpdateURL(ctx context.Context, key, url string, description *string) (*models.WebsiteImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.rows[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	img.URL = url
	if description != nil {
		img.Description = *description
	}
	r.rows[key] = img
	return &img, nil
}

func (r *fakeImageRepo) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, key)
	return nil
}

type fakeBlogRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.BlogPost
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{rows: map[uuid.UUID]models.BlogPost{}}
}

func (r *fakeBlogRepo) Create(ctx context.Context, p *models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = p.BeforeCreate(nil)
	p.CreatedAt = time.Now()
	r.rows[p.ID] = *p
	return nil
}

func (r *fakeBlogRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakeBlogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeBlogRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.rows {
		if p.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBlogRepo) List(ctx context.Context, status string, limit int) ([]models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.BlogPost
	for _, p := range r.rows {
		if status == "" || p.Status == status {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeBlogRepo) Update(ctx context.Context, p *models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[p.ID] = *p
	return nil
}

func (r *fakeBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

type fakeCommunityRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.CommunityPost
}

func newFakeCommunityRepo() *fakeCommunityRepo {
	return &fakeCommunityRepo{rows: map[uuid.UUID]models.CommunityPost{}}
}

func (r *fakeCommunityRepo) Create(ctx context.Context, p *models.CommunityPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = p.BeforeCreate(nil)
	r.rows[p.ID] = *p
	return nil
}

func (r *fakeCommunityRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CommunityPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakeCommunityRepo) List(ctx context.Context, limit, offset int) ([]models.CommunityPostView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.CommunityPostView
	for _, p := range r.rows {
		out = append(out, models.CommunityPostView{CommunityPost: p})
	}
	return out, nil
}

func (r *fakeCommunityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

var errBoom = errors.New("boom")

func fixedClock(t time.Time) clock {
	return func() time.Time { return t }
}

func strPtr(s string) *string {
	return &s
}

func errNotFoundGorm() error {
	return gorm.ErrRecordNotFound
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundzyworld/swg-site-be/internal/core/intent"
	"github.com/soundzyworld/swg-site-be/internal/core/llm"
	"github.com/soundzyworld/swg-site-be/internal/core/upload"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
	"github.com/soundzyworld/swg-site-be/internal/shared/config"
)

type stubGenerator struct {
	reply string
	err   error
}

func (g stubGenerator) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return g.reply, g.err
}

func (g stubGenerator) Model() string { return "stub" }

type memChatRepo struct {
	msgs []models.ChatMessage
}

func (r *memChatRepo) Append(ctx context.Context, msg *models.ChatMessage) error {
	r.msgs = append(r.msgs, *msg)
	return nil
}

func (r *memChatRepo) ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range r.msgs {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memChatRepo) ListSessions(ctx context.Context, limit, offset int) ([]models.ChatSession, int64, error) {
	return []models.ChatSession{}, 0, nil
}

type memAnnouncementRepo struct {
	rows []models.Announcement
}

func (r *memAnnouncementRepo) Create(ctx context.Context, a *models.Announcement) error {
	_ = a.BeforeCreate(nil)
	r.rows = append(r.rows, *a)
	return nil
}

func (r *memAnnouncementRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {
	for _, a := range r.rows {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memAnnouncementRepo) List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error) {
	return r.rows, nil
}

func (r *memAnnouncementRepo) ListVisible(ctx context.Context, now time.Time, limit int) ([]models.Announcement, error) {
	return r.rows, nil
}

func (r *memAnnouncementRepo) Update(ctx context.Context, a *models.Announcement) error { return nil }

func (r *memAnnouncementRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *memAnnouncementRepo) Stats(ctx context.Context, now time.Time) (*models.AnnouncementStats, error) {
	return &models.AnnouncementStats{Total: int64(len(r.rows))}, nil
}

func (r *memAnnouncementRepo) ArchiveExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type memImageRepo struct {
	rows map[string]models.WebsiteImage
}

func (r *memImageRepo) GetByKey(ctx context.Context, key string) (*models.WebsiteImage, error) {
	if img, ok := r.rows[key]; ok {
		return &img, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memImageRepo) List(ctx context.Context, page string) ([]models.WebsiteImage, error) {
	var out []models.WebsiteImage
	for _, img := range r.rows {
		out = append(out, img)
	}
	return out, nil
}

func (r *memImageRepo) InsertMissing(ctx context.Context, images []models.WebsiteImage) ([]string, error) {
	return nil, nil
}

func (r *memImageRepo) UpdateURL(ctx context.Context, key, url string, description *string) (*models.WebsiteImage, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *memImageRepo) Delete(ctx context.Context, key string) error { return nil }

type memCommunityRepo struct {
	rows map[uuid.UUID]models.CommunityPost
}

func (r *memCommunityRepo) Create(ctx context.Context, p *models.CommunityPost) error {
	_ = p.BeforeCreate(nil)
	r.rows[p.ID] = *p
	return nil
}

func (r *memCommunityRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CommunityPost, error) {
	if p, ok := r.rows[id]; ok {
		return &p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memCommunityRepo) List(ctx context.Context, limit, offset int) ([]models.CommunityPostView, error) {
	return nil, nil
}

func (r *memCommunityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, _ := json.Marshal(b)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	var out map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

func newChatApp(gen services.Generator) (*fiber.App, *memChatRepo) {
	repo := &memChatRepo{}
	profile := llm.DefaultBusinessProfile("+2348166687167", "info@swg.test", "https://swg.test")
	h := NewChatHandler(services.NewChatService(repo, gen, intent.Default(), nil, profile))
	app := fiber.New()
	app.Post("/chat", h.Chat)
	app.Post("/chat/session", h.NewSession)
	return app, repo
}

func TestChatHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		app, repo := newChatApp(stubGenerator{reply: "Happy to help with rentals."})
		resp, body := doJSON(t, app, "POST", "/chat", map[string]string{"message": "Do you rent speakers? I want to buy gear", "sessionId": "session_1_a"})
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if body["response"] != "Happy to help with rentals." || body["intent"] != intent.ShopInquiry {
			t.Errorf("body = %v", body)
		}
		if _, ok := body["quickReplies"].([]interface{}); !ok {
			t.Errorf("quickReplies missing: %v", body)
		}
		if len(repo.msgs) != 2 {
			t.Errorf("stored %d messages, want 2", len(repo.msgs))
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		app, _ := newChatApp(stubGenerator{reply: "x"})
		for _, payload := range []interface{}{map[string]string{"message": "hi"}, map[string]string{"sessionId": "s"}, "not json"} {
			resp, body := doJSON(t, app, "POST", "/chat", payload)
			if resp.StatusCode != fiber.StatusBadRequest || body["error"] != "Message and sessionId are required" {
				t.Errorf("payload %v: status %d body %v", payload, resp.StatusCode, body)
			}
		}
	})

	t.Run("whitespace message", func(t *testing.T) {
		app, repo := newChatApp(stubGenerator{reply: "Hi!"})
		resp, body := doJSON(t, app, "POST", "/chat", map[string]string{"message": " ", "sessionId": "s"})
		if resp.StatusCode != fiber.StatusOK || body["response"] != "Hi!" {
			t.Fatalf("status %d body %v", resp.StatusCode, body)
		}
		if len(repo.msgs) == 0 || repo.msgs[0].Message != " " {
			t.Errorf("stored %+v", repo.msgs)
		}
	})

	t.Run("generation failure", func(t *testing.T) {
		app, _ := newChatApp(stubGenerator{err: errors.New("quota exceeded")})
		resp, body := doJSON(t, app, "POST", "/chat", map[string]string{"message": "hi", "sessionId": "s"})
		if resp.StatusCode != fiber.StatusInternalServerError {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		fallback, _ := body["response"].(string)
		if !strings.Contains(fallback, "+2348166687167") || !strings.Contains(fallback, "info@swg.test") {
			t.Errorf("fallback = %q", fallback)
		}
		if body["error"] == nil {
			t.Error("error field missing")
		}
	})

	t.Run("new session", func(t *testing.T) {
		app, _ := newChatApp(stubGenerator{})
		resp, body := doJSON(t, app, "POST", "/chat/session", nil)
		id, _ := body["sessionId"].(string)
		if resp.StatusCode != fiber.StatusCreated || !strings.HasPrefix(id, "session_") {
			t.Errorf("status %d body %v", resp.StatusCode, body)
		}
	})
}

func TestLayoutHandlerAlwaysOK(t *testing.T) {
	tests := []struct {
		name       string
		gen        stubGenerator
		body       interface{}
		wantLayout string
		wantError  bool
	}{
		{"json reply", stubGenerator{reply: `Here you go {"layout":"featured","theme":"dark"}`}, map[string]interface{}{"contentType": "video", "contentData": map[string]string{"title": "x"}}, "featured", false},
		{"prose reply", stubGenerator{reply: "I think a card would look nice."}, map[string]interface{}{"contentType": "video"}, "card", true},
		{"provider down", stubGenerator{err: errors.New("timeout")}, map[string]interface{}{"contentType": "dj-tape"}, "card", true},
		{"bad body", stubGenerator{reply: "{}"}, "{", "card", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewLayoutHandler(services.NewLayoutService(tt.gen))
			app := fiber.New()
			app.Post("/generate-ui-layout", h.GenerateUILayout)

			resp, body := doJSON(t, app, "POST", "/generate-ui-layout", tt.body)
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			variant, ok := body["uiVariant"].(map[string]interface{})
			if !ok {
				t.Fatalf("uiVariant missing: %v", body)
			}
			if variant["layout"] != tt.wantLayout {
				t.Errorf("layout = %v, want %s", variant["layout"], tt.wantLayout)
			}
			if _, hasErr := body["error"]; hasErr != tt.wantError {
				t.Errorf("error present = %v, want %v", hasErr, tt.wantError)
			}
			if tt.wantError && variant["cardElevation"] != "md" {
				t.Errorf("default variant incomplete: %v", variant)
			}
		})
	}
}

func TestAnnouncementPublicRoutes(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	pinned := models.Announcement{ID: uuid.New(), Title: "pinned", Status: models.StatusPublished, Pinned: true, CreatedAt: now}
	repo := &memAnnouncementRepo{rows: []models.Announcement{
		{ID: uuid.New(), Title: "expired", Status: models.StatusPublished, Pinned: true, Priority: models.PriorityUrgent, ExpiresAt: &past, CreatedAt: now},
		{ID: uuid.New(), Title: "normal", Status: models.StatusPublished, CreatedAt: now},
		pinned,
	}}
	h := NewAnnouncementHandler(services.NewAnnouncementService(repo, nil), nil)
	app := fiber.New()
	app.Get("/announcements", h.ListVisible)
	app.Get("/announcements/banner", h.Banner)

	_, body := doJSON(t, app, "GET", "/announcements", nil)
	data, _ := body["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("got %d announcements, want 2", len(data))
	}
	if first := data[0].(map[string]interface{}); first["title"] != "pinned" {
		t.Errorf("first = %v", first["title"])
	}

	_, body = doJSON(t, app, "GET", "/announcements/banner?exclude="+pinned.ID.String(), nil)
	if body["data"] != nil {
		t.Errorf("dismissed banner returned %v", body["data"])
	}
}

func TestWebsiteImageFallback(t *testing.T) {
	repo := &memImageRepo{rows: map[string]models.WebsiteImage{
		"home.hero": {Key: "home.hero", URL: "https://cdn.test/hero.jpg", Page: "home"},
	}}
	h := NewWebsiteImageHandler(services.NewWebsiteImageService(repo, &config.ImageRegistry{}, nil), nil)
	app := fiber.New()
	app.Get("/website-images/:key", h.GetByKey)

	tests := []struct {
		path       string
		wantStatus int
		wantURL    string
	}{
		{"/website-images/home.hero", 200, "https://cdn.test/hero.jpg"},
		{"/website-images/home.missing?fallback=/img/default.png", 200, "/img/default.png"},
		{"/website-images/home.missing", 404, ""},
		{"/website-images/Bad%20Key", 400, ""},
	}
	for _, tt := range tests {
		resp, body := doJSON(t, app, "GET", tt.path, nil)
		if resp.StatusCode != tt.wantStatus {
			t.Errorf("%s: status = %d, want %d", tt.path, resp.StatusCode, tt.wantStatus)
			continue
		}
		if tt.wantURL != "" && body["url"] != tt.wantURL {
			t.Errorf("%s: url = %v", tt.path, body["url"])
		}
	}
}

func TestCommunityDeleteRequiresAuthorOrAdmin(t *testing.T) {
	author, stranger := uuid.New(), uuid.New()
	post := models.CommunityPost{ID: uuid.New(), UserID: author, Title: "t", Content: "c"}
	repo := &memCommunityRepo{rows: map[uuid.UUID]models.CommunityPost{post.ID: post}}
	h := NewCommunityHandler(services.NewCommunityService(repo))

	as := func(userID uuid.UUID, role string) *fiber.App {
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userID", userID.String())
			c.Locals("role", role)
			return c.Next()
		})
		app.Delete("/community/posts/:id", h.Delete)
		return app
	}

	path := fmt.Sprintf("/community/posts/%s", post.ID)
	if resp, _ := doJSON(t, as(stranger, "member"), "DELETE", path, nil); resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("stranger delete status = %d, want 403", resp.StatusCode)
	}
	if resp, _ := doJSON(t, as(author, "member"), "DELETE", "/community/posts/not-a-uuid", nil); resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", resp.StatusCode)
	}
	if resp, _ := doJSON(t, as(author, "member"), "DELETE", path, nil); resp.StatusCode != fiber.StatusOK {
		t.Errorf("author delete status = %d, want 200", resp.StatusCode)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("lead %w", services.ErrNotFound), 404},
		{fmt.Errorf("%w: name is required", services.ErrInvalidInput), 400},
		{fmt.Errorf("%w: slug taken", services.ErrConflict), 409},
		{services.ErrForbidden, 403},
		{upload.ErrUnknownBucket, 400},
		{upload.ErrFileTooLarge, 413},
		{errors.New("connection refused"), 500},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
	if got := cleanMessage(fmt.Errorf("%w: name is required", services.ErrInvalidInput)); got != "name is required" {
		t.Errorf("cleanMessage = %q", got)
	}
}

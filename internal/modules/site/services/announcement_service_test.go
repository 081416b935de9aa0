package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 3},
		{-4, 3},
		{1, 1},
		{10, 10},
		{25, 10},
	}
	for _, tt := range tests {
		if got := ClampLimit(tt.in); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAnnouncementListVisible(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	var (
		pinned  = models.Announcement{ID: uuid.New(), Title: "pinned", Status: models.StatusPublished, Priority: models.PriorityNormal, Pinned: true, CreatedAt: now.Add(-72 * time.Hour)}
		urgent  = models.Announcement{ID: uuid.New(), Title: "urgent", Status: models.StatusPublished, Priority: models.PriorityUrgent, CreatedAt: now.Add(-48 * time.Hour), ExpiresAt: &future}
		newer   = models.Announcement{ID: uuid.New(), Title: "newer", Status: models.StatusPublished, Priority: models.PriorityNormal, CreatedAt: now.Add(-time.Hour)}
		older   = models.Announcement{ID: uuid.New(), Title: "older", Status: models.StatusPublished, Priority: models.PriorityNormal, CreatedAt: now.Add(-96 * time.Hour)}
		expired = models.Announcement{ID: uuid.New(), Title: "expired", Status: models.StatusPublished, Priority: models.PriorityUrgent, Pinned: true, CreatedAt: now, ExpiresAt: &past}
		draft   = models.Announcement{ID: uuid.New(), Title: "draft", Status: models.StatusDraft, Pinned: true, CreatedAt: now}
	)

	svc := NewAnnouncementService(newFakeAnnouncementRepo(pinned, urgent, newer, older, expired, draft), nil)
	svc.now = fixedClock(now)

	got, err := svc.ListVisible(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	want := []string{"pinned", "urgent", "newer"}
	if len(got) != len(want) {
		t.Fatalf("got %d announcements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Title != want[i] {
			t.Errorf("position %d = %q, want %q", i, got[i].Title, want[i])
		}
	}

	all, _ := svc.ListVisible(context.Background(), 10)
	if len(all) != 4 {
		t.Errorf("limit 10 returned %d, want the 4 visible rows", len(all))
	}
}

func TestAnnouncementExpiresAtBoundary(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	a := models.Announcement{ID: uuid.New(), Status: models.StatusPublished, ExpiresAt: &now}

	svc := NewAnnouncementService(newFakeAnnouncementRepo(a), nil)
	svc.now = fixedClock(now)

	got, err := svc.ListVisible(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Error("an announcement expiring exactly now should be hidden")
	}
}

func TestAnnouncementBanner(t *testing.T) {
	now := time.Now()
	top := models.Announcement{ID: uuid.New(), Title: "top", Status: models.StatusPublished, Pinned: true, CreatedAt: now}
	next := models.Announcement{ID: uuid.New(), Title: "next", Status: models.StatusPublished, CreatedAt: now}
	svc := NewAnnouncementService(newFakeAnnouncementRepo(top, next), nil)

	banner, err := svc.Banner(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if banner == nil || banner.ID != top.ID {
		t.Fatalf("banner = %+v, want the pinned announcement", banner)
	}

	banner, err = svc.Banner(context.Background(), top.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	if banner != nil {
		t.Errorf("dismissed banner should not be shown, got %q", banner.Title)
	}

	empty := NewAnnouncementService(newFakeAnnouncementRepo(), nil)
	if b, err := empty.Banner(context.Background(), ""); err != nil || b != nil {
		t.Errorf("Banner on empty table = %v, %v; want nil, nil", b, err)
	}
}

func TestAnnouncementCreate(t *testing.T) {
	svc := NewAnnouncementService(newFakeAnnouncementRepo(), nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.AnnouncementRequest
		wantErr bool
	}{
		{"defaults", models.AnnouncementRequest{Title: "Hello", Content: "World"}, false},
		{"media pair", models.AnnouncementRequest{Title: "Hi", Content: "x", MediaType: strPtr("image"), MediaURL: strPtr("https://cdn.example.com/a.png")}, false},
		{"media type without url", models.AnnouncementRequest{Title: "Hi", Content: "x", MediaType: strPtr("image")}, true},
		{"media url without type", models.AnnouncementRequest{Title: "Hi", Content: "x", MediaURL: strPtr("https://cdn.example.com/a.png")}, true},
		{"blank url counts as unset", models.AnnouncementRequest{Title: "Hi", Content: "x", MediaType: strPtr("audio"), MediaURL: strPtr("  ")}, true},
		{"blank title", models.AnnouncementRequest{Title: "  ", Content: "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			a, err := svc.Create(ctx, &req, nil)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("err = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if (a.MediaType == nil) != (a.MediaURL == nil) {
				t.Error("media_type and media_url must be both set or both nil")
			}
		})
	}

	a, _ := svc.Create(ctx, &models.AnnouncementRequest{Title: "T", Content: "C"}, nil)
	if a.Type != models.AnnouncementTypeGeneral || a.Priority != models.PriorityNormal || a.Status != models.StatusDraft || a.TargetAudience != "all" {
		t.Errorf("defaults not applied: %+v", a)
	}
}

func TestAnnouncementUpdateAndDelete(t *testing.T) {
	existing := models.Announcement{ID: uuid.New(), Title: "old", Content: "c", Status: models.StatusDraft}
	svc := NewAnnouncementService(newFakeAnnouncementRepo(existing), nil)
	ctx := context.Background()

	old, updated, err := svc.Update(ctx, existing.ID, &models.AnnouncementRequest{Title: "new", Content: "c", Status: models.StatusPublished})
	if err != nil {
		t.Fatal(err)
	}
	if old.Title != "old" || updated.Title != "new" || updated.Status != models.StatusPublished {
		t.Errorf("update returned old=%q new=%q", old.Title, updated.Title)
	}

	if _, _, err := svc.Update(ctx, uuid.New(), &models.AnnouncementRequest{Title: "x", Content: "y"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update of unknown id err = %v, want ErrNotFound", err)
	}

	if _, err := svc.Delete(ctx, existing.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, existing.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete err = %v, want ErrNotFound", err)
	}
}

func TestAnnouncementArchiveExpiredAndStats(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	repo := newFakeAnnouncementRepo(
		models.Announcement{Status: models.StatusPublished, Priority: models.PriorityUrgent},
		models.Announcement{Status: models.StatusPublished, ExpiresAt: &past},
		models.Announcement{Status: models.StatusDraft},
	)
	svc := NewAnnouncementService(repo, nil)
	svc.now = fixedClock(now)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 3 || stats.Active != 1 || stats.Urgent != 1 || stats.Expired != 1 {
		t.Errorf("stats = %+v", stats)
	}

	n, err := svc.ArchiveExpired(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("archived %d, want 1", n)
	}
}

func TestAnnouncementUploadMediaRejectsUnknownType(t *testing.T) {
	svc := NewAnnouncementService(newFakeAnnouncementRepo(), nil)
	if _, err := svc.UploadMedia(context.Background(), "pdf", nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
)

func TestLayoutGenerate(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		err        error
		wantErr    bool
		wantLayout string
	}{
		{"clean json", `{"layout":"featured","theme":"vibrant"}`, nil, false, "featured"},
		{"json in prose", "Sure! ```json\n{\"layout\":\"compact\"}\n``` enjoy", nil, false, "compact"},
		{"no json", "I cannot help with that", nil, true, "card"},
		{"broken json", `{"layout": }`, nil, true, "card"},
		{"provider error", "", errBoom, true, "card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewLayoutService(&fakeGenerator{reply: tt.reply, err: tt.err})
			variant, err := svc.Generate(context.Background(), "video", map[string]interface{}{"title": "x"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if variant["layout"] != tt.wantLayout {
				t.Errorf("layout = %v, want %s", variant["layout"], tt.wantLayout)
			}
		})
	}
}

func TestBuildLayoutPrompt(t *testing.T) {
	p := BuildLayoutPrompt("dj-tape", map[string]interface{}{"title": "Flashback Mix"})
	if !strings.Contains(p, "Based on the following dj-tape content") || !strings.Contains(p, "Flashback Mix") {
		t.Errorf("prompt missing content: %s", p)
	}
	if !strings.Contains(BuildLayoutPrompt("video", nil), "{}") {
		t.Error("nil content should render as {}")
	}
}

func TestHintIsNilSafe(t *testing.T) {
	var svc *LayoutService
	if svc.Hint(context.Background(), "video", nil) != nil {
		t.Error("nil service should give no hint")
	}
	failing := NewLayoutService(&fakeGenerator{reply: "nope"})
	if failing.Hint(context.Background(), "video", nil) != nil {
		t.Error("failed generation should give no hint")
	}
}

type fakeVideoRepo struct {
	rows map[uuid.UUID]models.VideoEmbed
}

func (r *fakeVideoRepo) Create(ctx context.Context, v *models.VideoEmbed) error {
	_ = v.BeforeCreate(nil)
	r.rows[v.ID] = *v
	return nil
}

func (r *fakeVideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.VideoEmbed, error) {
	v, ok := r.rows[id]
	if !ok {
		return nil, errNotFoundGorm()
	}
	return &v, nil
}

func (r *fakeVideoRepo) List(ctx context.Context, status string) ([]models.VideoEmbed, error) {
	var out []models.VideoEmbed
	for _, v := range r.rows {
		if status == "" || v.Status == status {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVideoRepo) Update(ctx context.Context, v *models.VideoEmbed) error {
	r.rows[v.ID] = *v
	return nil
}

func (r *fakeVideoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func TestVideoCreateNormalizesAndHints(t *testing.T) {
	repo := &fakeVideoRepo{rows: map[uuid.UUID]models.VideoEmbed{}}
	gen := &fakeGenerator{reply: `{"layout":"featured"}`}
	svc := NewVideoService(repo, NewLayoutService(gen), nil)

	v, err := svc.Create(context.Background(), &models.VideoRequest{
		Title:     "Showreel",
		VideoType: "youtube",
		VideoURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	if err != nil {
		t.Fatal(err)
	}
	if v.VideoURL != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
		t.Errorf("video_url = %q", v.VideoURL)
	}
	if v.Status != models.VideoStatusActive {
		t.Errorf("status = %q", v.Status)
	}
	var hint map[string]interface{}
	if err := json.Unmarshal(v.UIVariant, &hint); err != nil || hint["layout"] != "featured" {
		t.Errorf("ui_variant = %s", v.UIVariant)
	}

	gen.reply = "no json today"
	_, updated, err := svc.Update(context.Background(), v.ID, &models.VideoRequest{Title: "Showreel 2", VideoType: "youtube", VideoURL: v.VideoURL})
	if err != nil {
		t.Fatal(err)
	}
	if string(updated.UIVariant) != string(v.UIVariant) {
		t.Errorf("existing hint should be kept, got %s", updated.UIVariant)
	}
	if updated.VideoURL != v.VideoURL {
		t.Errorf("embeddable url changed to %q", updated.VideoURL)
	}
}

func TestVideoCreateRejectsUnknownType(t *testing.T) {
	svc := NewVideoService(&fakeVideoRepo{rows: map[uuid.UUID]models.VideoEmbed{}}, nil, nil)
	_, err := svc.Create(context.Background(), &models.VideoRequest{Title: "x", VideoType: "vimeo", VideoURL: "https://vimeo.com/1"})
	if err == nil {
		t.Fatal("expected an error for an unknown video type")
	}
}

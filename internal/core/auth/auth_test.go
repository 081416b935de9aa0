package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	bcryptCost = bcrypt.MinCost
}

type fakeRepo struct {
	mu       sync.Mutex
	profiles map[string]*Profile
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{profiles: map[string]*Profile{}}
}

func (r *fakeRepo) Create(ctx context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = p.BeforeCreate(nil)
	cp := *p
	r.profiles[p.ID.String()] = &cp
	return nil
}

func (r *fakeRepo) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if strings.EqualFold(p.Email, email) && p.IsActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok && p.IsActive {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) Update(ctx context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.profiles[p.ID.String()] = &cp
	return nil
}

func (r *fakeRepo) UpdateRefreshToken(ctx context.Context, id string, token *string, expiresAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		p.RefreshToken = token
		p.RefreshTokenExpiresAt = expiresAt
	}
	return nil
}

func (r *fakeRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		p.LastLoginAt = &at
	}
	return nil
}

func (r *fakeRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func newTestService() *Service {
	return NewService(newFakeRepo(), NewJWTService("test-secret"))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{Email: "Fan@Example.com", Password: "password1", FullName: "Fan"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.User.Role != RoleMember {
		t.Errorf("role = %q, want member", resp.User.Role)
	}
	if resp.User.Email != "fan@example.com" {
		t.Errorf("email not normalised: %q", resp.User.Email)
	}

	if _, err := svc.Register(ctx, &RegisterRequest{Email: "fan@example.com", Password: "password1", FullName: "Again"}); err != ErrEmailTaken {
		t.Errorf("duplicate register err = %v, want ErrEmailTaken", err)
	}

	if _, err := svc.Login(ctx, &LoginRequest{Email: "fan@example.com", Password: "wrong-pass"}); err != ErrInvalidCredentials {
		t.Errorf("bad password err = %v", err)
	}

	login, err := svc.Login(ctx, &LoginRequest{Email: "fan@example.com", Password: "password1"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	claims, err := svc.ValidateToken(login.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.Role != RoleMember {
		t.Errorf("claims role = %q", claims.Role)
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Register(ctx, &RegisterRequest{Email: "a@b.co", Password: "password1", FullName: "A"})
	if err != nil {
		t.Fatal(err)
	}

	second, err := svc.RefreshToken(ctx, first.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}

	// the first refresh token was replaced by the rotation
	if _, err := svc.RefreshToken(ctx, first.RefreshToken); err != ErrInvalidToken {
		t.Errorf("reused refresh token err = %v, want ErrInvalidToken", err)
	}

	// access tokens are not accepted as refresh tokens
	if _, err := svc.RefreshToken(ctx, second.AccessToken); err != ErrInvalidToken {
		t.Errorf("access token as refresh err = %v", err)
	}

	// refresh tokens are not accepted as access tokens
	if _, err := svc.ValidateToken(second.RefreshToken); err == nil {
		t.Error("refresh token accepted as access token")
	}
}

func TestEnsureAdmin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.EnsureAdmin(ctx, "admin@soundzyworld.com.ng", "supersecret"); err != nil {
		t.Fatal(err)
	}
	// idempotent
	if err := svc.EnsureAdmin(ctx, "admin@soundzyworld.com.ng", "supersecret"); err != nil {
		t.Fatal(err)
	}

	resp, err := svc.Login(ctx, &LoginRequest{Email: "admin@soundzyworld.com.ng", Password: "supersecret"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.User.Role != RoleAdmin {
		t.Errorf("role = %q, want admin", resp.User.Role)
	}
}

func TestRequireRole(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	_ = svc.EnsureAdmin(ctx, "admin@x.co", "supersecret")
	admin, _ := svc.Login(ctx, &LoginRequest{Email: "admin@x.co", Password: "supersecret"})
	member, _ := svc.Register(ctx, &RegisterRequest{Email: "m@x.co", Password: "password1", FullName: "M"})

	app := fiber.New()
	app.Get("/admin/ping", AuthMiddleware(svc), RequireRole(RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", fiber.StatusUnauthorized},
		{"bad scheme", "Token abc", fiber.StatusUnauthorized},
		{"garbage token", "Bearer abc", fiber.StatusUnauthorized},
		{"member", "Bearer " + member.AccessToken, fiber.StatusForbidden},
		{"admin", "Bearer " + admin.AccessToken, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestHandlerRegisterValidation(t *testing.T) {
	h := NewHandler(newTestService())
	app := fiber.New()
	app.Post("/auth/register", h.Register)

	body, _ := json.Marshal(map[string]string{"email": "not-an-email", "password": "x"})
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestJWTServiceRejectsExpiredAndForeignTokens(t *testing.T) {
	s := NewJWTService("test-secret")
	s.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, _, err := s.GenerateAccessToken(&TokenClaims{UserID: "u1", Role: RoleAdmin})
	if err != nil {
		t.Fatal(err)
	}
	s.now = time.Now
	if _, err := s.ValidateAccessToken(expired); err == nil {
		t.Error("expired access token accepted")
	}

	other := NewJWTService("other-secret")
	foreign, _, err := other.GenerateAccessToken(&TokenClaims{UserID: "u1", Role: RoleAdmin})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.ValidateAccessToken(foreign); err == nil {
		t.Error("token signed with another secret accepted")
	}

	valid, _, _ := s.GenerateAccessToken(&TokenClaims{UserID: "u1", Email: "a@b.c", Role: RoleAdmin})
	claims, err := s.ValidateAccessToken(valid)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "u1" || claims.Email != "a@b.c" || claims.Role != RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}
	if _, err := s.ValidateRefreshToken(valid); err == nil {
		t.Error("access token accepted as refresh token")
	}
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

type Service struct {
	repo       Repository
	jwtService *JWTService
}

// NewService creates a new auth service
func NewService(repo Repository, jwtService *JWTService) *Service {
	return &Service{
		repo:       repo,
		jwtService: jwtService,
	}
}

// Register creates a member account
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         RoleMember,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("email", profile.Email).Str("id", profile.ID.String()).Msg("✅ User registered")
	return s.generateAuthResponse(ctx, profile)
}

// Login authenticates user with email and password
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	profile, err := s.repo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := VerifyPassword(profile.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(ctx, profile.ID.String(), time.Now()); err != nil {
		log.Warn().Err(err).Str("id", profile.ID.String()).Msg("⚠️ Failed to update last login")
	}

	log.Info().Str("email", profile.Email).Str("role", profile.Role).Msg("✅ User logged in")
	return s.generateAuthResponse(ctx, profile)
}

// RefreshToken rotates the token pair; the presented refresh token must match the stored one
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if profile.RefreshToken == nil || *profile.RefreshToken != refreshToken {
		return nil, ErrInvalidToken
	}
	if profile.RefreshTokenExpiresAt != nil && profile.RefreshTokenExpiresAt.Before(time.Now()) {
		return nil, ErrInvalidToken
	}

	return s.generateAuthResponse(ctx, profile)
}

// Logout revokes user's refresh token
func (s *Service) Logout(ctx context.Context, userID string) error {
	if err := s.repo.UpdateRefreshToken(ctx, userID, nil, nil); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	log.Info().Str("id", userID).Msg("✅ User logged out")
	return nil
}

// ValidateToken validates an access token and returns its claims
func (s *Service) ValidateToken(accessToken string) (*TokenClaims, error) {
	claims, err := s.jwtService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*UserInfo, error) {
	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(profile), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*UserInfo, error) {
	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.FullName != nil {
		profile.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return toUserInfo(profile), nil
}

// EnsureAdmin creates the admin account if it does not exist, or promotes an existing profile with that email.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		log.Warn().Msg("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	profile, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if profile.Role == RoleAdmin {
			return nil
		}
		profile.Role = RoleAdmin
		if err := s.repo.Update(ctx, profile); err != nil {
			return fmt.Errorf("failed to promote admin: %w", err)
		}
		log.Info().Str("email", email).Msg("👑 Existing profile promoted to admin")
		return nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := HashPassword(password)
		if err != nil {
			return err
		}
		admin := &Profile{
			Email:        strings.ToLower(email),
			FullName:     "Site Admin",
			Role:         RoleAdmin,
			PasswordHash: hash,
			IsActive:     true,
		}
		if err := s.repo.Create(ctx, admin); err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
		log.Info().Str("email", email).Msg("👑 Admin account created")
		return nil

	default:
		return fmt.Errorf("failed to look up admin: %w", err)
	}
}

func (s *Service) generateAuthResponse(ctx context.Context, profile *Profile) (*AuthResponse, error) {
	accessToken, expiresIn, err := s.jwtService.GenerateAccessToken(&TokenClaims{
		UserID: profile.ID.String(),
		Email:  profile.Email,
		Role:   profile.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, expiresAt, err := s.jwtService.GenerateRefreshToken(profile.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.repo.UpdateRefreshToken(ctx, profile.ID.String(), &refreshToken, &expiresAt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         toUserInfo(profile),
	}, nil
}

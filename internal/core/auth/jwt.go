package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer      = "swg-site-api"
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var errWrongTokenType = errors.New("wrong token type")

// siteClaims is the payload of both token kinds; refresh tokens leave Email and Role empty
type siteClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies HS256 tokens for admin and member sessions
type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	parser     *jwt.Parser
	now        func() time.Time
}

func NewJWTService(secretKey string) *JWTService {
	return &JWTService{
		secret:     []byte(secretKey),
		accessTTL:  15 * time.Minute,
		refreshTTL: 7 * 24 * time.Hour,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(tokenIssuer),
			jwt.WithExpirationRequired(),
		),
		now: time.Now,
	}
}

func (s *JWTService) sign(c *siteClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// GenerateAccessToken returns the signed token and its lifetime in seconds
func (s *JWTService) GenerateAccessToken(claims *TokenClaims) (string, int64, error) {
	now := s.now()
	signed, err := s.sign(&siteClaims{
		Email: claims.Email,
		Role:  claims.Role,
		Type:  tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	})
	if err != nil {
		return "", 0, fmt.Errorf("sign access token: %w", err)
	}
	return signed, int64(s.accessTTL.Seconds()), nil
}

// GenerateRefreshToken carries a random jti so two refreshes in the same second still differ
func (s *JWTService) GenerateRefreshToken(userID string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.refreshTTL)
	signed, err := s.sign(&siteClaims{
		Type: tokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign refresh token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *JWTService) parse(tokenString, wantType string) (*siteClaims, error) {
	claims := &siteClaims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse %s token: %w", wantType, err)
	}
	if claims.Type != wantType {
		return nil, fmt.Errorf("%w: want %s, got %q", errWrongTokenType, wantType, claims.Type)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%s token has no subject", wantType)
	}
	return claims, nil
}

func (s *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	c, err := s.parse(tokenString, tokenTypeAccess)
	if err != nil {
		return nil, err
	}
	return &TokenClaims{UserID: c.Subject, Email: c.Email, Role: c.Role}, nil
}

// ValidateRefreshToken returns the user id the refresh token was issued to
func (s *JWTService) ValidateRefreshToken(tokenString string) (string, error) {
	c, err := s.parse(tokenString, tokenTypeRefresh)
	if err != nil {
		return "", err
	}
	return c.Subject, nil
}

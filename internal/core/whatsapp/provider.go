package whatsapp

import (
	"context"
	"fmt"
	"strings"
)

// Provider sends outbound WhatsApp messages to the business team
type Provider interface {
	SendMessage(ctx context.Context, phoneNumber, message string) error
	GetProviderName() string
}

// ProviderType untuk factory
type ProviderType string

const (
	ProviderNone     ProviderType = "none"
	ProviderCloudAPI ProviderType = "cloudapi"
	ProviderGreenAPI ProviderType = "greenapi"
)

// ProviderConfig konfigurasi untuk provider
type ProviderConfig struct {
	Type ProviderType

	// Cloud API
	CloudPhoneID     string
	CloudAccessToken string

	// Green API
	GreenAPIInstanceID string
	GreenAPIToken      string
	GreenAPIURL        string
}

// NewProvider builds the configured provider; ProviderNone returns nil
func NewProvider(cfg *ProviderConfig) (Provider, error) {
	switch cfg.Type {
	case ProviderNone, "":
		return nil, nil

	case ProviderCloudAPI:
		p, err := NewCloudAPIProvider(CloudAPIConfig{
			PhoneID:     cfg.CloudPhoneID,
			AccessToken: cfg.CloudAccessToken,
		})
		if err != nil {
			return nil, err
		}
		return p, nil

	case ProviderGreenAPI:
		if cfg.GreenAPIInstanceID == "" || cfg.GreenAPIToken == "" {
			return nil, fmt.Errorf("GREENAPI_INSTANCE_ID and GREENAPI_API_TOKEN are required")
		}
		url := cfg.GreenAPIURL
		if url == "" {
			url = "https://api.green-api.com"
		}
		return NewGreenAPIProvider(cfg.GreenAPIInstanceID, cfg.GreenAPIToken, url), nil

	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}

// NormalizePhone strips everything but digits, e.g. "+234 816 668 7167" -> "2348166687167"
func NormalizePhone(phone string) string {
	phone = strings.TrimSuffix(phone, "@c.us")
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

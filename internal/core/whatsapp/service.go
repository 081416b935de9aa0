package whatsapp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"
)

// Service sends alerts and builds click-to-chat links for the business number
type Service struct {
	provider       Provider
	businessNumber string
}

// NewService wraps provider; provider may be nil when outbound messaging is disabled
func NewService(provider Provider, businessNumber string) *Service {
	if provider != nil {
		log.Info().Str("provider", provider.GetProviderName()).Msg("✅ Using WhatsApp provider")
	}
	return &Service{provider: provider, businessNumber: NormalizePhone(businessNumber)}
}

func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

func (s *Service) SendMessage(ctx context.Context, phoneNumber, message string) error {
	if !s.Enabled() {
		return fmt.Errorf("whatsapp provider not configured")
	}
	return s.provider.SendMessage(ctx, phoneNumber, message)
}

func (s *Service) GetProviderName() string {
	if !s.Enabled() {
		return "none"
	}
	return s.provider.GetProviderName()
}

// ChatLink builds a wa.me click-to-chat URL with optional prefilled text
func (s *Service) ChatLink(text string) string {
	return ChatLink(s.businessNumber, text)
}

// ChatLink builds https://wa.me/<digits>?text=<encoded>
func ChatLink(number, text string) string {
	link := "https://wa.me/" + NormalizePhone(number)
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}

// QRCode renders content as a PNG QR code
func QRCode(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	if size > 1024 {
		size = 1024
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}

package email

import (
	"context"
	"fmt"
)

// Provider defines the interface for email providers
type Provider interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
	GetProviderName() string
}

// Service wraps the email provider
type Service struct {
	provider Provider
}

// NewService creates a new email service; a nil provider makes every send fail with a clear error
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// NewProvider picks the provider by name ("resend" or "brevo"); empty name returns nil
func NewProvider(name, resendKey, brevoKey, fromEmail, fromName string) (Provider, error) {
	switch name {
	case "":
		return nil, nil
	case "resend":
		if resendKey == "" {
			return nil, fmt.Errorf("RESEND_API_KEY is required")
		}
		return NewResendProvider(resendKey, fromEmail, fromName), nil
	case "brevo":
		if brevoKey == "" {
			return nil, fmt.Errorf("BREVO_API_KEY is required")
		}
		return NewBrevoProvider(brevoKey, fromEmail, fromName), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", name)
	}
}

func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// SendEmail sends an HTML email
func (s *Service) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	if !s.Enabled() {
		return fmt.Errorf("no email provider configured")
	}
	return s.provider.SendEmail(ctx, to, subject, htmlBody)
}

// SendTemplateEmail renders the notification layout around title and lines
func (s *Service) SendTemplateEmail(ctx context.Context, to, subject string, data TemplateData) error {
	body, err := RenderNotification(data)
	if err != nil {
		return err
	}
	return s.SendEmail(ctx, to, subject, body)
}

func (s *Service) GetProviderName() string {
	if !s.Enabled() {
		return "none"
	}
	return s.provider.GetProviderName()
}

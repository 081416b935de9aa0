package email

import (
	"context"
	"time"

	"github.com/soundzyworld/swg-site-be/internal/shared/httpclient"
)

// BrevoProvider sends transactional mail through Brevo's SMTP API
type BrevoProvider struct {
	sender   brevoContact
	endpoint string
	client   *httpclient.Client
}

type brevoContact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoEmailRequest struct {
	Sender      brevoContact   `json:"sender"`
	To          []brevoContact `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent,omitempty"`
}

func NewBrevoProvider(apiKey, fromEmail, fromName string) *BrevoProvider {
	return &BrevoProvider{
		sender:   brevoContact{Email: fromEmail, Name: fromName},
		endpoint: "https://api.brevo.com/v3/smtp/email",
		client:   httpclient.New("brevo", 15*time.Second, map[string]string{"api-key": apiKey}),
	}
}

func (p *BrevoProvider) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	return p.client.PostJSON(ctx, p.endpoint, brevoEmailRequest{
		Sender:      p.sender,
		To:          []brevoContact{{Email: to}},
		Subject:     subject,
		HTMLContent: htmlBody,
	}, nil)
}

func (p *BrevoProvider) GetProviderName() string {
	return "brevo"
}

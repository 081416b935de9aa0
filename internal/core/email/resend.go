package email

import (
	"context"
	"fmt"
	"time"

	"github.com/soundzyworld/swg-site-be/internal/shared/httpclient"
)

// ResendProvider sends through the Resend /emails endpoint
type ResendProvider struct {
	from     string
	endpoint string
	client   *httpclient.Client
}

func NewResendProvider(apiKey, fromEmail, fromName string) *ResendProvider {
	from := fromEmail
	if fromName != "" {
		from = fmt.Sprintf("%s <%s>", fromName, fromEmail)
	}
	return &ResendProvider{
		from:     from,
		endpoint: "https://api.resend.com/emails",
		client: httpclient.New("resend", 15*time.Second, map[string]string{
			"Authorization": "Bearer " + apiKey,
		}),
	}
}

type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
}

func (p *ResendProvider) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	return p.client.PostJSON(ctx, p.endpoint, resendEmailRequest{
		From:    p.from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	}, nil)
}

func (p *ResendProvider) GetProviderName() string {
	return "resend"
}

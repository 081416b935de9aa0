package whatsapp

import (
	"context"
	"fmt"
	"time"

	"github.com/soundzyworld/swg-site-be/internal/shared/httpclient"
)

const cloudAPIVersion = "v18.0"

// CloudAPIProvider sends text messages through Meta's WhatsApp Cloud API
type CloudAPIProvider struct {
	messagesURL string
	client      *httpclient.Client
}

type CloudAPIConfig struct {
	PhoneID     string
	AccessToken string
	APIVersion  string
	BaseURL     string // graph.facebook.com unless overridden
}

type cloudTextMessage struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		PreviewURL bool   `json:"preview_url"`
		Body       string `json:"body"`
	} `json:"text"`
}

type cloudSendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

func NewCloudAPIProvider(cfg CloudAPIConfig) (*CloudAPIProvider, error) {
	if cfg.PhoneID == "" || cfg.AccessToken == "" {
		return nil, fmt.Errorf("WHATSAPP_PHONE_NUMBER_ID and WHATSAPP_ACCESS_TOKEN are required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = cloudAPIVersion
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://graph.facebook.com"
	}
	return &CloudAPIProvider{
		messagesURL: fmt.Sprintf("%s/%s/%s/messages", cfg.BaseURL, cfg.APIVersion, cfg.PhoneID),
		client: httpclient.New("whatsapp cloud", 30*time.Second, map[string]string{
			"Authorization": "Bearer " + cfg.AccessToken,
		}),
	}, nil
}

func (p *CloudAPIProvider) SendMessage(ctx context.Context, to, message string) error {
	msg := cloudTextMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               NormalizePhone(to),
		Type:             "text",
	}
	msg.Text.Body = message

	var out cloudSendResponse
	if err := p.client.PostJSON(ctx, p.messagesURL, msg, &out); err != nil {
		return err
	}
	if len(out.Messages) == 0 {
		return fmt.Errorf("whatsapp cloud: message to %s was not accepted", msg.To)
	}
	return nil
}

func (p *CloudAPIProvider) GetProviderName() string {
	return "WhatsApp Cloud API"
}

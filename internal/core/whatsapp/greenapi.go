package whatsapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/soundzyworld/swg-site-be/internal/shared/httpclient"
)

// GreenAPIProvider sends through a Green API instance; the token travels in the URL path
type GreenAPIProvider struct {
	sendURL string
	client  *httpclient.Client
}

func NewGreenAPIProvider(instanceID, token, baseURL string) *GreenAPIProvider {
	return &GreenAPIProvider{
		sendURL: fmt.Sprintf("%s/waInstance%s/sendMessage/%s", strings.TrimRight(baseURL, "/"), instanceID, token),
		client:  httpclient.New("green api", 30*time.Second, nil),
	}
}

func (g *GreenAPIProvider) GetProviderName() string {
	return "GreenAPI"
}

// SendMessage addresses the personal chat id, e.g. 2348166687167@c.us
func (g *GreenAPIProvider) SendMessage(ctx context.Context, phoneNumber, message string) error {
	payload := struct {
		ChatID  string `json:"chatId"`
		Message string `json:"message"`
	}{
		ChatID:  NormalizePhone(phoneNumber) + "@c.us",
		Message: message,
	}
	return g.client.PostJSON(ctx, g.sendURL, payload, nil)
}

package llm

import (
	"context"
	"strings"

	"github.com/soundzyworld/swg-site-be/internal/core/intent"
)

// OfflineProvider answers from scripted replies. Selected with LLM_PROVIDER=offline
// for local development.
type OfflineProvider struct {
	classifier *intent.Classifier
	replies    map[string]string
}

func NewOfflineProvider() *OfflineProvider {
	return &OfflineProvider{
		classifier: intent.Default(),
		replies: map[string]string{
			intent.BookingInquiry: "That's exciting! Can I grab a few details so we can set up your event with the best vibe?\n\n" +
				"• Your full name and phone number\n• Your event date, location and type of service (DJ set, MC)\n• Any special requests\n\n" +
				"Once you share them, our team will reach out on WhatsApp to confirm everything.",
			intent.ShopInquiry: "Great choice! We stock professional audio and stage gear.\n\n" +
				"What are you looking for?\n• Speakers & Sound Systems\n• Mixers & DJ Equipment\n• Stage Lighting\n• Installation Services",
			intent.CreativeInquiry: "Our creative team handles logos, brand identity, web design and video production. " +
				"Logo design starts from ₦29,355 and all prices are negotiable. Which project do you have in mind?",
			intent.MediaRequest: "Sure thing! Check out DJ Soundzy's mixes on the DJ page: Flashback Mix, Weekend Vibes and Festival Energy. " +
				"Tap one to stream it right away.",
			intent.PricingInquiry: "Great question! Pricing depends on the service, whether DJ sets, equipment hire or production. " +
				"Tell me which service you need and your event date, and we'll share a personalised estimate.",
			intent.GeneralInquiry: "Thanks for reaching out! I can help you with booking DJ Soundzy, shopping for audio equipment, " +
				"our creative services or playing our latest mixes. What interests you most?",
		},
	}
}

func (p *OfflineProvider) GetProviderName() string {
	return "Offline"
}

// GenerateResponse classifies the text after the last "USER MESSAGE:" marker and returns the scripted reply.
func (p *OfflineProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	msg := userMessage
	if i := strings.LastIndex(msg, "USER MESSAGE:"); i >= 0 {
		msg = msg[i+len("USER MESSAGE:"):]
		if j := strings.Index(msg, "\n\n"); j >= 0 {
			msg = msg[:j]
		}
	}

	return p.replies[p.classifier.Classify(msg).Intent], nil
}

package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/soundzyworld/swg-site-be/internal/core/email"
)

// Channel represents a notification channel
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
)

// WhatsAppSender is satisfied by whatsapp.Service
type WhatsAppSender interface {
	Enabled() bool
	SendMessage(ctx context.Context, phoneNumber, message string) error
}

// EmailSender is satisfied by email.Service
type EmailSender interface {
	Enabled() bool
	SendTemplateEmail(ctx context.Context, to, subject string, data email.TemplateData) error
}

// Alert is a message for the business team
type Alert struct {
	Subject string
	Message string
	Fields  []email.Field
	LinkURL string
}

// Service fans alerts out to every configured admin contact
type Service struct {
	whatsapp    WhatsAppSender
	email       EmailSender
	adminPhones []string
	adminEmails []string
	timeout     time.Duration
}

// NewService creates a new notification service; either sender may be nil
func NewService(wa WhatsAppSender, mail EmailSender, adminPhones, adminEmails []string) *Service {
	return &Service{
		whatsapp:    wa,
		email:       mail,
		adminPhones: compact(adminPhones),
		adminEmails: compact(adminEmails),
		timeout:     20 * time.Second,
	}
}

// Channels lists the channels that will actually deliver
func (s *Service) Channels() []Channel {
	var out []Channel
	if s.whatsapp != nil && s.whatsapp.Enabled() && len(s.adminPhones) > 0 {
		out = append(out, ChannelWhatsApp)
	}
	if s.email != nil && s.email.Enabled() && len(s.adminEmails) > 0 {
		out = append(out, ChannelEmail)
	}
	return out
}

// Send delivers alert to all admins. Returns the number of successful deliveries.
func (s *Service) Send(ctx context.Context, alert Alert) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sent := 0
	var errs []string

	for _, ch := range s.Channels() {
		switch ch {
		case ChannelWhatsApp:
			text := formatWhatsApp(alert)
			for _, phone := range s.adminPhones {
				if err := s.whatsapp.SendMessage(ctx, phone, text); err != nil {
					log.Error().Err(err).Str("phone", phone).Msg("❌ Failed to send WhatsApp alert")
					errs = append(errs, err.Error())
					continue
				}
				sent++
			}

		case ChannelEmail:
			data := email.TemplateData{
				Title:    alert.Subject,
				Intro:    alert.Message,
				Fields:   alert.Fields,
				LinkURL:  alert.LinkURL,
				LinkText: "Open",
				Footer:   "Soundzy World Global - automated notification",
			}
			for _, to := range s.adminEmails {
				if err := s.email.SendTemplateEmail(ctx, to, alert.Subject, data); err != nil {
					log.Error().Err(err).Str("to", to).Msg("❌ Failed to send email alert")
					errs = append(errs, err.Error())
					continue
				}
				sent++
			}
		}
	}

	if len(errs) > 0 {
		return sent, fmt.Errorf("failed to send notifications: %s", strings.Join(errs, "; "))
	}
	return sent, nil
}

// NotifyAsync sends in the background; failures are only logged
func (s *Service) NotifyAsync(alert Alert) {
	if len(s.Channels()) == 0 {
		return
	}
	go func() {
		if n, err := s.Send(context.Background(), alert); err != nil {
			log.Warn().Err(err).Int("delivered", n).Str("subject", alert.Subject).Msg("⚠️ Notification partially failed")
		}
	}()
}

// LeadAlert builds the alert for a new contact/booking request
func LeadAlert(name, phone, emailAddr, service, eventDate, message, source string) Alert {
	fields := []email.Field{
		{Label: "Name", Value: name},
		{Label: "Phone", Value: phone},
	}
	optional := []email.Field{
		{Label: "Email", Value: emailAddr},
		{Label: "Service", Value: service},
		{Label: "Event date", Value: eventDate},
		{Label: "Source", Value: source},
		{Label: "Message", Value: message},
	}
	for _, f := range optional {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return Alert{
		Subject: "New lead: " + name,
		Message: "A new enquiry was submitted on the website.",
		Fields:  fields,
	}
}

// BookingIntentAlert builds the alert for a chat visitor asking to book
func BookingIntentAlert(sessionID, message string) Alert {
	return Alert{
		Subject: "Booking enquiry in website chat",
		Message: "A chat visitor asked about booking.",
		Fields: []email.Field{
			{Label: "Session", Value: sessionID},
			{Label: "Message", Value: message},
		},
	}
}

func formatWhatsApp(alert Alert) string {
	var sb strings.Builder
	sb.WriteString("*" + alert.Subject + "*\n\n")
	if alert.Message != "" {
		sb.WriteString(alert.Message + "\n\n")
	}
	for _, f := range alert.Fields {
		sb.WriteString(fmt.Sprintf("%s: %s\n", f.Label, f.Value))
	}
	if alert.LinkURL != "" {
		sb.WriteString("\n" + alert.LinkURL)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

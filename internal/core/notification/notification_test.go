package notification

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/soundzyworld/swg-site-be/internal/core/email"
)

type fakeWhatsApp struct {
	mu   sync.Mutex
	sent map[string]string
	fail string
}

func (f *fakeWhatsApp) Enabled() bool { return true }

func (f *fakeWhatsApp) SendMessage(ctx context.Context, phone, msg string) error {
	if phone == f.fail {
		return errors.New("unreachable")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sent == nil {
		f.sent = map[string]string{}
	}
	f.sent[phone] = msg
	return nil
}

type fakeEmail struct {
	subjects []string
}

func (f *fakeEmail) Enabled() bool { return true }

func (f *fakeEmail) SendTemplateEmail(ctx context.Context, to, subject string, data email.TemplateData) error {
	f.subjects = append(f.subjects, subject)
	return nil
}

func TestSendFansOut(t *testing.T) {
	wa := &fakeWhatsApp{}
	mail := &fakeEmail{}
	svc := NewService(wa, mail, []string{"2348000000001", " ", "2348000000002"}, []string{"ops@example.com"})

	alert := LeadAlert("Ada", "0800", "", "DJ booking", "2026-12-24", "", "website")
	n, err := svc.Send(context.Background(), alert)
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if n != 3 {
		t.Errorf("delivered = %d, want 3", n)
	}

	msg := wa.sent["2348000000001"]
	if !strings.HasPrefix(msg, "*New lead: Ada*") || !strings.Contains(msg, "Service: DJ booking") {
		t.Errorf("unexpected WhatsApp body: %q", msg)
	}
	if strings.Contains(msg, "Email:") {
		t.Error("empty optional fields should be omitted")
	}
	if len(mail.subjects) != 1 || mail.subjects[0] != "New lead: Ada" {
		t.Errorf("email subjects = %v", mail.subjects)
	}
}

func TestSendPartialFailure(t *testing.T) {
	wa := &fakeWhatsApp{fail: "bad"}
	svc := NewService(wa, nil, []string{"bad", "good"}, nil)

	n, err := svc.Send(context.Background(), BookingIntentAlert("session_1", "book a dj"))
	if err == nil {
		t.Error("expected error for failed recipient")
	}
	if n != 1 {
		t.Errorf("delivered = %d, want 1", n)
	}
}

func TestChannelsRequireRecipients(t *testing.T) {
	svc := NewService(&fakeWhatsApp{}, &fakeEmail{}, nil, nil)
	if got := svc.Channels(); len(got) != 0 {
		t.Errorf("Channels() = %v, want none", got)
	}
}

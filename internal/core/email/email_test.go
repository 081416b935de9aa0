package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRenderNotificationEscapes(t *testing.T) {
	html, err := RenderNotification(TemplateData{
		Title:  "New lead",
		Fields: []Field{{Label: "Name", Value: "<script>alert(1)</script>"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("field value was not escaped")
	}
	if !strings.Contains(html, "Soundzy World Global website") {
		t.Error("default footer missing")
	}
}

func TestResendProviderSend(t *testing.T) {
	var got resendEmailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("missing bearer key")
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewResendProvider("key", "noreply@soundzyworld.com.ng", "SWG")
	p.endpoint = srv.URL

	svc := NewService(p)
	if err := svc.SendTemplateEmail(context.Background(), "owner@example.com", "New lead", TemplateData{Title: "New lead"}); err != nil {
		t.Fatal(err)
	}
	if got.From != "SWG <noreply@soundzyworld.com.ng>" || got.To[0] != "owner@example.com" {
		t.Errorf("unexpected request: %+v", got)
	}
}

func TestServiceWithoutProvider(t *testing.T) {
	svc := NewService(nil)
	if svc.Enabled() {
		t.Error("service without provider should be disabled")
	}
	if err := svc.SendEmail(context.Background(), "a@b.c", "s", "b"); err == nil {
		t.Error("expected error without provider")
	}
}

func TestNewProvider(t *testing.T) {
	if p, err := NewProvider("", "", "", "", ""); p != nil || err != nil {
		t.Errorf("empty name = %v, %v", p, err)
	}
	if _, err := NewProvider("resend", "", "", "", ""); err == nil {
		t.Error("expected error for missing resend key")
	}
	if p, err := NewProvider("brevo", "", "k", "a@b.c", "n"); err != nil || p.GetProviderName() != "brevo" {
		t.Errorf("brevo = %v, %v", p, err)
	}
}

func TestBrevoProviderSend(t *testing.T) {
	var got brevoEmailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "k" {
			t.Errorf("missing api-key header")
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<1@smtp-relay>"}`))
	}))
	defer srv.Close()

	p := NewBrevoProvider("k", "noreply@soundzyworld.com.ng", "SWG")
	p.endpoint = srv.URL
	if err := p.SendEmail(context.Background(), "owner@example.com", "New lead", "<p>hi</p>"); err != nil {
		t.Fatal(err)
	}
	if got.Sender.Name != "SWG" || got.To[0].Email != "owner@example.com" || got.HTMLContent != "<p>hi</p>" {
		t.Errorf("unexpected request: %+v", got)
	}
}

func TestBrevoProviderRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewBrevoProvider("bad", "a@b.c", "")
	p.endpoint = srv.URL
	if err := p.SendEmail(context.Background(), "x@y.z", "s", "b"); err == nil {
		t.Error("expected error on 401")
	}
}

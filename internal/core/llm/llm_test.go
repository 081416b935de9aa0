package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt(DefaultBusinessProfile("+234 816 668 7167", "Info@soundzyworld.com.ng", "https://soundzyworld.com.ng"))

	for _, want := range []string{
		"Soundzy World Global (SWG)",
		"Port Harcourt",
		"+234 816 668 7167",
		"Info@soundzyworld.com.ng",
		"Logo Design (from ₦29,355)",
		"RESPONSE STYLE:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"bare", `{"a":1}`, `{"a":1}`, true},
		{"fenced", "```json\n{\"a\":{\"b\":2}}\n```", `{"a":{"b":2}}`, true},
		{"greedy across objects", `x {"a":1} y {"b":2} z`, `{"a":1} y {"b":2}`, true},
		{"no object", "sorry, I cannot help", "", false},
		{"reversed braces", "} {", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ExtractJSONObject(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGeminiProviderGenerateResponse(t *testing.T) {
	var gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/models/gemini-test:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "k" {
			t.Errorf("missing api key header")
		}
		body, _ := io.ReadAll(r.Body)
		var req geminiRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("bad request body: %v", err)
			return
		}
		gotText = req.Contents[0].Parts[0].Text

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hello from Gemini"}]}}]}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider("k", "gemini-test", 0, 0).WithBaseURL(srv.URL)
	resp, err := p.GenerateResponse(context.Background(), "CONTEXT", "USER MESSAGE: hi")
	if err != nil {
		t.Fatalf("GenerateResponse error: %v", err)
	}
	if resp != "Hello from Gemini" {
		t.Errorf("resp = %q", resp)
	}
	if gotText != "CONTEXT\n\nUSER MESSAGE: hi" {
		t.Errorf("request text = %q", gotText)
	}
}

func TestGeminiProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider("k", "gemini-test", 0, 0).WithBaseURL(srv.URL)
	_, err := p.GenerateResponse(context.Background(), "", "hi")
	if err == nil {
		t.Fatal("expected error on 429")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error should carry the API message, got %v", err)
	}
}

func TestGeminiProviderBlockedPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider("k", "gemini-test", 0, 0).WithBaseURL(srv.URL)
	if _, err := p.GenerateResponse(context.Background(), "", "hi"); err == nil || !strings.Contains(err.Error(), "SAFETY") {
		t.Errorf("expected blocked prompt error, got %v", err)
	}
}

func TestOfflineProvider(t *testing.T) {
	p := NewOfflineProvider()
	resp, err := p.GenerateResponse(context.Background(), "ctx", BuildChatMessage("I want to book you for my wedding"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp, "event") {
		t.Errorf("expected booking reply, got %q", resp)
	}
}

func TestNewProviderRequiresKey(t *testing.T) {
	if _, err := NewProvider(&ProviderConfig{Type: ProviderGemini}); err == nil {
		t.Error("expected error without GEMINI_API_KEY")
	}
	if _, err := NewProvider(&ProviderConfig{Type: "nope"}); err == nil {
		t.Error("expected error for unknown provider")
	}
	if p, err := NewProvider(&ProviderConfig{Type: ProviderOffline}); err != nil || p.GetProviderName() != "Offline" {
		t.Errorf("offline provider: %v, %v", p, err)
	}
}

func TestUnavailableProvider(t *testing.T) {
	_, cfgErr := NewProvider(&ProviderConfig{Type: ProviderGemini})
	svc := NewServiceWithProvider(NewUnavailableProvider(cfgErr), "")

	_, err := svc.GenerateResponse(context.Background(), "ctx", "hi")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("err = %v, want the configuration cause", err)
	}
	if svc.GetProviderName() != "Unavailable" {
		t.Errorf("provider name = %q", svc.GetProviderName())
	}
}

func TestChatCompletionProvider(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Hello from Groq"},"finish_reason":"stop"}]}`)
	}))
	defer srv.Close()

	p := newChatCompletionProvider("Groq", "key", srv.URL+"/", "llama-3.1-8b-instant", 0, 0)
	reply, err := p.GenerateResponse(context.Background(), "system", "hi")
	if err != nil {
		t.Fatalf("GenerateResponse: %v", err)
	}
	if reply != "Hello from Groq" {
		t.Errorf("reply = %q", reply)
	}
	if got.Model != "llama-3.1-8b-instant" || len(got.Messages) != 2 || got.Messages[0].Role != "system" {
		t.Errorf("request = %+v", got)
	}
	if p.GetProviderName() != "Groq" {
		t.Errorf("name = %q", p.GetProviderName())
	}
}

func TestChatCompletionProviderEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	p := newChatCompletionProvider("OpenAI", "key", srv.URL, "gpt-4o-mini", 0, 0)
	if _, err := p.GenerateResponse(context.Background(), "", "hi"); err == nil {
		t.Error("expected an error for an empty choice list")
	}
}

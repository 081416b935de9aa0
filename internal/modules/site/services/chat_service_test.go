package services

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/soundzyworld/swg-site-be/internal/core/intent"
	"github.com/soundzyworld/swg-site-be/internal/core/llm"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
)

func newTestChatService(repo *fakeChatRepo, gen *fakeGenerator, notifier Notifier) *ChatService {
	profile := llm.DefaultBusinessProfile("+2348000000000", "hello@swg.test", "https://swg.test")
	return NewChatService(repo, gen, intent.Default(), notifier, profile)
}

func TestNewSessionID(t *testing.T) {
	pattern := regexp.MustCompile(`^session_\d+_[0-9a-z]{9}$`)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := NewSessionID()
		if !pattern.MatchString(id) {
			t.Fatalf("session id %q has the wrong shape", id)
		}
		if seen[id] {
			t.Fatalf("duplicate session id %q", id)
		}
		seen[id] = true
	}
}

func TestChatRepliesAndPersists(t *testing.T) {
	repo := &fakeChatRepo{}
	gen := &fakeGenerator{reply: "We would love to DJ your wedding!"}
	notifier := &fakeNotifier{}
	svc := newTestChatService(repo, gen, notifier)

	resp, err := svc.Chat(context.Background(), &models.ChatRequest{Message: "Can I book a DJ for my wedding?", SessionID: "session_1_abc"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if resp.Response != gen.reply {
		t.Errorf("response = %q", resp.Response)
	}
	if resp.Intent != intent.BookingInquiry || len(resp.QuickReplies) == 0 {
		t.Errorf("intent = %q replies = %v", resp.Intent, resp.QuickReplies)
	}

	if len(repo.msgs) != 2 {
		t.Fatalf("persisted %d messages, want 2", len(repo.msgs))
	}
	if repo.msgs[0].Direction != models.DirectionInbound || repo.msgs[1].Direction != models.DirectionOutbound {
		t.Errorf("directions = %s, %s", repo.msgs[0].Direction, repo.msgs[1].Direction)
	}

	var in models.ChatMetadata
	if err := json.Unmarshal(repo.msgs[0].Metadata, &in); err != nil {
		t.Fatal(err)
	}
	if in.Source != "chat_widget" || in.Timestamp == "" {
		t.Errorf("inbound metadata = %+v", in)
	}
	var out models.ChatMetadata
	if err := json.Unmarshal(repo.msgs[1].Metadata, &out); err != nil {
		t.Fatal(err)
	}
	if out.Intent != intent.BookingInquiry || out.Model != "test-model" {
		t.Errorf("outbound metadata = %+v", out)
	}

	if len(notifier.alerts) != 1 {
		t.Errorf("booking intent should raise one alert, got %d", len(notifier.alerts))
	}
}

func TestChatGeneralIntentDoesNotNotify(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := newTestChatService(&fakeChatRepo{}, &fakeGenerator{reply: "Hi!"}, notifier)

	resp, err := svc.Chat(context.Background(), &models.ChatRequest{Message: "hello there", SessionID: "s"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Intent != intent.GeneralInquiry {
		t.Errorf("intent = %q", resp.Intent)
	}
	if len(notifier.alerts) != 0 {
		t.Errorf("unexpected alerts: %d", len(notifier.alerts))
	}
}

func TestChatGenerationFailure(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := newTestChatService(repo, &fakeGenerator{err: errBoom}, nil)

	_, err := svc.Chat(context.Background(), &models.ChatRequest{Message: "hello", SessionID: "s"})
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("err = %v, want ErrGeneration", err)
	}
	if len(repo.msgs) != 1 || repo.msgs[0].Direction != models.DirectionInbound {
		t.Errorf("only the inbound message should be stored, got %d", len(repo.msgs))
	}

	fb := svc.FallbackMessage()
	if !strings.Contains(fb, "+2348000000000") || !strings.Contains(fb, "hello@swg.test") {
		t.Errorf("fallback does not carry contact details: %q", fb)
	}
}

func TestChatPersistenceFailureIsNotFatal(t *testing.T) {
	svc := newTestChatService(&fakeChatRepo{failErr: errBoom}, &fakeGenerator{reply: "ok"}, nil)

	resp, err := svc.Chat(context.Background(), &models.ChatRequest{Message: "hello", SessionID: "s"})
	if err != nil {
		t.Fatalf("Chat should succeed when storage fails: %v", err)
	}
	if resp.Response != "ok" {
		t.Errorf("response = %q", resp.Response)
	}
}

func TestChatRequiresFields(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	svc := newTestChatService(&fakeChatRepo{}, gen, nil)

	for _, req := range []models.ChatRequest{{Message: "hi"}, {SessionID: "s"}, {}} {
		req := req
		if _, err := svc.Chat(context.Background(), &req); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Chat(%+v) err = %v, want ErrInvalidInput", req, err)
		}
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for invalid input", gen.calls)
	}
}

func TestChatKeepsWhitespaceMessage(t *testing.T) {
	repo := &fakeChatRepo{}
	gen := &fakeGenerator{reply: "Hello there"}
	svc := newTestChatService(repo, gen, nil)

	resp, err := svc.Chat(context.Background(), &models.ChatRequest{Message: "   ", SessionID: "s1"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if resp.Response != "Hello there" {
		t.Errorf("Response = %q", resp.Response)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if len(repo.msgs) == 0 || repo.msgs[0].Message != "   " {
		t.Errorf("inbound message not stored as received: %+v", repo.msgs)
	}
}

func TestChatFailsWhenProviderUnconfigured(t *testing.T) {
	repo := &fakeChatRepo{}
	profile := llm.DefaultBusinessProfile("+2348000000000", "hello@swg.test", "https://swg.test")
	gen := llm.NewServiceWithProvider(llm.NewUnavailableProvider(errors.New("GEMINI_API_KEY is required")), "")
	svc := NewChatService(repo, gen, intent.Default(), nil, profile)

	_, err := svc.Chat(context.Background(), &models.ChatRequest{Message: "book a DJ", SessionID: "s1"})
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("err = %v, want ErrGeneration", err)
	}
	if len(repo.msgs) != 1 || repo.msgs[0].Direction != models.DirectionInbound {
		t.Errorf("stored %+v, want only the inbound message", repo.msgs)
	}
}

func TestTranscript(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := newTestChatService(repo, &fakeGenerator{reply: "ok"}, nil)
	ctx := context.Background()

	if _, err := svc.Transcript(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	if _, err := svc.SaveMessage(ctx, &models.SaveMessageRequest{SessionID: "s1", Direction: models.DirectionOutbound, Message: "Welcome!"}); err != nil {
		t.Fatal(err)
	}
	msgs, err := svc.Transcript(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].Message != "Welcome!" {
		t.Errorf("transcript = %+v", msgs)
	}
	var meta map[string]interface{}
	_ = json.Unmarshal(msgs[0].Metadata, &meta)
	if meta["timestamp"] == nil {
		t.Error("SaveMessage should stamp a timestamp")
	}
}

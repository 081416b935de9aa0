package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/soundzyworld/swg-site-be/internal/core/intent"
	"github.com/soundzyworld/swg-site-be/internal/core/llm"
	"github.com/soundzyworld/swg-site-be/internal/core/notification"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/repositories"
)

const chatSource = "chat_widget"

// NewSessionID returns "session_<unix-ms>_<9 base36 chars>"
func NewSessionID() string {
	u := uuid.New()
	suffix := new(big.Int).SetBytes(u[:]).Text(36)
	if len(suffix) < 9 {
		suffix = strings.Repeat("0", 9-len(suffix)) + suffix
	}
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), suffix[len(suffix)-9:])
}

type ChatService struct {
	repo         repositories.ChatRepo
	generator    Generator
	classifier   *intent.Classifier
	notifier     Notifier
	systemPrompt string
	fallback     string
	now          clock
}

// NewChatService wires the chat handler; notifier may be nil
func NewChatService(repo repositories.ChatRepo, generator Generator, classifier *intent.Classifier, notifier Notifier, profile *llm.BusinessProfile) *ChatService {
	return &ChatService{
		repo:         repo,
		generator:    generator,
		classifier:   classifier,
		notifier:     notifier,
		systemPrompt: llm.BuildSystemPrompt(profile),
		fallback: fmt.Sprintf("I apologize, but I'm having trouble processing your request right now. "+
			"Please try contacting us directly via WhatsApp at %s or email %s", profile.Phone, profile.Email),
		now: time.Now,
	}
}

// FallbackMessage is returned with a 500 when the reply cannot be generated
func (s *ChatService) FallbackMessage() string {
	return s.fallback
}

// Chat persists the visitor message, generates a reply and classifies intent.
// Persistence is best-effort; only a generation failure is returned.
func (s *ChatService) Chat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	message, sessionID := req.Message, req.SessionID
	if message == "" || sessionID == "" {
		return nil, invalid("Message and sessionId are required")
	}

	s.persist(ctx, sessionID, models.DirectionInbound, message, models.ChatMetadata{
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
		Source:    chatSource,
	})

	reply, err := s.generator.GenerateResponse(ctx, s.systemPrompt, llm.BuildChatMessage(message))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	result := s.classifier.Classify(message)

	s.persist(ctx, sessionID, models.DirectionOutbound, reply, models.ChatMetadata{
		Intent:       result.Intent,
		Confidence:   result.Confidence,
		QuickReplies: result.QuickReplies,
		Timestamp:    s.now().UTC().Format(time.RFC3339Nano),
		Model:        s.generator.Model(),
	})

	if result.Intent == intent.BookingInquiry && s.notifier != nil {
		s.notifier.NotifyAsync(notification.BookingIntentAlert(sessionID, message))
	}

	return &models.ChatResponse{
		Response:     reply,
		QuickReplies: result.QuickReplies,
		Intent:       result.Intent,
		Confidence:   result.Confidence,
	}, nil
}

func (s *ChatService) persist(ctx context.Context, sessionID, direction, message string, meta models.ChatMetadata) {
	raw, err := json.Marshal(meta)
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ Failed to encode chat metadata")
	}
	msg := &models.ChatMessage{
		SessionID: sessionID,
		Direction: direction,
		Message:   message,
		Metadata:  datatypes.JSON(raw),
	}
	if err := s.repo.Append(ctx, msg); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Str("direction", direction).Msg("❌ Error saving chat message")
	}
}

// SaveMessage appends a message sent by the widget itself
func (s *ChatService) SaveMessage(ctx context.Context, req *models.SaveMessageRequest) (*models.ChatMessage, error) {
	meta := req.Metadata
	if meta == nil {
		meta = map[string]interface{}{}
	}
	if _, ok := meta["timestamp"]; !ok {
		meta["timestamp"] = s.now().UTC().Format(time.RFC3339Nano)
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, invalid("metadata must be a JSON object")
	}

	msg := &models.ChatMessage{
		SessionID: trimSpace(req.SessionID),
		Direction: req.Direction,
		Message:   req.Message,
		Metadata:  datatypes.JSON(raw),
	}
	if err := s.repo.Append(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save chat message: %w", err)
	}
	return msg, nil
}

func (s *ChatService) ListSessions(ctx context.Context, page, pageSize int) ([]models.ChatSession, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	sessions, total, err := s.repo.ListSessions(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return sessions, total, nil
}

func (s *ChatService) Transcript(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	msgs, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}
	if len(msgs) == 0 {
		return nil, fmt.Errorf("chat session %w", ErrNotFound)
	}
	return msgs, nil
}

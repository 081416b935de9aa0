package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// ChatMessage is append-only; there is no update or delete path
type ChatMessage struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionID string         `gorm:"type:text;not null;index" json:"session_id"`
	Direction string         `gorm:"type:text;not null" json:"direction"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ChatMetadata is stored in chat_messages.metadata
type ChatMetadata struct {
	Intent       string   `json:"intent,omitempty"`
	Confidence   float64  `json:"confidence,omitempty"`
	QuickReplies []string `json:"quick_replies,omitempty"`
	Timestamp    string   `json:"timestamp"`
	Source       string   `json:"source,omitempty"`
	Model        string   `json:"model,omitempty"`
}

type ChatRequest struct {
	Message   string `json:"message" validate:"required,max=2000"`
	SessionID string `json:"sessionId" validate:"required,max=100"`
}

type ChatResponse struct {
	Response     string   `json:"response"`
	QuickReplies []string `json:"quickReplies"`
	Intent       string   `json:"intent"`
	Confidence   float64  `json:"confidence"`
}

// SaveMessageRequest appends one message from the widget
type SaveMessageRequest struct {
	SessionID string                 `json:"session_id" validate:"required,max=100"`
	Direction string                 `json:"direction" validate:"required,oneof=inbound outbound"`
	Message   string                 `json:"message" validate:"required,max=10000"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// ChatSession summarises one conversation for the admin console
type ChatSession struct {
	SessionID      string    `json:"session_id"`
	MessageCount   int64     `json:"message_count"`
	FirstMessageAt time.Time `json:"first_message_at"`
	LastMessageAt  time.Time `json:"last_message_at"`
}

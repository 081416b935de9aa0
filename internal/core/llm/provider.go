package llm

import (
	"context"
	"fmt"
)

// LLMProvider is implemented by every text generation backend
type LLMProvider interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
	GetProviderName() string
}

// ProviderType untuk factory
type ProviderType string

const (
	ProviderGemini  ProviderType = "gemini"
	ProviderOpenAI  ProviderType = "openai"
	ProviderGroq    ProviderType = "groq"
	ProviderOffline ProviderType = "offline"
)

type ProviderConfig struct {
	Type ProviderType

	GeminiKey string
	OpenAIKey string
	GroqKey   string

	Model       string
	Temperature float32
	MaxTokens   int
}

// NewProvider builds the configured provider.
func NewProvider(cfg *ProviderConfig) (LLMProvider, error) {
	switch cfg.Type {
	case ProviderGemini:
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required")
		}
		return NewGeminiProvider(cfg.GeminiKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderGroq:
		if cfg.GroqKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required")
		}
		return NewGroqProvider(cfg.GroqKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderOffline:
		return NewOfflineProvider(), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}

// DefaultModel returns the model used when LLM_MODEL is unset
func DefaultModel(t ProviderType) string {
	switch t {
	case ProviderGemini:
		return "gemini-2.0-flash-exp"
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderGroq:
		return "llama-3.1-8b-instant"
	default:
		return string(t)
	}
}

package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Service wraps LLM provider untuk dependency injection
type Service struct {
	provider LLMProvider
	model    string
	timeout  time.Duration
}

// NewService creates the service from a provider config
func NewService(cfg *ProviderConfig) (*Service, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Type)
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1024
	}

	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}

	log.Info().Str("provider", provider.GetProviderName()).Str("model", cfg.Model).Msg("🤖 Using LLM provider")

	return &Service{provider: provider, model: cfg.Model, timeout: 30 * time.Second}, nil
}

// NewServiceWithProvider creates service with custom provider (for testing)
func NewServiceWithProvider(provider LLMProvider, model string) *Service {
	return &Service{provider: provider, model: model, timeout: 30 * time.Second}
}

// GenerateResponse calls the provider with a bounded deadline
func (s *Service) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.provider.GenerateResponse(ctx, systemPrompt, userMessage)
	if err != nil {
		log.Error().Err(err).Str("provider", s.provider.GetProviderName()).Msg("❌ LLM request failed")
		return "", err
	}

	log.Debug().Str("provider", s.provider.GetProviderName()).Dur("took", time.Since(start)).Msg("LLM response received")
	return resp, nil
}

func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}

// Model is recorded in chat message metadata
func (s *Service) Model() string {
	return s.model
}

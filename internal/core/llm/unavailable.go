package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned by every call to an UnavailableProvider
var ErrProviderUnavailable = errors.New("LLM provider unavailable")

// UnavailableProvider stands in for a provider that could not be configured.
// Each request fails with the configuration error so callers report it.
type UnavailableProvider struct {
	cause error
}

func NewUnavailableProvider(cause error) *UnavailableProvider {
	return &UnavailableProvider{cause: cause}
}

func (p *UnavailableProvider) GetProviderName() string {
	return "Unavailable"
}

func (p *UnavailableProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if p.cause == nil {
		return "", ErrProviderUnavailable
	}
	return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, p.cause)
}

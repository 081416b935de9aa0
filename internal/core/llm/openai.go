package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// ChatCompletionProvider talks to any OpenAI-compatible chat completions API.
// OpenAI and Groq differ only in base URL and default model.
type ChatCompletionProvider struct {
	name        string
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func newChatCompletionProvider(name, apiKey, baseURL, model string, temperature float32, maxTokens int) *ChatCompletionProvider {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if temperature == 0 {
		temperature = 0.7
	}
	if maxTokens == 0 {
		maxTokens = 1024
	}
	return &ChatCompletionProvider{
		name:        name,
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func NewOpenAIProvider(apiKey, model string, temperature float32, maxTokens int) *ChatCompletionProvider {
	if model == "" {
		model = DefaultModel(ProviderOpenAI)
	}
	return newChatCompletionProvider("OpenAI", apiKey, "", model, temperature, maxTokens)
}

// NewGroqProvider uses Groq's OpenAI-compatible endpoint
func NewGroqProvider(apiKey, model string, temperature float32, maxTokens int) *ChatCompletionProvider {
	if model == "" {
		model = DefaultModel(ProviderGroq)
	}
	return newChatCompletionProvider("Groq", apiKey, groqBaseURL, model, temperature, maxTokens)
}

func (p *ChatCompletionProvider) GetProviderName() string {
	return p.name
}

func (p *ChatCompletionProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: systemPrompt})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: userMessage})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%s API error (status %d): %s", strings.ToLower(p.name), apiErr.HTTPStatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("%s request failed: %w", strings.ToLower(p.name), err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty response from %s", p.name)
	}
	return resp.Choices[0].Message.Content, nil
}

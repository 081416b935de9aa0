package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"

	"github.com/soundzyworld/swg-site-be/internal/core/llm"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
)

const layoutSystemPrompt = "You are a UI layout designer."

type LayoutService struct {
	generator Generator
}

func NewLayoutService(generator Generator) *LayoutService {
	return &LayoutService{generator: generator}
}

// DefaultVariant is the layout used whenever generation fails
func DefaultVariant() map[string]interface{} {
	d := models.DefaultUIVariant()
	return map[string]interface{}{
		"layout":         d.Layout,
		"theme":          d.Theme,
		"accentColor":    d.AccentColor,
		"showMetadata":   d.ShowMetadata,
		"animationStyle": d.AnimationStyle,
		"imagePosition":  d.ImagePosition,
		"textAlignment":  d.TextAlignment,
		"cardElevation":  d.CardElevation,
	}
}

// BuildLayoutPrompt asks for a JSON layout object for one piece of content
func BuildLayoutPrompt(contentType string, contentData map[string]interface{}) string {
	data, err := json.MarshalIndent(contentData, "", "  ")
	if err != nil || contentData == nil {
		data = []byte("{}")
	}

	return fmt.Sprintf(`Based on the following %[1]s content, generate an optimal UI layout configuration.

Content Data:
%[2]s

Generate a JSON object with the following structure for a %[1]s:
{
  "layout": "card" | "featured" | "compact" | "grid-item",
  "theme": "default" | "vibrant" | "minimal" | "dark",
  "accentColor": "primary" | "secondary" | "accent" | "muted",
  "showMetadata": true | false,
  "animationStyle": "fade" | "slide" | "scale" | "none",
  "imagePosition": "top" | "left" | "right" | "background",
  "textAlignment": "left" | "center" | "right",
  "cardElevation": "none" | "sm" | "md" | "lg"
}

Consider:
- For videos: Choose layouts that emphasize thumbnails and video metadata
- For DJ tapes/audio: Focus on album art and playback controls
- Use vibrant themes for entertainment content
- Enable animations for engagement
- Optimize for mobile and desktop viewing

Return ONLY the JSON object, no additional text.`, contentType, data)
}

// Generate returns the model's layout object. On failure it returns DefaultVariant together with the error.
func (s *LayoutService) Generate(ctx context.Context, contentType string, contentData map[string]interface{}) (map[string]interface{}, error) {
	text, err := s.generator.GenerateResponse(ctx, layoutSystemPrompt, BuildLayoutPrompt(contentType, contentData))
	if err != nil {
		return DefaultVariant(), err
	}

	raw, ok := llm.ExtractJSONObject(text)
	if !ok {
		return DefaultVariant(), errors.New("no valid JSON found in response")
	}

	var variant map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &variant); err != nil {
		return DefaultVariant(), fmt.Errorf("invalid layout JSON: %w", err)
	}
	return variant, nil
}

// Hint is Generate for write paths: nil when no layout could be produced
func (s *LayoutService) Hint(ctx context.Context, contentType string, contentData map[string]interface{}) datatypes.JSON {
	if s == nil {
		return nil
	}
	variant, err := s.Generate(ctx, contentType, contentData)
	if err != nil {
		return nil
	}
	raw, err := json.Marshal(variant)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

package models

// UIVariant is the layout hint attached to media content
type UIVariant struct {
	Layout         string `json:"layout"`
	Theme          string `json:"theme"`
	AccentColor    string `json:"accentColor"`
	ShowMetadata   bool   `json:"showMetadata"`
	AnimationStyle string `json:"animationStyle"`
	ImagePosition  string `json:"imagePosition"`
	TextAlignment  string `json:"textAlignment"`
	CardElevation  string `json:"cardElevation"`
}

func DefaultUIVariant() UIVariant {
	return UIVariant{
		Layout:         "card",
		Theme:          "default",
		AccentColor:    "primary",
		ShowMetadata:   true,
		AnimationStyle: "fade",
		ImagePosition:  "top",
		TextAlignment:  "left",
		CardElevation:  "md",
	}
}

type LayoutRequest struct {
	ContentType string                 `json:"contentType" validate:"required,max=50"`
	ContentData map[string]interface{} `json:"contentData"`
}

type LayoutResponse struct {
	UIVariant map[string]interface{} `json:"uiVariant"`
	Error     string                 `json:"error,omitempty"`
}

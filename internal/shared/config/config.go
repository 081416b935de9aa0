package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Env         string `env:"ENV" envDefault:"development"`
	DatabaseURL string `env:"DATABASE_URL"`
	SiteURL     string `env:"SITE_URL" envDefault:"https://soundzyworld.com.ng"`

	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`

	// Auth
	JWTSecret     string `env:"JWT_SECRET"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// LLM
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"gemini"`
	LLMModel    string `env:"LLM_MODEL"`
	GeminiKey   string `env:"GEMINI_API_KEY"`
	OpenAIKey   string `env:"OPENAI_API_KEY"`
	GroqKey     string `env:"GROQ_API_KEY"`

	// Storage
	UploadProvider      string `env:"UPLOAD_PROVIDER" envDefault:"local"`
	UploadBasePath      string `env:"UPLOAD_BASE_PATH" envDefault:"./uploads"`
	PublicBaseURL       string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	AWSAccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
	AWSRegion           string `env:"AWS_REGION" envDefault:"eu-west-1"`
	AWSBucket           string `env:"AWS_S3_BUCKET"`
	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`

	// Notifications
	EmailProvider     string   `env:"EMAIL_PROVIDER"`
	ResendAPIKey      string   `env:"RESEND_API_KEY"`
	BrevoAPIKey       string   `env:"BREVO_API_KEY"`
	EmailFrom         string   `env:"EMAIL_FROM" envDefault:"noreply@soundzyworld.com.ng"`
	EmailFromName     string   `env:"EMAIL_FROM_NAME" envDefault:"Soundzy World Global"`
	WhatsAppProvider  string   `env:"WHATSAPP_PROVIDER" envDefault:"none"`
	WhatsAppPhoneID   string   `env:"WHATSAPP_PHONE_NUMBER_ID"`
	WhatsAppToken     string   `env:"WHATSAPP_ACCESS_TOKEN"`
	GreenAPIInstance  string   `env:"GREENAPI_INSTANCE_ID"`
	GreenAPIToken     string   `env:"GREENAPI_API_TOKEN"`
	NotifyAdminPhones []string `env:"NOTIFY_ADMIN_PHONES" envSeparator:","`
	NotifyAdminEmails []string `env:"NOTIFY_ADMIN_EMAILS" envSeparator:","`

	// Business contact details used in prompts and CTA links
	BusinessPhone    string `env:"BUSINESS_PHONE" envDefault:"+234 816 668 7167"`
	BusinessEmail    string `env:"BUSINESS_EMAIL" envDefault:"Info@soundzyworld.com.ng"`
	BusinessWhatsApp string `env:"BUSINESS_WHATSAPP" envDefault:"2348166687167"`

	ImageRegistryFile string `env:"IMAGE_REGISTRY_FILE"`

	ChatRatePerSecond float64 `env:"CHAT_RATE_PER_SECOND" envDefault:"0.5"`
	ChatRateBurst     int     `env:"CHAT_RATE_BURST" envDefault:"5"`

	AnnouncementSweepSchedule string `env:"ANNOUNCEMENT_SWEEP_SCHEDULE" envDefault:"@every 15m"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Validate checks the settings the API cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.IsProduction() && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters in production")
	}
	return nil
}

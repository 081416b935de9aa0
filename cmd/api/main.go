package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/soundzyworld/swg-site-be/internal/core/audit"
	"github.com/soundzyworld/swg-site-be/internal/core/auth"
	"github.com/soundzyworld/swg-site-be/internal/core/email"
	"github.com/soundzyworld/swg-site-be/internal/core/export"
	"github.com/soundzyworld/swg-site-be/internal/core/intent"
	"github.com/soundzyworld/swg-site-be/internal/core/llm"
	"github.com/soundzyworld/swg-site-be/internal/core/notification"
	"github.com/soundzyworld/swg-site-be/internal/core/realtime"
	"github.com/soundzyworld/swg-site-be/internal/core/scheduler"
	"github.com/soundzyworld/swg-site-be/internal/core/upload"
	"github.com/soundzyworld/swg-site-be/internal/core/whatsapp"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/handlers"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/repositories"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/services"
	"github.com/soundzyworld/swg-site-be/internal/shared/config"
	"github.com/soundzyworld/swg-site-be/internal/shared/database"
	"github.com/soundzyworld/swg-site-be/internal/shared/middleware"
	"github.com/soundzyworld/swg-site-be/internal/shared/utils"

	_ "github.com/soundzyworld/swg-site-be/cmd/api/docs"
)

const auditRetentionDays = 90

// realtimeTables are the tables clients may watch on /realtime
var realtimeTables = []string{
	"announcements",
	"video_embeds",
	"website_images",
	"products",
	"blog_posts",
	"dj_tapes",
	"service_offerings",
	"community_posts",
}

// @title Soundzy World Global Site API
// @version 1.0
// @description Backend for the Soundzy World Global website: AI chat, announcements, media and admin content management
// @contact.name Soundzy World Global
// @contact.email Info@soundzyworld.com.ng
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to load config")
	}
	utils.InitLogger(cfg.Env)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("❌ Invalid config")
	}
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("🚀 Starting swg-site-api")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init database
	db, err := database.NewDB(cfg.DatabaseURL, !cfg.IsProduction())
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to connect to database")
	}
	defer db.Close()

	// Init storage (local / s3 / cloudinary)
	var uploadProvider upload.Provider
	var localProvider *upload.LocalProvider
	switch cfg.UploadProvider {
	case "s3":
		uploadProvider, err = upload.NewS3Provider(ctx, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.AWSRegion, cfg.AWSBucket)
	case "cloudinary":
		uploadProvider, err = upload.NewCloudinaryProvider(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	default:
		localProvider, err = upload.NewLocalProvider(cfg.UploadBasePath, cfg.PublicBaseURL)
		uploadProvider = localProvider
	}
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.UploadProvider).Msg("❌ Failed to initialize upload provider")
	}
	uploadService := upload.NewService(uploadProvider)
	log.Info().Str("provider", uploadService.GetProviderName()).Msg("🗄️ Using storage provider")

	// Init LLM service (multi-provider support)
	llmType := llm.ProviderType(cfg.LLMProvider)
	llmService, err := llm.NewService(&llm.ProviderConfig{
		Type:      llmType,
		GeminiKey: cfg.GeminiKey,
		OpenAIKey: cfg.OpenAIKey,
		GroqKey:   cfg.GroqKey,
		Model:     cfg.LLMModel,
	})
	if err != nil {
		log.Error().Err(err).Str("provider", cfg.LLMProvider).Msg("❌ LLM provider not configured, chat requests will fail")
		llmService = llm.NewServiceWithProvider(llm.NewUnavailableProvider(err), cfg.LLMModel)
	}
	log.Info().Str("provider", llmService.GetProviderName()).Str("model", llmService.Model()).Msg("🤖 Using LLM provider")

	// Init notifications
	emailProvider, err := email.NewProvider(cfg.EmailProvider, cfg.ResendAPIKey, cfg.BrevoAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ Email service not configured")
	}
	emailService := email.NewService(emailProvider)

	waProvider, err := whatsapp.NewProvider(&whatsapp.ProviderConfig{
		Type:               whatsapp.ProviderType(cfg.WhatsAppProvider),
		CloudPhoneID:       cfg.WhatsAppPhoneID,
		CloudAccessToken:   cfg.WhatsAppToken,
		GreenAPIInstanceID: cfg.GreenAPIInstance,
		GreenAPIToken:      cfg.GreenAPIToken,
	})
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ WhatsApp provider not configured")
	}
	waService := whatsapp.NewService(waProvider, cfg.BusinessWhatsApp)

	notificationService := notification.NewService(waService, emailService, cfg.NotifyAdminPhones, cfg.NotifyAdminEmails)
	log.Info().Interface("channels", notificationService.Channels()).Msg("🔔 Notification channels")

	// Init auth + audit
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := auth.NewService(auth.NewRepository(db.GORM), jwtService)
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Error().Err(err).Msg("❌ Failed to ensure admin account")
		}
	}
	auditService := audit.NewService(db.GORM)

	imageRegistry, err := config.LoadImageRegistry(cfg.ImageRegistryFile)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to load website image registry")
	}

	// Init repositories (use GORM instance)
	announcementRepo := repositories.NewAnnouncementRepo(db.GORM)
	chatRepo := repositories.NewChatRepo(db.GORM)
	videoRepo := repositories.NewVideoRepo(db.GORM)
	websiteImageRepo := repositories.NewWebsiteImageRepo(db.GORM)
	productRepo := repositories.NewProductRepo(db.GORM)
	leadRepo := repositories.NewLeadRepo(db.GORM)
	blogRepo := repositories.NewBlogRepo(db.GORM)
	djTapeRepo := repositories.NewDJTapeRepo(db.GORM)
	offeringRepo := repositories.NewServiceOfferingRepo(db.GORM)
	communityRepo := repositories.NewCommunityRepo(db.GORM)

	// Init services
	profile := llm.DefaultBusinessProfile(cfg.BusinessPhone, cfg.BusinessEmail, cfg.SiteURL)
	layoutService := services.NewLayoutService(llmService)
	announcementService := services.NewAnnouncementService(announcementRepo, uploadService)
	chatService := services.NewChatService(chatRepo, llmService, intent.Default(), notificationService, profile)
	videoService := services.NewVideoService(videoRepo, layoutService, uploadService)
	websiteImageService := services.NewWebsiteImageService(websiteImageRepo, imageRegistry, uploadService)
	productService := services.NewProductService(productRepo, uploadService)
	leadService := services.NewLeadService(leadRepo, notificationService, export.NewService())
	blogService := services.NewBlogService(blogRepo)
	djTapeService := services.NewDJTapeService(djTapeRepo, uploadService)
	offeringService := services.NewServiceOfferingService(offeringRepo)
	communityService := services.NewCommunityService(communityRepo)

	// Realtime feed (Postgres LISTEN -> SSE)
	hub := realtime.NewHub()
	if err := realtime.NewListener(cfg.DatabaseURL, hub).Start(ctx); err != nil {
		log.Warn().Err(err).Msg("⚠️ Realtime listener disabled")
	}

	chatLimiter := middleware.NewRateLimiter(rate.Limit(cfg.ChatRatePerSecond), cfg.ChatRateBurst)

	// Background jobs
	jobs := scheduler.New()
	mustAdd := func(name, schedule string, job scheduler.JobFunc) {
		if err := jobs.Add(name, schedule, job); err != nil {
			log.Fatal().Err(err).Str("job", name).Msg("❌ Failed to schedule job")
		}
	}
	mustAdd("archive-expired-announcements", cfg.AnnouncementSweepSchedule, func(ctx context.Context) error {
		n, err := announcementService.ArchiveExpired(ctx)
		if n > 0 {
			log.Info().Int64("archived", n).Msg("📦 Archived expired announcements")
		}
		return err
	})
	mustAdd("audit-log-cleanup", "@daily", func(ctx context.Context) error {
		_, err := auditService.CleanupOldLogs(ctx, auditRetentionDays)
		return err
	})
	mustAdd("chat-limiter-cleanup", "@every 10m", func(ctx context.Context) error {
		chatLimiter.Cleanup(30 * time.Minute)
		return nil
	})
	jobs.Start()

	h := &routeHandlers{
		health:       handlers.NewHealthHandler(db.DB, llmService.GetProviderName(), uploadService.GetProviderName()),
		chat:         handlers.NewChatHandler(chatService),
		layout:       handlers.NewLayoutHandler(layoutService),
		announcement: handlers.NewAnnouncementHandler(announcementService, auditService),
		video:        handlers.NewVideoHandler(videoService, auditService),
		websiteImage: handlers.NewWebsiteImageHandler(websiteImageService, auditService),
		product:      handlers.NewProductHandler(productService, auditService),
		lead:         handlers.NewLeadHandler(leadService, auditService),
		blog:         handlers.NewBlogHandler(blogService, cfg.SiteURL, auditService),
		djTape:       handlers.NewDJTapeHandler(djTapeService, auditService),
		offering:     handlers.NewServiceOfferingHandler(offeringService, auditService),
		community:    handlers.NewCommunityHandler(communityService),
		auth:         auth.NewHandler(authService),
		audit:        audit.NewHandler(auditService),
		upload:       upload.NewHandler(uploadService),
		whatsapp:     whatsapp.NewHandler(waService),
		realtime:     realtime.NewHandler(hub, realtimeTables),
	}

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName:   "Soundzy World Global Site API",
		BodyLimit: 100 * 1024 * 1024,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.CORS(cfg.CORSAllowOrigins))

	if localProvider != nil {
		app.Static(localProvider.PublicPath(), localProvider.Root())
	}

	registerRoutes(app, h, authService, chatLimiter)

	go func() {
		log.Info().Msgf("✅ swg-site-api running at :%s", cfg.Port)
		log.Info().Msgf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("❌ Server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("🛑 Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	jobs.Stop(shutdownCtx)
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("❌ Graceful shutdown failed")
	}
}

package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/soundzyworld/swg-site-be/internal/core/audit"
	"github.com/soundzyworld/swg-site-be/internal/core/auth"
	"github.com/soundzyworld/swg-site-be/internal/core/realtime"
	"github.com/soundzyworld/swg-site-be/internal/core/upload"
	"github.com/soundzyworld/swg-site-be/internal/core/whatsapp"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/handlers"
	"github.com/soundzyworld/swg-site-be/internal/shared/middleware"
)

type routeHandlers struct {
	health       *handlers.HealthHandler
	chat         *handlers.ChatHandler
	layout       *handlers.LayoutHandler
	announcement *handlers.AnnouncementHandler
	video        *handlers.VideoHandler
	websiteImage *handlers.WebsiteImageHandler
	product      *handlers.ProductHandler
	lead         *handlers.LeadHandler
	blog         *handlers.BlogHandler
	djTape       *handlers.DJTapeHandler
	offering     *handlers.ServiceOfferingHandler
	community    *handlers.CommunityHandler
	auth         *auth.Handler
	audit        *audit.Handler
	upload       *upload.Handler
	whatsapp     *whatsapp.Handler
	realtime     *realtime.Handler
}

func registerRoutes(app *fiber.App, h *routeHandlers, authService *auth.Service, chatLimiter *middleware.RateLimiter) {
	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", h.health.GetHealth)

	// Chat routes
	chatLimit := middleware.RateLimitMiddleware(chatLimiter, middleware.KeyByRouteAndIP)
	app.Post("/chat", chatLimit, h.chat.Chat)
	app.Post("/chat/session", h.chat.NewSession)
	app.Post("/chat/messages", chatLimit, h.chat.SaveMessage)
	app.Post("/generate-ui-layout", h.layout.GenerateUILayout)

	// Public content
	app.Get("/announcements", h.announcement.ListVisible)
	app.Get("/announcements/banner", h.announcement.Banner)
	app.Get("/website-images", h.websiteImage.ListPublic)
	app.Get("/website-images/:key", h.websiteImage.GetByKey)
	app.Get("/videos", h.video.ListActive)
	app.Get("/products", h.product.ListPublic)
	app.Get("/products/:id", h.product.GetPublic)
	app.Get("/services", h.offering.ListActive)
	app.Get("/dj-tapes", h.djTape.ListPublished)
	app.Get("/blog", h.blog.ListPublished)
	app.Get("/blog/rss", h.blog.RSS)
	app.Get("/blog/:slug", h.blog.GetBySlug)
	app.Post("/leads", chatLimit, h.lead.Create)

	// WhatsApp click-to-chat
	app.Get("/whatsapp/link", h.whatsapp.GetChatLink)
	app.Get("/whatsapp/qr", h.whatsapp.GetChatQR)

	// Realtime change feed
	app.Get("/realtime", h.realtime.Stream)

	// Auth routes
	authGroup := app.Group("/auth")
	authGroup.Post("/register", h.auth.Register)
	authGroup.Post("/login", h.auth.Login)
	authGroup.Post("/refresh", h.auth.RefreshToken)

	requireAuth := auth.AuthMiddleware(authService)
	authGroup.Get("/me", requireAuth, h.auth.Me)
	authGroup.Post("/logout", requireAuth, h.auth.Logout)
	app.Put("/profile", requireAuth, h.auth.UpdateProfile)

	// Community (any signed-in user)
	community := app.Group("/community", requireAuth)
	community.Get("/posts", h.community.List)
	community.Post("/posts", h.community.Create)
	community.Delete("/posts/:id", h.community.Delete)

	// Admin routes
	admin := app.Group("/admin", requireAuth, auth.RequireRole(auth.RoleAdmin))

	announcements := admin.Group("/announcements")
	announcements.Get("/", h.announcement.List)
	announcements.Post("/", h.announcement.Create)
	announcements.Get("/stats", h.announcement.Stats)
	announcements.Post("/media", h.announcement.UploadMedia)
	announcements.Get("/:id", h.announcement.Get)
	announcements.Put("/:id", h.announcement.Update)
	announcements.Delete("/:id", h.announcement.Delete)

	videos := admin.Group("/videos")
	videos.Get("/", h.video.List)
	videos.Post("/", h.video.Create)
	videos.Post("/upload", h.video.UploadFile)
	videos.Post("/thumbnail", h.video.UploadThumbnail)
	videos.Get("/:id", h.video.Get)
	videos.Put("/:id", h.video.Update)
	videos.Delete("/:id", h.video.Delete)

	images := admin.Group("/website-images")
	images.Get("/", h.websiteImage.List)
	images.Post("/seed", h.websiteImage.Seed)
	images.Put("/:key", h.websiteImage.Update)
	images.Post("/:key/upload", h.websiteImage.Upload)
	images.Delete("/:key", h.websiteImage.Delete)

	media := admin.Group("/media")
	media.Get("/", h.upload.ListBuckets)
	media.Get("/:bucket", h.upload.ListObjects)
	media.Post("/:bucket", h.upload.UploadFile)
	media.Delete("/:bucket", h.upload.DeleteFile)

	products := admin.Group("/products")
	products.Get("/", h.product.List)
	products.Post("/", h.product.Create)
	products.Get("/:id", h.product.Get)
	products.Put("/:id", h.product.Update)
	products.Delete("/:id", h.product.Delete)
	products.Post("/:id/image", h.product.UploadImage)

	leads := admin.Group("/leads")
	leads.Get("/", h.lead.List)
	leads.Get("/export", h.lead.Export)
	leads.Put("/:id/status", h.lead.UpdateStatus)
	leads.Delete("/:id", h.lead.Delete)

	blog := admin.Group("/blog")
	blog.Get("/", h.blog.List)
	blog.Post("/", h.blog.Create)
	blog.Get("/:id", h.blog.Get)
	blog.Put("/:id", h.blog.Update)
	blog.Delete("/:id", h.blog.Delete)

	tapes := admin.Group("/dj-tapes")
	tapes.Get("/", h.djTape.List)
	tapes.Post("/", h.djTape.Create)
	tapes.Post("/upload", h.djTape.Upload)
	tapes.Get("/:id", h.djTape.Get)
	tapes.Put("/:id", h.djTape.Update)
	tapes.Delete("/:id", h.djTape.Delete)

	offerings := admin.Group("/services")
	offerings.Get("/", h.offering.List)
	offerings.Post("/", h.offering.Create)
	offerings.Put("/:id", h.offering.Update)
	offerings.Delete("/:id", h.offering.Delete)

	admin.Get("/chat/sessions", h.chat.ListSessions)
	admin.Get("/chat/sessions/:sessionId", h.chat.Transcript)
	admin.Get("/audit-logs", h.audit.ListLogs)
}

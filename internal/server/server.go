// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"moodwave/internal/cache"
	"moodwave/internal/config"
	"moodwave/internal/database"
	"moodwave/internal/middleware"
	"moodwave/internal/models"
	"moodwave/internal/music"
	"moodwave/internal/notifications"
	"moodwave/internal/repository"
	"moodwave/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	shutdownCtx    context.Context
	shutdownFn     context.CancelFunc

	userRepo     repository.UserRepository
	moodRepo     repository.MoodRepository
	moodLogRepo  repository.MoodLogRepository
	connRepo     repository.ConnectionRepository
	feedRepo     repository.FeedRepository
	notifRepo    repository.NotificationRepository
	playlistRepo repository.PlaylistRepository
	likedRepo    repository.LikedSongRepository

	notifier *notifications.Notifier
	music    *music.Client

	moodService       *service.MoodService
	moodLogService    *service.MoodLogService
	suggestionService *service.SuggestionService
	analyticsService  *service.AnalyticsService
	friendService     *service.FriendService
	feedService       *service.FeedService
	playlistService   *service.PlaylistService
	userService       *service.UserService
}

// NewServer creates a new server instance, establishing database and Redis
// connections itself.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	middleware.InitMiddleware(cfg, redisClient)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("moodwave-api"),
		userRepo:       repository.NewUserRepository(db),
		moodRepo:       repository.NewMoodRepository(db),
		moodLogRepo:    repository.NewMoodLogRepository(db),
		connRepo:       repository.NewConnectionRepository(db),
		feedRepo:       repository.NewFeedRepository(db),
		notifRepo:      repository.NewNotificationRepository(db),
		playlistRepo:   repository.NewPlaylistRepository(db),
		likedRepo:      repository.NewLikedSongRepository(db),
		music:          music.NewClient(cfg.YouTubeAPIKey),
	}
	if redisClient != nil {
		server.notifier = notifications.NewNotifier(redisClient)
	}

	server.moodService = service.NewMoodService(server.moodRepo)
	server.moodLogService = service.NewMoodLogService(server.moodLogRepo, server.moodRepo, server.feedRepo)
	server.suggestionService = service.NewSuggestionService(server.moodLogRepo, server.userRepo)
	server.analyticsService = service.NewAnalyticsService(server.moodLogRepo)
	server.friendService = service.NewFriendService(server.connRepo, server.userRepo, server.notifRepo, server.notifier)
	server.feedService = service.NewFeedService(server.feedRepo, server.connRepo, server.notifRepo, server.notifier)
	server.playlistService = service.NewPlaylistService(server.playlistRepo, server.likedRepo)
	server.userService = service.NewUserService(server.userRepo, server.moodLogRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.StructuredLogger())

	// CORS before anything that can short-circuit so browser clients still
	// receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "MoodWave Backend Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.QuotaLimit(s.redis, middleware.SignupQuota), s.Signup)
	auth.Post("/login", middleware.QuotaLimit(s.redis, middleware.LoginQuota), s.Login)
	auth.Post("/logout", middleware.AuthRequired, s.Logout)

	// Public mood catalog
	moods := api.Group("/moods")
	moods.Get("/", s.GetMoods)

	// Public per-user surfaces
	api.Get("/social/suggestions/:userId", s.GetSuggestions)
	api.Get("/analytics/:userId", s.GetAnalytics)
	api.Get("/users/:userId", s.GetUserProfile)

	// Music lookup
	musicRoutes := api.Group("/music")
	musicRoutes.Get("/moods/:moodId", s.GetSongsForMood)
	musicRoutes.Get("/combined", s.GetCombinedSongs)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// Mood logging; specific routes before the generic /:moodId
	protectedMoods := protected.Group("/moods")
	protectedMoods.Post("/log", middleware.QuotaLimit(s.redis, middleware.LogMoodQuota), s.LogMood)
	protectedMoods.Get("/history", s.GetMoodHistory)
	moods.Get("/:moodId", s.GetMood)

	// Friend routes
	friends := protected.Group("/friends")
	friends.Get("/", s.GetFriends)
	friends.Post("/requests/:userId", middleware.QuotaLimit(s.redis, middleware.FriendRequestQuota), s.SendFriendRequest)
	friends.Get("/requests", s.GetPendingRequests)
	friends.Get("/requests/sent", s.GetSentRequests)
	friends.Post("/requests/:requestId/accept", s.AcceptFriendRequest)
	friends.Post("/requests/:requestId/reject", s.RejectFriendRequest)
	friends.Get("/statuses", s.GetFriendStatuses)
	// Generic /:userId route must be last
	friends.Delete("/:userId", s.RemoveFriend)

	// Feed routes
	feed := protected.Group("/feed")
	feed.Get("/", s.GetFeed)
	feed.Get("/summary", s.GetFeedSummary)
	feed.Post("/:feedId/comments", middleware.QuotaLimit(s.redis, middleware.FeedCommentQuota), s.AddFeedComment)
	feed.Post("/:feedId/comments/:commentId/replies", middleware.QuotaLimit(s.redis, middleware.FeedReplyQuota), s.AddFeedReply)

	// Notification routes
	notifs := protected.Group("/notifications")
	notifs.Get("/", s.GetNotifications)
	notifs.Get("/unread-count", s.GetUnreadNotificationCount)
	notifs.Post("/read-all", s.MarkAllNotificationsRead)
	notifs.Post("/:id/read", s.MarkNotificationRead)

	// Playlist routes
	playlists := protected.Group("/playlists")
	playlists.Post("/", s.SavePlaylist)
	playlists.Get("/", s.GetPlaylists)
	playlists.Put("/:id", s.RenamePlaylist)
	playlists.Delete("/:id", s.DeletePlaylist)

	// Liked song routes
	liked := protected.Group("/liked")
	liked.Post("/", s.LikeSong)
	liked.Get("/", s.GetLikedSongs)
	liked.Delete("/:videoId", s.UnlikeSong)

	// Current user
	protected.Get("/me", s.GetMyProfile)

	// Admin routes
	admin := protected.Group("/admin", s.AdminRequired())
	admin.Get("/users", s.AdminGetUsers)
	admin.Get("/moodlogs", s.AdminGetMoodLogs)
	admin.Post("/moods", s.AdminCreateMood)
	admin.Delete("/users/:id", s.AdminDeleteUser)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "MoodWave",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so that userID is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userID").(uint)

		admin, err := s.isAdminByUserID(c.Context(), userID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("Admin access required"))
		}
		return c.Next()
	}
}

// Start starts the server
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.shutdownCtx = ctx
	s.shutdownFn = cancel

	app := fiber.New(fiber.Config{
		AppName: "MoodWave API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	if s.notifier != nil {
		go func() {
			err := s.notifier.StartPatternSubscriber(s.shutdownCtx, func(channel, payload string) {
				log.Printf("notification on %s: %s", channel, payload)
			})
			if err != nil {
				log.Printf("failed to start notification subscriber: %v", err)
			}
		}()
	}

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.shutdownFn != nil {
		s.shutdownFn()
	}

	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/plumeworks/plume/internal/config"
	"github.com/plumeworks/plume/internal/database"
	"github.com/plumeworks/plume/internal/handler"
	"github.com/plumeworks/plume/internal/middleware"
	"github.com/plumeworks/plume/internal/repository"
	"github.com/plumeworks/plume/internal/service"
	"github.com/plumeworks/plume/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// A .env file is optional; real deployments use the environment
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Bootstrap tables and unique indexes
	if err := database.DefineSchema(ctx, db); err != nil {
		slog.Error("failed to define schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   userRepo,
		JWTService: jwtService,
	})

	feedService := service.NewFeedService(service.FeedServiceConfig{
		PostRepo:  postRepo,
		GroupRepo: groupRepo,
		UserRepo:  userRepo,
	})

	postService := service.NewPostService(service.PostServiceConfig{
		PostRepo:  postRepo,
		GroupRepo: groupRepo,
	})

	groupService := service.NewGroupService(service.GroupServiceConfig{
		GroupRepo: groupRepo,
	})

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   cfg.RateLimit.Rate,
		Window: time.Minute,
		Burst:  cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	feedHandler := handler.NewFeedHandler(feedService)
	postHandler := handler.NewPostHandler(postService)
	groupHandler := handler.NewGroupHandler(groupService)

	// Create router and register routes
	mux := http.NewServeMux()

	authMiddleware := middleware.Auth(authService)
	optionalAuth := middleware.OptionalAuth(authService)
	adminMiddleware := middleware.AdminAuth(authService)

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// Auth endpoints
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// Feed endpoints (public; identity resolved when a token is present)
	mux.Handle("GET /v1/posts", optionalAuth(http.HandlerFunc(feedHandler.Home)))
	mux.Handle("GET /v1/groups/{slug}/posts", optionalAuth(http.HandlerFunc(feedHandler.Group)))
	mux.Handle("GET /v1/users/{username}/posts", optionalAuth(http.HandlerFunc(feedHandler.Author)))

	// Post endpoints
	mux.Handle("GET /v1/posts/{postId}", optionalAuth(http.HandlerFunc(postHandler.Get)))
	mux.Handle("POST /v1/posts", authMiddleware(http.HandlerFunc(postHandler.Create)))
	mux.Handle("PATCH /v1/posts/{postId}", authMiddleware(http.HandlerFunc(postHandler.Edit)))

	// Group endpoints (management is admin-only, reading is public)
	mux.HandleFunc("GET /v1/groups/{slug}", groupHandler.Get)
	mux.Handle("POST /v1/groups", adminMiddleware(http.HandlerFunc(groupHandler.Create)))
	mux.Handle("DELETE /v1/groups/{slug}", adminMiddleware(http.HandlerFunc(groupHandler.Delete)))

	// Everything else is a problem response, not the default text 404
	mux.HandleFunc("/", handler.NotFound)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

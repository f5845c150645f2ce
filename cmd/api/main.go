package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	_ "github.com/redmonkez12/courses-api/docs" // Swagger docs (generated)
	"github.com/redmonkez12/courses-api/internal/auth"
	"github.com/redmonkez12/courses-api/internal/config"
	"github.com/redmonkez12/courses-api/internal/course"
	"github.com/redmonkez12/courses-api/internal/database"
	httpServer "github.com/redmonkez12/courses-api/internal/http"
	"github.com/redmonkez12/courses-api/internal/logging"
	"github.com/redmonkez12/courses-api/internal/ratelimit"
	"github.com/redmonkez12/courses-api/internal/user"
	"github.com/redmonkez12/courses-api/internal/validation"
)

// @title           Courses API
// @version         1.0
// @description     REST API for users and the courses they own, authenticated with HTTP Basic.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.basic BasicAuth

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(os.Stderr, cfg.Server.IsDevelopment(), cfg.Log.Level)
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
		"db_driver", cfg.Database.Driver,
	)

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// Redis is only needed for rate limiting; a nil limiter never limits
	var rateLimiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		redisClient, err := initRedis(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis: %w", err)
		}
		defer redisClient.Close()

		rateLimiter = ratelimit.NewLimiter(redisClient, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
		logger.Info("rate limiting enabled",
			"max_requests", cfg.RateLimit.MaxRequests,
			"window", cfg.RateLimit.Window.String(),
		)
	}

	validator := validation.New()

	userRepo := user.NewRepository(db)
	courseRepo := course.NewRepository(db)

	userService := user.NewService(userRepo, validator)
	courseService := course.NewService(courseRepo, validator)

	var attemptLimiter auth.AttemptLimiter
	if rateLimiter != nil {
		attemptLimiter = rateLimiter
	}
	authMiddleware := auth.NewMiddleware(auth.NewVerifier(userRepo), attemptLimiter)

	router := httpServer.NewRouter(cfg, httpServer.Handlers{
		Users:   user.NewHandler(userService),
		Courses: course.NewHandler(courseService),
		Auth:    authMiddleware,
		Limiter: rateLimiter,
	}, logger)

	server := httpServer.NewServer(cfg.Server, router, logger)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("received signal", "signal", sig.String())

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initRedis initializes the Redis connection and returns a Redis client
func initRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}

package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbryant/sendlater/internal/config"
	"github.com/kbryant/sendlater/internal/database"
	"github.com/kbryant/sendlater/internal/handler"
	"github.com/kbryant/sendlater/internal/middleware"
	"github.com/kbryant/sendlater/internal/notifier"
	"github.com/kbryant/sendlater/internal/receipt"
	"github.com/kbryant/sendlater/internal/repository"
	"github.com/kbryant/sendlater/internal/service"
	"github.com/kbryant/sendlater/internal/sweeper"
	"github.com/kbryant/sendlater/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	if err := logger.Init(cfg.Environment == "development"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal("Failed to connect database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}
	logger.Log.Info("Database ready")

	redisOpt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Log.Fatal("Invalid REDIS_URL", zap.Error(err))
	}
	redisClient := redis.NewClient(redisOpt)
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Log.Fatal("Failed to connect Redis", zap.Error(err))
	}
	cancelPing()

	// Repositories
	messageRepo := repository.NewMessageRepository(db)
	itemRepo := repository.NewItemRepository(db)

	// Services
	messageService := service.NewMessageService(messageRepo)
	smsNotifier := notifier.NewTwilioNotifier(notifier.TwilioConfig{
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		FromNumber: cfg.TwilioNumber,
	})
	receiptStore := receipt.NewStore(redisClient)
	sweepService := service.NewSweepService(messageRepo, smsNotifier, receiptStore, logger.Log)

	// Background delivery sweep
	sw := sweeper.New(sweepService, cfg.SweepInterval, logger.Log)
	if err := sw.Start(ctx); err != nil {
		logger.Log.Fatal("Failed to start sweeper", zap.Error(err))
	}

	// Handlers
	limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
		MaxRequests: cfg.RateLimitMaxRequests,
		Window:      cfg.RateLimitWindow,
	})
	router := handler.NewRouter(handler.Handlers{
		Messages: handler.NewMessageHandler(messageService),
		Items:    handler.NewItemHandler(itemRepo),
		Users:    handler.NewUserHandler(),
		Sweep:    handler.NewSweepHandler(sweepService, sw),
	}, limiter.Middleware())

	server := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Log.Info("Server starting", zap.String("addr", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server shutdown error", zap.Error(err))
	}

	if err := sw.Stop(); err != nil && err != sweeper.ErrNotRunning {
		logger.Log.Error("Sweeper stop error", zap.Error(err))
	}
}

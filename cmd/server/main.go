package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rkenterprise/site-backend/internal/cache"
	"github.com/rkenterprise/site-backend/internal/config"
	"github.com/rkenterprise/site-backend/internal/database"
	"github.com/rkenterprise/site-backend/internal/handler"
	"github.com/rkenterprise/site-backend/internal/logger"
	"github.com/rkenterprise/site-backend/internal/repository"
	"github.com/rkenterprise/site-backend/internal/router"
	"github.com/rkenterprise/site-backend/internal/service"
	"github.com/rkenterprise/site-backend/internal/validator"
	"github.com/rkenterprise/site-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting RK Enterprise site backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	adminUserRepo := repository.NewAdminUserRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	contactRepo := repository.NewContactQueryRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	productCache := cache.NewProductCache(rdb, cfg.ProductCacheTTL, log)

	authService := service.NewAuthService(cfg)
	adminUserService := service.NewAdminUserService(adminUserRepo, authService)
	productService := service.NewProductService(productRepo, productCache)
	contactService := service.NewContactService(contactRepo)
	mediaService := service.NewMediaService(cfg, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:      handler.NewAuthHandler(authService, adminUserService),
		AdminUser: handler.NewAdminUserHandler(adminUserService),
		Product:   handler.NewProductHandler(productService, mediaService),
		Contact:   handler.NewContactHandler(contactService),
		Media:     handler.NewMediaHandler(mediaService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	if cfg.OrphanSweepInterval > 0 {
		sweeper := worker.NewOrphanSweeper(pool, cfg, log)
		go sweeper.Start(workerCtx)
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skill-swap/backend/internal/api"
	mw "github.com/skill-swap/backend/internal/api/middleware"
	"github.com/skill-swap/backend/internal/repository"
	"github.com/skill-swap/backend/internal/services"
	"github.com/skill-swap/backend/internal/storage"
	"github.com/skill-swap/backend/pkg/config"
	"github.com/skill-swap/backend/pkg/database"
	"github.com/skill-swap/backend/pkg/logger"
	"go.uber.org/zap"
)

// @title           Skill Swap API
// @version         1.0
// @description     Skill-exchange marketplace: profiles, swap requests, feedback and moderation.

// @BasePath  /api

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting skill swap api",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
		zap.String("db_driver", cfg.DatabaseDriver),
		zap.String("storage", cfg.StorageDriver),
	)

	ctx := context.Background()
	db, err := database.Open(ctx, database.Options{
		Driver:       cfg.DatabaseDriver,
		DSN:          cfg.DatabaseURL,
		AppEnv:       cfg.AppEnv,
		MaxOpenConns: cfg.DBMaxOpenConns,
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()
	log.Info("database connected")

	store := repository.NewStore(db)

	photos, err := storage.New(storageConfig(cfg))
	if err != nil {
		log.Fatal("failed to initialise photo storage", zap.Error(err))
	}

	users := services.NewUserService(store, photos)
	swaps := services.NewSwapService(store)
	feedback := services.NewFeedbackService(store)
	admin := services.NewAdminService(store, users, swaps)

	if cfg.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			log.Fatal("migration failed", zap.Error(err))
		}
		if _, _, err := users.EnsureAdmin(ctx, cfg.AdminName, cfg.AdminPassword); err != nil {
			log.Fatal("admin seed failed", zap.Error(err))
		}
	}
	if !cfg.AdminAuthEnabled {
		log.Warn("admin endpoints are unauthenticated; set ADMIN_AUTH_ENABLED=true to require an admin X-User-ID")
	}

	limiter := mw.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Close()

	dep := api.Dependencies{
		Users:              users,
		Swaps:              swaps,
		Feedback:           feedback,
		Admin:              admin,
		Ping:               func(ctx context.Context) error { return database.Ping(ctx, db) },
		RateLimiter:        limiter,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminAuthEnabled:   cfg.AdminAuthEnabled,
		TrustProxyHeaders:  cfg.TrustProxyHeaders,
		MaxUploadBytes:     cfg.MaxUploadBytes,
	}
	if local, ok := photos.(*storage.LocalStorage); ok {
		dep.UploadDir = local.Dir()
		dep.UploadPrefix = cfg.UploadPublicPrefix
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(dep),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}

func storageConfig(cfg *config.Config) storage.Config {
	sc := storage.Config{
		Type:      cfg.StorageDriver,
		BasePath:  cfg.UploadDir,
		BaseURL:   cfg.UploadPublicPrefix,
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
	}
	if cfg.StorageDriver == "s3" && cfg.S3PublicURL != "" {
		sc.BaseURL = cfg.S3PublicURL
	}
	return sc
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/skill-swap/backend/internal/repository"
	"github.com/skill-swap/backend/internal/services"
	"github.com/skill-swap/backend/pkg/config"
	"github.com/skill-swap/backend/pkg/database"
	"github.com/skill-swap/backend/pkg/logger"
	"go.uber.org/zap"
)

// migrate brings the schema up to date and seeds the administrator. It never
// touches photo storage, so the user service is built without one.
func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

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

	if err := repository.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	admin, created, err := services.NewUserService(repository.NewStore(db), nil).EnsureAdmin(ctx, cfg.AdminName, cfg.AdminPassword)
	if err != nil {
		log.Fatal("admin seed failed", zap.Error(err))
	}
	log.Info("admin user ready", zap.String("user_id", admin.ID), zap.Bool("created", created))

	fmt.Fprintln(os.Stdout, "migrations completed")
}

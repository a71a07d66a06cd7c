package repository

import (
	"gorm.io/gorm"

	"github.com/skill-swap/backend/internal/models"
)

// registerModels returns all models that need migration
func registerModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.SwapRequest{},
		&models.Feedback{},
		&models.PlatformMessage{},
	}
}

// Migrate brings the schema up to date. Safe to run on every boot.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}
	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addDirectoryIndex,
		addSwapParticipantIndexes,
	}
	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}
	return nil
}

// addDirectoryIndex covers the public directory listing filter and its ordering.
func addDirectoryIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_users_directory
		ON users(is_public, is_banned, created_at)
	`).Error
}

func addSwapParticipantIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_swap_requests_sender_created
		ON swap_requests(sender_id, created_at)
	`).Error; err != nil {
		return err
	}
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_swap_requests_receiver_created
		ON swap_requests(receiver_id, created_at)
	`).Error
}

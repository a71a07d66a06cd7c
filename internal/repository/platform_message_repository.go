package repository

import (
	"context"

	"github.com/skill-swap/backend/internal/models"
	"gorm.io/gorm"
)

type PlatformMessageRepository interface {
	Append(ctx context.Context, msg *models.PlatformMessage) error
	Latest(ctx context.Context, dest *models.PlatformMessage) error
}

type platformMessageRepository struct {
	db *gorm.DB
}

func NewPlatformMessageRepository(db *gorm.DB) PlatformMessageRepository {
	return &platformMessageRepository{db: db}
}

func (r *platformMessageRepository) Append(ctx context.Context, msg *models.PlatformMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return translate(err, "platform message", "create")
	}
	return nil
}

// Latest loads the newest message; id breaks timestamp ties.
func (r *platformMessageRepository) Latest(ctx context.Context, dest *models.PlatformMessage) error {
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").First(dest).Error; err != nil {
		return translate(err, "platform message", "get")
	}
	return nil
}

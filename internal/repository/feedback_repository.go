package repository

import (
	"context"

	"github.com/skill-swap/backend/internal/models"
	appErr "github.com/skill-swap/backend/pkg/errors"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	BaseRepository[models.Feedback]
	Exists(ctx context.Context, swapRequestID, giverID string) (bool, error)
	ListAll(ctx context.Context) ([]models.Feedback, error)
}

type feedbackRepository struct {
	BaseRepository[models.Feedback]
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{BaseRepository: NewBaseRepository[models.Feedback](db, "feedback"), db: db}
}

func (r *feedbackRepository) Exists(ctx context.Context, swapRequestID, giverID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Feedback{}).
		Where("swap_request_id = ? AND giver_id = ?", swapRequestID, giverID).
		Count(&n).Error
	if err != nil {
		return false, appErr.Wrap(err, appErr.CodeInternal, "check existing feedback failed")
	}
	return n > 0, nil
}

func (r *feedbackRepository) ListAll(ctx context.Context) ([]models.Feedback, error) {
	var out []models.Feedback
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list feedback failed")
	}
	return out, nil
}

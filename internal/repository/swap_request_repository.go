package repository

import (
	"context"

	"github.com/skill-swap/backend/internal/models"
	appErr "github.com/skill-swap/backend/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SwapRequestRepository interface {
	BaseRepository[models.SwapRequest]
	GetForUpdate(ctx context.Context, requestID string, dest *models.SwapRequest) error
	ListForUser(ctx context.Context, userID string) ([]models.SwapRequest, error)
	ListAll(ctx context.Context) ([]models.SwapRequest, error)
	UpdateStatus(ctx context.Context, requestID string, status models.SwapStatus) error
}

type swapRequestRepository struct {
	BaseRepository[models.SwapRequest]
	db *gorm.DB
}

func NewSwapRequestRepository(db *gorm.DB) SwapRequestRepository {
	return &swapRequestRepository{BaseRepository: NewBaseRepository[models.SwapRequest](db, "swap request"), db: db}
}

// GetForUpdate locks the row for the rest of the transaction where the driver supports it.
func (r *swapRequestRepository) GetForUpdate(ctx context.Context, requestID string, dest *models.SwapRequest) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(dest, "id = ?", requestID).Error
	if err != nil {
		return translate(err, "swap request", "get")
	}
	return nil
}

func (r *swapRequestRepository) ListForUser(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	var out []models.SwapRequest
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list swap requests by user failed")
	}
	return out, nil
}

func (r *swapRequestRepository) ListAll(ctx context.Context) ([]models.SwapRequest, error) {
	var out []models.SwapRequest
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list swap requests failed")
	}
	return out, nil
}

func (r *swapRequestRepository) UpdateStatus(ctx context.Context, requestID string, status models.SwapStatus) error {
	res := r.db.WithContext(ctx).Model(&models.SwapRequest{}).Where("id = ?", requestID).Update("status", status)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update swap request status failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "swap request not found")
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	appErr "github.com/skill-swap/backend/pkg/errors"
	"gorm.io/gorm"
)

// Store groups the repositories bound to one database handle. A Store built
// inside Transaction shares that transaction across every repository.
type Store struct {
	db *gorm.DB

	Users            UserRepository
	SwapRequests     SwapRequestRepository
	Feedback         FeedbackRepository
	PlatformMessages PlatformMessageRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:               db,
		Users:            NewUserRepository(db),
		SwapRequests:     NewSwapRequestRepository(db),
		Feedback:         NewFeedbackRepository(db),
		PlatformMessages: NewPlatformMessageRepository(db),
	}
}

// DB exposes the underlying handle, e.g. for health checks.
func (s *Store) DB() *gorm.DB { return s.db }

// Transaction runs fn in a single transaction. Any error or panic from fn rolls
// everything back before the error is returned.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
	if err == nil {
		return nil
	}
	var ae *appErr.AppError
	if errors.As(err, &ae) {
		return err
	}
	return appErr.Wrap(err, appErr.CodeInternal, "transaction failed")
}

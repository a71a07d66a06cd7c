package services

import (
	"context"

	"github.com/skill-swap/backend/internal/models"
	"github.com/skill-swap/backend/internal/repository"
	appErr "github.com/skill-swap/backend/pkg/errors"
	"github.com/skill-swap/backend/pkg/logger"
	"go.uber.org/zap"
)

// AdminService composes moderation and audit reads over the other services.
// It performs no authorization of its own.
type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	SetBanned(ctx context.Context, userID string, banned bool) error
	PlatformMessage(ctx context.Context) (string, error)
	SetPlatformMessage(ctx context.Context, message string) (*models.PlatformMessage, error)
	ListSwapRequests(ctx context.Context) ([]models.SwapRequest, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

type adminService struct {
	store *repository.Store
	users UserService
	swaps SwapService
}

func NewAdminService(store *repository.Store, users UserService, swaps SwapService) AdminService {
	return &adminService{store: store, users: users, swaps: swaps}
}

var _ AdminService = (*adminService)(nil)

func (s *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListAllUsers(ctx)
}

func (s *adminService) SetBanned(ctx context.Context, userID string, banned bool) error {
	return s.users.SetBanned(ctx, userID, banned)
}

// PlatformMessage returns the newest announcement, or "" when none was ever set.
func (s *adminService) PlatformMessage(ctx context.Context) (string, error) {
	var msg models.PlatformMessage
	if err := s.store.PlatformMessages.Latest(ctx, &msg); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return "", nil
		}
		return "", err
	}
	return msg.Message, nil
}

func (s *adminService) SetPlatformMessage(ctx context.Context, message string) (*models.PlatformMessage, error) {
	msg := &models.PlatformMessage{Message: message}
	if err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.PlatformMessages.Append(ctx, msg)
	}); err != nil {
		return nil, err
	}
	logger.L().Info("platform message set", zap.Uint("message_id", msg.ID))
	return msg, nil
}

func (s *adminService) ListSwapRequests(ctx context.Context) ([]models.SwapRequest, error) {
	return s.swaps.ListAll(ctx)
}

func (s *adminService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	u, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return false, err
	}
	return u.IsAdmin, nil
}

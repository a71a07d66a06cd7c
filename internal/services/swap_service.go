package services

import (
	"context"

	"github.com/skill-swap/backend/internal/models"
	"github.com/skill-swap/backend/internal/repository"
	appErr "github.com/skill-swap/backend/pkg/errors"
	"github.com/skill-swap/backend/pkg/logger"
	"go.uber.org/zap"
)

// SwapService manages the swap request lifecycle between two users.
type SwapService interface {
	Create(ctx context.Context, input *CreateSwapInput) (*models.SwapRequest, error)
	ListForUser(ctx context.Context, userID string) ([]models.SwapRequest, error)
	ListAll(ctx context.Context) ([]models.SwapRequest, error)
	UpdateStatus(ctx context.Context, requestID string, status models.SwapStatus) (*models.SwapRequest, error)
	Delete(ctx context.Context, requestID string) error
}

type CreateSwapInput struct {
	SenderID     string
	SenderName   string
	ReceiverID   string
	ReceiverName string
	SkillOffered string
	SkillWanted  string
}

// CanTransition applies the swap state rule: accept and reject only act on a
// pending request, while completed may be set from any state.
func CanTransition(from, to models.SwapStatus) bool {
	return to == models.SwapCompleted || from == models.SwapPending
}

// ValidTargetStatus reports whether status may be requested by a caller.
func ValidTargetStatus(status models.SwapStatus) bool {
	switch status {
	case models.SwapAccepted, models.SwapRejected, models.SwapCompleted:
		return true
	}
	return false
}

type swapService struct {
	store *repository.Store
}

func NewSwapService(store *repository.Store) SwapService {
	return &swapService{store: store}
}

var _ SwapService = (*swapService)(nil)

func (s *swapService) Create(ctx context.Context, input *CreateSwapInput) (*models.SwapRequest, error) {
	if input.SenderID == "" || input.SenderName == "" || input.ReceiverID == "" ||
		input.ReceiverName == "" || input.SkillOffered == "" || input.SkillWanted == "" {
		return nil, appErr.New(appErr.CodeInvalid, "Missing required fields")
	}
	if input.SenderID == input.ReceiverID {
		return nil, appErr.New(appErr.CodeInvalid, "Cannot send a swap request to yourself")
	}

	req := &models.SwapRequest{
		SenderID:     input.SenderID,
		SenderName:   input.SenderName,
		ReceiverID:   input.ReceiverID,
		ReceiverName: input.ReceiverName,
		SkillOffered: input.SkillOffered,
		SkillWanted:  input.SkillWanted,
		Status:       models.SwapPending,
	}
	if err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.SwapRequests.Create(ctx, req)
	}); err != nil {
		return nil, err
	}

	logger.L().Info("swap request created",
		zap.String("request_id", req.ID),
		zap.String("sender_id", req.SenderID),
		zap.String("receiver_id", req.ReceiverID),
	)
	return req, nil
}

func (s *swapService) ListForUser(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	return s.store.SwapRequests.ListForUser(ctx, userID)
}

func (s *swapService) ListAll(ctx context.Context) ([]models.SwapRequest, error) {
	return s.store.SwapRequests.ListAll(ctx)
}

func (s *swapService) UpdateStatus(ctx context.Context, requestID string, status models.SwapStatus) (*models.SwapRequest, error) {
	if !ValidTargetStatus(status) {
		return nil, appErr.New(appErr.CodeInvalid, "Invalid status")
	}

	var req models.SwapRequest
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.SwapRequests.GetForUpdate(ctx, requestID, &req); err != nil {
			return swapNotFound(err)
		}
		if !CanTransition(req.Status, status) {
			return appErr.Newf(appErr.CodeInvalidTransition,
				"Cannot change status from '%s' to '%s'", req.Status, status).
				WithMeta("from", req.Status).WithMeta("to", status)
		}
		if err := tx.SwapRequests.UpdateStatus(ctx, requestID, status); err != nil {
			return swapNotFound(err)
		}
		req.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.L().Info("swap request status updated", zap.String("request_id", requestID), zap.String("status", string(status)))
	return &req, nil
}

func (s *swapService) Delete(ctx context.Context, requestID string) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.SwapRequests.Delete(ctx, requestID)
	})
	if err != nil {
		return swapNotFound(err)
	}
	logger.L().Info("swap request deleted", zap.String("request_id", requestID))
	return nil
}

func swapNotFound(err error) error {
	if appErr.IsCode(err, appErr.CodeNotFound) {
		return appErr.New(appErr.CodeNotFound, "Swap request not found")
	}
	return err
}

package services

import (
	"context"

	"github.com/skill-swap/backend/internal/models"
	"github.com/skill-swap/backend/internal/repository"
	appErr "github.com/skill-swap/backend/pkg/errors"
	"github.com/skill-swap/backend/pkg/logger"
	"go.uber.org/zap"
)

const (
	MinRating = 1
	MaxRating = 5
)

// FeedbackService records post-swap ratings and keeps each user's average current.
type FeedbackService interface {
	Submit(ctx context.Context, input *SubmitFeedbackInput) (*models.Feedback, error)
	ListAll(ctx context.Context) ([]models.Feedback, error)
}

type SubmitFeedbackInput struct {
	SwapRequestID string
	GiverID       string
	ReceiverID    string
	Rating        int
	Comment       string
}

type feedbackService struct {
	store *repository.Store
}

func NewFeedbackService(store *repository.Store) FeedbackService {
	return &feedbackService{store: store}
}

var _ FeedbackService = (*feedbackService)(nil)

// Submit inserts the feedback row and folds its rating into the receiver's
// average in one transaction. A missing receiver skips the rating update but
// the feedback row is still kept.
func (s *feedbackService) Submit(ctx context.Context, input *SubmitFeedbackInput) (*models.Feedback, error) {
	if input.SwapRequestID == "" || input.GiverID == "" || input.ReceiverID == "" || input.Rating == 0 {
		return nil, appErr.New(appErr.CodeInvalid, "Missing required feedback fields")
	}
	if input.Rating < MinRating || input.Rating > MaxRating {
		return nil, appErr.New(appErr.CodeInvalid, "Rating must be between 1 and 5")
	}

	fb := &models.Feedback{
		SwapRequestID: input.SwapRequestID,
		GiverID:       input.GiverID,
		ReceiverID:    input.ReceiverID,
		Rating:        input.Rating,
		Comment:       input.Comment,
	}
	var rated bool
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		exists, err := tx.Feedback.Exists(ctx, fb.SwapRequestID, fb.GiverID)
		if err != nil {
			return err
		}
		if exists {
			return appErr.New(appErr.CodeConflict, "Feedback already submitted for this swap by this user")
		}
		if err := tx.Feedback.Create(ctx, fb); err != nil {
			return err
		}
		rated, err = tx.Users.ApplyRating(ctx, fb.ReceiverID, fb.Rating)
		return err
	})
	if err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.New(appErr.CodeConflict, "Feedback already submitted for this swap by this user")
		}
		return nil, err
	}

	if !rated {
		logger.L().Warn("feedback receiver not found, rating not applied",
			zap.String("feedback_id", fb.ID), zap.String("receiver_id", fb.ReceiverID))
	}
	logger.L().Info("feedback recorded",
		zap.String("feedback_id", fb.ID),
		zap.String("swap_request_id", fb.SwapRequestID),
		zap.Int("rating", fb.Rating),
	)
	return fb, nil
}

func (s *feedbackService) ListAll(ctx context.Context) ([]models.Feedback, error) {
	return s.store.Feedback.ListAll(ctx)
}

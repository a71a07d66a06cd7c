package handlers

import (
	"net/http"

	"github.com/skill-swap/backend/internal/api/types"
	"github.com/skill-swap/backend/internal/services"
)

type FeedbackHandler struct {
	feedback services.FeedbackService
}

func NewFeedbackHandler(feedback services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// Submit godoc
// @Summary      Rate the other side of a swap
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      types.SubmitFeedbackRequest  true  "Rating"
// @Success      201   {object}  types.MessageResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      409   {object}  types.ErrorResponse
// @Router       /feedback [post]
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req types.SubmitFeedbackRequest
	if err := decodeJSON(w, r, &req, "Missing required feedback fields"); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.feedback.Submit(r.Context(), &services.SubmitFeedbackInput{
		SwapRequestID: req.SwapRequestID,
		GiverID:       req.GiverID,
		ReceiverID:    req.ReceiverID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.MessageResponse{Message: "Feedback submitted successfully"})
}

// List godoc
// @Summary      All feedback, newest first
// @Tags         feedback
// @Produce      json
// @Success      200  {array}  models.Feedback
// @Router       /feedback [get]
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.feedback.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skill-swap/backend/internal/api/types"
	"github.com/skill-swap/backend/internal/models"
	"github.com/skill-swap/backend/internal/services"
)

type SwapsHandler struct {
	swaps services.SwapService
}

func NewSwapsHandler(swaps services.SwapService) *SwapsHandler {
	return &SwapsHandler{swaps: swaps}
}

// Create godoc
// @Summary      Send a swap request
// @Tags         swaps
// @Accept       json
// @Produce      json
// @Param        body  body      types.CreateSwapRequest  true  "Swap proposal"
// @Success      201   {object}  types.SwapCreatedResponse
// @Failure      400   {object}  types.ErrorResponse
// @Router       /swap_requests [post]
func (h *SwapsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSwapRequest
	if err := decodeJSON(w, r, &req, "Missing required fields"); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.swaps.Create(r.Context(), &services.CreateSwapInput{
		SenderID:     req.SenderID,
		SenderName:   req.SenderName,
		ReceiverID:   req.ReceiverID,
		ReceiverName: req.ReceiverName,
		SkillOffered: req.SkillOffered,
		SkillWanted:  req.SkillWanted,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.SwapCreatedResponse{Message: "Swap request sent successfully", RequestID: created.ID})
}

// ListForUser godoc
// @Summary      Swap requests a user sent or received
// @Tags         swaps
// @Produce      json
// @Param        userId  path     string  true  "User id"
// @Success      200     {array}  models.SwapRequest
// @Router       /swap_requests/{userId} [get]
func (h *SwapsHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	items, err := h.swaps.ListForUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// UpdateStatus godoc
// @Summary      Accept, reject or complete a swap
// @Description  accepted and rejected apply only to pending requests; completed applies from any state.
// @Tags         swaps
// @Accept       json
// @Produce      json
// @Param        requestId  path      string                         true  "Swap request id"
// @Param        body       body      types.UpdateSwapStatusRequest  true  "Target status"
// @Success      200        {object}  types.MessageResponse
// @Failure      400        {object}  types.ErrorResponse
// @Failure      404        {object}  types.ErrorResponse
// @Router       /swap_requests/{requestId} [put]
func (h *SwapsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateSwapStatusRequest
	if err := decodeJSON(w, r, &req, "Invalid status"); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.swaps.UpdateStatus(r.Context(), chi.URLParam(r, "requestId"), models.SwapStatus(req.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: fmt.Sprintf("Swap request status updated to %s", updated.Status)})
}

// Delete godoc
// @Summary      Delete a swap request
// @Tags         swaps
// @Produce      json
// @Param        requestId  path      string  true  "Swap request id"
// @Success      200        {object}  types.MessageResponse
// @Failure      404        {object}  types.ErrorResponse
// @Router       /swap_requests/{requestId} [delete]
func (h *SwapsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.swaps.Delete(r.Context(), chi.URLParam(r, "requestId")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: "Swap request deleted successfully"})
}

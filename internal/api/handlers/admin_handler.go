package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skill-swap/backend/internal/api/middleware"
	"github.com/skill-swap/backend/internal/api/types"
	"github.com/skill-swap/backend/internal/services"
	"github.com/skill-swap/backend/pkg/logger"
	"go.uber.org/zap"
)

type AdminHandler struct {
	admin services.AdminService
}

func NewAdminHandler(admin services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListUsers godoc
// @Summary      Every user, newest first
// @Tags         admin
// @Produce      json
// @Success      200  {array}  models.User
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// SetBanned godoc
// @Summary      Ban or unban a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        userId  path      string            true  "User id"
// @Param        body    body      types.BanRequest  true  "Ban flag"
// @Success      200     {object}  types.MessageResponse
// @Failure      400     {object}  types.ErrorResponse
// @Failure      404     {object}  types.ErrorResponse
// @Router       /admin/users/{userId}/ban [put]
func (h *AdminHandler) SetBanned(w http.ResponseWriter, r *http.Request) {
	var req types.BanRequest
	if err := decodeJSON(w, r, &req, "isBanned field is required and must be 0 or 1"); err != nil {
		writeError(w, r, err)
		return
	}

	userID := chi.URLParam(r, "userId")
	banned := *req.IsBanned.Ptr()
	if err := h.admin.SetBanned(r.Context(), userID, banned); err != nil {
		writeError(w, r, err)
		return
	}
	verb := "unbanned"
	if banned {
		verb = "banned"
	}
	auditLog(r, "user "+verb, zap.String("user_id", userID))
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: fmt.Sprintf("User %s successfully %s.", userID, verb)})
}

// GetPlatformMessage godoc
// @Summary      Current platform announcement
// @Tags         admin
// @Produce      json
// @Success      200  {object}  types.MessageResponse
// @Router       /admin/platform_message [get]
func (h *AdminHandler) GetPlatformMessage(w http.ResponseWriter, r *http.Request) {
	msg, err := h.admin.PlatformMessage(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: msg})
}

// SetPlatformMessage godoc
// @Summary      Publish a platform announcement
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      types.PlatformMessageRequest  true  "Announcement"
// @Success      200   {object}  types.MessageResponse
// @Failure      400   {object}  types.ErrorResponse
// @Router       /admin/platform_message [put]
// @Router       /admin/platform_message [post]
func (h *AdminHandler) SetPlatformMessage(w http.ResponseWriter, r *http.Request) {
	var req types.PlatformMessageRequest
	if err := decodeJSON(w, r, &req, "Message content is required"); err != nil {
		writeError(w, r, err)
		return
	}
	msg, err := h.admin.SetPlatformMessage(r.Context(), *req.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	auditLog(r, "platform message set", zap.Uint("message_id", msg.ID))
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: "Platform message updated successfully"})
}

// ListSwapRequests godoc
// @Summary      Every swap request, newest first
// @Tags         admin
// @Produce      json
// @Success      200  {array}  models.SwapRequest
// @Router       /admin/swap_requests [get]
func (h *AdminHandler) ListSwapRequests(w http.ResponseWriter, r *http.Request) {
	items, err := h.admin.ListSwapRequests(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// auditLog records an admin mutation with the acting admin when the guard is on.
func auditLog(r *http.Request, action string, fields ...zap.Field) {
	actor := middleware.GetUserID(r.Context())
	if actor == "" {
		actor = "anonymous"
	}
	fields = append(fields, zap.String("admin_id", actor), zap.String("id", middleware.GetRequestID(r.Context())))
	logger.L().Info(action, fields...)
}

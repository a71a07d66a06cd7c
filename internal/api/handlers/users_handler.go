package handlers

import (
	"net/http"

	"github.com/skill-swap/backend/internal/services"
)

type UsersHandler struct {
	users services.UserService
}

func NewUsersHandler(users services.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Search godoc
// @Summary      Browse public profiles
// @Description  Matches name, skills and location case-insensitively. Private and banned users are never listed.
// @Tags         users
// @Produce      json
// @Param        searchTerm  query     string  false  "Substring to match"
// @Success      200         {array}   models.User
// @Router       /users [get]
func (h *UsersHandler) Search(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListPublicUsers(r.Context(), r.URL.Query().Get("searchTerm"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

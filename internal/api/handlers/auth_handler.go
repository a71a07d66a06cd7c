package handlers

import (
	"net/http"

	"github.com/skill-swap/backend/internal/api/types"
	"github.com/skill-swap/backend/internal/services"
)

type AuthHandler struct {
	users services.UserService
}

func NewAuthHandler(users services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Signup godoc
// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      types.SignupRequest  true  "New account"
// @Success      201   {object}  types.AuthResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      409   {object}  types.ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := decodeJSON(w, r, &req, "Username and password are required"); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.users.Register(r.Context(), &services.RegisterInput{
		Name:          req.Name,
		Password:      req.Password,
		Location:      req.Location,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
		Availability:  req.Availability,
		IsPublic:      req.IsPublic.Ptr(),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.AuthResponse{
		Message:     "User registered successfully",
		UserID:      u.ID,
		UserProfile: u,
	})
}

// Login godoc
// @Summary      Check credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      types.LoginRequest  true  "Credentials"
// @Success      200   {object}  types.AuthResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      401   {object}  types.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeJSON(w, r, &req, "Username and password are required"); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.users.Authenticate(r.Context(), req.Name, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, types.AuthResponse{
		Message:     "Login successful",
		UserID:      u.ID,
		UserProfile: u,
	})
}

package types

import "github.com/skill-swap/backend/internal/models"

type MessageResponse struct {
	Message string `json:"message"`
}

type AuthResponse struct {
	Message     string       `json:"message"`
	UserID      string       `json:"userId"`
	UserProfile *models.User `json:"userProfile"`
}

type ProfileUpdateResponse struct {
	Message     string       `json:"message"`
	UserProfile *models.User `json:"userProfile"`
}

type SwapCreatedResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

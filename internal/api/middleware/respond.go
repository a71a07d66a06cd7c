package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/skill-swap/backend/internal/api/types"
	appErr "github.com/skill-swap/backend/pkg/errors"
)

func writeError(w http.ResponseWriter, status int, code appErr.Code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: string(code)})
}

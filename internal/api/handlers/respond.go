package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/skill-swap/backend/internal/api/middleware"
	"github.com/skill-swap/backend/internal/api/types"
	"github.com/skill-swap/backend/internal/api/validators"
	appErr "github.com/skill-swap/backend/pkg/errors"
	"github.com/skill-swap/backend/pkg/logger"
	"go.uber.org/zap"
)

const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := types.StatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.L().Error("request failed",
			zap.String("id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, status, types.FromAppError(err))
}

func writeErrorStr(w http.ResponseWriter, status int, code appErr.Code, msg string) {
	writeJSON(w, status, types.ErrorResponse{Error: msg, Code: string(code)})
}

// decodeJSON reads a single JSON object into dst and validates it. Any decode
// or validation failure becomes an invalid error carrying msg.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, msg string) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return appErr.New(appErr.CodeInvalid, msg)
		}
		return appErr.Wrap(err, appErr.CodeInvalid, msg)
	}
	if err := validators.New().Struct(dst); err != nil {
		return appErr.Wrap(err, appErr.CodeInvalid, msg).WithMeta("fields", validators.FailedFields(err))
	}
	return nil
}

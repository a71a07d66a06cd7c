package middleware

import (
	"net/http"
	"runtime/debug"

	appErr "github.com/skill-swap/backend/pkg/errors"
	"github.com/skill-swap/backend/pkg/logger"
	"go.uber.org/zap"
)

// Recovery turns a handler panic into a logged 500 with the usual error body.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.L().Error("panic recovered",
				zap.String("id", GetRequestID(r.Context())),
				zap.String("path", r.URL.Path),
				zap.Any("panic", rec),
				zap.ByteString("stack", debug.Stack()),
			)
			writeError(w, http.StatusInternalServerError, appErr.CodeInternal, "Internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}

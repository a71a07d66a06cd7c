package middleware

import (
	"context"
	"net/http"

	appErr "github.com/skill-swap/backend/pkg/errors"
	"github.com/skill-swap/backend/pkg/logger"
	"go.uber.org/zap"
)

type userKeyType string

const (
	UserIDKey    userKeyType = "user_id"
	UserIDHeader             = "X-User-ID"
)

// AdminChecker reports whether a user holds the admin capability.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// AdminOnly admits requests whose X-User-ID names an existing admin.
func AdminOnly(admins AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := r.Header.Get(UserIDHeader)
			if uid == "" {
				writeError(w, http.StatusUnauthorized, appErr.CodeUnauthorized, "Admin credentials required")
				return
			}
			ok, err := admins.IsAdmin(r.Context(), uid)
			switch {
			case appErr.IsCode(err, appErr.CodeNotFound):
				writeError(w, http.StatusUnauthorized, appErr.CodeUnauthorized, "Admin credentials required")
				return
			case err != nil:
				logger.L().Error("admin check failed", zap.String("id", GetRequestID(r.Context())), zap.Error(err))
				writeError(w, http.StatusInternalServerError, appErr.CodeInternal, "Internal server error")
				return
			case !ok:
				writeError(w, http.StatusForbidden, appErr.CodeForbidden, "Admin access required")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserIDKey, uid)))
		})
	}
}

func GetUserID(ctx context.Context) string {
	uid, _ := ctx.Value(UserIDKey).(string)
	return uid
}

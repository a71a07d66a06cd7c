package types

import (
	"net/http"

	appErr "github.com/skill-swap/backend/pkg/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"User not found"`
	Code  string `json:"code" example:"not_found"`
}

var statusByCode = map[appErr.Code]int{
	appErr.CodeInvalid:           http.StatusBadRequest,
	appErr.CodeInvalidTransition: http.StatusBadRequest,
	appErr.CodeUnauthorized:      http.StatusUnauthorized,
	appErr.CodeForbidden:         http.StatusForbidden,
	appErr.CodeNotFound:          http.StatusNotFound,
	appErr.CodeConflict:          http.StatusConflict,
	appErr.CodeUnavailable:       http.StatusServiceUnavailable,
	appErr.CodeInternal:          http.StatusInternalServerError,
}

// StatusFor maps an error's code to an HTTP status. Anything unrecognised is a 500.
func StatusFor(err error) int {
	if status, ok := statusByCode[appErr.CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func FromAppError(err error) ErrorResponse {
	code := appErr.CodeOf(err)
	if code == appErr.CodeUnknown {
		return ErrorResponse{Error: "Internal server error", Code: string(appErr.CodeInternal)}
	}
	return ErrorResponse{Error: appErr.MessageOf(err), Code: string(code)}
}

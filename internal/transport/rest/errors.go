package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

// Error codes returned in errorResponse.Code.
const (
	codeBadRequest         = "BAD_REQUEST"
	codeValidation         = "VALIDATION"
	codeUnauthenticated    = "UNAUTHENTICATED"
	codeForbidden          = "FORBIDDEN"
	codeNotFound           = "NOT_FOUND"
	codeConflict           = "CONFLICT"
	codePreconditionFailed = "PRECONDITION_FAILED"
	codeAlreadyExists      = "ALREADY_EXISTS"
	codeInternal           = "INTERNAL"
)

// errorScope selects how authorization failures are reported.
type errorScope int

const (
	// scopeResource hides existence: Forbidden is reported as not found.
	scopeResource errorScope = iota
	// scopeAdmin reports Forbidden as 403.
	scopeAdmin
)

// writeServiceError maps a service error onto an HTTP response.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, scope errorScope, err error) {
	var (
		validation   *domain.ValidationError
		precondition *domain.PreconditionError
	)

	switch {
	case errors.As(err, &validation):
		resp := errorResponse{Error: "validation failed", Code: codeValidation}
		for _, fe := range validation.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, "validation failed")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthenticated, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		if scope == scopeAdmin {
			writeError(w, http.StatusForbidden, codeForbidden, "forbidden")
			return
		}
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.As(err, &precondition):
		writeError(w, http.StatusConflict, codePreconditionFailed, precondition.Reason)
	case errors.Is(err, domain.ErrPreconditionFailed):
		writeError(w, http.StatusConflict, codePreconditionFailed, "precondition failed")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, "concurrent modification, retry")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeAlreadyExists, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

package httputil

import (
	"errors"
	"net/http"

	"github.com/redmonkez12/courses-api/internal/apperr"
	"github.com/redmonkez12/courses-api/internal/logging"
)

// InternalErrorMessage is returned for every unexpected failure.
const InternalErrorMessage = "Internal server error"

// HandlerFunc is an HTTP handler that reports failures by returning them.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts h to http.HandlerFunc. Failures carrying an apperr kind are
// translated into their response; everything else goes to the fallback,
// which logs it and answers 500.
func Handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			RespondFailure(w, r, err)
		}
	}
}

// RespondFailure writes the response for err.
func RespondFailure(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		respondUnexpected(w, r, err)
		return
	}

	logger := logging.GetLoggerFromContext(r.Context())

	switch appErr.Kind {
	case apperr.KindValidation, apperr.KindConflict:
		logger.Warn("request rejected", "kind", appErr.Kind.String(), "errors", appErr.Messages)
		RespondErrors(w, appErr.Messages)
	case apperr.KindUnauthenticated:
		RespondMessage(w, appErr.Message(), http.StatusUnauthorized)
	case apperr.KindForbidden:
		RespondMessage(w, appErr.Message(), http.StatusForbidden)
	case apperr.KindNotFound:
		RespondMessage(w, appErr.Message(), http.StatusNotFound)
	case apperr.KindRateLimited:
		RespondMessage(w, appErr.Message(), http.StatusTooManyRequests)
	default:
		respondUnexpected(w, r, err)
	}
}

func respondUnexpected(w http.ResponseWriter, r *http.Request, err error) {
	logging.GetLoggerFromContext(r.Context()).Error("unhandled error", "error", err.Error())
	RespondMessage(w, InternalErrorMessage, http.StatusInternalServerError)
}

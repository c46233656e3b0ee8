package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// ErrorStatus maps a domain error to an HTTP status code.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the failure envelope for a domain error. Error
// details never reach the client: storage failures and unknown errors share
// one generic message.
func NewErrorResponse(err error) Envelope {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		if verr.HasField("title") {
			return Failure(MsgMissingTitle)
		}
		return Failure(MsgInvalidBody)
	case errors.Is(err, domain.ErrNotFound):
		return Failure(MsgNotFound)
	default:
		return Failure(MsgServerError)
	}
}

// WriteErrorResponse writes the failure envelope and status code for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteJSON(w, r, ErrorStatus(err), NewErrorResponse(err))
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(v); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", encErr),
		)
	}
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// WriteDomainError maps a domain error code onto an HTTP status. Unknown
// errors stay opaque 500s.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	status := http.StatusInternalServerError
	switch de.Code {
	case domain.CodeNotFound:
		status = http.StatusNotFound
	case domain.CodeConflict, domain.CodeInvalidTransition:
		status = http.StatusConflict
	case domain.CodeIneligible, domain.CodeForbidden:
		status = http.StatusForbidden
	case domain.CodeValidation:
		status = http.StatusBadRequest
	}
	WriteError(w, r, status, string(de.Code), de.Message)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dive-demo-tour/api/internal/domain"
)

// SuccessEnvelope is the generic response wrapper. Every response carries the
// success flag so clients can branch without inspecting the status code.
type SuccessEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorEnvelope is the wrapper for all failed requests.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RegistrationCreatedEnvelope acknowledges a stored registration. It is
// written as soon as the record is durable; emails are still in flight.
type RegistrationCreatedEnvelope struct {
	Success        bool   `json:"success"`
	RegistrationID string `json:"registrationId"`
	RegisteredAt   string `json:"registeredAt"`
}

// RegistrationListEnvelope wraps registration list responses.
type RegistrationListEnvelope struct {
	Success       bool                  `json:"success"`
	Count         int                   `json:"count"`
	Registrations []domain.Registration `json:"registrations"`
}

// DataEnvelope wraps single-resource and list responses for admin CRUD.
type DataEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// TokenEnvelope wraps a successful login.
type TokenEnvelope struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// UploadEnvelope wraps a stored object reference.
type UploadEnvelope struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorEnvelope{Success: false, Error: msg})
}

// httpError maps domain sentinel errors to HTTP status codes.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

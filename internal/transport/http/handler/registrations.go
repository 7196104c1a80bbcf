package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dive-demo-tour/api/internal/application/registration"
	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// RegistrationHandler handles registration intake and the admin views of it.
type RegistrationHandler struct {
	svc registration.Service
}

func NewRegistrationHandler(svc registration.Service) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// Create is the public intake endpoint. A 200 here means the registration is
// stored; the notification emails run detached and never affect the response.
func (h *RegistrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reg, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RegistrationCreatedEnvelope{
		Success:        true,
		RegistrationID: reg.RegistrationID,
		RegisteredAt:   reg.RegisteredAt,
	})
}

func (h *RegistrationHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	regs, err := h.svc.ListAll(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RegistrationListEnvelope{Success: true, Count: len(regs), Registrations: regs})
}

func (h *RegistrationHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	regs, err := h.svc.ListByEvent(r.Context(), chi.URLParam(r, "eventId"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RegistrationListEnvelope{Success: true, Count: len(regs), Registrations: regs})
}

// Delete is idempotent: deleting an absent registration still reports success.
func (h *RegistrationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "eventId"), chi.URLParam(r, "registrationId")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessEnvelope{Success: true, Message: "registration deleted"})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dive-demo-tour/api/internal/application/partner"
	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// PartnerHandler handles partner endpoints.
type PartnerHandler struct {
	svc partner.Service
}

func NewPartnerHandler(svc partner.Service) *PartnerHandler { return &PartnerHandler{svc: svc} }

func (h *PartnerHandler) List(w http.ResponseWriter, r *http.Request) {
	partners, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Success: true, Data: partners})
}

func (h *PartnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Success: true, Data: p})
}

func (h *PartnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.PartnerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, DataEnvelope{Success: true, Data: created})
}

func (h *PartnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.PartnerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Success: true, Data: updated})
}

func (h *PartnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessEnvelope{Success: true, Message: "partner deleted"})
}

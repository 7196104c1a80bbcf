package handler

import (
	"encoding/json"
	"net/http"

	moduleapp "github.com/dive-demo-tour/api/internal/application/module"
	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// ModuleHandler handles program module endpoints. Modules are always scoped
// to an event; listing without an event id is not offered.
type ModuleHandler struct {
	svc moduleapp.Service
}

func NewModuleHandler(svc moduleapp.Service) *ModuleHandler { return &ModuleHandler{svc: svc} }

// ListByEvent serves /events/{id}/modules, so the event id arrives as "id".
func (h *ModuleHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	modules, err := h.svc.ListByEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Success: true, Data: modules})
}

func (h *ModuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Success: true, Data: m})
}

func (h *ModuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.ModuleInput
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

func (h *ModuleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.ModuleInput
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

func (h *ModuleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessEnvelope{Success: true, Message: "module deleted"})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dive-demo-tour/api/internal/application/brand"
	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// BrandHandler handles exhibitor brand endpoints.
type BrandHandler struct {
	svc brand.Service
}

func NewBrandHandler(svc brand.Service) *BrandHandler { return &BrandHandler{svc: svc} }

func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Success: true, Data: brands})
}

func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Success: true, Data: b})
}

func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.BrandInput
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

func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.BrandInput
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

func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessEnvelope{Success: true, Message: "brand deleted"})
}

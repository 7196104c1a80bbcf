package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dive-demo-tour/api/internal/application/settings"
	"github.com/dive-demo-tour/api/internal/domain"
)

// SettingsHandler handles the homepage settings singleton.
type SettingsHandler struct {
	svc settings.Service
}

func NewSettingsHandler(svc settings.Service) *SettingsHandler { return &SettingsHandler{svc: svc} }

func (h *SettingsHandler) GetHomepage(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetHomepage(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Success: true, Data: s})
}

func (h *SettingsHandler) UpdateHomepage(w http.ResponseWriter, r *http.Request) {
	var input domain.HomepageSettingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.svc.UpdateHomepage(r.Context(), input)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Success: true, Data: updated})
}

package handler

import (
	"net/http"

	"github.com/dive-demo-tour/api/internal/application/upload"
)

// UploadHandler handles admin image uploads.
type UploadHandler struct {
	svc upload.Service
}

func NewUploadHandler(svc upload.Service) *UploadHandler { return &UploadHandler{svc: svc} }

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	f, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer f.Close()

	url, err := h.svc.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), f)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, UploadEnvelope{Success: true, URL: url})
}

func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing key parameter")
		return
	}
	if err := h.svc.Delete(r.Context(), key); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessEnvelope{Success: true, Message: "file deleted"})
}

package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"rentkart-backend/internal/logger"
	"rentkart-backend/internal/storage"
)

type uploadHandler struct {
	store       storage.Storage
	maxFileSize int64
}

// upload accepts a multipart image and returns its public URL, for use
// in item create/update payloads.
func (h *uploadHandler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid multipart body or file too large"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing image file"})
		return
	}
	defer file.Close()

	key, err := h.store.Save(header.Filename, file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"key": key,
		"url": h.store.URL(key),
	})
}

func (h *uploadHandler) download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	f, err := h.store.Open(key)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "file not found"})
		return
	}
	defer f.Close()

	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	if _, err := io.Copy(w, f); err != nil {
		logger.Error("failed to stream file", "key", key, "error", err)
	}
}

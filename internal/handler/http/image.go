// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/go-chi/chi/v5"
)

// serveImage streams a stored image or thumbnail, e.g.
// GET /images/<name> or GET /images/thumbnails/<name>.
func (h *Handler) serveImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")

	image, err := h.services.PhotoService.OpenImage(r.Context(), name)
	if err != nil {
		writeError(w, r, "*Handler.serveImage", err)
		return
	}
	defer image.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, image); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.serveImage").Str("file_name", name).Msg("error streaming image")
	}
}

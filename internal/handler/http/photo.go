// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/MKhiriev/go-photo-share/models"
	"github.com/go-chi/chi/v5"
)

const (
	uploadFormFile       = "uploadedphoto"
	uploadFormSharedWith = "shared_with"

	// maxUploadMemory is the part of a multipart upload kept in memory;
	// the rest is spooled to temporary files.
	maxUploadMemory = 32 << 20
)

func (h *Handler) photosOfUser(w http.ResponseWriter, r *http.Request) {
	photos, err := h.services.PhotoService.PhotosOfUser(r.Context(), chi.URLParam(r, "id"), sessionUserID(r))
	if err != nil {
		writeError(w, r, "*Handler.photosOfUser", err)
		return
	}

	utils.WriteJSON(w, photos, http.StatusOK)
}

func (h *Handler) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Str("func", "*Handler.uploadPhoto").Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadFormFile)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			log.Err(err).Str("func", "*Handler.uploadPhoto").Msg("error reading uploaded file")
		}
		http.Error(w, ErrNoFileUploaded.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	photo, err := h.services.PhotoService.Upload(r.Context(), models.UploadRequest{
		ActorID:          sessionUserID(r),
		OriginalFileName: header.Filename,
		ContentType:      header.Header.Get("Content-Type"),
		Body:             file,
		SharedWith:       parseSharedWith(r.MultipartForm),
	})
	if err != nil {
		writeError(w, r, "*Handler.uploadPhoto", err)
		return
	}

	utils.WriteJSON(w, photo, http.StatusOK)
}

// parseSharedWith reads the optional JSON array of user ids. A missing or
// unparseable value yields nil, which makes the photo public.
func parseSharedWith(form *multipart.Form) []string {
	if form == nil {
		return nil
	}

	values := form.Value[uploadFormSharedWith]
	if len(values) == 0 {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(values[0]), &ids); err != nil {
		return nil
	}

	return ids
}

func (h *Handler) deletePhoto(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PhotoService.DeletePhoto(r.Context(), sessionUserID(r), chi.URLParam(r, "photo_id")); err != nil {
		writeError(w, r, "*Handler.deletePhoto", err)
		return
	}

	utils.WriteJSON(w, messageResponse{Message: "Photo deleted"}, http.StatusOK)
}

func (h *Handler) likePhoto(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.PhotoService.Like(r.Context(), sessionUserID(r), chi.URLParam(r, "photo_id"))
	if err != nil {
		writeError(w, r, "*Handler.likePhoto", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) unlikePhoto(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.PhotoService.Unlike(r.Context(), sessionUserID(r), chi.URLParam(r, "photo_id"))
	if err != nil {
		writeError(w, r, "*Handler.unlikePhoto", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) tagPhoto(w http.ResponseWriter, r *http.Request) {
	var request models.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.tagPhoto").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	request.PhotoID = chi.URLParam(r, "photo_id")
	request.ActorID = sessionUserID(r)

	tag, err := h.services.PhotoService.AddTag(r.Context(), request)
	if err != nil {
		writeError(w, r, "*Handler.tagPhoto", err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

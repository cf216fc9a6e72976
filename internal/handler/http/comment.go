// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/MKhiriev/go-photo-share/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	var request models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.addComment").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	request.PhotoID = chi.URLParam(r, "photo_id")
	request.ActorID = sessionUserID(r)

	comment, err := h.services.CommentService.AddComment(r.Context(), request)
	if err != nil {
		writeError(w, r, "*Handler.addComment", err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	err := h.services.CommentService.DeleteComment(r.Context(), sessionUserID(r), chi.URLParam(r, "photo_id"), chi.URLParam(r, "comment_id"))
	if err != nil {
		writeError(w, r, "*Handler.deleteComment", err)
		return
	}

	utils.WriteJSON(w, messageResponse{Message: "Comment deleted"}, http.StatusOK)
}

func (h *Handler) commentsOfUser(w http.ResponseWriter, r *http.Request) {
	comments, err := h.services.CommentService.CommentsOfUser(r.Context(), chi.URLParam(r, "id"), sessionUserID(r))
	if err != nil {
		writeError(w, r, "*Handler.commentsOfUser", err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) mentionsOfUser(w http.ResponseWriter, r *http.Request) {
	mentions, err := h.services.CommentService.MentionsOfUser(r.Context(), chi.URLParam(r, "id"), sessionUserID(r))
	if err != nil {
		writeError(w, r, "*Handler.mentionsOfUser", err)
		return
	}

	utils.WriteJSON(w, mentions, http.StatusOK)
}

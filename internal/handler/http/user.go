// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listUsers", err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) userCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.services.StatsService.CountsPerUser(r.Context(), sessionUserID(r))
	if err != nil {
		writeError(w, r, "*Handler.userCounts", err)
		return
	}

	utils.WriteJSON(w, counts, http.StatusOK)
}

func (h *Handler) userHighlights(w http.ResponseWriter, r *http.Request) {
	highlights, err := h.services.StatsService.HighlightsOfUser(r.Context(), chi.URLParam(r, "id"), sessionUserID(r))
	if err != nil {
		writeError(w, r, "*Handler.userHighlights", err)
		return
	}

	utils.WriteJSON(w, highlights, http.StatusOK)
}

// deleteUser removes the session user's account and ends the session.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actorID := sessionUserID(r)
	userID := chi.URLParam(r, "id")

	if err := h.services.UserService.DeleteAccount(r.Context(), actorID, userID); err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", userID).Msg("account deleted")

	h.endSession(w)
	utils.WriteJSON(w, messageResponse{Message: "Account deleted"}, http.StatusOK)
}

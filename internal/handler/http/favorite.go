// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) favorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.services.FavoriteService.FavoritesOf(r.Context(), sessionUserID(r))
	if err != nil {
		writeError(w, r, "*Handler.favorites", err)
		return
	}

	utils.WriteJSON(w, favorites, http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.FavoriteService.AddFavorite(r.Context(), sessionUserID(r), chi.URLParam(r, "photo_id"))
	if err != nil {
		writeError(w, r, "*Handler.addFavorite", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.FavoriteService.RemoveFavorite(r.Context(), sessionUserID(r), chi.URLParam(r, "photo_id"))
	if err != nil {
		writeError(w, r, "*Handler.removeFavorite", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

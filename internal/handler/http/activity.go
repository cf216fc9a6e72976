// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-photo-share/internal/utils"
)

// activities lists the most recent activities. A missing or unparseable
// ?limit falls back to the service default.
func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}

	activities, err := h.services.ActivityService.RecentActivities(r.Context(), limit)
	if err != nil {
		writeError(w, r, "*Handler.activities", err)
		return
	}

	utils.WriteJSON(w, activities, http.StatusOK)
}

func (h *Handler) lastActivityPerUser(w http.ResponseWriter, r *http.Request) {
	last, err := h.services.ActivityService.LastActivityPerUser(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.lastActivityPerUser", err)
		return
	}

	utils.WriteJSON(w, last, http.StatusOK)
}

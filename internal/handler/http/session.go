// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/MKhiriev/go-photo-share/models"
)

// startSession hands the signed token to the client both as an HttpOnly
// cookie and as an "Authorization" response header.
func (h *Handler) startSession(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.sessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
}

// endSession expires the session cookie.
func (h *Handler) endSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionUserID returns the id stored by the session middleware, or "".
func sessionUserID(r *http.Request) string {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return userID
}

// sessionID returns the session id stored by the session middleware, or "".
func sessionID(r *http.Request) string {
	id, _ := utils.GetSessionIDFromContext(r.Context())
	return id
}

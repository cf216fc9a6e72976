// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/service"
	"github.com/MKhiriev/go-photo-share/internal/utils"
)

// auth is an HTTP middleware that requires a valid session.
//
// The session token is read from the session cookie and, failing that, from
// an "Authorization: Bearer <token>" header. On success the session user id is
// stored in the request context under [utils.UserIDCtxKey] and the session id
// under [utils.SessionIDCtxKey]. A missing, rejected or ended session answers
// 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := h.sessionToken(r)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("request without session")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil && !errors.Is(err, service.ErrUnauthorized) {
			writeError(w, r, "*Handler.auth", err)
			return
		}
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("session token rejected")
			http.Error(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, token.UserID, token.SessionID)))
	})
}

// optionalSession attaches the session user when a valid token is present
// and lets anonymous requests through untouched.
func (h *Handler) optionalSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := h.sessionToken(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.optionalSession").Msg("ignoring invalid session token")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, token.UserID, token.SessionID)))
	})
}

// sessionToken extracts the raw session token, preferring the cookie over
// the "Authorization" header.
func (h *Handler) sessionToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionToken
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	return tokenString, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every route of the photo-sharing API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withTimeout)

		r.Get("/version", h.getServerVersion)
		r.Post("/user", h.register)
		r.Post("/admin/login", h.login)
		r.With(h.optionalSession).Post("/admin/logout", h.logout)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// long-lived connection, no request timeout
		r.Get("/ws", h.subscribeLikes)

		r.Group(func(r chi.Router) {
			r.Use(h.withTimeout)

			r.Get("/user/list", h.listUsers)
			r.Get("/user/counts", h.userCounts)
			r.Get("/user/{id}", h.getUser)
			r.Delete("/user/{id}", h.deleteUser)
			r.Get("/user/{id}/highlights", h.userHighlights)

			r.Get("/photosOfUser/{id}", h.photosOfUser)
			r.Post("/photos/new", h.uploadPhoto)
			r.Delete("/photos/{photo_id}", h.deletePhoto)
			r.Post("/photos/{photo_id}/like", h.likePhoto)
			r.Post("/photos/{photo_id}/unlike", h.unlikePhoto)
			r.Post("/photos/{photo_id}/tags", h.tagPhoto)

			r.Post("/commentsOfPhoto/{photo_id}", h.addComment)
			r.Delete("/commentsOfPhoto/{photo_id}/{comment_id}", h.deleteComment)
			r.Get("/commentsOfUser/{id}", h.commentsOfUser)
			r.Get("/mentionsOfUser/{id}", h.mentionsOfUser)

			r.Get("/activities", h.activities)
			r.Get("/activities/last-by-user", h.lastActivityPerUser)

			r.Get("/favorites", h.favorites)
			r.Post("/favorites/{photo_id}", h.addFavorite)
			r.Delete("/favorites/{photo_id}", h.removeFavorite)

			r.Get("/images/*", h.serveImage)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// withTimeout bounds the request context by the configured request timeout.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	if h.requestTimeout <= 0 {
		return next
	}
	return middleware.Timeout(h.requestTimeout)(next)
}

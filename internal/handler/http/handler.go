// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-photo-share/internal/config"
	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/service"
)

// LikeSubscriptions upgrades a request to the like-update push channel.
type LikeSubscriptions interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
}

// Handler holds the dependencies of every HTTP route.
type Handler struct {
	services      *service.Services
	subscriptions LikeSubscriptions

	cookieName      string
	sessionDuration time.Duration
	requestTimeout  time.Duration

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. subscriptions may be nil, in which case
// GET /ws answers 404.
func NewHandler(services *service.Services, subscriptions LikeSubscriptions, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		subscriptions:   subscriptions,
		cookieName:      cfg.App.SessionCookieName,
		sessionDuration: cfg.App.SessionDuration,
		requestTimeout:  cfg.Server.RequestTimeout,
		logger:          logger,
	}
}

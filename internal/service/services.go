// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-photo-share/internal/config"
	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/store"
	"github.com/MKhiriev/go-photo-share/internal/utils"
)

// Services groups every domain service used by the transport layer.
type Services struct {
	AuthService     AuthService
	UserService     UserService
	PhotoService    PhotoService
	CommentService  CommentService
	StatsService    StatsService
	ActivityService ActivityService
	FavoriteService FavoriteService
	AppInfoService  AppInfoService
}

// NewServices wires the services on top of storages. notifier may be nil, in
// which case like updates are not pushed anywhere.
func NewServices(storages *store.Storages, notifier LikeNotifier, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	idGenerator := utils.NewUUIDGenerator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthValidationService().Wrap(NewAuthService(storages, idGenerator, cfg.App, logger)),
		UserService:     NewUserService(storages, logger),
		PhotoService:    NewPhotoValidationService().Wrap(NewPhotoService(storages, notifier, idGenerator, logger)),
		CommentService:  NewCommentValidationService().Wrap(NewCommentService(storages, idGenerator, logger)),
		StatsService:    NewStatsService(storages, logger),
		ActivityService: NewActivityService(storages, logger),
		FavoriteService: NewFavoriteService(storages, logger),
		AppInfoService:  appInfoService,
	}, nil
}

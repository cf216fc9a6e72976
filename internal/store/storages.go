// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-share/internal/config"
	"github.com/MKhiriev/go-photo-share/internal/logger"
)

// Storages groups every persistence collaborator used by the service layer.
type Storages struct {
	UserRepository     UserRepository
	PhotoRepository    PhotoRepository
	CommentRepository  CommentRepository
	ActivityRepository ActivityRepository
	SessionRepository  SessionRepository
	FileStorage        FileStorage
}

// NewStorages builds all repositories on top of db and the file storage
// selected by cfg.Files.Backend.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	fileStorage, err := NewFileStorage(ctx, cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating file storage: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		PhotoRepository:    NewPhotoRepository(db, logger),
		CommentRepository:  NewCommentRepository(db, logger),
		ActivityRepository: NewActivityRepository(db, logger),
		SessionRepository:  NewSessionRepository(db, logger),
		FileStorage:        fileStorage,
	}, nil
}

// NewFileStorage returns the image store configured by cfg.
func NewFileStorage(ctx context.Context, cfg config.Files, logger *logger.Logger) (FileStorage, error) {
	switch cfg.Backend {
	case config.FilesBackendS3:
		return NewS3FileStorage(ctx, cfg.S3, logger)
	case config.FilesBackendLocal, "":
		return NewLocalFileStorage(cfg.ImagesDir, logger)
	default:
		return nil, fmt.Errorf("unknown files backend %q", cfg.Backend)
	}
}

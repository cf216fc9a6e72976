// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository].
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession stores a new session. An unknown user yields
// [ErrUserNotFound].
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertSession, session.ID, session.UserID, session.ExpiresAt); err != nil {
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		r.db.logError(log, err, "*sessionRepository.CreateSession", "failed to insert session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) SessionActive(ctx context.Context, sessionID, userID string) (bool, error) {
	log := logger.FromContext(ctx)

	var active bool
	if err := r.db.QueryRowContext(ctx, sessionActive, sessionID, userID).Scan(&active); err != nil {
		r.db.logError(log, err, "*sessionRepository.SessionActive", "failed to look up session")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return active, nil
}

// DeleteSession removes one session. Removing an absent session is not an
// error.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession, sessionID); err != nil {
		r.db.logError(log, err, "*sessionRepository.DeleteSession", "failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) DeleteSessionsOfUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSessionsOfUser, userID); err != nil {
		r.db.logError(log, err, "*sessionRepository.DeleteSessionsOfUser", "failed to delete sessions of user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

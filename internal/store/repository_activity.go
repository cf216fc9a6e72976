// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/models"
)

// activityRepository is the PostgreSQL-backed implementation of
// [ActivityRepository].
type activityRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewActivityRepository constructs an [ActivityRepository] backed by db.
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *activityRepository) LogActivity(ctx context.Context, activity models.Activity) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertActivity,
		activity.ID, string(activity.Type), activity.DateTime, activity.UserID,
		nullString(activity.PhotoID), nullString(activity.PhotoFileName))
	if err != nil {
		r.db.logError(log, err, "*activityRepository.LogActivity", "failed to insert activity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RecentActivities returns the newest limit activities, newest first.
func (r *activityRepository) RecentActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecentActivitiesQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.RecentActivities").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.db.logError(log, err, "*activityRepository.RecentActivities", "failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	activities := make([]models.Activity, 0, limit)
	for rows.Next() {
		var a models.Activity
		var activityType string
		var photoID, photoFileName sql.NullString
		if err := rows.Scan(&a.ID, &activityType, &a.DateTime, &a.UserID, &photoID, &photoFileName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		a.Type = models.ActivityType(activityType)
		a.PhotoID = stringPtr(photoID)
		a.PhotoFileName = stringPtr(photoFileName)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return activities, nil
}

// LastActivityPerUser returns the newest activity of every user that has
// one.
func (r *activityRepository) LastActivityPerUser(ctx context.Context) ([]models.LastActivity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLastActivityPerUserQuery()
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.LastActivityPerUser").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.db.logError(log, err, "*activityRepository.LastActivityPerUser", "failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.LastActivity, 0, 16)
	for rows.Next() {
		var a models.LastActivity
		var activityType string
		var photoFileName, photoID sql.NullString
		if err := rows.Scan(&a.UserID, &activityType, &a.DateTime, &photoFileName, &photoID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		a.Type = models.ActivityType(activityType)
		a.PhotoFileName = stringPtr(photoFileName)
		a.PhotoID = stringPtr(photoID)
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *activityRepository) DeleteByPhoto(ctx context.Context, photoID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteActivitiesByPhoto, photoID); err != nil {
		r.db.logError(log, err, "*activityRepository.DeleteByPhoto", "failed to delete activities")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *activityRepository) DeleteByUserOrPhotos(ctx context.Context, userID string, photoIDs []string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteActivitiesQuery(userID, photoIDs)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.DeleteByUserOrPhotos").Msg("failed to create query")
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.db.logError(log, err, "*activityRepository.DeleteByUserOrPhotos", "failed to delete activities")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/store"
	"github.com/MKhiriev/go-photo-share/models"
)

// activityRecorder appends entries to the activity log. Failures are logged
// and never returned: the log is not part of any mutation's outcome.
type activityRecorder struct {
	repository  store.ActivityRepository
	idGenerator IDGenerator
	now         func() time.Time
}

func newActivityRecorder(repository store.ActivityRepository, idGenerator IDGenerator) *activityRecorder {
	return &activityRecorder{
		repository:  repository,
		idGenerator: idGenerator,
		now:         time.Now,
	}
}

// record logs an activity of userID. photo is nil for account activities.
func (r *activityRecorder) record(ctx context.Context, activityType models.ActivityType, userID string, photo *models.Photo) {
	activity := models.Activity{
		ID:       r.idGenerator.Generate(),
		Type:     activityType,
		DateTime: r.now().UTC(),
		UserID:   userID,
	}
	if photo != nil {
		photoID, fileName := photo.ID, photo.FileName
		activity.PhotoID = &photoID
		activity.PhotoFileName = &fileName
	}

	if err := r.repository.LogActivity(ctx, activity); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*activityRecorder.record").
			Str("type", string(activityType)).
			Str("user_id", userID).
			Msg("activity was not logged")
	}
}

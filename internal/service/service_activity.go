// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/store"
	"github.com/MKhiriev/go-photo-share/models"
)

const (
	// DefaultActivitiesLimit is used when the requested limit is absent or zero.
	DefaultActivitiesLimit = 5
	// MaxActivitiesLimit caps the size of the activity feed.
	MaxActivitiesLimit = 50
)

type activityService struct {
	userRepository     store.UserRepository
	activityRepository store.ActivityRepository

	logger *logger.Logger
}

func NewActivityService(storages *store.Storages, logger *logger.Logger) ActivityService {
	return &activityService{
		userRepository:     storages.UserRepository,
		activityRepository: storages.ActivityRepository,
		logger:             logger,
	}
}

// RecentActivities returns the newest limit entries of the activity log with
// a snapshot of each actor (nil once the actor is deleted).
func (s *activityService) RecentActivities(ctx context.Context, limit int) ([]models.ActivityView, error) {
	log := logger.FromContext(ctx)

	activities, err := s.activityRepository.RecentActivities(ctx, ClampActivitiesLimit(limit))
	if err != nil {
		log.Err(err).Str("func", "*activityService.RecentActivities").Msg("error loading activities")
		return nil, mapStoreError(err)
	}

	actorIDs := make([]string, 0, len(activities))
	for _, a := range activities {
		actorIDs = append(actorIDs, a.UserID)
	}
	users, err := s.userRepository.FindUsersByIDs(ctx, actorIDs)
	if err != nil {
		log.Err(err).Str("func", "*activityService.RecentActivities").Msg("error loading actors")
		return nil, mapStoreError(err)
	}

	views := make([]models.ActivityView, 0, len(activities))
	for _, a := range activities {
		views = append(views, models.ActivityView{
			ID:            a.ID,
			Type:          a.Type,
			DateTime:      a.DateTime,
			User:          summaryOf(users, a.UserID),
			PhotoFileName: a.PhotoFileName,
			PhotoID:       a.PhotoID,
		})
	}
	return views, nil
}

func (s *activityService) LastActivityPerUser(ctx context.Context) ([]models.LastActivity, error) {
	last, err := s.activityRepository.LastActivityPerUser(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*activityService.LastActivityPerUser").Msg("error loading activities")
		return nil, mapStoreError(err)
	}
	return last, nil
}

// ClampActivitiesLimit maps a requested feed size into [1, MaxActivitiesLimit].
// Zero means no limit was requested and selects DefaultActivitiesLimit.
func ClampActivitiesLimit(limit int) int {
	if limit == 0 {
		return DefaultActivitiesLimit
	}
	return max(1, min(limit, MaxActivitiesLimit))
}

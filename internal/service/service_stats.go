// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/store"
	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/MKhiriev/go-photo-share/models"
)

// statsService computes read models over the photos visible to a viewer.
type statsService struct {
	userRepository  store.UserRepository
	photoRepository store.PhotoRepository

	logger *logger.Logger
}

func NewStatsService(storages *store.Storages, logger *logger.Logger) StatsService {
	return &statsService{
		userRepository:  storages.UserRepository,
		photoRepository: storages.PhotoRepository,
		logger:          logger,
	}
}

// CountsPerUser counts, for every user, the visible photos they own and the
// comments they wrote on visible photos. Users without activity get zeros.
func (s *statsService) CountsPerUser(ctx context.Context, viewerID string) ([]models.UserCounts, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*statsService.CountsPerUser").Msg("error listing users")
		return nil, mapStoreError(err)
	}

	photos, err := s.photoRepository.AllPhotos(ctx)
	if err != nil {
		log.Err(err).Str("func", "*statsService.CountsPerUser").Msg("error loading photos")
		return nil, mapStoreError(err)
	}

	photoCounts := make(map[string]int, len(users))
	commentCounts := make(map[string]int, len(users))
	for _, photo := range visiblePhotos(photos, viewerID) {
		photoCounts[photo.UserID]++
		for _, c := range photo.Comments {
			commentCounts[c.UserID]++
		}
	}

	counts := make([]models.UserCounts, 0, len(users))
	for _, u := range users {
		counts = append(counts, models.UserCounts{
			UserID:       u.ID,
			PhotoCount:   photoCounts[u.ID],
			CommentCount: commentCounts[u.ID],
		})
	}
	return counts, nil
}

// HighlightsOfUser picks the most recent and the most commented of userID's
// photos visible to viewerID. Both are nil when there is nothing to show.
func (s *statsService) HighlightsOfUser(ctx context.Context, userID, viewerID string) (models.Highlights, error) {
	if !utils.IsValidID(userID) {
		return models.Highlights{}, ErrInvalidUserID
	}

	photos, err := s.photoRepository.PhotosOfUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*statsService.HighlightsOfUser").Msg("error loading photos")
		return models.Highlights{}, mapStoreError(err)
	}

	photos = visiblePhotos(photos, viewerID)
	if len(photos) == 0 {
		return models.Highlights{}, nil
	}

	mostRecent := slices.MaxFunc(photos, func(a, b models.Photo) int {
		return a.DateTime.Compare(b.DateTime)
	})
	mostCommented := slices.MaxFunc(photos, func(a, b models.Photo) int {
		if c := cmp.Compare(len(a.Comments), len(b.Comments)); c != 0 {
			return c
		}
		return a.DateTime.Compare(b.DateTime)
	})

	return models.Highlights{
		MostRecent:    highlightOf(mostRecent),
		MostCommented: highlightOf(mostCommented),
	}, nil
}

func highlightOf(photo models.Photo) *models.PhotoHighlight {
	return &models.PhotoHighlight{
		ID:            photo.ID,
		FileName:      photo.FileName,
		DateTime:      photo.DateTime,
		CommentsCount: len(photo.Comments),
	}
}

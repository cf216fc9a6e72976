// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/store"
	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/MKhiriev/go-photo-share/models"
)

type favoriteService struct {
	userRepository  store.UserRepository
	photoRepository store.PhotoRepository

	logger *logger.Logger
}

func NewFavoriteService(storages *store.Storages, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		userRepository:  storages.UserRepository,
		photoRepository: storages.PhotoRepository,
		logger:          logger,
	}
}

// FavoritesOf lists viewerID's favorites that are still visible to them,
// newest first. Favorites whose sharing changed are kept in the set but
// left out of the list.
func (s *favoriteService) FavoritesOf(ctx context.Context, viewerID string) ([]models.FavoritePhoto, error) {
	log := logger.FromContext(ctx)

	if viewerID == "" {
		return nil, ErrNoSession
	}

	ids, err := s.userRepository.FavoriteIDs(ctx, viewerID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteService.FavoritesOf").Msg("error loading favorite ids")
		return nil, mapStoreError(err)
	}
	if len(ids) == 0 {
		return []models.FavoritePhoto{}, nil
	}

	photos, err := s.photoRepository.PhotosByIDs(ctx, ids)
	if err != nil {
		log.Err(err).Str("func", "*favoriteService.FavoritesOf").Msg("error loading favorite photos")
		return nil, mapStoreError(err)
	}
	photos = visiblePhotos(photos, viewerID)
	slices.SortStableFunc(photos, func(a, b models.Photo) int {
		return b.DateTime.Compare(a.DateTime)
	})

	ownerIDs := make([]string, 0, len(photos))
	for _, photo := range photos {
		ownerIDs = append(ownerIDs, photo.UserID)
	}
	owners, err := s.userRepository.FindUsersByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, mapStoreError(err)
	}

	favorites := make([]models.FavoritePhoto, 0, len(photos))
	for _, photo := range photos {
		favorites = append(favorites, models.FavoritePhoto{
			ID:       photo.ID,
			FileName: photo.FileName,
			DateTime: photo.DateTime,
			User:     summaryOf(owners, photo.UserID),
		})
	}
	return favorites, nil
}

func (s *favoriteService) AddFavorite(ctx context.Context, actorID, photoID string) (models.FavoriteResult, error) {
	if !utils.IsValidID(photoID) {
		return models.FavoriteResult{}, ErrInvalidPhotoID
	}

	photo, err := findPhoto(ctx, s.photoRepository, photoID)
	if err != nil {
		return models.FavoriteResult{}, err
	}
	if err = Authorize(actorID, ActionFavorite, Resource{Photo: photo}); err != nil {
		return models.FavoriteResult{}, err
	}

	if err = s.userRepository.AddFavorite(ctx, actorID, photoID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoriteService.AddFavorite").Str("photo_id", photoID).Msg("error adding favorite")
		return models.FavoriteResult{}, mapStoreError(err)
	}
	return models.FavoriteResult{Favorited: true}, nil
}

// RemoveFavorite is idempotent and does not require the photo to exist.
func (s *favoriteService) RemoveFavorite(ctx context.Context, actorID, photoID string) (models.FavoriteResult, error) {
	if !utils.IsValidID(photoID) {
		return models.FavoriteResult{}, ErrInvalidPhotoID
	}
	if err := Authorize(actorID, ActionUnfavorite, Resource{}); err != nil {
		return models.FavoriteResult{}, err
	}

	if err := s.userRepository.RemoveFavorite(ctx, actorID, photoID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoriteService.RemoveFavorite").Str("photo_id", photoID).Msg("error removing favorite")
		return models.FavoriteResult{}, mapStoreError(err)
	}
	return models.FavoriteResult{Favorited: false}, nil
}

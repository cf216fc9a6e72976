// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/store"
	"github.com/MKhiriev/go-photo-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFavoriteService(t *testing.T) (FavoriteService, testStorages) {
	t.Helper()
	_, ts := newTestStorages(t)
	return NewFavoriteService(ts.storages, logger.Nop()), ts
}

func TestFavoriteService_FavoritesOf_DropsNoLongerVisible(t *testing.T) {
	svc, ts := newTestFavoriteService(t)

	older := publicPhoto(photoID1, ownerID, 0, baseTime)
	newer := models.Photo{ID: photoID2, UserID: ownerID, FileName: "b.jpg", DateTime: baseTime.Add(time.Hour),
		Visibility: models.VisibilityShared, SharedWith: []string{viewerID}}
	reshared := models.Photo{ID: photoID3, UserID: ownerID, DateTime: baseTime.Add(2 * time.Hour),
		Visibility: models.VisibilityShared, SharedWith: []string{strangerID}}

	ts.users.EXPECT().FavoriteIDs(gomock.Any(), viewerID).Return([]string{photoID1, photoID2, photoID3}, nil)
	ts.photos.EXPECT().PhotosByIDs(gomock.Any(), []string{photoID1, photoID2, photoID3}).Return([]models.Photo{older, newer, reshared}, nil)
	ts.users.EXPECT().FindUsersByIDs(gomock.Any(), []string{ownerID, ownerID}).
		Return(map[string]models.User{ownerID: {ID: ownerID, FirstName: "Olga", LastName: "Orr"}}, nil)

	got, err := svc.FavoritesOf(context.Background(), viewerID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, photoID2, got[0].ID)
	assert.Equal(t, photoID1, got[1].ID)
	assert.Equal(t, &models.UserSummary{ID: ownerID, FirstName: "Olga", LastName: "Orr"}, got[0].User)
}

func TestFavoriteService_FavoritesOf_Empty(t *testing.T) {
	svc, ts := newTestFavoriteService(t)

	ts.users.EXPECT().FavoriteIDs(gomock.Any(), viewerID).Return(nil, nil)

	got, err := svc.FavoritesOf(context.Background(), viewerID)
	require.NoError(t, err)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	svc, ts := newTestFavoriteService(t)

	ts.photos.EXPECT().GetPhoto(gomock.Any(), photoID1).
		Return(models.Photo{ID: photoID1, UserID: ownerID, Visibility: models.VisibilityOwnerOnly}, nil)
	ts.users.EXPECT().AddFavorite(gomock.Any(), viewerID, photoID1).Return(nil)

	got, err := svc.AddFavorite(context.Background(), viewerID, photoID1)
	require.NoError(t, err)

	assert.True(t, got.Favorited)
}

func TestFavoriteService_AddFavorite_MissingPhoto(t *testing.T) {
	svc, ts := newTestFavoriteService(t)

	ts.photos.EXPECT().GetPhoto(gomock.Any(), photoID1).Return(models.Photo{}, store.ErrPhotoNotFound)

	_, err := svc.AddFavorite(context.Background(), viewerID, photoID1)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFavoriteService_RemoveFavorite_Unconditional(t *testing.T) {
	svc, ts := newTestFavoriteService(t)

	ts.users.EXPECT().RemoveFavorite(gomock.Any(), viewerID, photoID1).Return(nil)

	got, err := svc.RemoveFavorite(context.Background(), viewerID, photoID1)
	require.NoError(t, err)

	assert.False(t, got.Favorited)
}

func TestFavoriteService_RemoveFavorite_NoSession(t *testing.T) {
	svc, _ := newTestFavoriteService(t)

	_, err := svc.RemoveFavorite(context.Background(), "", photoID1)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

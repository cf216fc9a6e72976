// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-share/internal/mock"
	"github.com/MKhiriev/go-photo-share/internal/store"
	"github.com/MKhiriev/go-photo-share/models"
	"go.uber.org/mock/gomock"
)

const (
	ownerID    = "0190b6a0-1111-7000-8000-000000000001"
	viewerID   = "0190b6a0-1111-7000-8000-000000000002"
	strangerID = "0190b6a0-1111-7000-8000-000000000003"

	photoID1 = "0190b6a0-2222-7000-8000-000000000001"
	photoID2 = "0190b6a0-2222-7000-8000-000000000002"
	photoID3 = "0190b6a0-2222-7000-8000-000000000003"

	commentID1 = "0190b6a0-3333-7000-8000-000000000001"
	generated  = "0190b6a0-4444-7000-8000-000000000001"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// testStorages holds the repository mocks behind a *store.Storages.
type testStorages struct {
	storages   *store.Storages
	users      *mock.MockUserRepository
	sessions   *mock.MockSessionRepository
	photos     *mock.MockPhotoRepository
	comments   *mock.MockCommentRepository
	activities *mock.MockActivityRepository
	files      *mock.MockFileStorage
}

func newTestStorages(t *testing.T) (*gomock.Controller, testStorages) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := testStorages{
		users:      mock.NewMockUserRepository(ctrl),
		sessions:   mock.NewMockSessionRepository(ctrl),
		photos:     mock.NewMockPhotoRepository(ctrl),
		comments:   mock.NewMockCommentRepository(ctrl),
		activities: mock.NewMockActivityRepository(ctrl),
		files:      mock.NewMockFileStorage(ctrl),
	}
	ts.storages = &store.Storages{
		UserRepository:     ts.users,
		SessionRepository:  ts.sessions,
		PhotoRepository:    ts.photos,
		CommentRepository:  ts.comments,
		ActivityRepository: ts.activities,
		FileStorage:        ts.files,
	}
	return ctrl, ts
}

// fixedIDs returns an IDGenerator mock that always yields id.
func fixedIDs(ctrl *gomock.Controller, id string) *mock.MockIDGenerator {
	ids := mock.NewMockIDGenerator(ctrl)
	ids.EXPECT().Generate().Return(id).AnyTimes()
	return ids
}

func publicPhoto(id, owner string, likes int, at time.Time) models.Photo {
	p := models.Photo{
		ID:         id,
		UserID:     owner,
		FileName:   id + ".jpg",
		DateTime:   at,
		Visibility: models.VisibilityPublic,
	}
	for i := 0; i < likes; i++ {
		p.Likes = append(p.Likes, "liker-"+string(rune('a'+i)))
	}
	return p
}

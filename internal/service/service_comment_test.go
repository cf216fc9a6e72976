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

func newTestCommentService(t *testing.T) (*commentService, testStorages) {
	t.Helper()
	ctrl, ts := newTestStorages(t)

	svc := NewCommentService(ts.storages, fixedIDs(ctrl, generated), logger.Nop()).(*commentService)
	svc.now = func() time.Time { return baseTime }
	svc.activities.now = svc.now

	return svc, ts
}

// ── ExtractMentions ──────────────────────────────────────────────────────────

func TestCommentService_ExtractMentions_DropsUnknownUsers(t *testing.T) {
	svc, ts := newTestCommentService(t)

	ts.users.EXPECT().ExistingUserIDs(gomock.Any(), []string{viewerID, strangerID}).Return([]string{viewerID}, nil)

	got, err := svc.ExtractMentions(context.Background(),
		"Hi @[Bob]("+viewerID+") and @[Ghost]("+strangerID+")")
	require.NoError(t, err)

	assert.Equal(t, "Hi @Bob and @Ghost", got.DisplayText)
	assert.Equal(t, []string{viewerID}, got.MentionIDs)
}

func TestCommentService_ExtractMentions_NoMarkupSkipsLookup(t *testing.T) {
	svc, _ := newTestCommentService(t)

	got, err := svc.ExtractMentions(context.Background(), "plain text")
	require.NoError(t, err)

	assert.Equal(t, "plain text", got.DisplayText)
	assert.Empty(t, got.MentionIDs)
}

// ── AddComment ───────────────────────────────────────────────────────────────

func TestCommentService_AddComment_StoresResolvedText(t *testing.T) {
	svc, ts := newTestCommentService(t)
	author := models.User{ID: strangerID, FirstName: "Sam", LastName: "Stone"}
	hidden := models.Photo{ID: photoID1, UserID: ownerID, Visibility: models.VisibilityOwnerOnly}

	ts.photos.EXPECT().GetPhoto(gomock.Any(), photoID1).Return(hidden, nil)
	ts.users.EXPECT().ExistingUserIDs(gomock.Any(), []string{viewerID}).Return([]string{viewerID}, nil)
	ts.comments.EXPECT().AddComment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Comment) (models.Comment, error) {
			assert.Equal(t, "hey @Ann", c.Text)
			assert.Equal(t, []string{viewerID}, c.Mentions)
			assert.Equal(t, strangerID, c.UserID)
			assert.Equal(t, baseTime, c.DateTime)
			return c, nil
		})
	ts.activities.EXPECT().LogActivity(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Activity) error {
			assert.Equal(t, models.ActivityCommentAdded, a.Type)
			require.NotNil(t, a.PhotoID)
			assert.Equal(t, photoID1, *a.PhotoID)
			return nil
		})
	ts.users.EXPECT().FindUsersByIDs(gomock.Any(), []string{strangerID}).Return(map[string]models.User{strangerID: author}, nil)

	view, err := svc.AddComment(context.Background(), models.CommentRequest{
		PhotoID: photoID1,
		ActorID: strangerID,
		Comment: "hey @[Ann](" + viewerID + ")",
	})
	require.NoError(t, err)

	assert.Equal(t, "hey @Ann", view.Text)
	assert.Equal(t, author.Summary(), view.User)
}

func TestCommentService_AddComment_TrimsText(t *testing.T) {
	svc, ts := newTestCommentService(t)

	ts.photos.EXPECT().GetPhoto(gomock.Any(), photoID1).Return(publicPhoto(photoID1, ownerID, 0, baseTime), nil)
	ts.comments.EXPECT().AddComment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Comment) (models.Comment, error) {
			assert.Equal(t, "nice light", c.Text)
			assert.Empty(t, c.Mentions)
			return c, nil
		})
	ts.activities.EXPECT().LogActivity(gomock.Any(), gomock.Any()).Return(nil)
	ts.users.EXPECT().FindUsersByIDs(gomock.Any(), []string{viewerID}).Return(map[string]models.User{}, nil)

	view, err := svc.AddComment(context.Background(), models.CommentRequest{
		PhotoID: photoID1,
		ActorID: viewerID,
		Comment: "  \tnice light \n",
	})
	require.NoError(t, err)
	assert.Equal(t, "nice light", view.Text)
}

func TestCommentService_AddComment_MissingPhoto(t *testing.T) {
	svc, ts := newTestCommentService(t)

	ts.photos.EXPECT().GetPhoto(gomock.Any(), photoID1).Return(models.Photo{}, store.ErrPhotoNotFound)

	_, err := svc.AddComment(context.Background(), models.CommentRequest{PhotoID: photoID1, ActorID: viewerID, Comment: "x"})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentService_AddComment_NoSession(t *testing.T) {
	svc, _ := newTestCommentService(t)

	_, err := svc.AddComment(context.Background(), models.CommentRequest{PhotoID: photoID1, Comment: "x"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── DeleteComment ────────────────────────────────────────────────────────────

func TestCommentService_DeleteComment_NonAuthorIsForbidden(t *testing.T) {
	svc, ts := newTestCommentService(t)
	photo := publicPhoto(photoID1, ownerID, 0, baseTime)
	photo.Comments = []models.Comment{{ID: commentID1, PhotoID: photoID1, UserID: viewerID}}

	ts.photos.EXPECT().GetPhoto(gomock.Any(), photoID1).Return(photo, nil)
	ts.comments.EXPECT().DeleteComment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.DeleteComment(context.Background(), ownerID, photoID1, commentID1)

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Len(t, photo.Comments, 1)
}

func TestCommentService_DeleteComment_Author(t *testing.T) {
	svc, ts := newTestCommentService(t)
	photo := publicPhoto(photoID1, ownerID, 0, baseTime)
	photo.Comments = []models.Comment{{ID: commentID1, PhotoID: photoID1, UserID: viewerID}}

	ts.photos.EXPECT().GetPhoto(gomock.Any(), photoID1).Return(photo, nil)
	ts.comments.EXPECT().DeleteComment(gomock.Any(), photoID1, commentID1).Return(nil)

	require.NoError(t, svc.DeleteComment(context.Background(), viewerID, photoID1, commentID1))
}

func TestCommentService_DeleteComment_UnknownComment(t *testing.T) {
	svc, ts := newTestCommentService(t)

	ts.photos.EXPECT().GetPhoto(gomock.Any(), photoID1).Return(publicPhoto(photoID1, ownerID, 0, baseTime), nil)

	err := svc.DeleteComment(context.Background(), viewerID, photoID1, commentID1)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentService_DeleteComment_InvalidCommentID(t *testing.T) {
	svc, _ := newTestCommentService(t)

	err := svc.DeleteComment(context.Background(), viewerID, photoID1, "c1")

	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// ── CommentsOfUser / MentionsOfUser ──────────────────────────────────────────

func TestCommentService_CommentsOfUser_HidesInvisiblePhotos(t *testing.T) {
	svc, ts := newTestCommentService(t)

	ts.comments.EXPECT().CommentsOfUser(gomock.Any(), viewerID).Return([]models.UserComment{
		{PhotoID: photoID1, OwnerID: ownerID, Text: "on public"},
		{PhotoID: photoID2, OwnerID: ownerID, Text: "on private"},
	}, nil)
	ts.photos.EXPECT().PhotosByIDs(gomock.Any(), []string{photoID1, photoID2}).Return([]models.Photo{
		publicPhoto(photoID1, ownerID, 0, baseTime),
		{ID: photoID2, UserID: ownerID, Visibility: models.VisibilityOwnerOnly},
	}, nil)

	got, err := svc.CommentsOfUser(context.Background(), viewerID, strangerID)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "on public", got[0].Text)
}

func TestCommentService_MentionsOfUser_SharedPhotoForListedViewer(t *testing.T) {
	svc, ts := newTestCommentService(t)

	ts.comments.EXPECT().MentionsOfUser(gomock.Any(), strangerID).Return([]models.Mention{
		{PhotoID: photoID2, OwnerID: ownerID, FileName: "b.jpg"},
	}, nil)
	ts.photos.EXPECT().PhotosByIDs(gomock.Any(), []string{photoID2}).Return([]models.Photo{
		{ID: photoID2, UserID: ownerID, Visibility: models.VisibilityShared, SharedWith: []string{viewerID}},
	}, nil)

	got, err := svc.MentionsOfUser(context.Background(), strangerID, viewerID)
	require.NoError(t, err)

	assert.Len(t, got, 1)
}

func TestCommentService_MentionsOfUser_EmptySkipsPhotoLookup(t *testing.T) {
	svc, ts := newTestCommentService(t)

	ts.comments.EXPECT().MentionsOfUser(gomock.Any(), strangerID).Return(nil, nil)

	got, err := svc.MentionsOfUser(context.Background(), strangerID, viewerID)
	require.NoError(t, err)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

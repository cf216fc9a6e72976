// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhotoID2 = "0190f4b2-7c1e-7a6b-9a51-2d0c3f1e8b02"

var photoRowColumns = []string{"id", "user_id", "file_name", "date_time", "visibility", "seeded"}

func newTestPhotoRepo(t *testing.T) (*photoRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &photoRepository{db: db, logger: logger.Nop()}, mock
}

// expectEmptyChildren expects the four child-table queries issued by hydrate
// and answers each with no rows.
func expectEmptyChildren(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("FROM photo_shares").WillReturnRows(sqlmock.NewRows([]string{"photo_id", "user_id"}))
	mock.ExpectQuery("FROM likes").WillReturnRows(sqlmock.NewRows([]string{"photo_id", "user_id"}))
	mock.ExpectQuery("FROM tags").WillReturnRows(sqlmock.NewRows([]string{"id", "photo_id", "user_id", "x", "y", "w", "h", "date_time"}))
	mock.ExpectQuery("FROM comments").WillReturnRows(sqlmock.NewRows([]string{"id", "photo_id", "user_id", "comment", "date_time", "mentions"}))
}

// ── CreatePhoto ─────────────────────────────────────────────────────────────

func TestCreatePhoto_WithShares(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	photo := models.Photo{
		ID:         testPhotoID,
		UserID:     testUserID,
		FileName:   "a.jpg",
		DateTime:   time.Now(),
		Visibility: models.VisibilityShared,
		SharedWith: []string{testUserID2},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO photos").
		WithArgs(photo.ID, photo.UserID, photo.FileName, sqlmock.AnyArg(), "shared").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO photo_shares (photo_id,user_id) VALUES ($1,$2) ON CONFLICT DO NOTHING")).
		WithArgs(testPhotoID, testUserID2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreatePhoto(context.Background(), photo)

	require.NoError(t, err)
	assert.Equal(t, []string{testUserID2}, created.SharedWith)
	assert.NotNil(t, created.Comments)
	assert.NotNil(t, created.Likes)
	assert.NotNil(t, created.Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePhoto_NoSharesSkipsShareInsert(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO photos").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreatePhoto(context.Background(), models.Photo{
		ID:         testPhotoID,
		UserID:     testUserID,
		FileName:   "a.jpg",
		Visibility: models.VisibilityPublic,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{}, created.SharedWith)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePhoto_UnknownOwnerRollsBack(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO photos").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	_, err := repo.CreatePhoto(context.Background(), models.Photo{ID: testPhotoID, UserID: testUserID})

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePhoto_BeginFails(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err := repo.CreatePhoto(context.Background(), models.Photo{ID: testPhotoID})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── GetPhoto ────────────────────────────────────────────────────────────────

func TestGetPhoto_Hydrated(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM photos p JOIN users u ON u.id = p.user_id WHERE p.id IN ($1)")).
		WithArgs(testPhotoID).
		WillReturnRows(sqlmock.NewRows(photoRowColumns).
			AddRow(testPhotoID, testUserID, "a.jpg", now, "owner_only", true))
	mock.ExpectQuery("FROM photo_shares").
		WithArgs(testPhotoID).
		WillReturnRows(sqlmock.NewRows([]string{"photo_id", "user_id"}))
	mock.ExpectQuery("FROM likes").
		WithArgs(testPhotoID).
		WillReturnRows(sqlmock.NewRows([]string{"photo_id", "user_id"}).
			AddRow(testPhotoID, testUserID).
			AddRow(testPhotoID, testUserID2))
	mock.ExpectQuery("FROM tags").
		WithArgs(testPhotoID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "photo_id", "user_id", "x", "y", "w", "h", "date_time"}).
			AddRow("tag-1", testPhotoID, nil, 0.1, 0.2, 0.3, 0.4, now))
	mock.ExpectQuery("FROM comments").
		WithArgs(testPhotoID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "photo_id", "user_id", "comment", "date_time", "mentions"}).
			AddRow("c-1", testPhotoID, testUserID2, "hi @Ann", now, []byte(`["`+testUserID+`"]`)))

	photo, err := repo.GetPhoto(context.Background(), testPhotoID)

	require.NoError(t, err)
	assert.Equal(t, models.VisibilityOwnerOnly, photo.Visibility)
	assert.True(t, photo.OwnerSeeded)
	assert.Empty(t, photo.SharedWith)
	assert.Equal(t, []string{testUserID, testUserID2}, photo.Likes)
	require.Len(t, photo.Tags, 1)
	assert.Equal(t, "", photo.Tags[0].UserID)
	assert.InDelta(t, 0.3, photo.Tags[0].W, 1e-9)
	require.Len(t, photo.Comments, 1)
	assert.Equal(t, []string{testUserID}, photo.Comments[0].Mentions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPhoto_NotFound(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	mock.ExpectQuery("FROM photos p").
		WithArgs(testPhotoID).
		WillReturnRows(sqlmock.NewRows(photoRowColumns))

	_, err := repo.GetPhoto(context.Background(), testPhotoID)

	assert.ErrorIs(t, err, ErrPhotoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPhoto_InvalidMentionsJSON(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)
	now := time.Now()

	mock.ExpectQuery("FROM photos p").
		WillReturnRows(sqlmock.NewRows(photoRowColumns).
			AddRow(testPhotoID, testUserID, "a.jpg", now, "public", false))
	mock.ExpectQuery("FROM photo_shares").WillReturnRows(sqlmock.NewRows([]string{"photo_id", "user_id"}))
	mock.ExpectQuery("FROM likes").WillReturnRows(sqlmock.NewRows([]string{"photo_id", "user_id"}))
	mock.ExpectQuery("FROM tags").WillReturnRows(sqlmock.NewRows([]string{"id", "photo_id", "user_id", "x", "y", "w", "h", "date_time"}))
	mock.ExpectQuery("FROM comments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "photo_id", "user_id", "comment", "date_time", "mentions"}).
			AddRow("c-1", testPhotoID, testUserID, "x", now, []byte(`{not json`)))

	_, err := repo.GetPhoto(context.Background(), testPhotoID)

	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── listing ─────────────────────────────────────────────────────────────────

func TestPhotosOfUser_FiltersByOwner(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.user_id = $1 ORDER BY p.date_time DESC, p.id")).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows(photoRowColumns).
			AddRow(testPhotoID2, testUserID, "b.jpg", now, "public", false).
			AddRow(testPhotoID, testUserID, "a.jpg", now.Add(-time.Hour), "shared", false))
	mock.ExpectQuery("FROM photo_shares").
		WithArgs(testPhotoID2, testPhotoID).
		WillReturnRows(sqlmock.NewRows([]string{"photo_id", "user_id"}).AddRow(testPhotoID, testUserID2))
	mock.ExpectQuery("FROM likes").WillReturnRows(sqlmock.NewRows([]string{"photo_id", "user_id"}))
	mock.ExpectQuery("FROM tags").WillReturnRows(sqlmock.NewRows([]string{"id", "photo_id", "user_id", "x", "y", "w", "h", "date_time"}))
	mock.ExpectQuery("FROM comments").WillReturnRows(sqlmock.NewRows([]string{"id", "photo_id", "user_id", "comment", "date_time", "mentions"}))

	photos, err := repo.PhotosOfUser(context.Background(), testUserID)

	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Empty(t, photos[0].SharedWith)
	assert.Equal(t, []string{testUserID2}, photos[1].SharedWith)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPhotosByIDs_EmptySkipsQuery(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	photos, err := repo.PhotosByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, photos)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAllPhotos_NoRowsSkipsChildren(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	mock.ExpectQuery("FROM photos p").WillReturnRows(sqlmock.NewRows(photoRowColumns))

	photos, err := repo.AllPhotos(context.Background())

	require.NoError(t, err)
	assert.Empty(t, photos)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAllPhotos_QueryError(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	mock.ExpectQuery("FROM photos p").WillReturnError(errors.New("boom"))

	_, err := repo.AllPhotos(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestAllPhotos_Hydrates(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	mock.ExpectQuery("FROM photos p").
		WillReturnRows(sqlmock.NewRows(photoRowColumns).
			AddRow(testPhotoID, testUserID, "a.jpg", time.Now(), "public", false))
	expectEmptyChildren(mock)

	photos, err := repo.AllPhotos(context.Background())

	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.NotNil(t, photos[0].Comments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── deletion ────────────────────────────────────────────────────────────────

func TestDeletePhoto(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestPhotoRepo(t)
		mock.ExpectExec("DELETE FROM photos WHERE id").
			WithArgs(testPhotoID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeletePhoto(context.Background(), testPhotoID))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestPhotoRepo(t)
		mock.ExpectExec("DELETE FROM photos WHERE id").
			WithArgs(testPhotoID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeletePhoto(context.Background(), testPhotoID), ErrPhotoNotFound)
	})
}

func TestDeletePhotosOfUser(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	mock.ExpectQuery("DELETE FROM photos WHERE user_id = .* RETURNING id, file_name").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_name"}).
			AddRow(testPhotoID, "a.jpg").
			AddRow(testPhotoID2, "b.jpg"))

	deleted, err := repo.DeletePhotosOfUser(context.Background(), testUserID)

	require.NoError(t, err)
	require.Len(t, deleted, 2)
	assert.Equal(t, "b.jpg", deleted[1].FileName)
	assert.Equal(t, testUserID, deleted[0].UserID)
}

// ── likes and tags ──────────────────────────────────────────────────────────

func TestAddLike_ReturnsCount(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	mock.ExpectExec("INSERT INTO likes").
		WithArgs(testPhotoID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM likes")).
		WithArgs(testPhotoID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.AddLike(context.Background(), testPhotoID, testUserID)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestAddLike_MissingPhoto(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	mock.ExpectExec("INSERT INTO likes").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.AddLike(context.Background(), testPhotoID, testUserID)

	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestRemoveLike_ReturnsCount(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	mock.ExpectExec("DELETE FROM likes").
		WithArgs(testPhotoID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM likes")).
		WithArgs(testPhotoID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.RemoveLike(context.Background(), testPhotoID, testUserID)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAddTag(t *testing.T) {
	tag := models.Tag{ID: "tag-1", PhotoID: testPhotoID, UserID: testUserID2, X: 0.1, Y: 0.1, W: 0.5, H: 0.5, DateTime: time.Now()}

	t.Run("inserted", func(t *testing.T) {
		repo, mock := newTestPhotoRepo(t)
		mock.ExpectExec("INSERT INTO tags").
			WithArgs(tag.ID, tag.PhotoID, sqlmock.AnyArg(), tag.X, tag.Y, tag.W, tag.H, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		saved, err := repo.AddTag(context.Background(), tag)

		require.NoError(t, err)
		assert.Equal(t, tag, saved)
	})

	t.Run("unknown tagged user", func(t *testing.T) {
		repo, mock := newTestPhotoRepo(t)
		mock.ExpectExec("INSERT INTO tags").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "tags_user_id_fkey"})

		_, err := repo.AddTag(context.Background(), tag)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("unknown photo", func(t *testing.T) {
		repo, mock := newTestPhotoRepo(t)
		mock.ExpectExec("INSERT INTO tags").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "tags_photo_id_fkey"})

		_, err := repo.AddTag(context.Background(), tag)

		assert.ErrorIs(t, err, ErrPhotoNotFound)
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
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

const (
	testUserID  = "0190f4b2-7c1e-7a6b-9a51-2d0c3f1e8a01"
	testUserID2 = "0190f4b2-7c1e-7a6b-9a51-2d0c3f1e8a02"
	testPhotoID = "0190f4b2-7c1e-7a6b-9a51-2d0c3f1e8b01"
)

var userRowColumns = []string{"id", "login_name", "password", "first_name", "last_name", "location", "occupation", "description", "seeded", "created_at"}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &DB{DB: db, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{
		ID:        testUserID,
		LoginName: "took",
		Password:  "hash",
		FirstName: "Peregrin",
		LastName:  "Took",
	}
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.ID, user.LoginName, user.Password, user.FirstName, user.LastName, "", "", "", false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	created, err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, testUserID, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{LoginName: "took"})
	if !errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("expected ErrLoginAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{LoginName: "took"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByLogin_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(testUserID, "took", "hash", "Peregrin", "Took", "Shire", "Guard", "", true, time.Now())
	mock.ExpectQuery("SELECT id, login_name").
		WithArgs("took").
		WillReturnRows(rows)

	found, err := repo.FindUserByLogin(context.Background(), "took")

	require.NoError(t, err)
	assert.Equal(t, testUserID, found.ID)
	assert.Equal(t, "Shire", found.Location)
	assert.True(t, found.Seeded)
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id, login_name").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByLogin(context.Background(), "nobody")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id, login_name").
		WithArgs(testUserID).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindUserByID(context.Background(), testUserID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestFindUsersByIDs(t *testing.T) {
	t.Run("empty input skips the query", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		users, err := repo.FindUsersByIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, users)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("keyed by id", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		rows := sqlmock.NewRows(userRowColumns).
			AddRow(testUserID, "a", "h", "Ann", "A", "", "", "", false, time.Now())
		mock.ExpectQuery("FROM users WHERE id IN").
			WithArgs(testUserID, testUserID2).
			WillReturnRows(rows)

		users, err := repo.FindUsersByIDs(context.Background(), []string{testUserID, testUserID2})

		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Ann", users[testUserID].FirstName)
	})
}

func TestListUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(testUserID, "a", "h", "Ann", "A", "", "", "", false, time.Now()).
		AddRow(testUserID2, "b", "h", "Bob", "B", "", "", "", true, time.Now())
	mock.ExpectQuery("FROM users").WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bob", users[1].FirstName)
}

func TestExistingUserIDs(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id FROM users WHERE id IN").
		WithArgs(testUserID, testUserID2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testUserID2))

	ids, err := repo.ExistingUserIDs(context.Background(), []string{testUserID, testUserID2})

	require.NoError(t, err)
	assert.Equal(t, []string{testUserID2}, ids)
}

func TestDeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("DELETE FROM users").
			WithArgs(testUserID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteUser(context.Background(), testUserID))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("DELETE FROM users").
			WithArgs(testUserID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteUser(context.Background(), testUserID), ErrUserNotFound)
	})
}

func TestMarkSeeded(t *testing.T) {
	t.Run("updates every row", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users SET seeded = login_name IN").
			WithArgs("took", "baggins").
			WillReturnResult(sqlmock.NewResult(0, 7))

		affected, err := repo.MarkSeeded(context.Background(), []string{"took", "baggins"})

		require.NoError(t, err)
		assert.Equal(t, int64(7), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users").WillReturnError(errors.New("boom"))

		_, err := repo.MarkSeeded(context.Background(), []string{"took"})

		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestFavorites(t *testing.T) {
	t.Run("ids", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT photo_id FROM favorites").
			WithArgs(testUserID).
			WillReturnRows(sqlmock.NewRows([]string{"photo_id"}).AddRow(testPhotoID))

		ids, err := repo.FavoriteIDs(context.Background(), testUserID)

		require.NoError(t, err)
		assert.Equal(t, []string{testPhotoID}, ids)
	})

	t.Run("add is idempotent insert", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("INSERT INTO favorites .* ON CONFLICT DO NOTHING").
			WithArgs(testUserID, testPhotoID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.AddFavorite(context.Background(), testUserID, testPhotoID))
	})

	t.Run("add of missing photo", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("INSERT INTO favorites").
			WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		assert.ErrorIs(t, repo.AddFavorite(context.Background(), testUserID, testPhotoID), ErrPhotoNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("DELETE FROM favorites").
			WithArgs(testUserID, testPhotoID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.RemoveFavorite(context.Background(), testUserID, testPhotoID))
	})
}

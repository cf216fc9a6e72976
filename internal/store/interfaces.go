// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence of the photo-share domain: PostgreSQL
// repositories for users, photos, comments and activities, and file storages
// for uploaded images.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-photo-share/models"
)

// ErrorClassificator decides whether a failed database operation may succeed
// if repeated.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists user accounts and their favorites sets.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, loginName string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// FindUsersByIDs returns the users that exist among ids, keyed by id.
	FindUsersByIDs(ctx context.Context, ids []string) (map[string]models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// ExistingUserIDs returns the subset of ids that belong to existing users.
	ExistingUserIDs(ctx context.Context, ids []string) ([]string, error)
	DeleteUser(ctx context.Context, userID string) error
	// MarkSeeded flags exactly the accounts named in loginNames as legacy
	// demo accounts and clears the flag on every other account.
	MarkSeeded(ctx context.Context, loginNames []string) (int64, error)

	FavoriteIDs(ctx context.Context, userID string) ([]string, error)
	AddFavorite(ctx context.Context, userID, photoID string) error
	RemoveFavorite(ctx context.Context, userID, photoID string) error
}

// PhotoRepository persists photo aggregates: the photo row with its shares,
// likes, tags and comments. Returned photos are fully hydrated.
type PhotoRepository interface {
	CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error)
	GetPhoto(ctx context.Context, photoID string) (models.Photo, error)
	PhotosOfUser(ctx context.Context, ownerID string) ([]models.Photo, error)
	PhotosByIDs(ctx context.Context, ids []string) ([]models.Photo, error)
	AllPhotos(ctx context.Context) ([]models.Photo, error)
	DeletePhoto(ctx context.Context, photoID string) error
	// DeletePhotosOfUser removes every photo of ownerID and returns the
	// removed rows (id and file name only).
	DeletePhotosOfUser(ctx context.Context, ownerID string) ([]models.Photo, error)

	// AddLike and RemoveLike return the like count after the change.
	AddLike(ctx context.Context, photoID, userID string) (int, error)
	RemoveLike(ctx context.Context, photoID, userID string) (int, error)
	AddTag(ctx context.Context, tag models.Tag) (models.Tag, error)
}

// CommentRepository persists comments.
type CommentRepository interface {
	AddComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, photoID, commentID string) error
	CommentsOfUser(ctx context.Context, userID string) ([]models.UserComment, error)
	MentionsOfUser(ctx context.Context, userID string) ([]models.Mention, error)
	DeleteCommentsByAuthor(ctx context.Context, userID string) error
}

// ActivityRepository persists the append-only activity log.
type ActivityRepository interface {
	LogActivity(ctx context.Context, activity models.Activity) error
	RecentActivities(ctx context.Context, limit int) ([]models.Activity, error)
	LastActivityPerUser(ctx context.Context) ([]models.LastActivity, error)
	DeleteByPhoto(ctx context.Context, photoID string) error
	DeleteByUserOrPhotos(ctx context.Context, userID string, photoIDs []string) error
}

// SessionRepository persists server-side sessions. Deleting a user removes
// its sessions through a foreign key.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	// SessionActive reports whether sessionID exists for userID and has
	// not expired.
	SessionActive(ctx context.Context, sessionID, userID string) (bool, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteSessionsOfUser(ctx context.Context, userID string) error
}

// FileStorage stores uploaded images. Save also produces a JPEG thumbnail
// under "thumbnails/<name>" on a best-effort basis; Delete removes both.
type FileStorage interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
}

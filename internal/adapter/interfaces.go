// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the photo-share REST API.
//
// [ServerAdapter] hides the transport from callers such as cmd/client.
// Non-2xx responses are mapped to the sentinel errors in errors.go, so callers
// can branch with [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrConflict]
// for a taken login name).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-photo-share/models"
)

// ServerAdapter talks to a photo-share server on behalf of one user session.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)
	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account and keeps the returned session token.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login opens a session and keeps the returned session token.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	// Logout ends the session on the server and forgets the local token.
	Logout(ctx context.Context) error
	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	PhotosOfUser(ctx context.Context, userID string) ([]models.PhotoView, error)

	// UploadPhoto sends the image as multipart form data. A nil sharedWith
	// leaves the photo public.
	UploadPhoto(ctx context.Context, fileName string, body io.Reader, sharedWith []string) (models.Photo, error)

	Like(ctx context.Context, photoID string) (models.LikeResult, error)
	Unlike(ctx context.Context, photoID string) (models.LikeResult, error)
	AddComment(ctx context.Context, photoID, text string) (models.CommentView, error)

	RecentActivities(ctx context.Context, limit int) ([]models.ActivityView, error)

	Favorites(ctx context.Context) ([]models.FavoritePhoto, error)
	AddFavorite(ctx context.Context, photoID string) (models.FavoriteResult, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the domain logic of go-photo-share: the visibility
// predicate, the mutation guard, mention extraction, and the services built
// on top of them.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-photo-share/models"
)

type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	// Logout ends sessionID of userID; its tokens stop being accepted.
	Logout(ctx context.Context, userID, sessionID string) error
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	// DeleteAccount removes actorID's account with everything it owns.
	DeleteAccount(ctx context.Context, actorID, userID string) error
	// MarkSeeded flags exactly the accounts named in loginNames as demo data
	// and returns the number of user rows touched.
	MarkSeeded(ctx context.Context, loginNames []string) (int64, error)
}

type PhotoService interface {
	PhotosOfUser(ctx context.Context, userID, viewerID string) ([]models.PhotoView, error)
	Upload(ctx context.Context, request models.UploadRequest) (models.Photo, error)
	DeletePhoto(ctx context.Context, actorID, photoID string) error
	Like(ctx context.Context, actorID, photoID string) (models.LikeResult, error)
	Unlike(ctx context.Context, actorID, photoID string) (models.LikeResult, error)
	AddTag(ctx context.Context, request models.TagRequest) (models.TagView, error)
	OpenImage(ctx context.Context, name string) (io.ReadCloser, error)
}

type CommentService interface {
	AddComment(ctx context.Context, request models.CommentRequest) (models.CommentView, error)
	DeleteComment(ctx context.Context, actorID, photoID, commentID string) error
	CommentsOfUser(ctx context.Context, userID, viewerID string) ([]models.UserComment, error)
	MentionsOfUser(ctx context.Context, userID, viewerID string) ([]models.Mention, error)
	ExtractMentions(ctx context.Context, rawText string) (models.MentionExtraction, error)
}

type StatsService interface {
	CountsPerUser(ctx context.Context, viewerID string) ([]models.UserCounts, error)
	HighlightsOfUser(ctx context.Context, userID, viewerID string) (models.Highlights, error)
}

type ActivityService interface {
	RecentActivities(ctx context.Context, limit int) ([]models.ActivityView, error)
	LastActivityPerUser(ctx context.Context) ([]models.LastActivity, error)
}

type FavoriteService interface {
	FavoritesOf(ctx context.Context, viewerID string) ([]models.FavoritePhoto, error)
	AddFavorite(ctx context.Context, actorID, photoID string) (models.FavoriteResult, error)
	RemoveFavorite(ctx context.Context, actorID, photoID string) (models.FavoriteResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-photo-share/models"

// Action is a write operation checked by [Authorize].
type Action int

const (
	ActionAddComment Action = iota
	ActionDeleteComment
	ActionDeletePhoto
	ActionAddTag
	ActionLike
	ActionUnlike
	ActionFavorite
	ActionUnfavorite
	ActionDeleteAccount
)

func (a Action) String() string {
	switch a {
	case ActionAddComment:
		return "add_comment"
	case ActionDeleteComment:
		return "delete_comment"
	case ActionDeletePhoto:
		return "delete_photo"
	case ActionAddTag:
		return "add_tag"
	case ActionLike:
		return "like"
	case ActionUnlike:
		return "unlike"
	case ActionFavorite:
		return "favorite"
	case ActionUnfavorite:
		return "unfavorite"
	case ActionDeleteAccount:
		return "delete_account"
	default:
		return "unknown"
	}
}

// Resource is the target of an [Action]. Photo is nil when the photo does not
// exist; CommentID and UserID are set only for the actions that need them.
type Resource struct {
	Photo     *models.Photo
	CommentID string
	UserID    string
}

// Authorize decides whether actorID may perform action on resource. It
// returns nil, or an error wrapping [ErrUnauthorized], [ErrForbidden] or
// [ErrNotFound].
func Authorize(actorID string, action Action, resource Resource) error {
	if actorID == "" {
		return ErrNoSession
	}

	switch action {
	case ActionUnlike, ActionUnfavorite:
		return nil

	case ActionDeleteAccount:
		if actorID != resource.UserID {
			return ErrNotOwner
		}
		return nil
	}

	photo := resource.Photo
	if photo == nil {
		return ErrPhotoNotFound
	}

	switch action {
	case ActionAddComment, ActionFavorite:
		// no visibility check on purpose, see DESIGN.md
		return nil

	case ActionDeleteComment:
		comment, ok := photo.FindComment(resource.CommentID)
		if !ok {
			return ErrCommentNotFound
		}
		if comment.UserID != actorID {
			return ErrNotAuthor
		}
		return nil

	case ActionDeletePhoto:
		if photo.UserID != actorID {
			return ErrNotOwner
		}
		return nil

	case ActionAddTag, ActionLike:
		if !IsVisible(*photo, actorID) {
			return ErrPhotoNotVisible
		}
		return nil
	}

	return ErrForbidden
}

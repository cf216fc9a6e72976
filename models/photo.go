// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Photo is the stored photo aggregate: the photo row together with its
// comments, likes, tags and share list.
type Photo struct {
	ID         string     `json:"_id"`
	UserID     string     `json:"user_id"`
	FileName   string     `json:"file_name"`
	DateTime   time.Time  `json:"date_time"`
	Visibility Visibility `json:"visibility"`
	SharedWith []string   `json:"shared_with,omitempty"`

	Comments []Comment `json:"comments"`
	Likes    []string  `json:"-"`
	Tags     []Tag     `json:"tags"`

	// OwnerSeeded is loaded from the owner's row; it drives the legacy
	// owner-only carve-out of the visibility predicate.
	OwnerSeeded bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the Photo model.
func (p Photo) TableName() string {
	return "photos"
}

// IsSharedWith reports whether userID is on the photo's allow-list.
func (p Photo) IsSharedWith(userID string) bool {
	for _, id := range p.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}

// IsLikedBy reports whether userID is in the photo's like set.
func (p Photo) IsLikedBy(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// FindComment returns the comment with the given id, if any.
func (p Photo) FindComment(commentID string) (Comment, bool) {
	for _, c := range p.Comments {
		if c.ID == commentID {
			return c, true
		}
	}
	return Comment{}, false
}

// PhotoView is the enriched representation of a photo returned to a viewer.
type PhotoView struct {
	ID                string        `json:"_id"`
	UserID            string        `json:"user_id"`
	FileName          string        `json:"file_name"`
	DateTime          time.Time     `json:"date_time"`
	Visibility        Visibility    `json:"visibility,omitempty"`
	SharedWith        []string      `json:"shared_with,omitempty"`
	Comments          []CommentView `json:"comments"`
	Tags              []TagView     `json:"tags"`
	LikesCount        int           `json:"likesCount"`
	LikedByViewer     bool          `json:"likedByViewer"`
	FavoritedByViewer bool          `json:"favoritedByViewer"`
}

// PhotoHighlight is a compact photo descriptor used by the highlights view.
type PhotoHighlight struct {
	ID            string    `json:"_id"`
	FileName      string    `json:"file_name"`
	DateTime      time.Time `json:"date_time"`
	CommentsCount int       `json:"commentsCount"`
}

// Highlights holds the "most recent" and "most commented" photos of a user.
// Either field is nil when the user has no qualifying photos.
type Highlights struct {
	MostRecent    *PhotoHighlight `json:"mostRecent"`
	MostCommented *PhotoHighlight `json:"mostCommented"`
}

// FavoritePhoto is a single entry of the viewer's favorites list.
type FavoritePhoto struct {
	ID       string       `json:"_id"`
	FileName string       `json:"file_name"`
	DateTime time.Time    `json:"date_time"`
	User     *UserSummary `json:"user"`
}

// LikeResult is returned by like and unlike operations.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

// FavoriteResult is returned by favorite toggles.
type FavoriteResult struct {
	Favorited bool `json:"favorited"`
}

// LikeEvent is pushed to connected clients after a like or unlike.
type LikeEvent struct {
	PhotoID    string `json:"photo_id"`
	LikesCount int    `json:"likesCount"`
	ActorID    string `json:"user_id"`
	Liked      bool   `json:"liked"`
}

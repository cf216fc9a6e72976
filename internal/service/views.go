// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-photo-share/models"

// summaryOf returns the public snapshot of userID, or nil when the user no
// longer exists.
func summaryOf(users map[string]models.User, userID string) *models.UserSummary {
	user, ok := users[userID]
	if !ok {
		return nil
	}
	return user.Summary()
}

// referencedUserIDs collects every user id a photo view needs to resolve:
// comment authors and tagged users.
func referencedUserIDs(photos []models.Photo) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0, 16)
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, photo := range photos {
		for _, c := range photo.Comments {
			add(c.UserID)
		}
		for _, t := range photo.Tags {
			add(t.UserID)
		}
	}
	return ids
}

func commentView(comment models.Comment, users map[string]models.User) models.CommentView {
	mentions := comment.Mentions
	if mentions == nil {
		mentions = []string{}
	}
	return models.CommentView{
		ID:       comment.ID,
		Text:     comment.Text,
		DateTime: comment.DateTime,
		User:     summaryOf(users, comment.UserID),
		Mentions: mentions,
	}
}

func tagView(tag models.Tag, users map[string]models.User) models.TagView {
	return models.TagView{
		ID:       tag.ID,
		X:        tag.X,
		Y:        tag.Y,
		W:        tag.W,
		H:        tag.H,
		DateTime: tag.DateTime,
		User:     summaryOf(users, tag.UserID),
	}
}

// photoView enriches photo for viewerID: author snapshots on comments and
// tags, like counters and the viewer's favorite flag.
func photoView(photo models.Photo, viewerID string, users map[string]models.User, favorites map[string]struct{}) models.PhotoView {
	comments := make([]models.CommentView, 0, len(photo.Comments))
	for _, c := range photo.Comments {
		comments = append(comments, commentView(c, users))
	}

	tags := make([]models.TagView, 0, len(photo.Tags))
	for _, t := range photo.Tags {
		tags = append(tags, tagView(t, users))
	}

	_, favorited := favorites[photo.ID]

	view := models.PhotoView{
		ID:                photo.ID,
		UserID:            photo.UserID,
		FileName:          photo.FileName,
		DateTime:          photo.DateTime,
		Comments:          comments,
		Tags:              tags,
		LikesCount:        len(photo.Likes),
		LikedByViewer:     photo.IsLikedBy(viewerID),
		FavoritedByViewer: viewerID != "" && favorited,
	}

	// the audience of a photo is its owner's business
	if viewerID != "" && viewerID == photo.UserID {
		view.Visibility = photo.Visibility
		view.SharedWith = photo.SharedWith
	}
	return view
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

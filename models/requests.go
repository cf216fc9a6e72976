// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// RegisterRequest is the body of POST /user.
type RegisterRequest struct {
	LoginName   string `json:"login_name"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Occupation  string `json:"occupation"`
}

// LoginRequest is the body of POST /admin/login.
type LoginRequest struct {
	LoginName string `json:"login_name"`
	Password  string `json:"password"`
}

// CommentRequest is the body of POST /commentsOfPhoto/{photo_id}.
// Comment may contain mention markup of the form @[Name](userId).
type CommentRequest struct {
	PhotoID string `json:"-"`
	ActorID string `json:"-"`
	Comment string `json:"comment"`
}

// TagRequest is the body of POST /photos/{photo_id}/tags.
// Coordinates are pointers so that missing fields can be told apart from zero.
type TagRequest struct {
	PhotoID string   `json:"-"`
	ActorID string   `json:"-"`
	UserID  string   `json:"user_id"`
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
	W       *float64 `json:"w"`
	H       *float64 `json:"h"`
}

// UploadRequest describes a photo upload.
//
// SharedWith is nil when the client sent no (or an unparseable) share list,
// which makes the photo public. A non-nil list is resolved against existing
// users; an empty resolved list means owner-only.
type UploadRequest struct {
	ActorID          string
	OriginalFileName string
	ContentType      string
	Body             io.Reader
	SharedWith       []string
}

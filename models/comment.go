// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Comment is a comment on a photo. Text holds the display form with mention
// markup already resolved to "@Name".
type Comment struct {
	ID       string    `json:"_id"`
	PhotoID  string    `json:"photo_id"`
	UserID   string    `json:"user_id"`
	Text     string    `json:"comment"`
	DateTime time.Time `json:"date_time"`
	Mentions []string  `json:"mentions"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// CommentView is a comment with its author denormalized.
type CommentView struct {
	ID       string       `json:"_id"`
	Text     string       `json:"comment"`
	DateTime time.Time    `json:"date_time"`
	User     *UserSummary `json:"user"`
	Mentions []string     `json:"mentions"`
}

// UserComment is a comment written by a user, listed with its photo.
type UserComment struct {
	PhotoID  string    `json:"photo_id"`
	OwnerID  string    `json:"owner_id"`
	FileName string    `json:"file_name"`
	Text     string    `json:"comment"`
	DateTime time.Time `json:"date_time"`
}

// Mention is a photo whose comments mention a user.
type Mention struct {
	PhotoID        string `json:"photo_id"`
	FileName       string `json:"file_name"`
	OwnerID        string `json:"owner_id"`
	OwnerFirstName string `json:"owner_first_name"`
	OwnerLastName  string `json:"owner_last_name"`
}

// MentionExtraction is the result of parsing mention markup in a comment.
type MentionExtraction struct {
	DisplayText string
	MentionIDs  []string
}

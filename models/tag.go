// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Tag marks a user on a photo with a rectangle in relative [0,1] coordinates.
// UserID is empty once the tagged user has been deleted.
type Tag struct {
	ID       string    `json:"_id"`
	PhotoID  string    `json:"photo_id"`
	UserID   string    `json:"user_id"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	W        float64   `json:"w"`
	H        float64   `json:"h"`
	DateTime time.Time `json:"date_time"`
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}

// TagView is a tag with the tagged user denormalized.
type TagView struct {
	ID       string       `json:"_id"`
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
	W        float64      `json:"w"`
	H        float64      `json:"h"`
	DateTime time.Time    `json:"date_time"`
	User     *UserSummary `json:"user"`
}

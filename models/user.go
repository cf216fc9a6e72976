// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	ID          string    `json:"_id"`
	LoginName   string    `json:"login_name"`
	Password    string    `json:"-"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Location    string    `json:"location"`
	Occupation  string    `json:"occupation"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"-"`

	// Seeded marks accounts from the legacy demo dataset. Their owner-only
	// photos stay visible to everyone, see IsVisible.
	Seeded bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the denormalized author snapshot of the user.
func (u User) Summary() *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// UserSummary is the {_id, first_name, last_name} snapshot embedded into
// comments, tags, activities and favorites.
type UserSummary struct {
	ID        string `json:"_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserCounts is a single row of the per-user counts view.
type UserCounts struct {
	UserID       string `json:"_id"`
	PhotoCount   int    `json:"photoCount"`
	CommentCount int    `json:"commentCount"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ActivityType enumerates the kinds of entries in the activity log.
type ActivityType string

const (
	ActivityPhotoUpload  ActivityType = "photo_upload"
	ActivityCommentAdded ActivityType = "comment_added"
	ActivityUserRegister ActivityType = "user_register"
	ActivityUserLogin    ActivityType = "user_login"
	ActivityUserLogout   ActivityType = "user_logout"
)

// Activity is a single append-only activity log record.
// PhotoID and PhotoFileName are set only for photo-linked types.
type Activity struct {
	ID            string       `json:"_id"`
	Type          ActivityType `json:"type"`
	DateTime      time.Time    `json:"date_time"`
	UserID        string       `json:"user_id"`
	PhotoID       *string      `json:"photo_id"`
	PhotoFileName *string      `json:"photo_file_name"`
}

// TableName returns the name of the database table
// associated with the Activity model.
func (a Activity) TableName() string {
	return "activities"
}

// ActivityView is an activity enriched with its actor. User is nil when the
// actor no longer exists.
type ActivityView struct {
	ID            string       `json:"_id"`
	Type          ActivityType `json:"type"`
	DateTime      time.Time    `json:"date_time"`
	User          *UserSummary `json:"user"`
	PhotoFileName *string      `json:"photo_file_name"`
	PhotoID       *string      `json:"photo_id"`
}

// LastActivity is the most recent activity of a single user.
type LastActivity struct {
	UserID        string       `json:"user_id"`
	Type          ActivityType `json:"type"`
	DateTime      time.Time    `json:"date_time"`
	PhotoFileName *string      `json:"photo_file_name"`
	PhotoID       *string      `json:"photo_id"`
}

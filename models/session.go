// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is a server-side login record. A session token is honoured only
// while its Session row exists and has not expired.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

func (s Session) TableName() string {
	return "sessions"
}

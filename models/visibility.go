// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Visibility is the sharing mode of a photo.
type Visibility string

const (
	// VisibilityPublic makes a photo readable by everyone.
	VisibilityPublic Visibility = "public"
	// VisibilityOwnerOnly restricts a photo to its uploader.
	VisibilityOwnerOnly Visibility = "owner_only"
	// VisibilityShared restricts a photo to its uploader and Photo.SharedWith.
	VisibilityShared Visibility = "shared"
)

// IsValid reports whether v is one of the known sharing modes.
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityOwnerOnly, VisibilityShared:
		return true
	default:
		return false
	}
}

// SharingFromList converts an explicit allow-list into a sharing mode.
// The owner is stripped from the list; an empty result means owner-only.
func SharingFromList(ownerID string, userIDs []string) (Visibility, []string) {
	sharedWith := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		if id != ownerID {
			sharedWith = append(sharedWith, id)
		}
	}

	if len(sharedWith) == 0 {
		return VisibilityOwnerOnly, nil
	}

	return VisibilityShared, sharedWith
}

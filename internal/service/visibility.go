// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/go-photo-share/models"
)

// IsVisible reports whether viewerID may read photo. An empty viewerID is an
// anonymous viewer.
//
// Owner-only photos of seeded (demo) accounts stay visible to everyone; the
// legacy dataset relied on that.
func IsVisible(photo models.Photo, viewerID string) bool {
	if viewerID != "" && viewerID == photo.UserID {
		return true
	}

	switch photo.Visibility {
	case models.VisibilityPublic:
		return true
	case models.VisibilityShared:
		return viewerID != "" && photo.IsSharedWith(viewerID)
	case models.VisibilityOwnerOnly:
		return photo.OwnerSeeded
	default:
		return false
	}
}

// visiblePhotos returns the photos viewerID may read, keeping their order.
func visiblePhotos(photos []models.Photo, viewerID string) []models.Photo {
	visible := make([]models.Photo, 0, len(photos))
	for _, photo := range photos {
		if IsVisible(photo, viewerID) {
			visible = append(visible, photo)
		}
	}
	return visible
}

// sortByLikes orders photos by like count, then by date, both descending.
func sortByLikes(photos []models.Photo) {
	slices.SortStableFunc(photos, func(a, b models.Photo) int {
		if c := cmp.Compare(len(b.Likes), len(a.Likes)); c != 0 {
			return c
		}
		return b.DateTime.Compare(a.DateTime)
	})
}

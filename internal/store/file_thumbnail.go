// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"fmt"
	"path"

	"github.com/disintegration/imaging"
)

const (
	thumbnailsDir    = "thumbnails"
	thumbnailSize    = 300
	thumbnailQuality = 85
)

// thumbnailName returns the storage key of the thumbnail of name.
func thumbnailName(name string) string {
	return path.Join(thumbnailsDir, name)
}

// createThumbnail decodes an uploaded image and returns a JPEG thumbnail
// fitting into thumbnailSize x thumbnailSize.
func createThumbnail(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Thumbnail(img, thumbnailSize, thumbnailSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(thumbnailQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}

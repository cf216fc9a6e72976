// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-photo-share/internal/logger"
)

// localFileStorage keeps uploaded images in a directory on local disk.
// Thumbnails live in the "thumbnails" subdirectory.
type localFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLocalFileStorage creates dir (and its thumbnails subdirectory) if
// needed and returns a [FileStorage] rooted at it.
func NewLocalFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	if dir == "" {
		return nil, errors.New("images dir is empty")
	}

	if err := os.MkdirAll(filepath.Join(dir, thumbnailsDir), 0o755); err != nil {
		return nil, fmt.Errorf("error creating images dir: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating local file storage")
	return &localFileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

func (s *localFileStorage) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	fullPath, err := s.path(name)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		log.Err(err).Str("func", "*localFileStorage.Save").Str("file_name", name).Msg("failed to write file")
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	s.saveThumbnail(ctx, name, data)

	return name, nil
}

func (s *localFileStorage) saveThumbnail(ctx context.Context, name string, data []byte) {
	log := logger.FromContext(ctx)

	thumb, err := createThumbnail(data)
	if err != nil {
		log.Warn().Err(err).Str("func", "*localFileStorage.saveThumbnail").Str("file_name", name).Msg("thumbnail was not created")
		return
	}

	thumbPath, err := s.path(thumbnailName(name))
	if err != nil {
		return
	}

	if err := os.WriteFile(thumbPath, thumb, 0o644); err != nil {
		log.Warn().Err(err).Str("func", "*localFileStorage.saveThumbnail").Str("file_name", name).Msg("failed to write thumbnail")
	}
}

func (s *localFileStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	fullPath, err := s.path(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := file.Stat()
	if err == nil && info.IsDir() {
		file.Close()
		return nil, ErrFileNotFound
	}

	return file, nil
}

// Delete removes the image and its thumbnail. A missing thumbnail is not an
// error.
func (s *localFileStorage) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	fullPath, err := s.path(name)
	if err != nil {
		return err
	}

	err = os.Remove(fullPath)
	if errors.Is(err, fs.ErrNotExist) {
		err = ErrFileNotFound
	} else if err != nil {
		err = fmt.Errorf("failed to delete file: %w", err)
	}

	if thumbPath, pathErr := s.path(thumbnailName(name)); pathErr == nil {
		if rmErr := os.Remove(thumbPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			log.Warn().Err(rmErr).Str("func", "*localFileStorage.Delete").Str("file_name", name).Msg("failed to delete thumbnail")
		}
	}

	return err
}

// path resolves name inside the storage root, rejecting names that would
// escape it.
func (s *localFileStorage) path(name string) (string, error) {
	if name == "" || !filepath.IsLocal(name) {
		return "", ErrInvalidFileName
	}

	return filepath.Join(s.dir, name), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-photo-share/internal/store"
	"github.com/MKhiriev/go-photo-share/internal/validators"
)

// mapStoreError translates a storage error into a service error kind.
// Unknown errors become [ErrInternal] with the cause kept in the chain.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrPhotoNotFound):
		return ErrPhotoNotFound
	case errors.Is(err, store.ErrCommentNotFound):
		return ErrCommentNotFound
	case errors.Is(err, store.ErrFileNotFound):
		return ErrImageNotFound
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return ErrLoginNameTaken
	case errors.Is(err, store.ErrInvalidFileName):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return fmt.Errorf("%w: %w", ErrInternal, err)
}

// mapValidationError tags a validator error as [ErrInvalidArgument].
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, validators.ErrUnsupportedType) || errors.Is(err, validators.ErrUnknownField) {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

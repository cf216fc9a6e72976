// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLoginName     = errors.New("login_name is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptyFirstName     = errors.New("first_name is required")
	ErrEmptyLastName      = errors.New("last_name is required")
	ErrInvalidPhotoID     = errors.New("invalid photo id")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidActorID     = errors.New("invalid actor id")
	ErrEmptyComment       = errors.New("comment text is required")
	ErrMissingCoordinates = errors.New("x, y, w and h are required")
	ErrEmptyFile          = errors.New("uploaded file is required")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service wraps exactly one of them,
// so transports can map errors with [errors.Is].
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInternal        = errors.New("internal error")
)

var (
	ErrInvalidUserID    = fmt.Errorf("%w: invalid user id", ErrInvalidArgument)
	ErrInvalidPhotoID   = fmt.Errorf("%w: invalid photo id", ErrInvalidArgument)
	ErrInvalidCommentID = fmt.Errorf("%w: invalid comment id", ErrInvalidArgument)
	ErrInvalidRectangle = fmt.Errorf("%w: rectangle must have positive size", ErrInvalidArgument)
	ErrWrongCredentials = fmt.Errorf("%w: invalid login_name or password", ErrInvalidArgument)

	ErrNoSession               = fmt.Errorf("%w: no active session", ErrUnauthorized)
	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: session token is expired or invalid", ErrUnauthorized)
	ErrSessionEnded            = fmt.Errorf("%w: session has ended", ErrTokenIsExpiredOrInvalid)

	ErrNotOwner        = fmt.Errorf("%w: only the owner may do this", ErrForbidden)
	ErrNotAuthor       = fmt.Errorf("%w: only the author may do this", ErrForbidden)
	ErrPhotoNotVisible = fmt.Errorf("%w: photo is not visible to the actor", ErrForbidden)

	ErrUserNotFound    = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrPhotoNotFound   = fmt.Errorf("%w: photo not found", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("%w: comment not found", ErrNotFound)
	ErrImageNotFound   = fmt.Errorf("%w: image not found", ErrNotFound)

	ErrLoginNameTaken = fmt.Errorf("%w: login_name already exists", ErrConflict)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = fmt.Errorf("%w: session token creation failed", ErrInternal)
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/MKhiriev/go-photo-share/models"
)

const (
	FieldLoginName   = "login_name"
	FieldPassword    = "password"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldPhotoID     = "photo_id"
	FieldActorID     = "actor_id"
	FieldUserID      = "user_id"
	FieldComment     = "comment"
	FieldCoordinates = "coordinates"
	FieldFile        = "file"
)

// RequestValidator checks the shape of inbound requests before they reach
// the domain logic. Existence and permission checks are not its concern.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.CommentRequest:
		return v.validateCommentRequest(ctx, value, fields...)
	case *models.CommentRequest:
		return v.validateCommentRequest(ctx, *value, fields...)

	case models.TagRequest:
		return v.validateTagRequest(ctx, value, fields...)
	case *models.TagRequest:
		return v.validateTagRequest(ctx, *value, fields...)

	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLoginName, FieldPassword, FieldFirstName, FieldLastName}
	}

	for _, f := range fields {
		switch f {
		case FieldLoginName:
			if strings.TrimSpace(request.LoginName) == "" {
				return ErrEmptyLoginName
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		case FieldFirstName:
			if strings.TrimSpace(request.FirstName) == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if strings.TrimSpace(request.LastName) == "" {
				return ErrEmptyLastName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLoginName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLoginName:
			if request.LoginName == "" {
				return ErrEmptyLoginName
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCommentRequest(ctx context.Context, request models.CommentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPhotoID, FieldComment}
	}

	for _, f := range fields {
		switch f {
		case FieldPhotoID:
			if !utils.IsValidID(request.PhotoID) {
				return ErrInvalidPhotoID
			}
		case FieldActorID:
			if !utils.IsValidID(request.ActorID) {
				return ErrInvalidActorID
			}
		case FieldComment:
			if strings.TrimSpace(request.Comment) == "" {
				return ErrEmptyComment
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateTagRequest(ctx context.Context, request models.TagRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPhotoID, FieldUserID, FieldCoordinates}
	}

	for _, f := range fields {
		switch f {
		case FieldPhotoID:
			if !utils.IsValidID(request.PhotoID) {
				return ErrInvalidPhotoID
			}
		case FieldActorID:
			if !utils.IsValidID(request.ActorID) {
				return ErrInvalidActorID
			}
		case FieldUserID:
			if !utils.IsValidID(request.UserID) {
				return ErrInvalidUserID
			}
		case FieldCoordinates:
			if request.X == nil || request.Y == nil || request.W == nil || request.H == nil {
				return ErrMissingCoordinates
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUploadRequest(ctx context.Context, request models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldActorID, FieldFile}
	}

	for _, f := range fields {
		switch f {
		case FieldActorID:
			if !utils.IsValidID(request.ActorID) {
				return ErrInvalidActorID
			}
		case FieldFile:
			if request.Body == nil || request.OriginalFileName == "" {
				return ErrEmptyFile
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

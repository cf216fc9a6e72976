// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-photo-share/internal/validators"
	"github.com/MKhiriev/go-photo-share/models"
)

// AuthValidationService checks credentials payloads before they reach the
// wrapped AuthService. Methods without a payload are passed through.
type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService() *AuthValidationService {
	return &AuthValidationService{validator: validators.NewRequestValidator()}
}

func (v *AuthValidationService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, mapValidationError(err)
	}
	return v.AuthService.Register(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, mapValidationError(err)
	}
	return v.AuthService.Login(ctx, request)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

// CommentValidationService rejects malformed comments before the wrapped
// CommentService loads anything.
type CommentValidationService struct {
	CommentService
	validator validators.Validator
}

func NewCommentValidationService() *CommentValidationService {
	return &CommentValidationService{validator: validators.NewRequestValidator()}
}

func (v *CommentValidationService) AddComment(ctx context.Context, request models.CommentRequest) (models.CommentView, error) {
	if err := v.validator.Validate(ctx, request, validators.FieldPhotoID, validators.FieldComment); err != nil {
		return models.CommentView{}, mapValidationError(err)
	}
	return v.CommentService.AddComment(ctx, request)
}

func (v *CommentValidationService) Wrap(inner CommentService) CommentService {
	v.CommentService = inner
	return v
}

// PhotoValidationService checks upload and tag payloads. A missing actor is
// left to the wrapped service, which reports it as a missing session.
type PhotoValidationService struct {
	PhotoService
	validator validators.Validator
}

func NewPhotoValidationService() *PhotoValidationService {
	return &PhotoValidationService{validator: validators.NewRequestValidator()}
}

func (v *PhotoValidationService) Upload(ctx context.Context, request models.UploadRequest) (models.Photo, error) {
	if err := v.validator.Validate(ctx, request, validators.FieldFile); err != nil {
		return models.Photo{}, mapValidationError(err)
	}
	return v.PhotoService.Upload(ctx, request)
}

func (v *PhotoValidationService) AddTag(ctx context.Context, request models.TagRequest) (models.TagView, error) {
	if err := v.validator.Validate(ctx, request, validators.FieldPhotoID, validators.FieldUserID, validators.FieldCoordinates); err != nil {
		return models.TagView{}, mapValidationError(err)
	}
	return v.PhotoService.AddTag(ctx, request)
}

func (v *PhotoValidationService) Wrap(inner PhotoService) PhotoService {
	v.PhotoService = inner
	return v
}

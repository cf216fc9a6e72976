// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/store"
	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/MKhiriev/go-photo-share/models"
)

type userService struct {
	userRepository     store.UserRepository
	sessionRepository  store.SessionRepository
	photoRepository    store.PhotoRepository
	commentRepository  store.CommentRepository
	activityRepository store.ActivityRepository
	fileStorage        store.FileStorage

	logger *logger.Logger
}

func NewUserService(storages *store.Storages, logger *logger.Logger) UserService {
	return &userService{
		userRepository:     storages.UserRepository,
		sessionRepository:  storages.SessionRepository,
		photoRepository:    storages.PhotoRepository,
		commentRepository:  storages.CommentRepository,
		activityRepository: storages.ActivityRepository,
		fileStorage:        storages.FileStorage,
		logger:             logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("error listing users")
		return nil, mapStoreError(err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, *u.Summary())
	}
	return summaries, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if !utils.IsValidID(userID) {
		return models.User{}, ErrInvalidUserID
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}
	return user, nil
}

// DeleteAccount removes userID and everything it owns: photos with their
// files, comments it wrote on any photo and activities that reference the
// user or its photos. Open sessions of the user are ended first. Steps run without a shared transaction; file and
// activity cleanup are best-effort.
func (s *userService) DeleteAccount(ctx context.Context, actorID, userID string) error {
	log := logger.FromContext(ctx)

	if err := Authorize(actorID, ActionDeleteAccount, Resource{UserID: userID}); err != nil {
		return err
	}
	if !utils.IsValidID(userID) {
		return ErrInvalidUserID
	}

	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return mapStoreError(err)
	}

	if err := s.sessionRepository.DeleteSessionsOfUser(ctx, userID); err != nil {
		log.Err(err).Str("func", "*userService.DeleteAccount").Str("user_id", userID).Msg("error ending sessions of user")
		return mapStoreError(err)
	}

	removed, err := s.photoRepository.DeletePhotosOfUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*userService.DeleteAccount").Str("user_id", userID).Msg("error deleting photos of user")
		return mapStoreError(err)
	}

	photoIDs := make([]string, 0, len(removed))
	for _, photo := range removed {
		photoIDs = append(photoIDs, photo.ID)
		removeFile(ctx, s.fileStorage, photo.FileName)
	}

	if err = s.commentRepository.DeleteCommentsByAuthor(ctx, userID); err != nil {
		log.Err(err).Str("func", "*userService.DeleteAccount").Str("user_id", userID).Msg("error deleting comments of user")
		return mapStoreError(err)
	}

	if err = s.activityRepository.DeleteByUserOrPhotos(ctx, userID, photoIDs); err != nil {
		log.Warn().Err(err).Str("func", "*userService.DeleteAccount").Str("user_id", userID).Msg("activities of user were not deleted")
	}

	if err = s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("func", "*userService.DeleteAccount").Str("user_id", userID).Msg("error deleting user")
		return mapStoreError(err)
	}

	log.Info().Str("func", "*userService.DeleteAccount").Str("user_id", userID).Int("photos", len(removed)).Msg("account deleted")
	return nil
}

// MarkSeeded sets the seeded flag on the accounts named in loginNames and
// clears it everywhere else. Unknown names are ignored.
func (s *userService) MarkSeeded(ctx context.Context, loginNames []string) (int64, error) {
	log := logger.FromContext(ctx)

	marked, err := s.userRepository.MarkSeeded(ctx, loginNames)
	if err != nil {
		log.Err(err).Str("func", "*userService.MarkSeeded").Msg("error marking seeded users")
		return 0, mapStoreError(err)
	}

	log.Info().Str("func", "*userService.MarkSeeded").Int("login_names", len(loginNames)).Int64("rows", marked).Msg("seeded flag refreshed")
	return marked, nil
}

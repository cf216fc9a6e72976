// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/store"
	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/MKhiriev/go-photo-share/models"
)

type commentService struct {
	userRepository    store.UserRepository
	photoRepository   store.PhotoRepository
	commentRepository store.CommentRepository

	activities  *activityRecorder
	idGenerator IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

func NewCommentService(storages *store.Storages, idGenerator IDGenerator, logger *logger.Logger) CommentService {
	return &commentService{
		userRepository:    storages.UserRepository,
		photoRepository:   storages.PhotoRepository,
		commentRepository: storages.CommentRepository,
		activities:        newActivityRecorder(storages.ActivityRepository, idGenerator),
		idGenerator:       idGenerator,
		now:               time.Now,
		logger:            logger,
	}
}

// AddComment appends a comment to an existing photo. Mention markup is
// resolved to display text and the mentioned ids are kept if those users
// exist.
func (s *commentService) AddComment(ctx context.Context, request models.CommentRequest) (models.CommentView, error) {
	log := logger.FromContext(ctx)

	if request.ActorID == "" {
		return models.CommentView{}, ErrNoSession
	}
	if !utils.IsValidID(request.PhotoID) {
		return models.CommentView{}, ErrInvalidPhotoID
	}

	photo, err := findPhoto(ctx, s.photoRepository, request.PhotoID)
	if err != nil {
		return models.CommentView{}, err
	}
	if err = Authorize(request.ActorID, ActionAddComment, Resource{Photo: photo}); err != nil {
		return models.CommentView{}, err
	}

	extraction, err := s.ExtractMentions(ctx, strings.TrimSpace(request.Comment))
	if err != nil {
		return models.CommentView{}, err
	}

	comment, err := s.commentRepository.AddComment(ctx, models.Comment{
		ID:       s.idGenerator.Generate(),
		PhotoID:  photo.ID,
		UserID:   request.ActorID,
		Text:     extraction.DisplayText,
		DateTime: s.now().UTC(),
		Mentions: extraction.MentionIDs,
	})
	if err != nil {
		log.Err(err).Str("func", "*commentService.AddComment").Str("photo_id", photo.ID).Msg("error adding comment")
		return models.CommentView{}, mapStoreError(err)
	}

	s.activities.record(ctx, models.ActivityCommentAdded, request.ActorID, photo)

	users, err := s.userRepository.FindUsersByIDs(ctx, []string{request.ActorID})
	if err != nil {
		log.Warn().Err(err).Str("func", "*commentService.AddComment").Msg("comment author was not loaded")
		users = nil
	}

	return commentView(comment, users), nil
}

// DeleteComment removes a comment; only its author may do so.
func (s *commentService) DeleteComment(ctx context.Context, actorID, photoID, commentID string) error {
	log := logger.FromContext(ctx)

	if actorID == "" {
		return ErrNoSession
	}
	if !utils.IsValidID(photoID) {
		return ErrInvalidPhotoID
	}
	if !utils.IsValidID(commentID) {
		return ErrInvalidCommentID
	}

	photo, err := findPhoto(ctx, s.photoRepository, photoID)
	if err != nil {
		return err
	}
	if err = Authorize(actorID, ActionDeleteComment, Resource{Photo: photo, CommentID: commentID}); err != nil {
		log.Warn().Err(err).Str("func", "*commentService.DeleteComment").Str("comment_id", commentID).Msg("comment deletion rejected")
		return err
	}

	if err = s.commentRepository.DeleteComment(ctx, photoID, commentID); err != nil {
		log.Err(err).Str("func", "*commentService.DeleteComment").Str("comment_id", commentID).Msg("error deleting comment")
		return mapStoreError(err)
	}

	return nil
}

// CommentsOfUser lists what userID wrote, restricted to photos viewerID may
// read.
func (s *commentService) CommentsOfUser(ctx context.Context, userID, viewerID string) ([]models.UserComment, error) {
	if !utils.IsValidID(userID) {
		return nil, ErrInvalidUserID
	}

	comments, err := s.commentRepository.CommentsOfUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentService.CommentsOfUser").Msg("error loading comments")
		return nil, mapStoreError(err)
	}

	photoIDs := make([]string, 0, len(comments))
	for _, c := range comments {
		photoIDs = append(photoIDs, c.PhotoID)
	}
	visible, err := s.visiblePhotoIDs(ctx, photoIDs, viewerID)
	if err != nil {
		return nil, err
	}

	result := make([]models.UserComment, 0, len(comments))
	for _, c := range comments {
		if _, ok := visible[c.PhotoID]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

// MentionsOfUser lists the photos whose comments mention userID, restricted
// to photos viewerID may read.
func (s *commentService) MentionsOfUser(ctx context.Context, userID, viewerID string) ([]models.Mention, error) {
	if !utils.IsValidID(userID) {
		return nil, ErrInvalidUserID
	}

	mentions, err := s.commentRepository.MentionsOfUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentService.MentionsOfUser").Msg("error loading mentions")
		return nil, mapStoreError(err)
	}

	photoIDs := make([]string, 0, len(mentions))
	for _, m := range mentions {
		photoIDs = append(photoIDs, m.PhotoID)
	}
	visible, err := s.visiblePhotoIDs(ctx, photoIDs, viewerID)
	if err != nil {
		return nil, err
	}

	result := make([]models.Mention, 0, len(mentions))
	for _, m := range mentions {
		if _, ok := visible[m.PhotoID]; ok {
			result = append(result, m)
		}
	}
	return result, nil
}

// ExtractMentions resolves mention markup in rawText. Ids that are malformed
// or belong to no user are dropped silently.
func (s *commentService) ExtractMentions(ctx context.Context, rawText string) (models.MentionExtraction, error) {
	displayText, ids := parseMentions(rawText)
	if len(ids) == 0 {
		return models.MentionExtraction{DisplayText: displayText, MentionIDs: []string{}}, nil
	}

	existing, err := s.userRepository.ExistingUserIDs(ctx, ids)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentService.ExtractMentions").Msg("error checking mentioned users")
		return models.MentionExtraction{}, mapStoreError(err)
	}

	return models.MentionExtraction{DisplayText: displayText, MentionIDs: keepExisting(ids, existing)}, nil
}

func (s *commentService) visiblePhotoIDs(ctx context.Context, photoIDs []string, viewerID string) (map[string]struct{}, error) {
	if len(photoIDs) == 0 {
		return map[string]struct{}{}, nil
	}

	photos, err := s.photoRepository.PhotosByIDs(ctx, photoIDs)
	if err != nil {
		return nil, mapStoreError(err)
	}

	visible := make(map[string]struct{}, len(photos))
	for _, photo := range visiblePhotos(photos, viewerID) {
		visible[photo.ID] = struct{}{}
	}
	return visible, nil
}

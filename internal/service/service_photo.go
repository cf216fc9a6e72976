// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/store"
	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/MKhiriev/go-photo-share/models"
)

// photoService serves galleries, uploads, deletion, likes and tags.
type photoService struct {
	userRepository     store.UserRepository
	photoRepository    store.PhotoRepository
	activityRepository store.ActivityRepository
	fileStorage        store.FileStorage

	activities  *activityRecorder
	notifier    LikeNotifier
	idGenerator IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

func NewPhotoService(storages *store.Storages, notifier LikeNotifier, idGenerator IDGenerator, logger *logger.Logger) PhotoService {
	if notifier == nil {
		notifier = nopLikeNotifier{}
	}

	return &photoService{
		userRepository:     storages.UserRepository,
		photoRepository:    storages.PhotoRepository,
		activityRepository: storages.ActivityRepository,
		fileStorage:        storages.FileStorage,
		activities:         newActivityRecorder(storages.ActivityRepository, idGenerator),
		notifier:           notifier,
		idGenerator:        idGenerator,
		now:                time.Now,
		logger:             logger,
	}
}

// PhotosOfUser returns userID's gallery as seen by viewerID, most liked
// first. The owner sees every photo; everybody else only visible ones.
func (s *photoService) PhotosOfUser(ctx context.Context, userID, viewerID string) ([]models.PhotoView, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(userID) {
		return nil, ErrInvalidUserID
	}

	photos, err := s.photoRepository.PhotosOfUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*photoService.PhotosOfUser").Str("user_id", userID).Msg("error loading photos")
		return nil, mapStoreError(err)
	}

	if viewerID != userID {
		photos = visiblePhotos(photos, viewerID)
	}
	sortByLikes(photos)

	users, err := s.userRepository.FindUsersByIDs(ctx, referencedUserIDs(photos))
	if err != nil {
		return nil, mapStoreError(err)
	}

	var favorites map[string]struct{}
	if viewerID != "" {
		favoriteIDs, err := s.userRepository.FavoriteIDs(ctx, viewerID)
		if err != nil {
			return nil, mapStoreError(err)
		}
		favorites = toSet(favoriteIDs)
	}

	views := make([]models.PhotoView, 0, len(photos))
	for _, photo := range photos {
		views = append(views, photoView(photo, viewerID, users, favorites))
	}

	return views, nil
}

// Upload stores the image under a generated name and creates the photo.
// request.SharedWith nil means public; otherwise the list is cleaned
// (malformed, duplicate, unknown and owner ids dropped) and decides between
// owner_only and shared.
func (s *photoService) Upload(ctx context.Context, request models.UploadRequest) (models.Photo, error) {
	log := logger.FromContext(ctx)

	if request.ActorID == "" {
		return models.Photo{}, ErrNoSession
	}

	visibility, sharedWith, err := s.resolveSharing(ctx, request.ActorID, request.SharedWith)
	if err != nil {
		return models.Photo{}, err
	}

	fileName := s.idGenerator.Generate() + strings.ToLower(filepath.Ext(request.OriginalFileName))
	storedName, err := s.fileStorage.Save(ctx, fileName, request.ContentType, request.Body)
	if err != nil {
		log.Err(err).Str("func", "*photoService.Upload").Str("file_name", fileName).Msg("error storing image")
		return models.Photo{}, mapStoreError(err)
	}

	photo := models.Photo{
		ID:         s.idGenerator.Generate(),
		UserID:     request.ActorID,
		FileName:   storedName,
		DateTime:   s.now().UTC(),
		Visibility: visibility,
		SharedWith: sharedWith,
	}

	created, err := s.photoRepository.CreatePhoto(ctx, photo)
	if err != nil {
		log.Err(err).Str("func", "*photoService.Upload").Msg("error creating photo")
		s.removeFile(ctx, storedName)
		return models.Photo{}, mapStoreError(err)
	}

	s.activities.record(ctx, models.ActivityPhotoUpload, created.UserID, &created)

	return created, nil
}

func (s *photoService) resolveSharing(ctx context.Context, ownerID string, requested []string) (models.Visibility, []string, error) {
	if requested == nil {
		return models.VisibilityPublic, nil, nil
	}

	candidates := make([]string, 0, len(requested))
	seen := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		if !utils.IsValidID(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		candidates = append(candidates, id)
	}
	if len(candidates) == 0 {
		return models.VisibilityOwnerOnly, nil, nil
	}

	existing, err := s.userRepository.ExistingUserIDs(ctx, candidates)
	if err != nil {
		return "", nil, mapStoreError(err)
	}

	visibility, sharedWith := models.SharingFromList(ownerID, keepExisting(candidates, existing))
	return visibility, sharedWith, nil
}

// DeletePhoto removes an owner's photo. Its activity rows and stored file
// are cleaned up best-effort afterwards.
func (s *photoService) DeletePhoto(ctx context.Context, actorID, photoID string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(photoID) {
		return ErrInvalidPhotoID
	}

	photo, err := s.findPhoto(ctx, photoID)
	if err != nil {
		return err
	}
	if err = Authorize(actorID, ActionDeletePhoto, Resource{Photo: photo}); err != nil {
		return err
	}

	if err = s.photoRepository.DeletePhoto(ctx, photoID); err != nil {
		log.Err(err).Str("func", "*photoService.DeletePhoto").Str("photo_id", photoID).Msg("error deleting photo")
		return mapStoreError(err)
	}

	if err = s.activityRepository.DeleteByPhoto(ctx, photoID); err != nil {
		log.Warn().Err(err).Str("func", "*photoService.DeletePhoto").Str("photo_id", photoID).Msg("activities of photo were not deleted")
	}
	s.removeFile(ctx, photo.FileName)

	return nil
}

func (s *photoService) Like(ctx context.Context, actorID, photoID string) (models.LikeResult, error) {
	log := logger.FromContext(ctx)

	if actorID == "" {
		return models.LikeResult{}, ErrNoSession
	}
	if !utils.IsValidID(photoID) {
		return models.LikeResult{}, ErrInvalidPhotoID
	}

	photo, err := s.findPhoto(ctx, photoID)
	if err != nil {
		return models.LikeResult{}, err
	}
	if err = Authorize(actorID, ActionLike, Resource{Photo: photo}); err != nil {
		return models.LikeResult{}, err
	}

	count, err := s.photoRepository.AddLike(ctx, photoID, actorID)
	if err != nil {
		log.Err(err).Str("func", "*photoService.Like").Str("photo_id", photoID).Msg("error adding like")
		return models.LikeResult{}, mapStoreError(err)
	}

	s.notifier.LikeUpdated(ctx, models.LikeEvent{PhotoID: photoID, LikesCount: count, ActorID: actorID, Liked: true})

	return models.LikeResult{Liked: true, LikesCount: count}, nil
}

// Unlike removes actorID's like. Removing an absent like is not an error;
// a missing photo is [ErrPhotoNotFound] and nobody is notified.
func (s *photoService) Unlike(ctx context.Context, actorID, photoID string) (models.LikeResult, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(photoID) {
		return models.LikeResult{}, ErrInvalidPhotoID
	}
	if err := Authorize(actorID, ActionUnlike, Resource{}); err != nil {
		return models.LikeResult{}, err
	}

	photo, err := s.findPhoto(ctx, photoID)
	if err != nil {
		return models.LikeResult{}, err
	}
	if photo == nil {
		return models.LikeResult{}, ErrPhotoNotFound
	}

	count, err := s.photoRepository.RemoveLike(ctx, photoID, actorID)
	if err != nil {
		log.Err(err).Str("func", "*photoService.Unlike").Str("photo_id", photoID).Msg("error removing like")
		return models.LikeResult{}, mapStoreError(err)
	}

	s.notifier.LikeUpdated(ctx, models.LikeEvent{PhotoID: photoID, LikesCount: count, ActorID: actorID, Liked: false})

	return models.LikeResult{Liked: false, LikesCount: count}, nil
}

// AddTag tags request.UserID on a photo visible to the actor. The rectangle
// is clamped into the photo.
func (s *photoService) AddTag(ctx context.Context, request models.TagRequest) (models.TagView, error) {
	log := logger.FromContext(ctx)

	if request.ActorID == "" {
		return models.TagView{}, ErrNoSession
	}
	if !utils.IsValidID(request.PhotoID) {
		return models.TagView{}, ErrInvalidPhotoID
	}
	if !utils.IsValidID(request.UserID) {
		return models.TagView{}, ErrInvalidUserID
	}

	x, y, w, h, err := normalizeRectangle(request)
	if err != nil {
		return models.TagView{}, err
	}

	tagged, err := s.userRepository.FindUserByID(ctx, request.UserID)
	if err != nil {
		return models.TagView{}, mapStoreError(err)
	}

	photo, err := s.findPhoto(ctx, request.PhotoID)
	if err != nil {
		return models.TagView{}, err
	}
	if err = Authorize(request.ActorID, ActionAddTag, Resource{Photo: photo}); err != nil {
		return models.TagView{}, err
	}

	tag, err := s.photoRepository.AddTag(ctx, models.Tag{
		ID:       s.idGenerator.Generate(),
		PhotoID:  request.PhotoID,
		UserID:   request.UserID,
		X:        x,
		Y:        y,
		W:        w,
		H:        h,
		DateTime: s.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("func", "*photoService.AddTag").Str("photo_id", request.PhotoID).Msg("error adding tag")
		return models.TagView{}, mapStoreError(err)
	}

	return tagView(tag, map[string]models.User{tagged.ID: tagged}), nil
}

// normalizeRectangle clamps the tag rectangle into [0,1] and clips its size
// so it stays inside the photo.
func normalizeRectangle(request models.TagRequest) (x, y, w, h float64, err error) {
	if request.X == nil || request.Y == nil || request.W == nil || request.H == nil {
		return 0, 0, 0, 0, fmt.Errorf("%w: missing rectangle coordinates", ErrInvalidArgument)
	}

	x, y = clamp01(*request.X), clamp01(*request.Y)
	w, h = clamp01(*request.W), clamp01(*request.H)
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, ErrInvalidRectangle
	}

	w = min(1, x+w) - x
	h = min(1, y+h) - y
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, ErrInvalidRectangle
	}

	return x, y, w, h, nil
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

// OpenImage streams a stored image or thumbnail.
func (s *photoService) OpenImage(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.fileStorage.Open(ctx, name)
	if err != nil {
		if !errors.Is(err, store.ErrFileNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*photoService.OpenImage").Str("file_name", name).Msg("error opening image")
		}
		return nil, mapStoreError(err)
	}

	return rc, nil
}

// findPhoto loads a photo; a missing photo yields (nil, nil) so the guard can
// report it.
func (s *photoService) findPhoto(ctx context.Context, photoID string) (*models.Photo, error) {
	return findPhoto(ctx, s.photoRepository, photoID)
}

func (s *photoService) removeFile(ctx context.Context, name string) {
	removeFile(ctx, s.fileStorage, name)
}

func findPhoto(ctx context.Context, repository store.PhotoRepository, photoID string) (*models.Photo, error) {
	photo, err := repository.GetPhoto(ctx, photoID)
	if errors.Is(err, store.ErrPhotoNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "findPhoto").Str("photo_id", photoID).Msg("error loading photo")
		return nil, mapStoreError(err)
	}
	return &photo, nil
}

// removeFile deletes a stored image best-effort.
func removeFile(ctx context.Context, fileStorage store.FileStorage, name string) {
	if name == "" {
		return
	}
	if err := fileStorage.Delete(ctx, name); err != nil && !errors.Is(err, store.ErrFileNotFound) {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "removeFile").Str("file_name", name).Msg("stored image was not deleted")
	}
}

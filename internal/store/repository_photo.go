// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/models"
)

const tagsUserFKey = "tags_user_id_fkey"

// photoRepository is the PostgreSQL-backed implementation of
// [PhotoRepository]. A photo aggregate is read with one query for the photo
// rows and one query per child table (shares, likes, tags, comments).
type photoRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPhotoRepository constructs a [PhotoRepository] backed by db.
func NewPhotoRepository(db *DB, logger *logger.Logger) PhotoRepository {
	logger.Debug().Msg("creating photo repository")
	return &photoRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePhoto writes the photo row and its share rows in one transaction.
func (r *photoRepository) CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.db.logError(log, err, "*photoRepository.CreatePhoto", "failed to begin transaction")
		return models.Photo{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertPhoto, photo.ID, photo.UserID, photo.FileName, photo.DateTime, string(photo.Visibility))
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Photo{}, ErrUserNotFound
		}
		r.db.logError(log, err, "*photoRepository.CreatePhoto", "failed to insert photo")
		return models.Photo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(photo.SharedWith) > 0 {
		query, args, err := buildInsertSharesQuery(photo.ID, photo.SharedWith)
		if err != nil {
			log.Err(err).Str("func", "*photoRepository.CreatePhoto").Msg("failed to create query")
			return models.Photo{}, err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if isForeignKeyViolation(err) {
				return models.Photo{}, ErrUserNotFound
			}
			r.db.logError(log, err, "*photoRepository.CreatePhoto", "failed to insert photo shares")
			return models.Photo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.db.logError(log, err, "*photoRepository.CreatePhoto", "failed to commit transaction")
		return models.Photo{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	photo.Comments = []models.Comment{}
	photo.Likes = []string{}
	photo.Tags = []models.Tag{}
	if photo.SharedWith == nil {
		photo.SharedWith = []string{}
	}

	return photo, nil
}

// GetPhoto returns the hydrated photo or [ErrPhotoNotFound].
func (r *photoRepository) GetPhoto(ctx context.Context, photoID string) (models.Photo, error) {
	photos, err := r.selectPhotos(ctx, "*photoRepository.GetPhoto", photoFilter{IDs: []string{photoID}})
	if err != nil {
		return models.Photo{}, err
	}
	if len(photos) == 0 {
		return models.Photo{}, ErrPhotoNotFound
	}

	return photos[0], nil
}

func (r *photoRepository) PhotosOfUser(ctx context.Context, ownerID string) ([]models.Photo, error) {
	return r.selectPhotos(ctx, "*photoRepository.PhotosOfUser", photoFilter{OwnerID: ownerID})
}

func (r *photoRepository) PhotosByIDs(ctx context.Context, ids []string) ([]models.Photo, error) {
	if len(ids) == 0 {
		return []models.Photo{}, nil
	}
	return r.selectPhotos(ctx, "*photoRepository.PhotosByIDs", photoFilter{IDs: ids})
}

func (r *photoRepository) AllPhotos(ctx context.Context) ([]models.Photo, error) {
	return r.selectPhotos(ctx, "*photoRepository.AllPhotos", photoFilter{})
}

// DeletePhoto removes the photo row; comments, likes, tags, shares and
// favorites referencing it cascade.
func (r *photoRepository) DeletePhoto(ctx context.Context, photoID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePhoto, photoID)
	if err != nil {
		r.db.logError(log, err, "*photoRepository.DeletePhoto", "failed to delete photo")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPhotoNotFound
	}

	return nil
}

func (r *photoRepository) DeletePhotosOfUser(ctx context.Context, ownerID string) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, deletePhotosOfUser, ownerID)
	if err != nil {
		r.db.logError(log, err, "*photoRepository.DeletePhotosOfUser", "failed to delete photos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	deleted := make([]models.Photo, 0, 8)
	for rows.Next() {
		photo := models.Photo{UserID: ownerID}
		if err := rows.Scan(&photo.ID, &photo.FileName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		deleted = append(deleted, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return deleted, nil
}

func (r *photoRepository) AddLike(ctx context.Context, photoID, userID string) (int, error) {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, addLike, photoID, userID); err != nil {
		if isForeignKeyViolation(err) {
			return 0, ErrPhotoNotFound
		}
		r.db.logError(log, err, "*photoRepository.AddLike", "failed to add like")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.countLikes(ctx, photoID)
}

func (r *photoRepository) RemoveLike(ctx context.Context, photoID, userID string) (int, error) {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, removeLike, photoID, userID); err != nil {
		r.db.logError(log, err, "*photoRepository.RemoveLike", "failed to remove like")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.countLikes(ctx, photoID)
}

func (r *photoRepository) countLikes(ctx context.Context, photoID string) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.QueryRowContext(ctx, countLikes, photoID).Scan(&count); err != nil {
		r.db.logError(log, err, "*photoRepository.countLikes", "failed to count likes")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

func (r *photoRepository) AddTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	log := logger.FromContext(ctx)

	userID := sql.NullString{String: tag.UserID, Valid: tag.UserID != ""}
	_, err := r.db.ExecContext(ctx, insertTag, tag.ID, tag.PhotoID, userID, tag.X, tag.Y, tag.W, tag.H, tag.DateTime)
	if err != nil {
		if isForeignKeyViolation(err) {
			if violatedConstraint(err) == tagsUserFKey {
				return models.Tag{}, ErrUserNotFound
			}
			return models.Tag{}, ErrPhotoNotFound
		}
		r.db.logError(log, err, "*photoRepository.AddTag", "failed to insert tag")
		return models.Tag{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return tag, nil
}

// selectPhotos loads photo rows matching filter and hydrates their children.
func (r *photoRepository) selectPhotos(ctx context.Context, fn string, filter photoFilter) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPhotosQuery(filter)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.db.logError(log, err, fn, "failed to execute query for photos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	photos := make([]models.Photo, 0, 16)
	for rows.Next() {
		var photo models.Photo
		var visibility string
		if err := rows.Scan(&photo.ID, &photo.UserID, &photo.FileName, &photo.DateTime, &visibility, &photo.OwnerSeeded); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan photo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		photo.Visibility = models.Visibility(visibility)
		photo.SharedWith = []string{}
		photo.Comments = []models.Comment{}
		photo.Likes = []string{}
		photo.Tags = []models.Tag{}
		photos = append(photos, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err := r.hydrate(ctx, fn, photos); err != nil {
		return nil, err
	}

	return photos, nil
}

// hydrate fills shares, likes, tags and comments of photos in place.
func (r *photoRepository) hydrate(ctx context.Context, fn string, photos []models.Photo) error {
	if len(photos) == 0 {
		return nil
	}

	ids := make([]string, len(photos))
	byID := make(map[string]*models.Photo, len(photos))
	for i := range photos {
		ids[i] = photos[i].ID
		byID[photos[i].ID] = &photos[i]
	}

	err := r.queryChildren(ctx, fn, "photo_shares", []string{"photo_id", "user_id"}, ids, []string{"user_id"},
		func(row rowScanner) error {
			var photoID, userID string
			if err := row.Scan(&photoID, &userID); err != nil {
				return err
			}
			if p, ok := byID[photoID]; ok {
				p.SharedWith = append(p.SharedWith, userID)
			}
			return nil
		})
	if err != nil {
		return err
	}

	err = r.queryChildren(ctx, fn, "likes", []string{"photo_id", "user_id"}, ids, []string{"user_id"},
		func(row rowScanner) error {
			var photoID, userID string
			if err := row.Scan(&photoID, &userID); err != nil {
				return err
			}
			if p, ok := byID[photoID]; ok {
				p.Likes = append(p.Likes, userID)
			}
			return nil
		})
	if err != nil {
		return err
	}

	err = r.queryChildren(ctx, fn, "tags", []string{"id", "photo_id", "user_id", "x", "y", "w", "h", "date_time"}, ids, []string{"date_time", "id"},
		func(row rowScanner) error {
			var tag models.Tag
			var userID sql.NullString
			if err := row.Scan(&tag.ID, &tag.PhotoID, &userID, &tag.X, &tag.Y, &tag.W, &tag.H, &tag.DateTime); err != nil {
				return err
			}
			tag.UserID = userID.String
			if p, ok := byID[tag.PhotoID]; ok {
				p.Tags = append(p.Tags, tag)
			}
			return nil
		})
	if err != nil {
		return err
	}

	return r.queryChildren(ctx, fn, "comments", []string{"id", "photo_id", "user_id", "comment", "date_time", "mentions"}, ids, []string{"date_time", "id"},
		func(row rowScanner) error {
			comment, err := scanComment(row)
			if err != nil {
				return err
			}
			if p, ok := byID[comment.PhotoID]; ok {
				p.Comments = append(p.Comments, comment)
			}
			return nil
		})
}

func (r *photoRepository) queryChildren(ctx context.Context, fn, table string, columns, photoIDs, orderBy []string, scan func(rowScanner) error) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectByPhotoIDsQuery(table, columns, photoIDs, orderBy...)
	if err != nil {
		log.Err(err).Str("func", fn).Str("table", table).Msg("failed to create query")
		return err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.db.logError(log, err, fn, "failed to execute query for "+table)
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			log.Err(err).Str("func", fn).Str("table", table).Msg("failed to scan row")
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

func scanComment(row rowScanner) (models.Comment, error) {
	var comment models.Comment
	var mentions []byte
	if err := row.Scan(&comment.ID, &comment.PhotoID, &comment.UserID, &comment.Text, &comment.DateTime, &mentions); err != nil {
		return models.Comment{}, err
	}

	comment.Mentions = []string{}
	if len(mentions) > 0 {
		if err := json.Unmarshal(mentions, &comment.Mentions); err != nil {
			return models.Comment{}, errors.Join(ErrScanningRow, fmt.Errorf("invalid mentions of comment %s: %w", comment.ID, err))
		}
	}

	return comment, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/models"
)

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository]. Mention ids are stored as a JSONB array.
type commentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCommentRepository constructs a [CommentRepository] backed by db.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// AddComment appends a comment to its photo with a single INSERT.
func (r *commentRepository) AddComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if comment.Mentions == nil {
		comment.Mentions = []string{}
	}
	mentions, err := json.Marshal(comment.Mentions)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.db.ExecContext(ctx, insertComment, comment.ID, comment.PhotoID, comment.UserID, comment.Text, comment.DateTime, string(mentions))
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Comment{}, ErrPhotoNotFound
		}
		r.db.logError(log, err, "*commentRepository.AddComment", "failed to insert comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return comment, nil
}

// DeleteComment removes a comment of the given photo or returns
// [ErrCommentNotFound].
func (r *commentRepository) DeleteComment(ctx context.Context, photoID, commentID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteComment, commentID, photoID)
	if err != nil {
		r.db.logError(log, err, "*commentRepository.DeleteComment", "failed to delete comment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// CommentsOfUser lists every comment written by userID with its photo,
// newest first.
func (r *commentRepository) CommentsOfUser(ctx context.Context, userID string) ([]models.UserComment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectCommentsOfUser, userID)
	if err != nil {
		r.db.logError(log, err, "*commentRepository.CommentsOfUser", "failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.UserComment, 0, 16)
	for rows.Next() {
		var c models.UserComment
		if err := rows.Scan(&c.PhotoID, &c.OwnerID, &c.FileName, &c.Text, &c.DateTime); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// MentionsOfUser lists photos having at least one comment that mentions
// userID, with the photo owner's name.
func (r *commentRepository) MentionsOfUser(ctx context.Context, userID string) ([]models.Mention, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectMentionsOfUser, userID)
	if err != nil {
		r.db.logError(log, err, "*commentRepository.MentionsOfUser", "failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	mentions := make([]models.Mention, 0, 8)
	for rows.Next() {
		var m models.Mention
		if err := rows.Scan(&m.PhotoID, &m.FileName, &m.OwnerID, &m.OwnerFirstName, &m.OwnerLastName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		mentions = append(mentions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return mentions, nil
}

// DeleteCommentsByAuthor removes every comment written by userID on any photo.
func (r *commentRepository) DeleteCommentsByAuthor(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteCommentsByAuthor, userID); err != nil {
		r.db.logError(log, err, "*commentRepository.DeleteCommentsByAuthor", "failed to delete comments")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// psql is the squirrel statement builder configured for PostgreSQL ($n
// placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, login_name, password, first_name, last_name, location, occupation, description, seeded, created_at`

const (
	createUser = `INSERT INTO users (id, login_name, password, first_name, last_name, location, occupation, description, seeded)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING created_at;`

	findUserByLogin = `SELECT ` + userColumns + `
    FROM users
    WHERE login_name = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY created_at, id;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	selectFavoriteIDs = `SELECT photo_id FROM favorites WHERE user_id = $1;`

	addFavorite = `INSERT INTO favorites (user_id, photo_id)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING;`

	removeFavorite = `DELETE FROM favorites WHERE user_id = $1 AND photo_id = $2;`
)

const (
	insertPhoto = `INSERT INTO photos (id, user_id, file_name, date_time, visibility)
    VALUES ($1, $2, $3, $4, $5);`

	deletePhoto = `DELETE FROM photos WHERE id = $1;`

	deletePhotosOfUser = `DELETE FROM photos
    WHERE user_id = $1
    RETURNING id, file_name;`

	addLike = `INSERT INTO likes (photo_id, user_id)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING;`

	removeLike = `DELETE FROM likes WHERE photo_id = $1 AND user_id = $2;`

	countLikes = `SELECT COUNT(*) FROM likes WHERE photo_id = $1;`

	insertTag = `INSERT INTO tags (id, photo_id, user_id, x, y, w, h, date_time)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
)

const (
	insertComment = `INSERT INTO comments (id, photo_id, user_id, comment, date_time, mentions)
    VALUES ($1, $2, $3, $4, $5, $6);`

	deleteComment = `DELETE FROM comments WHERE id = $1 AND photo_id = $2;`

	selectCommentsOfUser = `SELECT c.photo_id, p.user_id, p.file_name, c.comment, c.date_time
    FROM comments c
    JOIN photos p ON p.id = c.photo_id
    WHERE c.user_id = $1
    ORDER BY c.date_time DESC, c.id;`

	selectMentionsOfUser = `SELECT p.id, p.file_name, p.user_id, COALESCE(u.first_name, ''), COALESCE(u.last_name, '')
    FROM photos p
    LEFT JOIN users u ON u.id = p.user_id
    WHERE EXISTS (
        SELECT 1 FROM comments c
        WHERE c.photo_id = p.id AND c.mentions @> jsonb_build_array($1::text)
    )
    ORDER BY p.date_time DESC, p.id;`

	deleteCommentsByAuthor = `DELETE FROM comments WHERE user_id = $1;`
)

const (
	insertActivity = `INSERT INTO activities (id, type, date_time, user_id, photo_id, photo_file_name)
    VALUES ($1, $2, $3, $4, $5, $6);`

	deleteActivitiesByPhoto = `DELETE FROM activities WHERE photo_id = $1;`
)

const (
	insertSession = `INSERT INTO sessions (id, user_id, expires_at)
    VALUES ($1, $2, $3);`

	sessionActive = `SELECT EXISTS (
        SELECT 1 FROM sessions
        WHERE id = $1 AND user_id = $2 AND expires_at > NOW()
    );`

	deleteSession = `DELETE FROM sessions WHERE id = $1;`

	deleteSessionsOfUser = `DELETE FROM sessions WHERE user_id = $1;`
)

// photoFilter narrows buildSelectPhotosQuery. Zero values mean no filter.
type photoFilter struct {
	IDs     []string
	OwnerID string
}

// buildSelectPhotosQuery selects photo rows joined with the owner's seeded
// flag, newest first.
func buildSelectPhotosQuery(filter photoFilter) (string, []any, error) {
	builder := psql.
		Select("p.id", "p.user_id", "p.file_name", "p.date_time", "p.visibility", "u.seeded").
		From("photos p").
		Join("users u ON u.id = p.user_id").
		OrderBy("p.date_time DESC", "p.id")

	if filter.OwnerID != "" {
		builder = builder.Where(sq.Eq{"p.user_id": filter.OwnerID})
	}
	if filter.IDs != nil {
		builder = builder.Where(sq.Eq{"p.id": filter.IDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectByPhotoIDsQuery selects columns of a photo child table for the
// given photos.
func buildSelectByPhotoIDsQuery(table string, columns []string, photoIDs []string, orderBy ...string) (string, []any, error) {
	query, args, err := psql.
		Select(columns...).
		From(table).
		Where(sq.Eq{"photo_id": photoIDs}).
		OrderBy(orderBy...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectUsersByIDsQuery selects full user rows for ids.
func buildSelectUsersByIDsQuery(ids []string) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns).
		From("users").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildMarkSeededQuery sets users.seeded to whether login_name is listed.
func buildMarkSeededQuery(loginNames []string) (string, []any, error) {
	query, args, err := psql.
		Update("users").
		Set("seeded", sq.Eq{"login_name": loginNames}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildExistingUserIDsQuery selects the ids among ids that exist in users.
func buildExistingUserIDsQuery(ids []string) (string, []any, error) {
	query, args, err := psql.
		Select("id").
		From("users").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertSharesQuery inserts one photo_shares row per user.
func buildInsertSharesQuery(photoID string, userIDs []string) (string, []any, error) {
	builder := psql.Insert("photo_shares").Columns("photo_id", "user_id")
	for _, userID := range userIDs {
		builder = builder.Values(photoID, userID)
	}

	query, args, err := builder.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildRecentActivitiesQuery selects the newest limit activities.
func buildRecentActivitiesQuery(limit int) (string, []any, error) {
	query, args, err := psql.
		Select("id", "type", "date_time", "user_id", "photo_id", "photo_file_name").
		From("activities").
		OrderBy("date_time DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildLastActivityPerUserQuery selects the newest activity of every user.
func buildLastActivityPerUserQuery() (string, []any, error) {
	query, args, err := psql.
		Select("user_id", "type", "date_time", "photo_file_name", "photo_id").
		Options("DISTINCT ON (user_id)").
		From("activities").
		OrderBy("user_id", "date_time DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteActivitiesQuery deletes activities performed by userID or
// referencing any of photoIDs.
func buildDeleteActivitiesQuery(userID string, photoIDs []string) (string, []any, error) {
	cond := sq.Or{sq.Eq{"user_id": userID}}
	if len(photoIDs) > 0 {
		cond = append(cond, sq.Eq{"photo_id": photoIDs})
	}

	query, args, err := psql.Delete("activities").Where(cond).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

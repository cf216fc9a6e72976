// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account rows in "users" and the "favorites" set.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns it with CreatedAt populated.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.ID, user.LoginName, user.Password, user.FirstName, user.LastName,
		user.Location, user.Occupation, user.Description, user.Seeded)

	if err := row.Scan(&user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			log.Warn().Str("func", "*userRepository.CreateUser").Str("login_name", user.LoginName).Msg("login already exists")
			return models.User{}, ErrLoginAlreadyExists
		}
		r.db.logError(log, err, "*userRepository.CreateUser", "error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByLogin returns the user with the given login_name or
// [ErrUserNotFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, loginName string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByLogin", findUserByLogin, loginName)
}

// FindUserByID returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		r.db.logError(log, err, fn, "error selecting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *userRepository) FindUsersByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	log := logger.FromContext(ctx)

	users := make(map[string]models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	query, args, err := buildSelectUsersByIDsQuery(ids)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByIDs").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.db.logError(log, err, "*userRepository.FindUsersByIDs", "failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users[user.ID] = user
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		r.db.logError(log, err, "*userRepository.ListUsers", "failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) ExistingUserIDs(ctx context.Context, ids []string) ([]string, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []string{}, nil
	}

	query, args, err := buildExistingUserIDsQuery(ids)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ExistingUserIDs").Msg("failed to create query")
		return nil, err
	}

	return r.selectIDs(ctx, "*userRepository.ExistingUserIDs", query, args...)
}

// DeleteUser removes the user row. Likes, favorites and shares of the user
// go with it through foreign keys; tags keep a NULL user.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		r.db.logError(log, err, "*userRepository.DeleteUser", "failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// MarkSeeded makes loginNames the complete set of seeded accounts and
// returns the number of rows touched.
func (r *userRepository) MarkSeeded(ctx context.Context, loginNames []string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMarkSeededQuery(loginNames)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.MarkSeeded").Msg("failed to create query")
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.db.logError(log, err, "*userRepository.MarkSeeded", "failed to mark seeded users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func (r *userRepository) FavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	return r.selectIDs(ctx, "*userRepository.FavoriteIDs", selectFavoriteIDs, userID)
}

// AddFavorite adds photoID to the user's favorites. Repeated adds are no-ops.
func (r *userRepository) AddFavorite(ctx context.Context, userID, photoID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, addFavorite, userID, photoID); err != nil {
		if isForeignKeyViolation(err) {
			return ErrPhotoNotFound
		}
		r.db.logError(log, err, "*userRepository.AddFavorite", "failed to add favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RemoveFavorite removes photoID from the user's favorites. Removing an
// absent entry is not an error.
func (r *userRepository) RemoveFavorite(ctx context.Context, userID, photoID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, removeFavorite, userID, photoID); err != nil {
		r.db.logError(log, err, "*userRepository.RemoveFavorite", "failed to remove favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *userRepository) selectIDs(ctx context.Context, fn, query string, args ...any) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.db.logError(log, err, fn, "failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0, 8)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.LoginName,
		&user.Password,
		&user.FirstName,
		&user.LastName,
		&user.Location,
		&user.Occupation,
		&user.Description,
		&user.Seeded,
		&user.CreatedAt,
	)
	return user, err
}

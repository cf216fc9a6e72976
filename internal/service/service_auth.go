// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-photo-share/internal/config"
	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/store"
	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/MKhiriev/go-photo-share/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification with bcrypt, and the JWT
// that backs a session cookie.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
	activities        *activityRecorder
	idGenerator       IDGenerator

	// sessionSignKey is the HMAC secret used to sign and verify session tokens.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	sessionIssuer string

	// sessionDuration controls how long a newly issued token remains valid.
	sessionDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with session parameters from cfg.
func NewAuthService(storages *store.Storages, idGenerator IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    storages.UserRepository,
		sessionRepository: storages.SessionRepository,
		activities:        newActivityRecorder(storages.ActivityRepository, idGenerator),
		idGenerator:       idGenerator,
		sessionSignKey:    cfg.SessionSignKey,
		sessionIssuer:     cfg.SessionIssuer,
		sessionDuration:   cfg.SessionDuration,
		logger:            logger,
	}
}

// Register creates a new account with a bcrypt-hashed password.
//
// Returns the persisted user or:
//   - ErrLoginNameTaken if login_name is already used.
//   - An ErrInternal-wrapped error on storage or hashing failures.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	user := models.User{
		ID:          a.idGenerator.Generate(),
		LoginName:   strings.TrimSpace(request.LoginName),
		Password:    hash,
		FirstName:   strings.TrimSpace(request.FirstName),
		LastName:    strings.TrimSpace(request.LastName),
		Location:    request.Location,
		Occupation:  request.Occupation,
		Description: request.Description,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("login_name", user.LoginName).Msg("user creation ended with error")
		return models.User{}, mapStoreError(err)
	}

	a.activities.record(ctx, models.ActivityUserRegister, created.ID, nil)

	return created, nil
}

// Login authenticates an existing user. An unknown login_name and a wrong
// password are indistinguishable to the caller ([ErrWrongCredentials]).
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByLogin(ctx, strings.TrimSpace(request.LoginName))
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("func", "*authService.Login").Str("login_name", request.LoginName).Msg("unknown login_name")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by login failed")
		return models.User{}, mapStoreError(err)
	}

	if err = utils.CheckPassword(user.Password, request.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Warn().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
			return models.User{}, ErrWrongCredentials
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	a.activities.record(ctx, models.ActivityUserLogin, user.ID, nil)

	return user, nil
}

// Logout ends sessionID. Tokens carrying it are rejected by ParseToken from
// now on, even before their expiry.
func (a *authService) Logout(ctx context.Context, userID, sessionID string) error {
	if userID == "" || sessionID == "" {
		return ErrNoSession
	}

	if err := a.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Str("user_id", userID).Msg("session deletion failed")
		return mapStoreError(err)
	}

	a.activities.record(ctx, models.ActivityUserLogout, userID, nil)
	return nil
}

// CreateToken opens a server-side session for user and issues a signed token
// bound to it.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	sessionID := a.idGenerator.Generate()
	token, err := utils.GenerateJWTToken(a.sessionIssuer, user.ID, sessionID, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	session := models.Session{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: token.ExpiresAt.Time,
	}
	if err = a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*authService.CreateToken").Str("user_id", user.ID).Msg("session creation failed")
		return models.Token{}, mapStoreError(err)
	}

	return token, nil
}

// ParseToken validates a raw session token and checks that its session is
// still open. Any validation failure is reported as
// [ErrTokenIsExpiredOrInvalid]; an ended session as [ErrSessionEnded].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ParseToken").Msg("session token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	active, err := a.sessionRepository.SessionActive(ctx, token.SessionID, token.UserID)
	if err != nil {
		log.Err(err).Str("func", "*authService.ParseToken").Msg("session lookup failed")
		return models.Token{}, mapStoreError(err)
	}
	if !active {
		log.Debug().Str("func", "*authService.ParseToken").Str("user_id", token.UserID).Msg("session has ended")
		return models.Token{}, ErrSessionEnded
	}

	return token, nil
}

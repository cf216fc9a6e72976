// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-photo-share/internal/service"
	"github.com/MKhiriev/go-photo-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithAuth(auth service.AuthService) *Handler {
	return newTestHandler(&service.Services{AuthService: auth})
}

func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed, UserID: testUserID}
}

var registeredUser = models.User{
	ID:        testUserID,
	LoginName: "took",
	FirstName: "Peregrin",
	LastName:  "Took",
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	t.Fatalf("cookie %q not set", testCookieName)
	return nil
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var gotRequest models.RegisterRequest
	auth := &mockAuthService{
		registerFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			gotRequest = request
			return registeredUser, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, testUserID, user.ID)
			return stubToken(testToken), nil
		},
	}

	h := newHandlerWithAuth(auth)
	body := `{"login_name":"took","password":"secret","first_name":"Peregrin","last_name":"Took"}`
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "took", gotRequest.LoginName)
	assert.Equal(t, "secret", gotRequest.Password)
	assert.Equal(t, "Bearer "+testToken, rec.Header().Get("Authorization"))

	cookie := sessionCookie(t, rec)
	assert.Equal(t, testToken, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)

	user := decodeBody[models.User](t, rec.Body.Bytes())
	assert.Equal(t, registeredUser.ID, user.ID)
	assert.Equal(t, "Peregrin", user.FirstName)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/user", strings.NewReader("{invalid json}")))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestRegister_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "login name taken", err: service.ErrLoginNameTaken, wantStatus: http.StatusConflict},
		{name: "validation failure", err: fmt.Errorf("%w: first_name is required", service.ErrInvalidArgument), wantStatus: http.StatusBadRequest},
		{name: "storage failure", err: fmt.Errorf("%w: connection refused", service.ErrInternal), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
					return models.User{}, tt.err
				},
			}
			h := newHandlerWithAuth(auth)

			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"login_name":"took"}`)))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestRegister_InternalErrorDoesNotLeakCause(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
			return models.User{}, fmt.Errorf("%w: dial tcp 10.0.0.5:5432", service.ErrInternal)
		},
	}
	h := newHandlerWithAuth(auth)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{}`)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestRegister_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
			return registeredUser, nil
		},
		createTokenFn: func(context.Context, models.User) (models.Token, error) {
			return models.Token{}, fmt.Errorf("%w: %w", service.ErrTokenCreationFailed, errors.New("signing failed"))
		},
	}
	h := newHandlerWithAuth(auth)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{}`)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.User, error) {
			assert.Equal(t, "took", request.LoginName)
			return registeredUser, nil
		},
		createTokenFn: func(context.Context, models.User) (models.Token, error) {
			return stubToken(testToken), nil
		},
	}
	h := newHandlerWithAuth(auth)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"login_name":"took","password":"secret"}`)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testToken, sessionCookie(t, rec).Value)
	assert.Equal(t, "Bearer "+testToken, rec.Header().Get("Authorization"))
	assert.Equal(t, testUserID, decodeBody[models.User](t, rec.Body.Bytes()).ID)
}

func TestLogin_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrWrongCredentials
		},
	}
	h := newHandlerWithAuth(auth)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"login_name":"took","password":"nope"}`)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`[`)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_ClearsSession(t *testing.T) {
	var gotUserID, gotSessionID string
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, userID, sessionID string) error {
			gotUserID, gotSessionID = userID, sessionID
			return nil
		},
	}
	h := newHandlerWithAuth(auth)

	req := withSession(httptest.NewRequest(http.MethodPost, "/admin/logout", nil), testUserID)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUserID, gotUserID)
	assert.Equal(t, testSessionID, gotSessionID)
	assert.Equal(t, -1, sessionCookie(t, rec).MaxAge)
	assert.Equal(t, "Logged out", decodeBody[messageResponse](t, rec.Body.Bytes()).Message)
}

func TestLogout_WithoutSession(t *testing.T) {
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, userID, sessionID string) error {
			assert.Empty(t, userID)
			assert.Empty(t, sessionID)
			return service.ErrNoSession
		},
	}
	h := newHandlerWithAuth(auth)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/admin/logout", nil))
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

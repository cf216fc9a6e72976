// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-share/internal/config"
	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/service"
	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/MKhiriev/go-photo-share/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock implements one service interface; every method delegates to a
// function field that the test overrides.

type mockAuthService struct {
	registerFn    func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	logoutFn      func(ctx context.Context, userID, sessionID string) error
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) Logout(ctx context.Context, userID, sessionID string) error {
	return m.logoutFn(ctx, userID, sessionID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	listUsersFn     func(ctx context.Context) ([]models.UserSummary, error)
	getUserFn       func(ctx context.Context, userID string) (models.User, error)
	deleteAccountFn func(ctx context.Context, actorID, userID string) error
	markSeededFn    func(ctx context.Context, loginNames []string) (int64, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserService) DeleteAccount(ctx context.Context, actorID, userID string) error {
	return m.deleteAccountFn(ctx, actorID, userID)
}

func (m *mockUserService) MarkSeeded(ctx context.Context, loginNames []string) (int64, error) {
	return m.markSeededFn(ctx, loginNames)
}

type mockPhotoService struct {
	photosOfUserFn func(ctx context.Context, userID, viewerID string) ([]models.PhotoView, error)
	uploadFn       func(ctx context.Context, request models.UploadRequest) (models.Photo, error)
	deletePhotoFn  func(ctx context.Context, actorID, photoID string) error
	likeFn         func(ctx context.Context, actorID, photoID string) (models.LikeResult, error)
	unlikeFn       func(ctx context.Context, actorID, photoID string) (models.LikeResult, error)
	addTagFn       func(ctx context.Context, request models.TagRequest) (models.TagView, error)
	openImageFn    func(ctx context.Context, name string) (io.ReadCloser, error)
}

func (m *mockPhotoService) PhotosOfUser(ctx context.Context, userID, viewerID string) ([]models.PhotoView, error) {
	return m.photosOfUserFn(ctx, userID, viewerID)
}

func (m *mockPhotoService) Upload(ctx context.Context, request models.UploadRequest) (models.Photo, error) {
	return m.uploadFn(ctx, request)
}

func (m *mockPhotoService) DeletePhoto(ctx context.Context, actorID, photoID string) error {
	return m.deletePhotoFn(ctx, actorID, photoID)
}

func (m *mockPhotoService) Like(ctx context.Context, actorID, photoID string) (models.LikeResult, error) {
	return m.likeFn(ctx, actorID, photoID)
}

func (m *mockPhotoService) Unlike(ctx context.Context, actorID, photoID string) (models.LikeResult, error) {
	return m.unlikeFn(ctx, actorID, photoID)
}

func (m *mockPhotoService) AddTag(ctx context.Context, request models.TagRequest) (models.TagView, error) {
	return m.addTagFn(ctx, request)
}

func (m *mockPhotoService) OpenImage(ctx context.Context, name string) (io.ReadCloser, error) {
	return m.openImageFn(ctx, name)
}

type mockCommentService struct {
	addCommentFn      func(ctx context.Context, request models.CommentRequest) (models.CommentView, error)
	deleteCommentFn   func(ctx context.Context, actorID, photoID, commentID string) error
	commentsOfUserFn  func(ctx context.Context, userID, viewerID string) ([]models.UserComment, error)
	mentionsOfUserFn  func(ctx context.Context, userID, viewerID string) ([]models.Mention, error)
	extractMentionsFn func(ctx context.Context, rawText string) (models.MentionExtraction, error)
}

func (m *mockCommentService) AddComment(ctx context.Context, request models.CommentRequest) (models.CommentView, error) {
	return m.addCommentFn(ctx, request)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, actorID, photoID, commentID string) error {
	return m.deleteCommentFn(ctx, actorID, photoID, commentID)
}

func (m *mockCommentService) CommentsOfUser(ctx context.Context, userID, viewerID string) ([]models.UserComment, error) {
	return m.commentsOfUserFn(ctx, userID, viewerID)
}

func (m *mockCommentService) MentionsOfUser(ctx context.Context, userID, viewerID string) ([]models.Mention, error) {
	return m.mentionsOfUserFn(ctx, userID, viewerID)
}

func (m *mockCommentService) ExtractMentions(ctx context.Context, rawText string) (models.MentionExtraction, error) {
	return m.extractMentionsFn(ctx, rawText)
}

type mockStatsService struct {
	countsPerUserFn    func(ctx context.Context, viewerID string) ([]models.UserCounts, error)
	highlightsOfUserFn func(ctx context.Context, userID, viewerID string) (models.Highlights, error)
}

func (m *mockStatsService) CountsPerUser(ctx context.Context, viewerID string) ([]models.UserCounts, error) {
	return m.countsPerUserFn(ctx, viewerID)
}

func (m *mockStatsService) HighlightsOfUser(ctx context.Context, userID, viewerID string) (models.Highlights, error) {
	return m.highlightsOfUserFn(ctx, userID, viewerID)
}

type mockActivityService struct {
	recentActivitiesFn    func(ctx context.Context, limit int) ([]models.ActivityView, error)
	lastActivityPerUserFn func(ctx context.Context) ([]models.LastActivity, error)
}

func (m *mockActivityService) RecentActivities(ctx context.Context, limit int) ([]models.ActivityView, error) {
	return m.recentActivitiesFn(ctx, limit)
}

func (m *mockActivityService) LastActivityPerUser(ctx context.Context) ([]models.LastActivity, error) {
	return m.lastActivityPerUserFn(ctx)
}

type mockFavoriteService struct {
	favoritesOfFn    func(ctx context.Context, viewerID string) ([]models.FavoritePhoto, error)
	addFavoriteFn    func(ctx context.Context, actorID, photoID string) (models.FavoriteResult, error)
	removeFavoriteFn func(ctx context.Context, actorID, photoID string) (models.FavoriteResult, error)
}

func (m *mockFavoriteService) FavoritesOf(ctx context.Context, viewerID string) ([]models.FavoritePhoto, error) {
	return m.favoritesOfFn(ctx, viewerID)
}

func (m *mockFavoriteService) AddFavorite(ctx context.Context, actorID, photoID string) (models.FavoriteResult, error) {
	return m.addFavoriteFn(ctx, actorID, photoID)
}

func (m *mockFavoriteService) RemoveFavorite(ctx context.Context, actorID, photoID string) (models.FavoriteResult, error) {
	return m.removeFavoriteFn(ctx, actorID, photoID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// mockSubscriptions records ServeWS calls.
type mockSubscriptions struct {
	calls int
}

func (m *mockSubscriptions) ServeWS(w http.ResponseWriter, _ *http.Request) {
	m.calls++
	w.WriteHeader(http.StatusAccepted)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testCookieName = "photo_share_session"
	testUserID     = "0190b6a0-1111-7000-8000-000000000001"
	testOtherID    = "0190b6a0-1111-7000-8000-000000000002"
	testPhotoID    = "0190b6a0-2222-7000-8000-000000000001"
	testCommentID  = "0190b6a0-3333-7000-8000-000000000001"
	testToken      = "signed.jwt.token"
	testSessionID  = "0190b6a0-5555-7000-8000-000000000001"
)

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			SessionCookieName: testCookieName,
			SessionDuration:   time.Hour,
		},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
}

// newTestHandler builds a Handler over svcs. Nil services panic when hit.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs == nil {
		svcs = &service.Services{}
	}
	return NewHandler(svcs, nil, testConfig(), logger.Nop())
}

// acceptingAuth accepts testToken as a session of testUserID.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{SignedString: tokenString, UserID: testUserID, SessionID: testSessionID}, nil
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// withSession marks r as sent by userID in session testSessionID, as the
// auth middleware would.
func withSession(r *http.Request, userID string) *http.Request {
	r = injectNopLogger(r)
	return r.WithContext(utils.WithSession(r.Context(), userID, testSessionID))
}

// decodeBody unmarshals a JSON response body into T.
func decodeBody[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

// serveRoute mounts handler at pattern so that chi fills the URL params.
func serveRoute(pattern string, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(req.Method, pattern, handler)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

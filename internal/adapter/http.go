// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/internal/utils"
	"github.com/MKhiriev/go-photo-share/models"
	"github.com/go-resty/resty/v2"
)

const (
	uploadFormFile       = "uploadedphoto"
	uploadFormSharedWith = "shared_with"
)

// Config holds the connection settings of the REST client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a [ServerAdapter] over HTTP. A BaseURL without
// a scheme is treated as http.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{logger: logger}
	a.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		OnAfterResponse(a.logResponse)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return h.openSession(ctx, "/user", req)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return h.openSession(ctx, "/admin/login", req)
}

// openSession posts credentials and keeps the bearer token the server puts in
// the Authorization response header.
func (h *httpServerAdapter) openSession(ctx context.Context, path string, body any) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrNoToken, err)
	}

	var user models.User
	if err = decode(resp, &user); err != nil {
		return models.User{}, err
	}

	h.SetToken(token)
	return user, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/admin/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	var users []models.UserSummary
	return users, h.getJSON(ctx, "/user/list", &users)
}

func (h *httpServerAdapter) PhotosOfUser(ctx context.Context, userID string) ([]models.PhotoView, error) {
	var photos []models.PhotoView
	return photos, h.getJSON(ctx, "/photosOfUser/"+url.PathEscape(userID), &photos)
}

func (h *httpServerAdapter) UploadPhoto(ctx context.Context, fileName string, body io.Reader, sharedWith []string) (models.Photo, error) {
	req := h.authedRequest(ctx).SetFileReader(uploadFormFile, fileName, body)
	if sharedWith != nil {
		list, err := json.Marshal(sharedWith)
		if err != nil {
			return models.Photo{}, fmt.Errorf("encode shared_with: %w", err)
		}
		req.SetFormData(map[string]string{uploadFormSharedWith: string(list)})
	}

	resp, err := req.Post("/photos/new")
	if err != nil {
		return models.Photo{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Photo{}, err
	}

	var photo models.Photo
	return photo, decode(resp, &photo)
}

func (h *httpServerAdapter) Like(ctx context.Context, photoID string) (models.LikeResult, error) {
	var result models.LikeResult
	return result, h.postJSON(ctx, "/photos/"+url.PathEscape(photoID)+"/like", nil, &result)
}

func (h *httpServerAdapter) Unlike(ctx context.Context, photoID string) (models.LikeResult, error) {
	var result models.LikeResult
	return result, h.postJSON(ctx, "/photos/"+url.PathEscape(photoID)+"/unlike", nil, &result)
}

func (h *httpServerAdapter) AddComment(ctx context.Context, photoID, text string) (models.CommentView, error) {
	var comment models.CommentView
	body := models.CommentRequest{Comment: text}
	return comment, h.postJSON(ctx, "/commentsOfPhoto/"+url.PathEscape(photoID), body, &comment)
}

// RecentActivities asks for the latest feed entries. A non-positive limit
// leaves the choice to the server.
func (h *httpServerAdapter) RecentActivities(ctx context.Context, limit int) ([]models.ActivityView, error) {
	path := "/activities"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var activities []models.ActivityView
	return activities, h.getJSON(ctx, path, &activities)
}

func (h *httpServerAdapter) Favorites(ctx context.Context) ([]models.FavoritePhoto, error) {
	var favorites []models.FavoritePhoto
	return favorites, h.getJSON(ctx, "/favorites", &favorites)
}

func (h *httpServerAdapter) AddFavorite(ctx context.Context, photoID string) (models.FavoriteResult, error) {
	var result models.FavoriteResult
	return result, h.postJSON(ctx, "/favorites/"+url.PathEscape(photoID), nil, &result)
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	return decode(resp, out)
}

func (h *httpServerAdapter) postJSON(ctx context.Context, path string, body, out any) error {
	req := h.authedRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	return decode(resp, out)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("func", "httpServerAdapter.logResponse").
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("server responded")
	return nil
}

func decode(resp *resty.Response, out any) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", resp.Request.URL, err)
	}
	return nil
}

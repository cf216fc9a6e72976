// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runClient(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PHOTO_SHARE_ADDRESS", srv.URL)
	t.Setenv("PHOTO_SHARE_TOKEN", "tok")

	var out bytes.Buffer
	err := run(context.Background(), args, &out, logger.Nop())
	return out.String(), err
}

func TestRun_NoCommand(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	out, err := runClient(t, srv)
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, out, "upload")
	assert.Contains(t, out, "activities")
}

func TestRun_UnknownCommand(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := runClient(t, srv, "explode")
	assert.ErrorIs(t, err, errUnknownCommand)
}

func TestRun_MissingArgs(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := runClient(t, srv, "comment", "p1")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_Version(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		_, _ = w.Write([]byte("2.0.0"))
	}))
	defer srv.Close()

	out, err := runClient(t, srv, "version")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0\n", out)
}

func TestRun_LoginPrintsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer fresh-token")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1", FirstName: "Alice", LastName: "Liddell"})
	}))
	defer srv.Close()

	out, err := runClient(t, srv, "login", "alice", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "logged in as Alice Liddell (u1)")
	assert.Contains(t, out, "export PHOTO_SHARE_TOKEN=fresh-token")
}

func TestRun_UsesTokenFromEnv(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.UserSummary{{ID: "u2", FirstName: "Bob", LastName: "Builder"}})
	}))
	defer srv.Close()

	out, err := runClient(t, srv, "users")
	require.NoError(t, err)
	assert.Equal(t, "u2\tBob Builder\n", out)
}

func TestRun_UploadSharesWithUsers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cat.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("uploadedphoto")
		require.NoError(t, err)
		assert.Equal(t, "cat.png", header.Filename)
		assert.JSONEq(t, `["u2"]`, r.FormValue("shared_with"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Photo{ID: "p1", FileName: "p1.png", Visibility: models.VisibilityShared})
	}))
	defer srv.Close()

	out, err := runClient(t, srv, "upload", path, "u2")
	require.NoError(t, err)
	assert.Equal(t, "uploaded p1 as p1.png (shared)\n", out)
}

func TestRun_UploadMissingFile(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := runClient(t, srv, "upload", filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open photo")
}

func TestRun_ActivitiesBadLimit(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := runClient(t, srv, "activities", "many")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_LikeForwardsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "photo not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := runClient(t, srv, "like", "p404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "photo not found")
}

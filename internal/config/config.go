// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Files storage backends.
const (
	FilesBackendLocal = "local"
	FilesBackendS3    = "s3"
)

// StructuredConfig is the top-level configuration container for the
// photo-share server. It aggregates all sub-configurations and is populated
// by merging values from a dotenv file, environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: session signing, versioning
	// and logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// uploaded image store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC health servers.
	Server Server `envPrefix:"SERVER_"`

	// Push holds settings of the WebSocket hub used for like updates.
	Push Push `envPrefix:"PUSH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a dotenv file loaded before the
	// environment is parsed. Env: ENV_FILE, flag: -env-file.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// SessionSignKey is the secret used to sign and verify session tokens.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim of every issued session token.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration is the lifetime of a session (e.g. "24h").
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SessionCookieName is the name of the session cookie.
	// Env: APP_SESSION_COOKIE
	SessionCookieName string `env:"SESSION_COOKIE"`

	// Version is exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// SeededLoginNames lists the demo accounts flagged as seeded at startup.
	// Empty leaves the flags untouched.
	// Env: APP_SEEDED_LOGIN_NAMES (comma separated)
	SeededLoginNames []string `env:"SEEDED_LOGIN_NAMES" envSeparator:","`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the PostgreSQL backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds settings of the uploaded image store.
type Files struct {
	// Backend is either "local" or "s3".
	// Env: STORAGE_FILES_BACKEND
	Backend string `env:"BACKEND"`

	// ImagesDir is the directory used by the local backend.
	// Env: STORAGE_FILES_IMAGES_DIR
	ImagesDir string `env:"IMAGES_DIR"`

	// S3 holds bucket settings used by the s3 backend.
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds settings for an S3-compatible object store.
type S3 struct {
	Region          string `env:"REGION"`
	Bucket          string `env:"BUCKET"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" of the gRPC health endpoint. Optional.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Push holds WebSocket hub settings.
type Push struct {
	// BufferSize is the capacity of the hub broadcast queue. Events are
	// dropped when the queue is full.
	// Env: PUSH_BUFFER_SIZE
	BufferSize int `env:"BUFFER_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (with an optional dotenv file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(os.Args[1:]).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

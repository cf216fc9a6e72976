// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or an incomplete
	// image store setup.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing session settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidPushConfigs indicates a non-positive hub buffer size.
	ErrInvalidPushConfigs = errors.New("invalid push configuration")
)

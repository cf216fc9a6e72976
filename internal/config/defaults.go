// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:     "go-photo-share",
			SessionDuration:   24 * time.Hour,
			SessionCookieName: "photo_share_session",
			LogLevel:          "debug",
		},
		Storage: Storage{
			Files: Files{
				Backend:   FilesBackendLocal,
				ImagesDir: "images",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:3001",
			RequestTimeout: 30 * time.Second,
		},
		Push: Push{
			BufferSize: 256,
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=collaborators.go -destination=../mock/collaborators_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-photo-share/models"
)

// LikeNotifier receives like updates after they are stored. Implementations
// must not block.
type LikeNotifier interface {
	LikeUpdated(ctx context.Context, event models.LikeEvent)
}

// IDGenerator produces identifiers for new entities.
type IDGenerator interface {
	Generate() string
}

type nopLikeNotifier struct{}

func (nopLikeNotifier) LikeUpdated(context.Context, models.LikeEvent) {}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of both binaries.
//
// The fixture server side ([Services]) sits between the HTTP handlers and the
// storage layer: posts, users, injected faults and build information. The
// client side ([ClientServices]) composes resource client calls into feeds.
package service

import (
	"context"

	"github.com/MKhiriev/go-resource-client/models"
)

type PostService interface {
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
}

// FaultService keeps the faults injected into fixture server responses,
// keyed by request path. A key ending in "*" matches every path with that
// prefix.
type FaultService interface {
	// SetFault registers fault for path, replacing any previous one.
	SetFault(ctx context.Context, path string, fault models.Fault) (models.Fault, error)

	// RemoveFault unregisters the fault for path. Returns ErrFaultNotFound if
	// none was registered.
	RemoveFault(ctx context.Context, path string) error

	// Faults returns a copy of every registered fault.
	Faults(ctx context.Context) map[string]models.Fault

	// Reset unregisters every fault.
	Reset(ctx context.Context)

	// Match returns the fault that applies to a request for path, rolling
	// the fault's rate. An exact key wins over a prefix key.
	Match(path string) (models.Fault, bool)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// logging or validating.
type PostServiceWrapper interface {
	Wrap(PostService) PostService // returns a decorated PostService applying additional behavior
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides persistence for the fixture server: posts and users
// kept in process memory, in SQLite or in PostgreSQL.
//
// The backend is selected by the DSN (see [NewStorages]). Every backend
// implements the same repository interfaces and reports the same sentinel
// errors, so the HTTP layer never knows which one is in use.
package store

import (
	"context"

	"github.com/MKhiriev/go-resource-client/models"
)

// PostRepository stores posts.
type PostRepository interface {
	// List returns posts ordered by id, narrowed by filter.
	List(ctx context.Context, filter models.PostFilter) ([]models.Post, error)

	// Get returns the post with the given id or [ErrPostNotFound].
	Get(ctx context.Context, id int64) (models.Post, error)

	// Create stores post and returns it with its id assigned. A non-zero
	// post.ID is kept as is. Returns [ErrUnknownAuthor] if post.UserID does
	// not reference a stored user.
	Create(ctx context.Context, post models.Post) (models.Post, error)
}

// UserRepository stores users.
type UserRepository interface {
	// List returns every user ordered by id.
	List(ctx context.Context) ([]models.User, error)

	// Get returns the user with the given id or [ErrUserNotFound].
	Get(ctx context.Context, id int64) (models.User, error)

	// Create stores user and returns it with its id assigned. A non-zero
	// user.ID is kept as is.
	Create(ctx context.Context, user models.User) (models.User, error)
}

// ErrorClassificator maps a driver error to one of the package sentinels.
type ErrorClassificator interface {
	// Classify returns the sentinel matching err, or nil when err carries
	// no recognised condition.
	Classify(err error) error
}

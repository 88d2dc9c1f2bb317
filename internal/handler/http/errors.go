// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors reported for malformed request parameters. Callers can
// match against them with [errors.Is].
var (
	// ErrInvalidLimit is returned when the "_limit" query parameter is not a
	// non-negative integer.
	ErrInvalidLimit = errors.New("invalid `_limit` query parameter")

	// ErrInvalidUserIDQuery is returned when the "userId" query parameter is
	// not a positive integer.
	ErrInvalidUserIDQuery = errors.New("invalid `userId` query parameter")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client for the remote resource
// service (posts and users).
//
// The primary abstraction is [ResourceClient]. The package ships an HTTP/REST
// implementation ([NewHTTPResourceClient]) built on resty.
//
// Every failed call is classified into exactly one of three variants before it
// is returned: [*RemoteResponseError] (the service answered with a non-2xx
// status), [*NoResponseError] (the request went out but nothing came back) and
// [*RequestConstructionError] (the request could not be built). Callers inspect
// the variant with [errors.As] or [KindOf]; remote errors additionally unwrap to
// a status sentinel such as [ErrNotFound] for use with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-resource-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resource_client_mock.go -package=mock

// ResourceClient defines communication with the remote resource service.
// Implementations must be safe for concurrent use: every call is an
// independent round trip and no call observes another's data.
type ResourceClient interface {
	// List fetches at most limit posts. A zero limit requests
	// [DefaultListLimit] posts; a negative limit is rejected with a
	// [*RequestConstructionError] before anything is sent.
	List(ctx context.Context, limit int) ([]models.Payload, error)

	// GetByID fetches the post identified by id.
	GetByID(ctx context.Context, id int64) (models.Payload, error)

	// GetUser fetches the user identified by id. A completion notice is
	// logged once per call whatever the outcome.
	GetUser(ctx context.Context, id int64) (models.Payload, error)

	// Create sends data as the body of a new post and returns the created
	// post exactly as the service echoed it back. Raw JSON (json.RawMessage,
	// models.Payload, []byte) is sent untouched; any other value is
	// JSON-encoded.
	Create(ctx context.Context, data any) (models.Payload, error)
}

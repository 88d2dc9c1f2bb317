package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-resource-client/models"
)

// FeedService composes resource client calls into the views a caller
// renders: posts paired with their authors. Failures of the underlying client
// are returned unchanged, so their classification survives.
type FeedService interface {
	// Feed lists up to limit posts (0 means the client default) and fetches
	// every distinct author concurrently. The first failure cancels the
	// remaining author requests and is returned.
	Feed(ctx context.Context, limit int) ([]models.FeedItem, error)

	// PostWithAuthor fetches a single post and then its author.
	PostWithAuthor(ctx context.Context, id int64) (models.FeedItem, error)

	// Publish validates post and creates it on the remote service,
	// returning the created post as the service echoed it.
	// Returns an error wrapping ErrInvalidDataProvided if validation fails.
	Publish(ctx context.Context, post models.Post) (models.Payload, error)
}

// FeedWatcher defines the contract for a background worker that periodically
// rebuilds the feed and hands every result to a callback.
type FeedWatcher interface {
	// Start launches the background goroutine. It builds the feed right away
	// and then every interval, defaulting to 30 seconds if interval is zero
	// or negative. Any previously running watcher is stopped first.
	Start(ctx context.Context, limit int, interval time.Duration, onUpdate func([]models.FeedItem, error))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

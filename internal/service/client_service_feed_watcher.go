package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-resource-client/models"
)

const defaultFeedWatchInterval = 30 * time.Second

type feedWatcher struct {
	feedService FeedService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFeedWatcher creates a feedWatcher that rebuilds the feed on a ticker.
// The watcher is idle until Start is called.
func NewFeedWatcher(feedService FeedService) FeedWatcher {
	return &feedWatcher{feedService: feedService}
}

// Start implements FeedWatcher. It stops any previously running watcher,
// then launches a background goroutine that builds the feed immediately and
// every interval after that. The goroutine exits when ctx is cancelled or
// Stop is called.
func (w *feedWatcher) Start(ctx context.Context, limit int, interval time.Duration, onUpdate func([]models.FeedItem, error)) {
	if interval <= 0 {
		interval = defaultFeedWatchInterval
	}

	w.Stop()

	w.mu.Lock()
	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			items, err := w.feedService.Feed(watchCtx, limit)
			if watchCtx.Err() != nil {
				return
			}
			onUpdate(items, err)

			select {
			case <-watchCtx.Done():
				return
			case <-t.C:
			}
		}
	}()
}

// Stop implements FeedWatcher. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// watcher is not running.
func (w *feedWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-resource-client/internal/adapter"
	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/internal/validators"
	"github.com/MKhiriev/go-resource-client/models"
)

// maxConcurrentAuthorRequests bounds the author requests Feed has in flight.
const maxConcurrentAuthorRequests = 4

// postRef is the part of a post document the feed needs.
type postRef struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
}

type feedService struct {
	client    adapter.ResourceClient
	validator validators.Validator

	logger *logger.Logger
}

// NewFeedService returns a [FeedService] issuing its requests through client.
func NewFeedService(client adapter.ResourceClient, logger *logger.Logger) FeedService {
	return &feedService{
		client:    client,
		validator: validators.NewResourceValidator(),
		logger:    logger,
	}
}

func (s *feedService) Feed(ctx context.Context, limit int) ([]models.FeedItem, error) {
	posts, err := s.client.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	refs := make([]postRef, len(posts))
	for i, post := range posts {
		if refs[i], err = models.DecodePayload[postRef](post); err != nil {
			return nil, fmt.Errorf("%w: post #%d: %w", ErrMalformedPayload, i, err)
		}
	}

	authors, err := s.fetchAuthors(ctx, refs)
	if err != nil {
		return nil, err
	}

	items := make([]models.FeedItem, len(posts))
	for i, post := range posts {
		items[i] = models.FeedItem{Post: post, Author: authors[refs[i].UserID]}
	}

	s.logger.Debug().Int("posts", len(items)).Int("authors", len(authors)).Msg("feed built")
	return items, nil
}

// fetchAuthors fetches each distinct non-zero author of refs once.
func (s *feedService) fetchAuthors(ctx context.Context, refs []postRef) (map[int64]models.Payload, error) {
	var (
		mu      sync.Mutex
		authors = make(map[int64]models.Payload)
		seen    = make(map[int64]bool)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAuthorRequests)

	for _, ref := range refs {
		if ref.UserID == 0 || seen[ref.UserID] {
			continue
		}
		seen[ref.UserID] = true

		userID := ref.UserID
		g.Go(func() error {
			author, err := s.client.GetUser(gctx, userID)
			if err != nil {
				return err
			}

			mu.Lock()
			authors[userID] = author
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return authors, nil
}

func (s *feedService) PostWithAuthor(ctx context.Context, id int64) (models.FeedItem, error) {
	post, err := s.client.GetByID(ctx, id)
	if err != nil {
		return models.FeedItem{}, err
	}

	ref, err := models.DecodePayload[postRef](post)
	if err != nil {
		return models.FeedItem{}, fmt.Errorf("%w: post %d: %w", ErrMalformedPayload, id, err)
	}

	item := models.FeedItem{Post: post}
	if ref.UserID == 0 {
		return item, nil
	}

	if item.Author, err = s.client.GetUser(ctx, ref.UserID); err != nil {
		return models.FeedItem{}, err
	}
	return item, nil
}

func (s *feedService) Publish(ctx context.Context, post models.Post) (models.Payload, error) {
	if err := s.validator.Validate(ctx, post, validators.FieldNewRecord, validators.FieldUserID, validators.FieldTitle); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.client.Create(ctx, post)
}

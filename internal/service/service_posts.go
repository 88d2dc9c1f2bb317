package service

import (
	"context"

	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/internal/store"
	"github.com/MKhiriev/go-resource-client/models"
)

type postService struct {
	postRepository store.PostRepository

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

func (s *postService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	return s.postRepository.List(ctx, filter)
}

func (s *postService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return s.postRepository.Get(ctx, id)
}

func (s *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	created, err := s.postRepository.Create(ctx, post)
	if err != nil {
		return models.Post{}, err
	}

	logger.FromContext(ctx).Info().
		Int64("post_id", created.ID).
		Int64("user_id", created.UserID).
		Msg("post created")
	return created, nil
}

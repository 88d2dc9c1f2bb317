package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-resource-client/internal/validators"
	"github.com/MKhiriev/go-resource-client/models"
)

type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewResourceValidator(),
	}
}

func (v *PostValidationService) Wrap(inner PostService) PostService {
	v.inner = inner
	return v
}

func (v *PostValidationService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	return v.inner.ListPosts(ctx, filter)
}

func (v *PostValidationService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return v.inner.GetPost(ctx, id)
}

func (v *PostValidationService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	// the server assigns ids, whatever the client sent
	post.ID = 0

	if err := v.validator.Validate(ctx, post, validators.FieldUserID, validators.FieldTitle); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreatePost(ctx, post)
}

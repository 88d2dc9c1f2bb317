package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/internal/store"
	"github.com/MKhiriev/go-resource-client/internal/validators"
	"github.com/MKhiriev/go-resource-client/models"
)

func newSeededServices(t *testing.T) *Services {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), configForMemory(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := NewServices(storages, models.NewAppBuildInfo("1.0.0", "2026-10-16", "abc123"), logger.Nop())
	require.NoError(t, err)
	return services
}

func TestPostService_ListAndGet(t *testing.T) {
	services := newSeededServices(t)
	ctx := context.Background()

	posts, err := services.PostService.ListPosts(ctx, models.PostFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, posts)

	got, err := services.PostService.GetPost(ctx, posts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, posts[0], got)
}

func TestPostService_ListFilter(t *testing.T) {
	services := newSeededServices(t)

	posts, err := services.PostService.ListPosts(context.Background(), models.PostFilter{UserID: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(1), posts[0].UserID)
}

func TestPostService_GetMissing(t *testing.T) {
	services := newSeededServices(t)

	_, err := services.PostService.GetPost(context.Background(), 9999)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestPostService_CreateAssignsID(t *testing.T) {
	services := newSeededServices(t)
	ctx := context.Background()

	// a client-sent id is ignored
	created, err := services.PostService.CreatePost(ctx, models.Post{ID: 1, UserID: 1, Title: "new", Body: "b"})
	require.NoError(t, err)
	assert.NotEqual(t, int64(1), created.ID)
	assert.Equal(t, "new", created.Title)

	got, err := services.PostService.GetPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestPostService_CreateValidation(t *testing.T) {
	services := newSeededServices(t)

	_, err := services.PostService.CreatePost(context.Background(), models.Post{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

func TestPostService_CreateUnknownAuthor(t *testing.T) {
	services := newSeededServices(t)

	_, err := services.PostService.CreatePost(context.Background(), models.Post{UserID: 4242, Title: "t"})
	assert.ErrorIs(t, err, store.ErrUnknownAuthor)
}

func TestUserService_ListAndGet(t *testing.T) {
	services := newSeededServices(t)
	ctx := context.Background()

	users, err := services.UserService.ListUsers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, users)

	got, err := services.UserService.GetUser(ctx, users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, users[0], got)

	_, err = services.UserService.GetUser(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestNewServices_RequiresVersion(t *testing.T) {
	storages, err := store.NewStorages(context.Background(), configForMemory(), logger.Nop())
	require.NoError(t, err)

	_, err = NewServices(storages, models.NewAppBuildInfo("", "", ""), logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

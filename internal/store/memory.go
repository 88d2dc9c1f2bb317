package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-resource-client/models"
)

// memoryStore keeps posts and users in process memory. It backs the fixture
// server when no database is configured and is safe for concurrent use.
type memoryStore struct {
	mu sync.RWMutex

	posts      map[int64]models.Post
	users      map[int64]models.User
	lastPostID int64
	lastUserID int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		posts: make(map[int64]models.Post),
		users: make(map[int64]models.User),
	}
}

type memoryPostRepository struct {
	store *memoryStore
}

type memoryUserRepository struct {
	store *memoryStore
}

// NewMemoryRepositories returns post and user repositories sharing a single
// in-memory store, so posts can reference users.
func NewMemoryRepositories() (PostRepository, UserRepository) {
	s := newMemoryStore()
	return &memoryPostRepository{store: s}, &memoryUserRepository{store: s}
}

func (r *memoryPostRepository) List(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(r.store.posts))

	posts := make([]models.Post, 0, len(ids))
	for _, id := range ids {
		post := r.store.posts[id]
		if filter.UserID != 0 && post.UserID != filter.UserID {
			continue
		}
		posts = append(posts, post)
		if filter.Limit > 0 && uint64(len(posts)) == filter.Limit {
			break
		}
	}

	return posts, nil
}

func (r *memoryPostRepository) Get(ctx context.Context, id int64) (models.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	post, ok := r.store.posts[id]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	return post, nil
}

func (r *memoryPostRepository) Create(ctx context.Context, post models.Post) (models.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[post.UserID]; !ok {
		return models.Post{}, ErrUnknownAuthor
	}

	if post.ID == 0 {
		post.ID = r.store.lastPostID + 1
	} else if _, ok := r.store.posts[post.ID]; ok {
		return models.Post{}, ErrAlreadyExists
	}
	r.store.lastPostID = max(r.store.lastPostID, post.ID)

	r.store.posts[post.ID] = post
	return post, nil
}

func (r *memoryUserRepository) List(ctx context.Context) ([]models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]models.User, 0, len(r.store.users))
	for _, id := range slices.Sorted(maps.Keys(r.store.users)) {
		users = append(users, r.store.users[id])
	}
	return users, nil
}

func (r *memoryUserRepository) Get(ctx context.Context, id int64) (models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.store.lastUserID + 1
	} else if _, ok := r.store.users[user.ID]; ok {
		return models.User{}, ErrAlreadyExists
	}
	r.store.lastUserID = max(r.store.lastUserID, user.ID)

	r.store.users[user.ID] = user
	return user, nil
}

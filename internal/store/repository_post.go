package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/models"
)

// postRepository is the SQL implementation of [PostRepository] for both
// PostgreSQL and SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type postRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postRepository) List(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.List").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.List").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

func (r *postRepository) Get(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPostQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Get").Msg("error building query")
		return models.Post{}, err
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Get").Int64("post_id", id).Msg("error scanning row")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

func (r *postRepository) Create(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(r.db.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Create").Msg("error building query")
		return models.Post{}, err
	}

	created, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Create").Int64("user_id", post.UserID).Msg("error inserting post")
		return models.Post{}, r.db.classify(err, ErrExecutingQuery)
	}

	return created, nil
}

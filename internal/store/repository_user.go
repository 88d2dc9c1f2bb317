package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/models"
)

// userRepository is the SQL implementation of [UserRepository] for both
// PostgreSQL and SQLite. Nested address and company fields are flattened
// into columns.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// Get retrieves the user with the given id.
//
// Error handling:
//   - no row → [ErrUserNotFound].
//   - scan or driver failure → wrapped [ErrScanningRow].
func (r *userRepository) Get(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Get").Msg("error building query")
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Get").Int64("user_id", id).Msg("error scanning row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// Create persists a new user record and returns the stored representation
// via a RETURNING clause.
//
// Error handling:
//   - duplicate id → [ErrAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error building query")
		return models.User{}, err
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error inserting user")
		return models.User{}, r.db.classify(err, ErrExecutingQuery)
	}

	return created, nil
}

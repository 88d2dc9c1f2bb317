package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-resource-client/internal/config"
	"github.com/MKhiriev/go-resource-client/internal/logger"
)

// Backend names reported by [Storages.Backend].
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Storages groups the repositories of one backend.
type Storages struct {
	PostRepository PostRepository
	UserRepository UserRepository

	backend string
	db      *DB
}

// BackendFor reports which backend a DSN selects: empty or "memory" keeps
// data in memory, a postgres:// or postgresql:// URL selects PostgreSQL and
// anything else is an SQLite file.
func BackendFor(dsn string) string {
	switch {
	case dsn == "", dsn == BackendMemory:
		return BackendMemory
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres
	default:
		return BackendSQLite
	}
}

// NewStorages connects to the backend selected by cfg.DB.DSN, applies
// migrations and seeds an empty store from cfg.SeedFile (or the built-in
// seed when none is set).
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{backend: BackendFor(cfg.DB.DSN)}

	switch s.backend {
	case BackendMemory:
		s.PostRepository, s.UserRepository = NewMemoryRepositories()
	default:
		var (
			db  *DB
			err error
		)
		if s.backend == BackendPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB.DSN, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB.DSN, log)
		}
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			return nil, err
		}

		s.db = db
		s.PostRepository = NewPostRepository(db, log)
		s.UserRepository = NewUserRepository(db, log)
	}

	if err := s.seed(ctx, cfg.SeedFile, log); err != nil {
		_ = s.Close()
		return nil, err
	}

	log.Info().Str("backend", s.backend).Msg("storage is ready")
	return s, nil
}

func (s *Storages) seed(ctx context.Context, seedFile string, log *logger.Logger) error {
	var (
		seed Seed
		err  error
	)
	if seedFile != "" {
		seed, err = LoadSeedFile(seedFile)
	} else {
		seed, err = DefaultSeed()
	}
	if err != nil {
		return err
	}

	ctx = log.WithContext(ctx)
	users, posts, err := seed.Apply(ctx, s.UserRepository, s.PostRepository)
	if err != nil {
		log.Err(err).Str("func", "*Storages.seed").Msg("error seeding storage")
		return fmt.Errorf("error seeding storage: %w", err)
	}
	if users+posts == 0 {
		return nil
	}

	if s.db != nil {
		if err = s.db.syncSequences(ctx); err != nil {
			return err
		}
	}

	log.Info().Int("users", users).Int("posts", posts).Msg("storage seeded")
	return nil
}

// Backend reports which backend the storages use.
func (s *Storages) Backend() string {
	return s.backend
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/migrations"
)

// DB is a database connection together with the dialect-specific pieces the
// repositories need: a query builder with the right placeholder format and a
// driver error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) (*DB, error) {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	case migrations.DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	return db, nil
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify maps err to a package sentinel, joined with err so that the driver
// detail survives. Unrecognised errors are wrapped with fallback.
func (db *DB) classify(err error, fallback error) error {
	if sentinel := db.errorClassificator.Classify(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return fmt.Errorf("%w: %w", fallback, err)
}

// syncSequences moves the PostgreSQL id sequences past the largest stored id.
// Rows inserted with explicit ids (seeding) do not advance BIGSERIAL
// sequences; SQLite AUTOINCREMENT needs no such step.
func (db *DB) syncSequences(ctx context.Context) error {
	if db.dialect != migrations.DialectPostgres {
		return nil
	}

	for _, table := range []string{"users", "posts"} {
		query := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)`, table)
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("%w: sync %s id sequence: %w", ErrExecutingQuery, table, err)
		}
	}

	return nil
}

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
//   - 23503 foreign_key_violation → [ErrUnknownAuthor]
//   - 23505 unique_violation → [ErrAlreadyExists]
//
// Any other error yields nil.
func (c *PostgresErrorClassifier) Classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		return ErrUnknownAuthor
	case pgerrcode.UniqueViolation:
		return ErrAlreadyExists
	}

	return nil
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite using the
// extended result codes reported by go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
//   - SQLITE_CONSTRAINT_FOREIGNKEY → [ErrUnknownAuthor]
//   - SQLITE_CONSTRAINT_PRIMARYKEY, SQLITE_CONSTRAINT_UNIQUE → [ErrAlreadyExists]
//
// Any other error yields nil.
func (c *SQLiteErrorClassifier) Classify(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintForeignKey:
		return ErrUnknownAuthor
	case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
		return ErrAlreadyExists
	}

	return nil
}

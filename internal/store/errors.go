package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPostNotFound is returned when no post has the requested id.
	ErrPostNotFound = errors.New("post was not found")

	// ErrUserNotFound is returned when no user has the requested id.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUnknownAuthor is returned when a post references a user that does
	// not exist (foreign key violation).
	ErrUnknownAuthor = errors.New("post author does not exist")

	// ErrAlreadyExists is returned when a record with the same id is
	// already stored.
	ErrAlreadyExists = errors.New("record already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or INSERT
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDialect is returned for a DB whose dialect has no
	// driver or migrations.
	ErrUnsupportedDialect = errors.New("unsupported sql dialect")
)

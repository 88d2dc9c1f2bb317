package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/migrations"
	"github.com/MKhiriev/go-resource-client/models"
)

func newMockDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := newDB(conn, dialect, logger.Nop())
	require.NoError(t, err)
	return db, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestNewDB_UnsupportedDialect(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	_, err = newDB(conn, "oracle", logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestPostRepository_List(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectPostgres)
	repo := NewPostRepository(db, logger.Nop())

	rows := sqlmock.NewRows(postColumns).
		AddRow(1, 2, "first", "a").
		AddRow(3, 2, "second", "b")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, title, body FROM posts WHERE user_id = $1 ORDER BY id LIMIT 2")).
		WithArgs(int64(2)).
		WillReturnRows(rows)

	posts, err := repo.List(context.Background(), models.PostFilter{UserID: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []models.Post{
		{ID: 1, UserID: 2, Title: "first", Body: "a"},
		{ID: 3, UserID: 2, Title: "second", Body: "b"},
	}, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectSQLite)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT id, user_id, title, body FROM posts").
		WillReturnRows(sqlmock.NewRows(postColumns))

	posts, err := repo.List(context.Background(), models.PostFilter{})
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestPostRepository_List_QueryError(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectPostgres)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background(), models.PostFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestPostRepository_List_ScanError(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectPostgres)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // wrong shape

	_, err := repo.List(context.Background(), models.PostFilter{})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestPostRepository_List_RowsError(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectPostgres)
	repo := NewPostRepository(db, logger.Nop())

	rows := sqlmock.NewRows(postColumns).
		AddRow(1, 1, "t", "b").
		RowError(0, errors.New("broken pipe"))
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err := repo.List(context.Background(), models.PostFilter{})
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestPostRepository_Get(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectPostgres)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, title, body FROM posts WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(5, 1, "t", "b"))

	post, err := repo.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, models.Post{ID: 5, UserID: 1, Title: "t", Body: "b"}, post)
}

func TestPostRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectPostgres)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").WithArgs(int64(404)).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostRepository_Create(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectPostgres)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts (user_id,title,body) VALUES ($1,$2,$3) RETURNING id, user_id, title, body")).
		WithArgs(int64(1), "foo", "bar").
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(101, 1, "foo", "bar"))

	post, err := repo.Create(context.Background(), models.Post{UserID: 1, Title: "foo", Body: "bar"})
	require.NoError(t, err)
	assert.Equal(t, int64(101), post.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "foreign key violation", dbErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrUnknownAuthor},
		{name: "unique violation", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrAlreadyExists},
		{name: "other driver error", dbErr: errors.New("db network error"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, migrations.DialectPostgres)
			repo := NewPostRepository(db, logger.Nop())

			mock.ExpectQuery("INSERT INTO posts").WillReturnError(tt.dbErr)

			_, err := repo.Create(context.Background(), models.Post{UserID: 99, Title: "t"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.dbErr)
		})
	}
}

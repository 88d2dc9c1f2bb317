package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-resource-client/models"
)

var postColumns = []string{"id", "user_id", "title", "body"}

var userColumns = []string{
	"id",
	"name",
	"username",
	"email",
	"address_street",
	"address_suite",
	"address_city",
	"address_zipcode",
	"address_geo_lat",
	"address_geo_lng",
	"phone",
	"website",
	"company_name",
	"company_catch_phrase",
	"company_bs",
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// buildListPostsQuery builds the SELECT for [PostRepository.List]. Zero filter
// fields add no condition.
func buildListPostsQuery(b sq.StatementBuilderType, filter models.PostFilter) (string, []any, error) {
	query := b.Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("id")

	if filter.UserID != 0 {
		query = query.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return wrapBuild(query.ToSql())
}

func buildGetPostQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return wrapBuild(b.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql())
}

// buildInsertPostQuery builds an INSERT ... RETURNING for post. The id column
// is only written when the post already carries one.
func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	columns := []string{"user_id", "title", "body"}
	values := []any{post.UserID, post.Title, post.Body}
	if post.ID != 0 {
		columns = append([]string{"id"}, columns...)
		values = append([]any{post.ID}, values...)
	}

	return wrapBuild(b.Insert(models.Post{}.TableName()).
		Columns(columns...).
		Values(values...).
		Suffix(returning(postColumns)).
		ToSql())
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return wrapBuild(b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id").
		ToSql())
}

func buildGetUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return wrapBuild(b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql())
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	columns := userColumns[1:]
	values := []any{
		user.Name,
		user.Username,
		user.Email,
		user.Address.Street,
		user.Address.Suite,
		user.Address.City,
		user.Address.Zipcode,
		user.Address.Geo.Lat,
		user.Address.Geo.Lng,
		user.Phone,
		user.Website,
		user.Company.Name,
		user.Company.CatchPhrase,
		user.Company.BS,
	}
	if user.ID != 0 {
		columns = userColumns
		values = append([]any{user.ID}, values...)
	}

	return wrapBuild(b.Insert(models.User{}.TableName()).
		Columns(columns...).
		Values(values...).
		Suffix(returning(userColumns)).
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(&post.ID, &post.UserID, &post.Title, &post.Body)
	return post, err
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.Address.Street,
		&user.Address.Suite,
		&user.Address.City,
		&user.Address.Zipcode,
		&user.Address.Geo.Lat,
		&user.Address.Geo.Lng,
		&user.Phone,
		&user.Website,
		&user.Company.Name,
		&user.Company.CatchPhrase,
		&user.Company.BS,
	)
	return user, err
}

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/vibeqa/auth-service/models"
)

// psql is the statement builder configured for PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns lists the persisted columns of the users table in the order
// every scan in this package expects them.
var userColumns = []string{"id", "email", "password_hash", "name", "created_at", "updated_at"}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(user.TableName()).
		Columns("email", "password_hash", "name").
		Values(user.Email, user.PasswordHash, user.Name).
		Suffix("RETURNING id, email, password_hash, name, created_at, updated_at").
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildFindUserByIDQuery(userID int64) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildUpdateUserNameQuery(userID int64, name string) (string, []any, error) {
	return psql.
		Update(models.User{}.TableName()).
		Set("name", name).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING id, email, password_hash, name, created_at, updated_at").
		ToSql()
}

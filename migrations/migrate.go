// Package migrations holds the embedded schema migrations for the users
// database. They are applied with goose during startup, before any
// repository touches the schema.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var usersSchema embed.FS

// Migrate brings the users schema up to the latest embedded version.
// It is idempotent: already-applied migrations are skipped.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(usersSchema)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("setting users schema dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("applying users schema migrations: %w", err)
	}

	return nil
}

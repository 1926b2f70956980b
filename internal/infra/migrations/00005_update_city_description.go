package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upUpdateCityDescription, downUpdateCityDescription)
}

func upUpdateCityDescription(ctx context.Context, tx *sql.Tx) error {
	return setCityDescription(ctx, tx, "New York City", "updated ---- The one with that big park.")
}

func downUpdateCityDescription(ctx context.Context, tx *sql.Tx) error {
	return setCityDescription(ctx, tx, "New York City", "The one with that big park.")
}

func setCityDescription(ctx context.Context, tx *sql.Tx, name, description string) error {
	stmt := fmt.Sprintf(`UPDATE cities SET description = %s WHERE name = %s`, placeholder(1), placeholder(2))
	_, err := tx.ExecContext(ctx, stmt, description, name)
	return err
}

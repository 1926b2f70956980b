package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreatePointsOfInterest, downCreatePointsOfInterest)
}

// No ON DELETE CASCADE: removing a city never removes its points of interest
// implicitly.
func upCreatePointsOfInterest(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE points_of_interest (
    id `+identityColumn()+`,
    name VARCHAR(50) NOT NULL,
    description VARCHAR(200),
    city_id INTEGER NOT NULL REFERENCES cities (id),
    created_at BIGINT NOT NULL DEFAULT 0,
    updated_at BIGINT NOT NULL DEFAULT 0
)`)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `CREATE INDEX idx_points_of_interest_city_id ON points_of_interest (city_id)`)
	return err
}

func downCreatePointsOfInterest(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE points_of_interest`)
	return err
}

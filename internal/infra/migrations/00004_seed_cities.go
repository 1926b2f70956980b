package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upSeedCities, downSeedCities)
}

type seedPointOfInterest struct {
	name        string
	description string
}

type seedCity struct {
	name             string
	description      string
	pointsOfInterest []seedPointOfInterest
}

var seedCities = []seedCity{
	{
		name:        "New York City",
		description: "The one with that big park.",
		pointsOfInterest: []seedPointOfInterest{
			{"Central Park", "The most visited urban park in the United States."},
			{"Empire State Building", "A 102-story skyscraper located in Midtown Manhattan."},
		},
	},
	{
		name:        "Antwerp",
		description: "The one with the cathedral that was never really finished.",
		pointsOfInterest: []seedPointOfInterest{
			{"Cathedral of Our Lady", "A Gothic style cathedral, conceived by architects Jan and Pieter Appelmans."},
			{"Antwerp Central Station", "The the finest example of railway architecture in Belgium."},
		},
	},
	{
		name:        "Paris",
		description: "The one with that big tower.",
		pointsOfInterest: []seedPointOfInterest{
			{"Eiffel Tower", "A wrought iron lattice tower on the Champ de Mars, named after engineer Gustave Eiffel."},
			{"The Louvre", "The world's largest museum."},
		},
	},
}

func upSeedCities(ctx context.Context, tx *sql.Tx) error {
	now := time.Now().Unix()
	insertCity := fmt.Sprintf(
		`INSERT INTO cities (name, description, created_at, updated_at) VALUES (%s, %s, %s, %s) RETURNING id`,
		placeholder(1), placeholder(2), placeholder(3), placeholder(4))
	insertPOI := fmt.Sprintf(
		`INSERT INTO points_of_interest (name, description, city_id, created_at, updated_at) VALUES (%s, %s, %s, %s, %s)`,
		placeholder(1), placeholder(2), placeholder(3), placeholder(4), placeholder(5))

	for _, c := range seedCities {
		var cityID int64
		if err := tx.QueryRowContext(ctx, insertCity, c.name, c.description, now, now).Scan(&cityID); err != nil {
			return fmt.Errorf("seed city %q: %w", c.name, err)
		}
		for _, p := range c.pointsOfInterest {
			if _, err := tx.ExecContext(ctx, insertPOI, p.name, p.description, cityID, now, now); err != nil {
				return fmt.Errorf("seed point of interest %q: %w", p.name, err)
			}
		}
	}
	return nil
}

func downSeedCities(ctx context.Context, tx *sql.Tx) error {
	for _, c := range seedCities {
		deletePOIs := fmt.Sprintf(
			`DELETE FROM points_of_interest WHERE city_id IN (SELECT id FROM cities WHERE name = %s)`, placeholder(1))
		if _, err := tx.ExecContext(ctx, deletePOIs, c.name); err != nil {
			return err
		}
		deleteCity := fmt.Sprintf(`DELETE FROM cities WHERE name = %s`, placeholder(1))
		if _, err := tx.ExecContext(ctx, deleteCity, c.name); err != nil {
			return err
		}
	}
	return nil
}

// Package migrations holds the schema and seed migrations. They are Go
// migrations because identity columns differ between sqlite and postgres.
package migrations

import "strconv"

// dialect is set by infra.Migrate before goose runs.
var dialect string

// SetDialect configures the SQL dialect. Valid values: "sqlite3", "postgres".
func SetDialect(d string) {
	dialect = d
}

func identityColumn() string {
	if dialect == "postgres" {
		return "SERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// placeholder returns the n-th (1-based) bind parameter.
func placeholder(n int) string {
	if dialect == "postgres" {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

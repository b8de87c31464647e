// Package migration runs the embedded schema migrations.
package migration

import "embed"

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

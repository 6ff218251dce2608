package db

import "embed"

// EmbedMigrations holds the SQL migrations applied by goose at startup.
//
//go:embed migrations/*.sql
var EmbedMigrations embed.FS

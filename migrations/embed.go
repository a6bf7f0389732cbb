// Package migrations embeds the SQL migrations applied at startup.
package migrations

import "embed"

// FS holds the goose SQL migration files.
//
//go:embed *.sql
var FS embed.FS

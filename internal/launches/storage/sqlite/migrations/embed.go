package migrations

import "embed"

// FS contains embedded SQLite migrations for launch record storage.
//
//go:embed *.sql
var FS embed.FS

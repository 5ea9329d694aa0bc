// Package migrations embeds SQLite migrations for ministry storage.
package migrations

import "embed"

// FS contains embedded SQLite migrations for ministry storage.
//
//go:embed *.sql
var FS embed.FS

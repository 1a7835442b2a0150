// Package migrations embeds the SQL migration files for the agenda schema
// so the goose programmatic API can apply them at server startup and in tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time, so the
// running binary never depends on a migrations directory on disk.
//
//go:embed *.sql
var FS embed.FS

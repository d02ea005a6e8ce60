// Package migrations embeds the goose SQL migrations so the API binary and
// cmd/migrate can apply them without the source tree.
package migrations

import "embed"

// FS holds every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS

// Package migrations holds the goose SQL migrations, embedded so that the
// server, the CLI and the integration tests apply the same files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embeds the SQL schema files so the binary can
// migrate itself without a checkout of the repository.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embeds the goose migrations of the account directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

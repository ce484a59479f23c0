// Package migrations embeds the goose SQL migrations so the server binary
// and the test helper can apply them without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

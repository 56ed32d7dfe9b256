// Package migrations embeds the schema migration files so they ship inside
// the hubd binary.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

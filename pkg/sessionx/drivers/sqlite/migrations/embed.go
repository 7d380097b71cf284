// Package migrations embeds the session database schema migrations so the
// binary carries them and no migration files ship alongside it.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

// Package bossy exposes embedded assets shared by the binaries, currently the
// database migration files applied by the migrate subcommand.
package bossy

import "embed"

// Migrations contains the goose SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS

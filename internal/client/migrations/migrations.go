// Package migrations embeds the goose migrations for the local credential
// database. The schema version recorded by goose doubles as the version tag
// for the persisted credential layout.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

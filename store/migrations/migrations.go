package migrations

import (
	"embed"
)

//go:embed *.sql
var embedMigrations embed.FS

// FS returns the embedded schema migrations
func FS() embed.FS {
	return embedMigrations
}

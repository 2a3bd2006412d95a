// Package migrations embeds the schema migrations for every supported driver.
package migrations

import "embed"

// FS holds one directory of golang-migrate files per driver: sqlite, postgresql, mysql.
//
//go:embed sqlite/*.sql postgresql/*.sql mysql/*.sql
var FS embed.FS

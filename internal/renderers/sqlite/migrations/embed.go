// Package migrations holds the schema of the exported database.
package migrations

import "embed"

// FS contains the numbered *.up.sql files.
//
//go:embed *.sql
var FS embed.FS

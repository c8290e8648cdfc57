// Package migrations embeds the SQL schema.
package migrations

import "embed"

// FS holds the schema files, applied in lexical order.
//
//go:embed *.sql
var FS embed.FS

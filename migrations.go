// Package domainchecker embeds repository level assets that binaries need at runtime.
package domainchecker

import "embed"

// Migrations holds the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

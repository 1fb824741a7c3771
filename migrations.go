// Package zctadb holds assets shared by the binaries of the module.
package zctadb

import "embed"

// Migrations contains the goose migrations of every supported dialect under
// migrations/<dialect>.
//
//go:embed migrations
var Migrations embed.FS

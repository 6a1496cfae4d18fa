// Package migrations bundles the SQL schema so the server can migrate
// without a checkout.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

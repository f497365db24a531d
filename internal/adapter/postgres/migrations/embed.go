// Package migrations embeds the goose SQL migrations so tools and the test
// helper can apply them without a checkout-relative path.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

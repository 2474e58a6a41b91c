// Package embedded compiles the shipped catalog data into the binary so the
// catalog is available offline with no file-format parsing at the call site.
package embedded

import (
	"embed"
)

// FS embeds the shipped catalog yaml files at build time.
//
//go:embed catalog/*.yaml
var FS embed.FS

// Package main provides the entry point for the eternal-zoo catalog CLI.
package main

import (
	"github.com/eternalai-org/eternal-zoo/cmd/eternal-zoo/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}

// Package main provides the entry point for the fzgrep CLI.
package main

import (
	"os"

	"github.com/fzgrep/fzgrep/cmd/fzgrep/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

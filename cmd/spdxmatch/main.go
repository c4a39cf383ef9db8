// Package main provides the spdxmatch command-line tool.
package main

import (
	"os"

	"spdxmatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the revet CLI entry point.
package main

import (
	"os"

	"github.com/revet-dev/revet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the entry point for the remind CLI.
package main

import (
	"os"

	"github.com/dpramesti/remind/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

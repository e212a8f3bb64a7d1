// Package main provides the javalint CLI.
package main

import (
	"os"

	"github.com/javalint/javalint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

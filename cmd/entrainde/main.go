// Package main is the entry point for the entrainde CLI.
package main

import (
	"os"

	"github.com/awsl-project/entrainde/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the shadbala CLI.
package main

import (
	"os"

	"shadbala/cmd/cli/cmd"
	"shadbala/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the entry point for the directory CLI.
package main

import (
	"os"

	"github.com/gcbaptista/go-directory/cmd/directory/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

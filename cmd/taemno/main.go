// Package main is the entry point for the taemno CLI.
package main

import "os"

// Build information, set by ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

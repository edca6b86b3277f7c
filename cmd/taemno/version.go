package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taemno %s (%s, %s/%s)\n", version, commit, runtime.GOOS, runtime.GOARCH)
	},
}

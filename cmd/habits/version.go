// ABOUTME: CLI command for printing the version.
// ABOUTME: Version is overridable at build time via ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the habits version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("habits %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

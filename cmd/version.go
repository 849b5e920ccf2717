package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build and Version are set at link time with -ldflags "-X"
var (
	Build   = "unknown"
	Version = "dev"
)

// VersionCmd prints the build and version information
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build and version",
	Run: func(c *cobra.Command, _ []string) {
		fmt.Fprintf(c.OutOrStdout(), "Build: %s\nVersion: %s\n", Build, Version)
	},
}

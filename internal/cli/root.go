// Package cli implements the exgen command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exgen-dev/exgen/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "exgen",
	Short: "Scaffold Express.js server projects",
	Long: `exgen generates a minimal Express.js server project.

It collects a handful of answers (project name, CORS support, centralized
error handling, .env file), resolves the latest package versions from the
npm registry, and writes a ready-to-run project skeleton.`,
	Version:      version.GetVersion(),
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("exgen %s\n", version.GetVersion()))
}

// Package cli provides the Cobra-based command-line interface for tenetlint:
// the validate run itself, schema inspection, and version information.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tenetlint",
	Short: "front-matter validation for tenet and binding documents",
	Long: `tenetlint validates the YAML front matter of tenet and binding
documents and reports violations with file, line, and remediation hints.

Checks:
  - YAML syntax and a restricted set of value types
  - Required keys per document kind
  - Field formats (id slugs, dates, semantic versions)
  - Id uniqueness across the whole repository
  - derived_from references resolve to existing tenets
  - Unknown keys`,
	Example: `  # Validate using .tenetlint.json / defaults
  tenetlint validate

  # Validate explicit directories
  tenetlint validate --tenets docs/tenets --bindings docs/bindings

  # Show the expected front-matter schema
  tenetlint schema tenet
  tenetlint schema binding`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", ".tenetlint.json", "Path to config file")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

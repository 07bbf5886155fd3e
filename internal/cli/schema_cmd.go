package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leyware/tenetlint/internal/rules"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <kind>",
	Short: "Print the expected front-matter schema for a document kind",
	Long: `Print the front-matter keys a document kind requires and allows.

Kinds:
  tenet   - Foundational principle document
  binding - Document implementing a tenet`,
	Example: `  tenetlint schema tenet
  tenetlint schema binding`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchemaCommand(args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchemaCommand(kindArg string, out, errOut io.Writer) error {
	kind, err := rules.ParseDocKind(kindArg)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	schema, err := rules.GetSchema(kind)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	fmt.Fprintf(out, "Front-matter schema for %s documents\n", kind)
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 40))
	fmt.Fprintf(out, "%s\n\n", schema.Description)
	fmt.Fprintf(out, "Keys:\n")
	fmt.Fprintf(out, "%s\n", strings.Repeat("-", 40))

	for _, field := range schema.Fields {
		required := ""
		if field.Required {
			required = " (required)"
		}
		fmt.Fprintf(out, "%s%s\n", field.Name, required)
		if field.Description != "" {
			fmt.Fprintf(out, "  # %s\n", field.Description)
		}
	}
	return nil
}

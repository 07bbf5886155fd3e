package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/leyware/tenetlint/internal/config"
	"github.com/leyware/tenetlint/internal/discovery"
	"github.com/leyware/tenetlint/internal/progress"
	"github.com/leyware/tenetlint/internal/report"
	"github.com/leyware/tenetlint/internal/rules"
	"github.com/leyware/tenetlint/internal/runner"
)

var (
	validateTenetsFlag   string
	validateBindingsFlag string
	validateVersionFlag  string
	validateWorkersFlag  int
	validateNoContext    bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate front matter of all tenet and binding documents",
	Long: `Validate the YAML front matter of every tenet and binding document.

Output:
  - One diagnostic per violation with file, line, and a remediation hint
  - A source context snippet around the offending line (disable with --no-context)

Exit Codes:
  0 - All documents are valid
  1 - Validation errors found
  3 - Invalid arguments or configuration`,
	Example: `  tenetlint validate
  tenetlint validate --tenets docs/tenets --bindings docs/bindings
  tenetlint validate --workers 8 --no-context`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		noColor, _ := cmd.Flags().GetBool("no-color")
		return runValidateCommand(configPath, noColor, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateTenetsFlag, "tenets", "", "Directory containing tenet documents (overrides config)")
	validateCmd.Flags().StringVar(&validateBindingsFlag, "bindings", "", "Directory containing binding documents (overrides config)")
	validateCmd.Flags().StringVar(&validateVersionFlag, "version-file", "", "File holding the expected repository version (overrides config)")
	validateCmd.Flags().IntVar(&validateWorkersFlag, "workers", -1, "Parallel validation workers, 0 for all CPUs (overrides config)")
	validateCmd.Flags().BoolVar(&validateNoContext, "no-context", false, "Do not render source context snippets")
}

// runValidateCommand executes the full validation run: discovery, parsing,
// rule evaluation, and report rendering.
func runValidateCommand(configPath string, noColor bool, out, errOut io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}
	applyValidateFlags(cfg, noColor)

	expectedVersion, err := discovery.ReadExpectedVersion(cfg.VersionFile)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	spin := progress.NewScanSpinner(progress.DetectTerminalCapabilities())
	spin.Start("Validating documents...")

	tenets, err := discovery.DiscoverDir(cfg.TenetsDir, rules.KindTenet)
	if err != nil {
		spin.Stop()
		fmt.Fprintf(errOut, "Error discovering tenets: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}
	bindings, err := discovery.DiscoverDir(cfg.BindingsDir, rules.KindBinding)
	if err != nil {
		spin.Stop()
		fmt.Fprintf(errOut, "Error discovering bindings: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	sources := append(append([]discovery.Source{}, tenets...), bindings...)

	collector := report.NewCollector()
	run := &runner.Runner{
		ExpectedVersion: expectedVersion,
		KnownTenetIDs:   discovery.KnownTenetIDs(tenets),
		Workers:         cfg.Workers,
		Collector:       collector,
		Registry:        rules.NewIDRegistry(),
	}
	if err := run.Run(context.Background(), sources); err != nil {
		spin.Stop()
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitValidationFailed)
	}
	spin.Stop()

	return printRunResult(collector, sources, cfg, out, errOut)
}

// applyValidateFlags layers explicit command-line flags over the loaded
// configuration.
func applyValidateFlags(cfg *config.Configuration, noColor bool) {
	if validateTenetsFlag != "" {
		cfg.TenetsDir = validateTenetsFlag
	}
	if validateBindingsFlag != "" {
		cfg.BindingsDir = validateBindingsFlag
	}
	if validateVersionFlag != "" {
		cfg.VersionFile = validateVersionFlag
	}
	if validateWorkersFlag >= 0 {
		cfg.Workers = validateWorkersFlag
	}
	if validateNoContext {
		cfg.ShowContext = false
	}
	if noColor {
		cfg.NoColor = true
	}
}

// printRunResult renders the report and returns the run's exit error.
func printRunResult(collector *report.Collector, sources []discovery.Source, cfg *config.Configuration, out, errOut io.Writer) error {
	if cfg.NoColor {
		color.NoColor = true
	}
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	if !collector.Any() {
		fmt.Fprintf(out, "%s %d document(s) validated, no errors\n", green("✓"), len(sources))
		return nil
	}

	rend := report.NewRenderer()
	rend.NoColor = cfg.NoColor

	var contents map[string]string
	if cfg.ShowContext {
		contents = runner.FileContents(sources)
	}

	fmt.Fprintf(errOut, "%s %d document(s) validated, %d error(s)\n\n", red("✗"), len(sources), collector.Count())
	fmt.Fprint(errOut, rend.Render(collector.Errors(), contents))
	return NewExitError(ExitValidationFailed)
}

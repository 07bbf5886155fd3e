// Package progress provides terminal detection and a scan spinner for
// long-running validation runs.
package progress

import (
	"os"

	"golang.org/x/term"
)

// TerminalCapabilities describes what the attached terminal supports.
type TerminalCapabilities struct {
	IsTTY         bool
	SupportsColor bool
}

// DetectTerminalCapabilities inspects stdout and the environment.
func DetectTerminalCapabilities() TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	noColor := os.Getenv("NO_COLOR") != ""

	return TerminalCapabilities{
		IsTTY:         isTTY,
		SupportsColor: isTTY && !noColor,
	}
}

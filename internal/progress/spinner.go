package progress

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// ScanSpinner shows an animated indicator while documents are discovered and
// validated. On a non-TTY it stays silent so piped report output is clean.
type ScanSpinner struct {
	capabilities TerminalCapabilities
	spinner      *spinner.Spinner
}

// NewScanSpinner creates a spinner for the given terminal capabilities.
func NewScanSpinner(caps TerminalCapabilities) *ScanSpinner {
	return &ScanSpinner{capabilities: caps}
}

// Start begins the animation with the given message.
func (s *ScanSpinner) Start(message string) {
	if !s.capabilities.IsTTY {
		return
	}
	s.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.spinner.Writer = os.Stderr // keep stdout clean for the report
	s.spinner.Suffix = " " + message
	s.spinner.Start()
}

// Stop halts the animation if one is running.
func (s *ScanSpinner) Stop() {
	if s.spinner != nil {
		s.spinner.Stop()
		s.spinner = nil
	}
}

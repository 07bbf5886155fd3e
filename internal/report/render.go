package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// contextRadius is the number of source lines shown on each side of the
// error line in a context snippet.
const contextRadius = 2

// Renderer formats collected validation errors for display.
type Renderer struct {
	// NoColor disables ANSI color even when stdout is a terminal.
	NoColor bool
}

// NewRenderer returns a Renderer with default settings.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render formats errors in input order. When contents is non-nil, errors that
// carry a line number and whose file is present in contents get a source
// context snippet; everything else falls back to the single-line form.
// Render never fails for a well-formed ValidationError.
func (r *Renderer) Render(errors []ValidationError, contents map[string]string) string {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	if r.NoColor {
		red.DisableColor()
		yellow.DisableColor()
	}

	var sb strings.Builder
	for i, err := range errors {
		if i > 0 {
			sb.WriteString("\n")
		}

		location := err.File
		if err.Line > 0 {
			location = fmt.Sprintf("%s:%d", err.File, err.Line)
		}
		field := ""
		if err.Field != "" {
			field = fmt.Sprintf("%s: ", err.Field)
		}
		sb.WriteString(fmt.Sprintf("%s %s: %s%s\n", red.Sprint("✗"), location, field, err.Message))

		if contents != nil {
			if snippet, ok := contextSnippet(err, contents); ok {
				sb.WriteString(snippet)
			}
		}

		if err.Suggestion != "" {
			sb.WriteString(fmt.Sprintf("  %s %s\n", yellow.Sprint("hint:"), err.Suggestion))
		}
	}
	return sb.String()
}

// contextSnippet builds the source excerpt around err.Line. It reports false
// when the error has no line, the file is not in contents, or the recorded
// line falls outside the file.
func contextSnippet(err ValidationError, contents map[string]string) (string, bool) {
	if err.Line <= 0 {
		return "", false
	}
	text, ok := contents[err.File]
	if !ok {
		return "", false
	}

	lines := strings.Split(text, "\n")
	if err.Line > len(lines) {
		return "", false
	}

	start := err.Line - contextRadius
	if start < 1 {
		start = 1
	}
	end := err.Line + contextRadius
	if end > len(lines) {
		end = len(lines)
	}

	width := len(fmt.Sprintf("%d", end))

	var sb strings.Builder
	for n := start; n <= end; n++ {
		marker := " "
		if n == err.Line {
			marker = ">"
		}
		sb.WriteString(fmt.Sprintf("  %s %*d | %s\n", marker, width, n, lines[n-1]))
	}
	return sb.String(), true
}

package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ConsoleReporter prints workflow progress to a terminal.
type ConsoleReporter struct {
	out   io.Writer
	plain bool
}

// NewConsoleReporter styles output with lipgloss. Pass plain to print
// without colour, e.g. when NO_COLOR is set or output is piped.
func NewConsoleReporter(out io.Writer, plain bool) *ConsoleReporter {
	return &ConsoleReporter{out: out, plain: plain}
}

func (r *ConsoleReporter) render(style lipgloss.Style, s string) string {
	if r.plain {
		return s
	}
	return style.Render(s)
}

// Section starts a named block of output.
func (r *ConsoleReporter) Section(title string) {
	_, _ = fmt.Fprintf(r.out, "\n%s\n", r.render(HeaderStyle, title))
}

func (r *ConsoleReporter) Info(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.render(SubtleStyle, fmt.Sprintf(format, args...)))
}

func (r *ConsoleReporter) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.render(SuccessStyle, "✓ "+fmt.Sprintf(format, args...)))
}

func (r *ConsoleReporter) Warn(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.render(WarnStyle, "⚠️  "+fmt.Sprintf(format, args...)))
}

// Error prints a fatal error.
func (r *ConsoleReporter) Error(err error) {
	_, _ = fmt.Fprintln(r.out, r.render(ErrorStyle, "✗ "+err.Error()))
}

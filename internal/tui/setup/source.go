package setup

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/jakoblorz/wpblocks/internal/input"
	"github.com/jakoblorz/wpblocks/internal/tui"
)

// Source asks for each field with a huh form. Invalid answers are reported
// inline and asked again, so Collect only fails on abort or I/O errors.
type Source struct {
	theme      *huh.Theme
	accessible bool
	in         io.Reader
	out        io.Writer

	section input.Section
}

// Option configures a Source.
type Option func(*Source)

// WithAccessible switches to huh's line-based prompts (screen readers,
// dumb terminals).
func WithAccessible(enabled bool) Option {
	return func(s *Source) { s.accessible = enabled }
}

// WithIO redirects prompt input and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Source) {
		s.in = in
		s.out = out
	}
}

// NewSource creates a prompt source with the shared theme.
func NewSource(opts ...Option) *Source {
	s := &Source{theme: tui.NewHuhTheme()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Collect prompts for field, prefilled with its default.
func (s *Source) Collect(field input.Field) (string, error) {
	value := field.Default

	form := s.newForm(field, &value)
	if err := form.Run(); err != nil {
		return "", err
	}
	s.section = field.Section

	return strings.TrimSpace(value), nil
}

func (s *Source) newForm(field input.Field, value *string) *huh.Form {
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Input.Next.SetKeys("enter", "tab")
	keyMap.Input.Next.SetHelp("enter", "continue")

	group := huh.NewGroup(
		huh.NewInput().
			Title(field.Message).
			Placeholder(field.Default).
			Value(value).
			Validate(validator(field)),
	).Title(s.groupTitle(field.Section))

	form := huh.NewForm(group).
		WithTheme(s.theme).
		WithShowHelp(true).
		WithKeyMap(keyMap).
		WithAccessible(s.accessible)

	if s.in != nil {
		form = form.WithInput(s.in)
	}
	if s.out != nil {
		form = form.WithOutput(s.out)
	} else {
		form = form.WithProgramOptions(tea.WithAltScreen())
	}

	return form
}

// groupTitle shows the section only on its first field.
func (s *Source) groupTitle(section input.Section) string {
	if section == s.section {
		return ""
	}
	return section.String()
}

func validator(field input.Field) func(string) error {
	return func(v string) error {
		return field.Check(strings.TrimSpace(v))
	}
}

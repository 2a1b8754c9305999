package input

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/wpblocks/internal/models"
)

// Field describes one value the collector asks for.
type Field struct {
	Key      string
	Section  Section
	Message  string
	Default  string
	Required bool

	// Validate is optional; it returns a *models.ValidationError
	Validate func(string) error
}

// Section groups fields the way they are presented to the user.
type Section struct {
	Index int
	Total int
	Title string
}

func (s Section) String() string {
	return fmt.Sprintf("%d/%d - %s", s.Index, s.Total, s.Title)
}

// Source answers one field at a time. Interactive sources re-ask on a
// validation failure; non-interactive ones return the error.
type Source interface {
	Collect(field Field) (string, error)
}

// Check applies the required rule and the field validator to value.
func (f Field) Check(value string) error {
	if f.Required && strings.TrimSpace(value) == "" {
		return &models.ValidationError{Field: f.Key, Reason: "a value is required"}
	}
	if f.Validate != nil {
		return f.Validate(value)
	}
	return nil
}

// Resolve picks the answer for a non-interactive source: the supplied value
// when present, otherwise the default, then validates it.
func (f Field) Resolve(value string, present bool) (string, error) {
	if !present {
		value = f.Default
	}
	if err := f.Check(value); err != nil {
		return "", err
	}
	return value, nil
}

// MapSource answers from a fixed map and falls back to field defaults.
type MapSource map[string]string

func (m MapSource) Collect(field Field) (string, error) {
	value, ok := m[field.Key]
	return field.Resolve(value, ok)
}

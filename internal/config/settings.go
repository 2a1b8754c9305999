package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/jakoblorz/wpblocks/internal/input"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes answer overrides, e.g. WPBLOCKS_TEXTDOMAIN.
	EnvPrefix = "WPBLOCKS"

	// TemplateEnv selects the default create-block template.
	TemplateEnv = "BLOCK_TEMPLATE"

	keyTemplate = "template"
)

// Settings is the per-invocation configuration: an optional answers file
// layered under environment variables.
type Settings struct {
	v    *viper.Viper
	path string
}

// Load reads the answers file at path (YAML or JSON). An empty path or a
// missing optional file yields environment-only settings.
func Load(fs filesystem.FileSystem, path string, required bool) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("$", ""))
	v.AutomaticEnv()
	if err := v.BindEnv(keyTemplate, TemplateEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", TemplateEnv, err)
	}

	s := &Settings{v: v}
	if path == "" {
		return s, nil
	}
	if !fs.Exists(path) {
		if required {
			return nil, fmt.Errorf("answers file %s does not exist", path)
		}
		return s, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}
	if err := ValidateAnswers(data); err != nil {
		return nil, fmt.Errorf("invalid answers file %s: %w", path, err)
	}

	v.SetConfigType(configType(path))
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}
	s.path = path

	return s, nil
}

func configType(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}

// Path is the answers file in use, empty when there is none.
func (s *Settings) Path() string {
	return s.path
}

// Template is the default block template for create-block.
func (s *Settings) Template() string {
	return s.v.GetString(keyTemplate)
}

// Lookup returns the configured answer for key.
func (s *Settings) Lookup(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// AnswersSource answers setup fields from the settings, falling back to the
// field defaults. It never prompts, so a rejected value is returned as an
// error instead of being asked again.
func (s *Settings) AnswersSource() input.Source {
	return answersSource{s: s}
}

type answersSource struct {
	s *Settings
}

func (a answersSource) Collect(field input.Field) (string, error) {
	value, ok := a.s.Lookup(field.Key)
	return field.Resolve(value, ok)
}

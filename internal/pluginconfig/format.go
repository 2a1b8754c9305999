package pluginconfig

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/spf13/viper"
)

// FormatOptions is the subset of prettier options that affects a flat
// object literal.
type FormatOptions struct {
	UseTabs       bool   `mapstructure:"useTabs"`
	TabWidth      int    `mapstructure:"tabWidth"`
	SingleQuote   bool   `mapstructure:"singleQuote"`
	TrailingComma string `mapstructure:"trailingComma"`
}

// WordPressFormat mirrors @wordpress/prettier-config.
func WordPressFormat() FormatOptions {
	return FormatOptions{
		UseTabs:       true,
		TabWidth:      4,
		SingleQuote:   true,
		TrailingComma: "es5",
	}
}

var prettierFiles = []struct {
	name       string
	configType string
}{
	{".prettierrc", "yaml"},
	{".prettierrc.json", "json"},
	{".prettierrc.yaml", "yaml"},
	{".prettierrc.yml", "yaml"},
}

// LoadFormatOptions reads the project's prettier options from root, layered
// over the WordPress defaults. A package.json "prettier" key that names a
// shared config (the usual "@wordpress/prettier-config") keeps the defaults.
func LoadFormatOptions(fs filesystem.FileSystem, root string) (FormatOptions, error) {
	opts := WordPressFormat()

	for _, f := range prettierFiles {
		path := filepath.Join(root, f.name)
		if !fs.Exists(path) {
			continue
		}

		v, err := readViper(fs, path, f.configType)
		if err != nil {
			return opts, err
		}
		return decodeFormat(v, opts)
	}

	pkgPath := filepath.Join(root, "package.json")
	if fs.Exists(pkgPath) {
		v, err := readViper(fs, pkgPath, "json")
		if err != nil {
			return opts, err
		}
		if sub := v.Sub("prettier"); sub != nil {
			return decodeFormat(sub, opts)
		}
	}

	return opts, nil
}

func readViper(fs filesystem.FileSystem, path, configType string) (*viper.Viper, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return v, nil
}

func decodeFormat(v *viper.Viper, opts FormatOptions) (FormatOptions, error) {
	if err := v.Unmarshal(&opts); err != nil {
		return opts, fmt.Errorf("invalid prettier options: %w", err)
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = WordPressFormat().TabWidth
	}
	return opts, nil
}

// Format prints a module.exports block canonically. The result has no
// trailing newline, so replacing a block with its formatted self is stable.
func Format(block string, opts FormatOptions) (string, error) {
	entries, err := parseObject(block)
	if err != nil {
		return "", err
	}
	return printObject(entries, opts), nil
}

func printObject(entries []Entry, opts FormatOptions) string {
	indent := strings.Repeat(" ", opts.TabWidth)
	if opts.UseTabs {
		indent = "\t"
	}

	if len(entries) == 0 {
		return "module.exports = {};"
	}

	var b strings.Builder
	b.WriteString("module.exports = {\n")
	for i, e := range entries {
		b.WriteString(indent)
		b.WriteString(printKey(e.Key, opts))
		b.WriteString(": ")
		if e.Quoted {
			b.WriteString(quote(e.Value, opts.SingleQuote))
		} else {
			b.WriteString(e.Value)
		}
		if i < len(entries)-1 || opts.TrailingComma != "none" {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("};")

	return b.String()
}

func printKey(key string, opts FormatOptions) string {
	if key == "" {
		return quote(key, opts.SingleQuote)
	}
	if key[0] >= '0' && key[0] <= '9' {
		return quote(key, opts.SingleQuote)
	}
	for i := 0; i < len(key); i++ {
		if !isIdentByte(key[i]) {
			return quote(key, opts.SingleQuote)
		}
	}
	return key
}

// quote follows prettier: use the preferred quote unless the string holds
// more of it than of the alternative.
func quote(s string, preferSingle bool) string {
	q, alt := byte('"'), byte('\'')
	if preferSingle {
		q, alt = alt, q
	}
	if strings.Count(s, string(q)) > strings.Count(s, string(alt)) {
		q = alt
	}

	var b strings.Builder
	b.WriteByte(q)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case q:
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(q)
	return b.String()
}

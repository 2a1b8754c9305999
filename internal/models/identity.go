package models

import "strconv"

// PluginIdentity is the new identity a boilerplate is re-labelled with.
// It is built once per setup run and treated as read-only afterwards.
type PluginIdentity struct {
	// TextDomain is the kebab-case slug; it is also the entry file base name
	TextDomain   string `json:"textdomain"`
	PluginName   string `json:"pluginName"`
	PHPNamespace string `json:"phpNamespace"`

	PluginDescription string `json:"pluginDescription"`
	PluginVersion     string `json:"pluginVersion"`
	WPVersion         string `json:"wpVersion"`
	PHPVersion        string `json:"phpVersion"`
	Author            string `json:"author"`
	AuthorURI         string `json:"authorUri"`
	License           string `json:"license"`
	LicenseURI        string `json:"licenseUri"`

	// Block generation defaults, independent of PluginVersion
	SchemaURL       string `json:"$schema"`
	BlocksNamespace string `json:"blocksNamespace"`
	APIVersion      int    `json:"apiVersion"`
	Version         string `json:"version"`
}

// Field keys, shared by input sources, answers files and env overrides.
const (
	FieldTextDomain        = "textdomain"
	FieldPluginName        = "pluginName"
	FieldPHPNamespace      = "phpNamespace"
	FieldPluginDescription = "pluginDescription"
	FieldPluginVersion     = "pluginVersion"
	FieldWPVersion         = "wpVersion"
	FieldPHPVersion        = "phpVersion"
	FieldAuthor            = "author"
	FieldAuthorURI         = "authorUri"
	FieldLicense           = "license"
	FieldLicenseURI        = "licenseUri"
	FieldSchemaURL         = "$schema"
	FieldBlocksNamespace   = "blocksNamespace"
	FieldAPIVersion        = "apiVersion"
	FieldVersion           = "version"
)

// Defaults used when nothing else is known about the new plugin.
const (
	DefaultTextDomain    = "awesome-plugin"
	DefaultPluginVersion = "0.1.0"
	DefaultWPVersion     = "6.4"
	DefaultPHPVersion    = "8.1"
	DefaultLicense       = "GPL-2.0-or-later"
	DefaultLicenseURI    = "https://www.gnu.org/licenses/gpl-2.0.html"
	DefaultSchemaURL     = "https://schemas.wp.org/trunk/block.json"
	DefaultAPIVersion    = 3
	DefaultBlockVersion  = "0.1.0"
)

// Validate checks the invariants every stage relies on.
func (p *PluginIdentity) Validate() error {
	if err := ValidateTextDomain(p.TextDomain); err != nil {
		return err
	}
	if p.APIVersion < 1 {
		return &ValidationError{Field: FieldAPIVersion, Value: strconv.Itoa(p.APIVersion), Reason: "must be a positive integer"}
	}
	return nil
}

// ParseAPIVersion parses the numeric block API version.
func ParseAPIVersion(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, &ValidationError{Field: FieldAPIVersion, Value: s, Reason: "must be a positive integer"}
	}
	return n, nil
}

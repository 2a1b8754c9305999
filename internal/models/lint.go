package models

import (
	"fmt"

	semverv3 "github.com/Masterminds/semver/v3"
	"golang.org/x/mod/semver"
)

// Lint returns non-fatal remarks about values that WordPress tooling is
// likely to misread. Nothing here blocks a setup run.
func (p *PluginIdentity) Lint() []string {
	var warnings []string

	for _, v := range []struct{ field, value string }{
		{FieldPluginVersion, p.PluginVersion},
		{FieldVersion, p.Version},
	} {
		if v.value != "" && !semver.IsValid("v"+v.value) {
			warnings = append(warnings, fmt.Sprintf("%s %q is not a semantic version", v.field, v.value))
		}
	}

	// "Requires at least" and "Requires PHP" are usually two-part versions.
	for _, v := range []struct{ field, value string }{
		{FieldWPVersion, p.WPVersion},
		{FieldPHPVersion, p.PHPVersion},
	} {
		if v.value == "" {
			continue
		}
		if _, err := semverv3.NewVersion(v.value); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s %q is not a version number", v.field, v.value))
		}
	}

	return warnings
}

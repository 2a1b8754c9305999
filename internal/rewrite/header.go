package rewrite

import (
	"regexp"
	"strings"

	"github.com/jakoblorz/wpblocks/internal/models"
)

var (
	docBlockPattern  = regexp.MustCompile(`(?s)/\*\*.*?\*/`)
	namespacePattern = regexp.MustCompile(`namespace\s+[^\s;]+;`)
)

// ComposeHeader renders the plugin header comment for id. Fields without a
// value are left out entirely.
func ComposeHeader(id *models.PluginIdentity) string {
	fields := []struct{ label, value string }{
		{"Plugin Name:       ", id.PluginName},
		{"Description:       ", id.PluginDescription},
		{"Version:           ", id.PluginVersion},
		{"Requires at least: ", id.WPVersion},
		{"Requires PHP:      ", id.PHPVersion},
		{"Author:            ", id.Author},
		{"Author URI:        ", id.AuthorURI},
		{"License:           ", id.License},
		{"License URI:       ", id.LicenseURI},
		{"Text Domain:       ", id.TextDomain},
	}

	lines := []string{"/**"}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		lines = append(lines, " * "+f.label+f.value)
	}
	if id.PHPNamespace != "" {
		lines = append(lines, " *", " * @package "+id.PHPNamespace)
	}
	lines = append(lines, " */")

	return strings.Join(lines, "\n")
}

// ReplaceDocBlock swaps the first /** ... */ comment in text for block.
func ReplaceDocBlock(text, block string) (string, bool) {
	return spliceFirst(docBlockPattern, text, block)
}

// ReplaceNamespace rewrites the first namespace statement. An empty
// namespace leaves text unchanged.
func ReplaceNamespace(text, namespace string) (string, bool) {
	if namespace == "" {
		return text, false
	}
	return spliceFirst(namespacePattern, text, "namespace "+namespace+";")
}

// EntryFileResult is the outcome of RewriteEntryFile.
type EntryFileResult struct {
	Content        string
	HeaderFound    bool
	NamespaceFound bool
}

// RewriteEntryFile applies the header and the namespace edits as two
// separate passes so the blank line between them survives.
func RewriteEntryFile(text string, id *models.PluginIdentity) EntryFileResult {
	updated, headerFound := ReplaceDocBlock(text, ComposeHeader(id))
	updated, namespaceFound := ReplaceNamespace(updated, id.PHPNamespace)

	return EntryFileResult{
		Content:        updated,
		HeaderFound:    headerFound,
		NamespaceFound: namespaceFound,
	}
}

package setup

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/wpblocks/internal/models"
	"github.com/jakoblorz/wpblocks/internal/pluginconfig"
	"github.com/jakoblorz/wpblocks/internal/project"
	"github.com/jakoblorz/wpblocks/internal/rewrite"
)

// rewriteHeader replaces the entry file's doc block and namespace.
func (w *Workflow) rewriteHeader(res *Result, entry string, id *models.PluginIdentity) error {
	if entry == "" {
		return missing("plugin entry file in " + w.project.Root)
	}
	if !w.fs.Exists(entry) {
		return missing(w.rel(entry))
	}

	data, err := w.fs.ReadFile(entry)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", entry, err)
	}

	out := rewrite.RewriteEntryFile(string(data), id)
	if !out.HeaderFound {
		w.warn(res, "no header comment in %s, header not written", w.rel(entry))
	}
	if id.PHPNamespace != "" && !out.NamespaceFound {
		w.warn(res, "no namespace declaration in %s", w.rel(entry))
	}
	if !out.HeaderFound && !out.NamespaceFound {
		return nil
	}

	if err := w.fs.WriteFile(entry, []byte(out.Content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", entry, err)
	}
	w.updated(res, entry, "Main PHP file header has been updated.")
	return nil
}

// migrate renames the entry file after the new textdomain, keeping its
// directory and extension. It returns the new path when a rename happened.
func (w *Workflow) migrate(res *Result, entry, textDomain string) (string, error) {
	if entry == "" {
		return "", missing("plugin entry file in " + w.project.Root)
	}
	if !w.fs.Exists(entry) {
		return "", missing(w.rel(entry))
	}

	dest := filepath.Join(filepath.Dir(entry), textDomain+filepath.Ext(entry))
	if filepath.Clean(dest) == filepath.Clean(entry) {
		w.warn(res, "%s already matches the textdomain, skipping %s", w.rel(entry), StageRename)
		return "", nil
	}
	if w.fs.Exists(dest) {
		return "", fmt.Errorf("%w: %s", ErrDestinationExists, w.rel(dest))
	}

	if err := w.fs.Rename(entry, dest); err != nil {
		return "", fmt.Errorf("failed to rename %s: %w", entry, err)
	}
	w.updated(res, dest, "Main PHP file has been renamed to: %s", filepath.Base(dest))
	return dest, nil
}

// propagateConfig replaces the module.exports block of plugin.config.js.
func (w *Workflow) propagateConfig(res *Result, id *models.PluginIdentity) error {
	path := w.project.ConfigPath()
	if !w.fs.Exists(path) {
		return missing(project.ConfigFile)
	}

	opts, err := w.formatOptions()
	if err != nil {
		return err
	}
	block, err := pluginconfig.RenderBlock(id, opts)
	if err != nil {
		return err
	}

	data, err := w.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	updated, ok := rewrite.ReplaceConfigBlock(string(data), block)
	if !ok {
		w.warn(res, "no module.exports block in %s", project.ConfigFile)
		return nil
	}

	if err := w.fs.WriteFile(path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.updated(res, path, "plugin.config.js has been updated.")
	return nil
}

func (w *Workflow) formatOptions() (pluginconfig.FormatOptions, error) {
	if w.format != nil {
		return *w.format, nil
	}
	return pluginconfig.LoadFormatOptions(w.fs, w.project.Root)
}

// propagateTextDomain sets the text_domain element of phpcs.xml.dist.
func (w *Workflow) propagateTextDomain(res *Result, textDomain string) error {
	path := w.project.PHPCSPath()
	if !w.fs.Exists(path) {
		return missing(project.PHPCSFile)
	}

	data, err := w.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	updated, ok := rewrite.ReplaceTextDomainProperty(string(data), textDomain)
	if !ok {
		w.warn(res, "no text_domain property in %s", project.PHPCSFile)
		return nil
	}

	if err := w.fs.WriteFile(path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.updated(res, path, "phpcs.xml.dist has been updated.")
	return nil
}

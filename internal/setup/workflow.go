package setup

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"

	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/jakoblorz/wpblocks/internal/models"
	"github.com/jakoblorz/wpblocks/internal/pluginconfig"
	"github.com/jakoblorz/wpblocks/internal/project"
)

// Workflow applies a PluginIdentity to a boilerplate checkout: it rewrites
// the entry file header, renames the entry file and propagates the identity
// into plugin.config.js and phpcs.xml.dist.
type Workflow struct {
	fs       filesystem.FileSystem
	project  *project.Project
	reporter Reporter

	entryFile string
	format    *pluginconfig.FormatOptions
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithReporter sets where progress is reported.
func WithReporter(r Reporter) Option {
	return func(w *Workflow) { w.reporter = r }
}

// WithEntryFile overrides entry file discovery.
func WithEntryFile(path string) Option {
	return func(w *Workflow) { w.entryFile = path }
}

// WithFormat skips reading the project's prettier options.
func WithFormat(opts pluginconfig.FormatOptions) Option {
	return func(w *Workflow) { w.format = &opts }
}

// New creates a Workflow for p.
func New(fs filesystem.FileSystem, p *project.Project, opts ...Option) *Workflow {
	w := &Workflow{fs: fs, project: p, reporter: nopReporter{}}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Result summarizes a completed run.
type Result struct {
	// EntryFile is the entry file path after the run, empty when none was found
	EntryFile string
	Updated   []string
	Warnings  []string
}

// Run executes the stages in order. Missing artifacts are reported and
// skipped; any other error stops the run and is returned as *StageError.
func (w *Workflow) Run(ctx context.Context, id *models.PluginIdentity) (*Result, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	res := &Result{}
	w.reporter.Section("Updating plugin files")
	for _, msg := range id.Lint() {
		w.warn(res, "%s", msg)
	}

	entry, err := w.resolveEntryFile()
	if err != nil {
		return res, &StageError{Stage: StageHeader, Err: err}
	}

	stages := []struct {
		stage Stage
		run   func() error
	}{
		{StageHeader, func() error { return w.rewriteHeader(res, entry, id) }},
		{StageRename, func() error {
			renamed, err := w.migrate(res, entry, id.TextDomain)
			if err == nil && renamed != "" {
				entry = renamed
			}
			return err
		}},
		{StageConfig, func() error { return w.propagateConfig(res, id) }},
		{StagePHPCS, func() error { return w.propagateTextDomain(res, id.TextDomain) }},
	}

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		err := s.run()
		if errors.Is(err, ErrMissingArtifact) {
			w.warn(res, "%s, skipping %s", err, s.stage)
			continue
		}
		if err != nil {
			return res, &StageError{Stage: s.stage, Err: err}
		}
	}

	if entry != "" && w.fs.Exists(entry) {
		res.EntryFile = entry
	}
	return res, nil
}

// resolveEntryFile returns the entry file path, or "" when discovery finds
// none. The path is not required to exist.
func (w *Workflow) resolveEntryFile() (string, error) {
	if w.entryFile != "" {
		return w.entryFile, nil
	}

	path, err := w.project.LocateEntryFile()
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to locate entry file: %w", err)
	}
	return path, nil
}

func (w *Workflow) rel(path string) string {
	return project.Rel(w.project.Root, path)
}

func (w *Workflow) warn(res *Result, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	res.Warnings = append(res.Warnings, msg)
	w.reporter.Warn("%s", msg)
}

func (w *Workflow) updated(res *Result, path, format string, args ...any) {
	res.Updated = append(res.Updated, w.rel(path))
	w.reporter.Success(format, args...)
}

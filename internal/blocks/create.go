package blocks

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/jakoblorz/wpblocks/internal/models"
	"github.com/jakoblorz/wpblocks/internal/project"
)

const (
	createBlockCommand = "npx"
	createBlockPackage = "@wordpress/create-block"
)

// ErrTemplateNotFound is returned when the requested template directory
// does not exist under src/templates.
var ErrTemplateNotFound = errors.New("template not found")

// Request describes one block to scaffold.
type Request struct {
	Name     string
	Template string

	// Extra is passed through to @wordpress/create-block unchanged
	Extra []string
}

// Created describes a scaffolded block.
type Created struct {
	Name      string
	TargetDir string
	Template  string
}

// Creator scaffolds blocks into src/blocks with @wordpress/create-block.
type Creator struct {
	fs      filesystem.FileSystem
	project *project.Project
	runner  Runner
}

// NewCreator creates a Creator for p.
func NewCreator(fs filesystem.FileSystem, p *project.Project, runner Runner) *Creator {
	return &Creator{fs: fs, project: p, runner: runner}
}

// Create validates req and runs create-block from the working directory,
// with paths relative to it.
func (c *Creator) Create(ctx context.Context, req Request) (*Created, error) {
	if req.Name == "" {
		return nil, &models.ValidationError{Field: "block name", Reason: "you must specify a block name"}
	}
	if !models.IsKebabCase(req.Name) {
		return nil, &models.ValidationError{Field: "block name", Value: req.Name, Reason: "must be in kebab-case (e.g., my-custom-block)"}
	}

	cwd, err := c.fs.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	targetDir := filepath.Join(c.project.BlocksDir(), req.Name)
	args := []string{
		createBlockPackage,
		req.Name,
		"--no-plugin",
		"--target-dir=" + project.Rel(cwd, targetDir),
	}
	args = append(args, req.Extra...)

	if req.Template != "" {
		templateDir := filepath.Join(c.project.TemplatesDir(), req.Template)
		if !c.fs.Exists(templateDir) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateDir)
		}
		args = append(args, "--template="+project.Rel(cwd, templateDir))
	}

	if err := c.runner.Run(ctx, cwd, createBlockCommand, args...); err != nil {
		return nil, fmt.Errorf("block creation failed: %w", err)
	}

	return &Created{
		Name:      req.Name,
		TargetDir: project.Rel(c.project.Root, targetDir),
		Template:  req.Template,
	}, nil
}

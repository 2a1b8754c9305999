package cli

import (
	"context"
	"errors"
	"fmt"

	huh "github.com/charmbracelet/huh"
	"github.com/jakoblorz/wpblocks/internal/config"
	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/jakoblorz/wpblocks/internal/input"
	"github.com/jakoblorz/wpblocks/internal/project"
	"github.com/jakoblorz/wpblocks/internal/setup"
	tuisetup "github.com/jakoblorz/wpblocks/internal/tui/setup"
	"github.com/spf13/cobra"
)

const (
	answersFlag  = "answers"
	defaultsFlag = "defaults"
	entryFlag    = "entry"
)

// SetupCommand handles the setup command
type SetupCommand struct {
	fs     filesystem.FileSystem
	prompt input.Source
}

// NewSetupCommand creates a new setup command
func NewSetupCommand(fs filesystem.FileSystem, prompt input.Source) *cobra.Command {
	cmd := &SetupCommand{fs: fs, prompt: prompt}

	cobraCmd := &cobra.Command{
		Use:   "setup",
		Short: "Apply a new plugin identity to the boilerplate",
		Long: `Asks for the plugin identity and applies it to the boilerplate:

  1. rewrites the header comment and namespace of the main PHP file
  2. renames the main PHP file to <textdomain>.php
  3. updates the module.exports block of config/plugin.config.js
  4. updates the text_domain property of phpcs.xml.dist

Missing files are reported and skipped. Answers come from interactive
prompts unless --answers or --defaults is given; WPBLOCKS_<FIELD>
environment variables override answers in that mode.`,
		Example: `  # Interactive setup
  wpblocks setup

  # Non-interactive setup from an answers file
  wpblocks setup --answers plugin.yaml

  # Defaults plus environment overrides
  WPBLOCKS_TEXTDOMAIN=acme-tools wpblocks setup --defaults`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String(answersFlag, "", "Answers file (YAML or JSON) for a non-interactive run")
	cobraCmd.Flags().Bool(defaultsFlag, false, "Do not prompt; use defaults and WPBLOCKS_* environment variables")
	cobraCmd.Flags().String(entryFlag, "", "Main PHP file to update (default: <textdomain>.php in the plugin root)")

	return cobraCmd
}

// Run executes the setup command
func (c *SetupCommand) Run(cmd *cobra.Command, args []string) error {
	p, err := projectFromCmd(c.fs, cmd)
	if err != nil {
		return err
	}

	settings, err := c.loadSettings(cmd, p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	src := c.prompt
	if settings.Path() != "" || flagBool(cmd, defaultsFlag) || src == nil {
		src = settings.AnswersSource()
	} else {
		_, _ = fmt.Fprintln(out, tuisetup.RenderIntro())
	}

	collector := input.NewCollector()
	if p.Config != nil && p.Config.SchemaURL() != "" {
		collector.Seed.SchemaURL = p.Config.SchemaURL()
	}

	id, err := collector.Collect(src)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("failed to collect plugin identity: %w", err)
	}

	opts := []setup.Option{setup.WithReporter(newReporter(out))}
	if entry := flagString(cmd, entryFlag); entry != "" {
		path, err := absPath(c.fs, entry)
		if err != nil {
			return err
		}
		opts = append(opts, setup.WithEntryFile(path))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := setup.New(c.fs, p, opts...).Run(ctx, id)
	if err != nil {
		return fmt.Errorf("error during plugin setup: %w", err)
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, tuisetup.RenderSuccess(p.Root, id, result))

	return nil
}

// loadSettings reads --answers, falling back to .wpblocks.yaml in the
// plugin root when it exists.
func (c *SetupCommand) loadSettings(cmd *cobra.Command, p *project.Project) (*config.Settings, error) {
	if path := flagString(cmd, answersFlag); path != "" {
		abs, err := absPath(c.fs, path)
		if err != nil {
			return nil, err
		}
		return config.Load(c.fs, abs, true)
	}

	return config.Load(c.fs, p.AnswersPath(), false)
}

package cli

import (
	"context"
	"fmt"

	"github.com/jakoblorz/wpblocks/internal/blocks"
	"github.com/jakoblorz/wpblocks/internal/config"
	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/spf13/cobra"
)

const templateFlag = "template"

// CreateBlockCommand handles the create-block command
type CreateBlockCommand struct {
	fs     filesystem.FileSystem
	runner blocks.Runner
}

// NewCreateBlockCommand creates a new create-block command
func NewCreateBlockCommand(fs filesystem.FileSystem, runner blocks.Runner) *cobra.Command {
	cmd := &CreateBlockCommand{fs: fs, runner: runner}

	cobraCmd := &cobra.Command{
		Use:   "create-block <block-name> [-- create-block options]",
		Short: "Scaffold a block into src/blocks",
		Long: `Runs @wordpress/create-block for a new block in src/blocks/<block-name>.

The block name must be kebab-case. --template names a directory under
src/templates; it defaults to $BLOCK_TEMPLATE or the "template" key of the
answers file. Arguments after "--" are passed to create-block unchanged.`,
		Example: `  # Scaffold with the default create-block template
  wpblocks create-block hero-banner

  # Use src/templates/block-advanced and a create-block option
  wpblocks create-block hero-banner --template block-advanced -- --variant dynamic`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String(templateFlag, "", "Template directory name under src/templates")

	return cobraCmd
}

// Run executes the create-block command
func (c *CreateBlockCommand) Run(cmd *cobra.Command, args []string) error {
	p, err := projectFromCmd(c.fs, cmd)
	if err != nil {
		return err
	}

	settings, err := config.Load(c.fs, p.AnswersPath(), false)
	if err != nil {
		return err
	}

	req := blocks.Request{Template: flagString(cmd, templateFlag)}
	if req.Template == "" {
		req.Template = settings.Template()
	}

	named := args
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		named = args[:dash]
		req.Extra = args[dash:]
	}
	switch len(named) {
	case 0:
	case 1:
		req.Name = named[0]
	default:
		return fmt.Errorf("expected one block name, got %d (pass create-block options after --)", len(named))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	created, err := blocks.NewCreator(c.fs, p, c.runner).Create(ctx, req)
	if err != nil {
		return err
	}

	reporter := newReporter(cmd.OutOrStdout())
	reporter.Success("Block %q created successfully at %s", created.Name, created.TargetDir)
	if created.Template != "" {
		reporter.Info("📦 Using template: %s", created.Template)
	}

	return nil
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jakoblorz/wpblocks/internal/blocks"
	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/jakoblorz/wpblocks/internal/input"
	tuisetup "github.com/jakoblorz/wpblocks/internal/tui/setup"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command. prompt answers setup fields
// interactively; runner starts @wordpress/create-block.
func NewRootCommand(fs filesystem.FileSystem, runner blocks.Runner, prompt input.Source) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wpblocks",
		Short: "Set up and extend a multi-block WordPress plugin",
		Long: `A CLI tool for WordPress multi-block plugin boilerplates.

Setup renames the boilerplate to your plugin: it rewrites the main PHP file
header, renames the main PHP file and updates plugin.config.js and
phpcs.xml.dist. create-block scaffolds blocks into src/blocks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `wpblocks setup` when no subcommand is provided.
			return (&SetupCommand{fs: fs, prompt: prompt}).Run(cmd, args)
		},
	}

	rootCmd.PersistentFlags().String(rootFlag, "", "Plugin root (default: nearest directory above the working directory holding config/plugin.config.js)")

	rootCmd.AddCommand(NewSetupCommand(fs, prompt))
	rootCmd.AddCommand(NewCreateBlockCommand(fs, runner))
	rootCmd.AddCommand(NewTemplatesCommand(fs))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	runner := blocks.NewOSRunner()
	prompt := tuisetup.NewSource(tuisetup.WithAccessible(os.Getenv("ACCESSIBLE") != ""))

	rootCmd := NewRootCommand(fs, runner, prompt)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

// ReportError prints err to out, styled when out is a terminal.
func ReportError(out io.Writer, err error) {
	newReporter(out).Error(err)
}

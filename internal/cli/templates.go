package cli

import (
	"fmt"

	"github.com/jakoblorz/wpblocks/internal/blocks"
	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/jakoblorz/wpblocks/internal/project"
	"github.com/spf13/cobra"
)

// NewTemplatesCommand creates a new templates command
func NewTemplatesCommand(fs filesystem.FileSystem) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List block templates in src/templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projectFromCmd(fs, cmd)
			if err != nil {
				return err
			}

			names, err := blocks.ListTemplates(fs, p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				_, _ = fmt.Fprintf(out, "No templates found in %s\n", project.TemplatesDir)
				return nil
			}
			for _, name := range names {
				_, _ = fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/jakoblorz/wpblocks/internal/project"
	"github.com/jakoblorz/wpblocks/internal/tui"
	"github.com/spf13/cobra"
)

const rootFlag = "root"

// projectFromCmd opens the project named by --root, or detects it from the
// working directory.
func projectFromCmd(fs filesystem.FileSystem, cmd *cobra.Command) (*project.Project, error) {
	root := flagString(cmd, rootFlag)
	if root == "" {
		p, err := project.Detect(fs)
		if err != nil {
			return nil, fmt.Errorf("failed to detect plugin project: %w", err)
		}
		return p, nil
	}

	path, err := absPath(fs, root)
	if err != nil {
		return nil, err
	}
	if !fs.Exists(path) {
		return nil, fmt.Errorf("plugin root %s does not exist", path)
	}

	return project.Open(fs, path)
}

func absPath(fs filesystem.FileSystem, path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	cwd, err := fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(cwd, path), nil
}

// flagString and flagBool read a flag that may not be defined on cmd,
// which happens when the root command runs setup directly.
func flagString(cmd *cobra.Command, name string) string {
	if cmd == nil {
		return ""
	}

	flag := cmd.Flag(name)
	if flag == nil {
		return ""
	}

	return flag.Value.String()
}

func flagBool(cmd *cobra.Command, name string) bool {
	enabled, err := strconv.ParseBool(flagString(cmd, name))
	if err != nil {
		return false
	}

	return enabled
}

// newReporter styles output only when it goes to a terminal.
func newReporter(out io.Writer) *tui.ConsoleReporter {
	_, isFile := out.(*os.File)
	return tui.NewConsoleReporter(out, !isFile || os.Getenv("NO_COLOR") != "")
}

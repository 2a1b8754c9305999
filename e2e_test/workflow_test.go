package e2e_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jakoblorz/wpblocks/internal/blocks"
	"github.com/jakoblorz/wpblocks/internal/cli"
	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/stretchr/testify/require"
)

// checkout copies the kitchensink plugin into a temp dir.
func checkout(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "plugin")
	require.NoError(t, os.CopyFS(root, os.DirFS(filepath.Join("..", "kitchensink"))))
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func execute(t *testing.T, runner blocks.Runner, args ...string) string {
	t.Helper()

	cmd := cli.NewRootCommand(filesystem.NewOSFileSystem(), runner, nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestFullSetup(t *testing.T) {
	root := checkout(t)
	originalEntry := readFile(t, filepath.Join(root, "multi-blocks-boilerplate.php"))
	originalPHPCS := readFile(t, filepath.Join(root, "phpcs.xml.dist"))

	answers := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(answers, []byte(strings.Join([]string{
		"textdomain: acme-tools",
		"pluginDescription: Blocks for the Acme storefront.",
		"author: Acme Inc.",
		"authorUri: https://acme.example",
		"",
	}, "\n")), 0644))

	out := execute(t, &blocks.MockRunner{}, "setup", "--root", root, "--answers", answers)
	require.Contains(t, out, "Done!")

	// Entry file: renamed, header and namespace rewritten, body untouched
	_, err := os.Stat(filepath.Join(root, "multi-blocks-boilerplate.php"))
	require.True(t, os.IsNotExist(err))

	entry := readFile(t, filepath.Join(root, "acme-tools.php"))
	require.True(t, strings.HasPrefix(entry, `<?php
/**
 * Plugin Name:       Acme Tools
 * Description:       Blocks for the Acme storefront.
 * Version:           0.1.0
 * Requires at least: 6.4
 * Requires PHP:      8.1
 * Author:            Acme Inc.
 * Author URI:        https://acme.example
 * License:           GPL-2.0-or-later
 * License URI:       https://www.gnu.org/licenses/gpl-2.0.html
 * Text Domain:       acme-tools
 *
 * @package AcmeTools
 */

namespace AcmeTools;
`), entry)
	require.Equal(t, strings.Count(originalEntry, "\n"), strings.Count(entry, "\n"))
	_, body, _ := strings.Cut(originalEntry, "namespace MultiBlocksBoilerplate;")
	require.True(t, strings.HasSuffix(entry, body))

	// Config block replaced, leading comment kept
	cfg := readFile(t, filepath.Join(root, "config", "plugin.config.js"))
	require.Contains(t, cfg, " * Just be aware of the textdomain consistancy for translation purpose.\n */\n\n")
	require.Contains(t, cfg, `module.exports = {
	pluginName: 'Acme Tools',
	phpNamespace: 'AcmeTools',
	textdomain: 'acme-tools',
	$schema: 'https://schemas.wp.org/trunk/block.json',
	apiVersion: 3,
	version: '0.1.0',
	blocksNamespace: 'acme-tools',
};
`)

	// phpcs: exactly one attribute value changed
	phpcs := readFile(t, filepath.Join(root, "phpcs.xml.dist"))
	require.Equal(t,
		strings.Replace(originalPHPCS, `<element value="multi-blocks-boilerplate"/>`, `<element value="acme-tools"/>`, 1),
		phpcs)

	t.Run("second run changes nothing", func(t *testing.T) {
		before := map[string]string{
			"acme-tools.php":          entry,
			"config/plugin.config.js": cfg,
			"phpcs.xml.dist":          phpcs,
		}

		execute(t, &blocks.MockRunner{}, "setup", "--root", root, "--answers", answers)

		for rel, content := range before {
			require.Equal(t, content, readFile(t, filepath.Join(root, rel)), rel)
		}
	})
}

func TestCreateBlockInCheckout(t *testing.T) {
	root := checkout(t)

	out := execute(t, nil, "templates", "--root", root)
	require.Equal(t, "block-advanced\nblock-basic\n", out)

	runner := &blocks.MockRunner{}
	execute(t, runner, "create-block", "hero-banner", "--root", root, "--template", "block-advanced")

	require.Len(t, runner.Calls, 1)
	call := runner.Calls[0]
	require.Equal(t, "npx", call.Name)
	require.Equal(t, "@wordpress/create-block", call.Args[0])
	require.Equal(t, "hero-banner", call.Args[1])
	require.Equal(t, "--no-plugin", call.Args[2])

	// Paths are relative to the working directory the command runs from.
	target := strings.TrimPrefix(call.Args[3], "--target-dir=")
	require.Equal(t, filepath.Join(root, "src", "blocks", "hero-banner"), filepath.Join(call.Dir, target))
	template := strings.TrimPrefix(call.Args[4], "--template=")
	require.Equal(t, filepath.Join(root, "src", "templates", "block-advanced"), filepath.Join(call.Dir, template))
}

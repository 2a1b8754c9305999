package pluginconfig

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/jakoblorz/wpblocks/internal/models"
	"github.com/jakoblorz/wpblocks/internal/rewrite"
	"github.com/stretchr/testify/require"
)

const boilerplateConfig = `/**
 * Plugin configuration variables used in block generation.
 *
 * phpNamespace is the PHP namespace used in the main PHP files.
 * blocksNamespace is the internal blocks namespace, used for all blocks.
 */

module.exports = {
	pluginName: 'Multi Blocks Boilerplate',
	phpNamespace: 'MultiBlocksBoilerplate',
	textdomain: 'multi-blocks-boilerplate',
	$schema: 'https://schemas.wp.org/trunk/block.json',
	apiVersion: 3, // block.json apiVersion
	version: '0.1.0',
	blocksNamespace: 'multi-blocks-boilerplate',
};
`

func acmeIdentity() *models.PluginIdentity {
	return &models.PluginIdentity{
		TextDomain:      "acme-tools",
		PluginName:      "Acme Tools",
		PHPNamespace:    "AcmeTools",
		SchemaURL:       models.DefaultSchemaURL,
		BlocksNamespace: "acme-tools",
		APIVersion:      3,
		Version:         "0.1.0",
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse(boilerplateConfig)
	require.NoError(t, err)

	require.Len(t, cfg.Entries, 7)
	require.Equal(t, "Multi Blocks Boilerplate", cfg.PluginName())
	require.Equal(t, "MultiBlocksBoilerplate", cfg.PHPNamespace())
	require.Equal(t, "multi-blocks-boilerplate", cfg.TextDomain())
	require.Equal(t, "https://schemas.wp.org/trunk/block.json", cfg.SchemaURL())
	require.Equal(t, 3, cfg.APIVersion())
	require.Equal(t, "0.1.0", cfg.Version())
	require.Equal(t, "multi-blocks-boilerplate", cfg.BlocksNamespace())

	_, ok := cfg.Get("missing")
	require.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no assignment", "export default { a: 1 };"},
		{"unterminated string", "module.exports = {\n\ta: 'oops,\n};"},
		{"missing colon", "module.exports = {\n\ta 'b',\n};"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/plugin/config/plugin.config.js", []byte(boilerplateConfig))

	cfg, err := Load(fs, "/plugin/config/plugin.config.js")
	require.NoError(t, err)
	require.Equal(t, "/plugin/config/plugin.config.js", cfg.Path)
	require.Equal(t, "multi-blocks-boilerplate", cfg.TextDomain())

	_, err = Load(fs, "/plugin/config/missing.js")
	require.Error(t, err)
}

func TestRenderBlock(t *testing.T) {
	block, err := RenderBlock(acmeIdentity(), WordPressFormat())
	require.NoError(t, err)

	require.Equal(t, "module.exports = {\n"+
		"\tpluginName: 'Acme Tools',\n"+
		"\tphpNamespace: 'AcmeTools',\n"+
		"\ttextdomain: 'acme-tools',\n"+
		"\t$schema: 'https://schemas.wp.org/trunk/block.json',\n"+
		"\tapiVersion: 3,\n"+
		"\tversion: '0.1.0',\n"+
		"\tblocksNamespace: 'acme-tools',\n"+
		"};", block)
}

func TestRenderBlock_EscapesQuotes(t *testing.T) {
	id := acmeIdentity()
	id.PluginName = `Bob's "Blocks" \ Co`

	block, err := RenderBlock(id, WordPressFormat())
	require.NoError(t, err)
	require.Contains(t, block, `pluginName: 'Bob\'s "Blocks" \\ Co',`)

	cfg, err := Parse(block)
	require.NoError(t, err)
	require.Equal(t, id.PluginName, cfg.PluginName())
}

func TestRenderBlock_StableAcrossRuns(t *testing.T) {
	block, err := RenderBlock(acmeIdentity(), WordPressFormat())
	require.NoError(t, err)

	first, ok := rewrite.ReplaceConfigBlock(boilerplateConfig, block)
	require.True(t, ok)
	second, ok := rewrite.ReplaceConfigBlock(first, block)
	require.True(t, ok)

	require.Equal(t, first, second)
	snaps.MatchSnapshot(t, first)
}

func TestFormat_Options(t *testing.T) {
	src := "module.exports = { a: \"x\", b: 2 };"

	t.Run("spaces and double quotes", func(t *testing.T) {
		out, err := Format(src, FormatOptions{TabWidth: 2, TrailingComma: "none"})
		require.NoError(t, err)
		require.Equal(t, "module.exports = {\n  a: \"x\",\n  b: 2\n};", out)
	})

	t.Run("prefers the quote that needs no escaping", func(t *testing.T) {
		out, err := Format("module.exports = { a: \"it's\" };", WordPressFormat())
		require.NoError(t, err)
		require.Equal(t, "module.exports = {\n\ta: \"it's\",\n};", out)
	})

	t.Run("empty object", func(t *testing.T) {
		out, err := Format("module.exports = {};", WordPressFormat())
		require.NoError(t, err)
		require.Equal(t, "module.exports = {};", out)
	})
}

func TestLoadFormatOptions(t *testing.T) {
	t.Run("defaults without prettier config", func(t *testing.T) {
		fs := filesystem.NewMockFileSystem()
		fs.AddDir("/plugin")

		opts, err := LoadFormatOptions(fs, "/plugin")
		require.NoError(t, err)
		require.Equal(t, WordPressFormat(), opts)
	})

	t.Run("shared config name in package.json", func(t *testing.T) {
		fs := filesystem.NewMockFileSystem()
		fs.AddFile("/plugin/package.json", []byte(`{"name":"acme","prettier":"@wordpress/prettier-config"}`))

		opts, err := LoadFormatOptions(fs, "/plugin")
		require.NoError(t, err)
		require.Equal(t, WordPressFormat(), opts)
	})

	t.Run("prettierrc overrides", func(t *testing.T) {
		fs := filesystem.NewMockFileSystem()
		fs.AddFile("/plugin/.prettierrc.json", []byte(`{"useTabs": false, "tabWidth": 2}`))

		opts, err := LoadFormatOptions(fs, "/plugin")
		require.NoError(t, err)
		require.False(t, opts.UseTabs)
		require.Equal(t, 2, opts.TabWidth)
		require.True(t, opts.SingleQuote)
		require.Equal(t, "es5", opts.TrailingComma)
	})

	t.Run("invalid prettierrc", func(t *testing.T) {
		fs := filesystem.NewMockFileSystem()
		fs.AddFile("/plugin/.prettierrc.json", []byte(`{not json`))

		_, err := LoadFormatOptions(fs, "/plugin")
		require.Error(t, err)
	})
}

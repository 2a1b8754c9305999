package pluginconfig

import (
	"fmt"
	"strconv"

	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/jakoblorz/wpblocks/internal/models"
	"github.com/jakoblorz/wpblocks/internal/rewrite"
)

// Entry is one property of the exported config object.
type Entry struct {
	Key string

	// Value is the decoded string for quoted values and the raw
	// token otherwise (numbers, booleans)
	Value  string
	Quoted bool
}

// Config is the parsed content of config/plugin.config.js. It is loaded
// once per invocation and shared read-only between commands.
type Config struct {
	Path    string
	Entries []Entry
}

// Load reads and parses the config artifact at path.
func Load(fs filesystem.FileSystem, path string) (*Config, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin config: %w", err)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("invalid plugin config %s: %w", path, err)
	}
	cfg.Path = path

	return cfg, nil
}

// Parse extracts the module.exports object from a config file.
func Parse(src string) (*Config, error) {
	block, ok := rewrite.FindConfigBlock(src)
	if !ok {
		return nil, fmt.Errorf("no module.exports assignment found")
	}

	entries, err := parseObject(block)
	if err != nil {
		return nil, err
	}

	return &Config{Entries: entries}, nil
}

// Get returns the value stored under key.
func (c *Config) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	for _, e := range c.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

func (c *Config) str(key string) string {
	v, _ := c.Get(key)
	return v
}

func (c *Config) PluginName() string      { return c.str(models.FieldPluginName) }
func (c *Config) PHPNamespace() string    { return c.str(models.FieldPHPNamespace) }
func (c *Config) TextDomain() string      { return c.str(models.FieldTextDomain) }
func (c *Config) SchemaURL() string       { return c.str(models.FieldSchemaURL) }
func (c *Config) Version() string         { return c.str(models.FieldVersion) }
func (c *Config) BlocksNamespace() string { return c.str(models.FieldBlocksNamespace) }

// APIVersion returns the block API version, or 0 when absent or not a number.
func (c *Config) APIVersion() int {
	n, err := strconv.Atoi(c.str(models.FieldAPIVersion))
	if err != nil {
		return 0
	}
	return n
}

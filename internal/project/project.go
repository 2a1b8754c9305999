package project

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/jakoblorz/wpblocks/internal/pluginconfig"
)

// Conventional locations, relative to the project root.
const (
	ConfigFile    = "config/plugin.config.js"
	PHPCSFile     = "phpcs.xml.dist"
	BlocksDir     = "src/blocks"
	TemplatesDir  = "src/templates"
	EntryFileExt  = ".php"
	ignoreFile    = ".gitignore"
	answersFile   = ".wpblocks.yaml"
	maxHeaderScan = 8 * 1024
)

// ErrNotFound is returned when no plugin project encloses the start directory.
var ErrNotFound = errors.New("plugin project not found")

var pluginHeaderPattern = regexp.MustCompile(`(?m)^[ \t/*#@]*Plugin Name:`)

// Project is a boilerplate checkout on disk.
type Project struct {
	fs   filesystem.FileSystem
	Root string

	// Config is the plugin.config.js content as loaded at start-up; nil
	// when the file does not exist
	Config *pluginconfig.Config
}

// Detect walks up from the working directory until it finds the directory
// holding config/plugin.config.js.
func Detect(fs filesystem.FileSystem) (*Project, error) {
	cwd, err := fs.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	configPath, found := findFileUp(fs, cwd, ConfigFile)
	if !found {
		return nil, fmt.Errorf("%w (no %s above %s)", ErrNotFound, ConfigFile, cwd)
	}

	return Open(fs, filepath.Dir(filepath.Dir(configPath)))
}

// Open loads the project rooted at root. A missing config file is not an
// error; the setup stage that needs it reports it.
func Open(fs filesystem.FileSystem, root string) (*Project, error) {
	p := &Project{fs: fs, Root: filepath.Clean(root)}

	if fs.Exists(p.ConfigPath()) {
		cfg, err := pluginconfig.Load(fs, p.ConfigPath())
		if err != nil {
			return nil, err
		}
		p.Config = cfg
	}

	return p, nil
}

func findFileUp(fs filesystem.FileSystem, startDir, name string) (string, bool) {
	dir := filepath.Clean(startDir)

	for {
		candidate := filepath.Join(dir, name)
		if fs.Exists(candidate) {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (p *Project) ConfigPath() string    { return filepath.Join(p.Root, ConfigFile) }
func (p *Project) PHPCSPath() string     { return filepath.Join(p.Root, PHPCSFile) }
func (p *Project) BlocksDir() string     { return filepath.Join(p.Root, BlocksDir) }
func (p *Project) TemplatesDir() string  { return filepath.Join(p.Root, TemplatesDir) }
func (p *Project) GitIgnorePath() string { return filepath.Join(p.Root, ignoreFile) }
func (p *Project) AnswersPath() string   { return filepath.Join(p.Root, answersFile) }

// EntryFilePath returns the conventional entry file for a textdomain.
func (p *Project) EntryFilePath(textDomain string) string {
	return filepath.Join(p.Root, textDomain+EntryFileExt)
}

// TextDomain is the textdomain recorded in plugin.config.js at start-up.
func (p *Project) TextDomain() string {
	if p.Config == nil {
		return ""
	}
	return p.Config.TextDomain()
}

// LocateEntryFile returns the current entry file: <root>/<textdomain>.php
// when the config names a textdomain, otherwise the only PHP file in the
// root carrying a "Plugin Name:" header. The returned path may not exist.
func (p *Project) LocateEntryFile() (string, error) {
	if td := p.TextDomain(); td != "" {
		return p.EntryFilePath(td), nil
	}

	entries, err := p.fs.ReadDir(p.Root)
	if err != nil {
		return "", fmt.Errorf("failed to list %s: %w", p.Root, err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), EntryFileExt) {
			continue
		}
		path := filepath.Join(p.Root, entry.Name())
		ok, err := p.hasPluginHeader(path)
		if err != nil {
			return "", err
		}
		if ok {
			candidates = append(candidates, path)
		}
	}

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("no PHP file with a plugin header in %s: %w", p.Root, fs.ErrNotExist)
	case 1:
		return candidates[0], nil
	default:
		return "", fmt.Errorf("several plugin entry files in %s: %s", p.Root, strings.Join(candidates, ", "))
	}
}

func (p *Project) hasPluginHeader(path string) (bool, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) > maxHeaderScan {
		data = data[:maxHeaderScan]
	}
	return pluginHeaderPattern.Match(bytes.TrimSpace(data)), nil
}

// Rel returns path relative to base, or path itself when that fails.
func Rel(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}

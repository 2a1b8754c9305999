package blocks

import (
	"bytes"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/jakoblorz/wpblocks/internal/filesystem"
	"github.com/jakoblorz/wpblocks/internal/project"
)

// ListTemplates returns the names of the template directories under
// src/templates, skipping hidden and gitignored ones. A project without
// templates yields an empty list.
func ListTemplates(fs filesystem.FileSystem, p *project.Project) ([]string, error) {
	dir := p.TemplatesDir()
	entries, err := fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	ignore, err := loadGitIgnore(fs, p)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if ignore != nil {
			rel := filepath.ToSlash(filepath.Join(project.TemplatesDir, entry.Name()))
			if match := ignore.Relative(rel, true); match != nil && match.Ignore() {
				continue
			}
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

func loadGitIgnore(fs filesystem.FileSystem, p *project.Project) (gitignore.GitIgnore, error) {
	path := p.GitIgnorePath()
	if !fs.Exists(path) {
		return nil, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), p.Root, nil), nil
}

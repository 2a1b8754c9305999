package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"time"
)

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	files      map[string]*MockFile
	currentDir string
	failures   map[string]error
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	IsDir   bool
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// mockDirEntry implements fs.DirEntry
type mockDirEntry struct {
	info fs.FileInfo
}

func (m *mockDirEntry) Name() string               { return m.info.Name() }
func (m *mockDirEntry) IsDir() bool                { return m.info.IsDir() }
func (m *mockDirEntry) Type() fs.FileMode          { return m.info.Mode().Type() }
func (m *mockDirEntry) Info() (fs.FileInfo, error) { return m.info, nil }

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:      make(map[string]*MockFile),
		currentDir: "/workspace",
		failures:   make(map[string]error),
	}
}

// AddFile adds a file to the mock filesystem
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
		IsDir:   false,
	}
	mfs.ensureParents(cleanPath)
}

// AddDir adds a directory to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; !exists {
		mfs.files[cleanPath] = &MockFile{
			Mode:    0755 | fs.ModeDir,
			ModTime: time.Now(),
			IsDir:   true,
		}
	}
	mfs.ensureParents(cleanPath)
}

func (mfs *MockFileSystem) ensureParents(cleanPath string) {
	dir := filepath.Dir(cleanPath)
	for dir != "." && dir != "/" && dir != cleanPath {
		if _, exists := mfs.files[dir]; !exists {
			mfs.AddDir(dir)
		}
		dir = filepath.Dir(dir)
	}
}

// FailOn makes every mutating operation on path return err.
func (mfs *MockFileSystem) FailOn(path string, err error) {
	mfs.failures[filepath.Clean(path)] = err
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	file, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return nil, errors.New("is a directory")
	}
	return file.Content, nil
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)
	if err, ok := mfs.failures[cleanPath]; ok {
		return &fs.PathError{Op: "write", Path: path, Err: err}
	}

	// Ensure parent directory exists
	dir := filepath.Dir(cleanPath)
	if dir != "." && dir != "/" {
		if _, exists := mfs.files[dir]; !exists {
			return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
	}

	if existing, ok := mfs.files[cleanPath]; ok && !existing.IsDir {
		perm = existing.Mode
	}

	mfs.files[cleanPath] = &MockFile{
		Content: data,
		Mode:    perm,
		ModTime: time.Now(),
		IsDir:   false,
	}
	return nil
}

// Rename mirrors os.Rename for regular files: the destination is replaced
// when it exists. Callers that must not clobber check first.
func (mfs *MockFileSystem) Rename(oldPath, newPath string) error {
	src := filepath.Clean(oldPath)
	dst := filepath.Clean(newPath)
	if err, ok := mfs.failures[src]; ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: err}
	}

	file, exists := mfs.files[src]
	if !exists {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: errors.New("is a directory")}
	}
	if _, exists := mfs.files[filepath.Dir(dst)]; !exists && filepath.Dir(dst) != "/" {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrNotExist}
	}

	delete(mfs.files, src)
	mfs.files[dst] = file
	return nil
}

func (mfs *MockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	cleanPath := filepath.Clean(path)

	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if !file.IsDir {
		return nil, errors.New("not a directory")
	}

	var entries []fs.DirEntry
	for p, f := range mfs.files {
		if p == cleanPath || filepath.Dir(p) != cleanPath {
			continue
		}
		entries = append(entries, &mockDirEntry{info: &mockFileInfo{
			name:    filepath.Base(p),
			size:    int64(len(f.Content)),
			mode:    f.Mode,
			modTime: f.ModTime,
			isDir:   f.IsDir,
		}})
	}

	// Sort entries by name for consistent ordering
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	file, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}

	return &mockFileInfo{
		name:    filepath.Base(path),
		size:    int64(len(file.Content)),
		mode:    file.Mode,
		modTime: file.ModTime,
		isDir:   file.IsDir,
	}, nil
}

func (mfs *MockFileSystem) Exists(path string) bool {
	_, exists := mfs.files[filepath.Clean(path)]
	return exists
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

// SetCurrentDir sets the current working directory for the mock
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = dir
}

// Content returns the content of a file, or nil when it does not exist
func (mfs *MockFileSystem) Content(path string) []byte {
	file, exists := mfs.files[filepath.Clean(path)]
	if !exists || file.IsDir {
		return nil
	}
	return file.Content
}

// Paths returns all paths in the mock filesystem, sorted
func (mfs *MockFileSystem) Paths() []string {
	paths := make([]string, 0, len(mfs.files))
	for p := range mfs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/buildmatrix/internal/model"
)

// ProjectFSAdapter abstracts the filesystem lookups needed to locate the
// build description before any tool is launched.
type ProjectFSAdapter interface {
	// FindMakefileDir returns the directory holding makefile, starting at
	// start and walking up the directory tree. An absolute makefile is only
	// checked for existence and start is returned unchanged.
	FindMakefileDir(start m.Path, makefile string) (m.Path, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalProjectFSAdapter implements ProjectFSAdapter on the local disk.
type LocalProjectFSAdapter struct{}

// NewLocalProjectFSAdapter constructs a LocalProjectFSAdapter.
func NewLocalProjectFSAdapter() *LocalProjectFSAdapter {
	return &LocalProjectFSAdapter{}
}

// FileInfo returns metadata for a path.
func (a *LocalProjectFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// FindMakefileDir searches for makefile walking up the directory tree.
func (a *LocalProjectFSAdapter) FindMakefileDir(start m.Path, makefile string) (m.Path, error) {
	if filepath.IsAbs(makefile) {
		if err := a.regularFile(m.Path(makefile)); err != nil {
			return "", err
		}

		return start, nil
	}

	dir, err := filepath.Abs(string(start))
	if err != nil {
		return "", err
	}

	for {
		if a.regularFile(m.Path(filepath.Join(dir, makefile))) == nil {
			return m.Path(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found in %s or any parent directory", makefile, start)
		}

		dir = parent
	}
}

func (a *LocalProjectFSAdapter) regularFile(path m.Path) error {
	info, err := a.FileInfo(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	return nil
}

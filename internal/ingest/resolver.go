package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"csvframe/internal/frame"
)

// Resolver maps user-supplied short file names to paths strictly inside a
// fixed data directory. It holds no open handles; every load is an
// independent open/read/close.
type Resolver struct {
	baseDir string
}

// NewResolver creates a Resolver rooted at dataDir.
func NewResolver(dataDir string) *Resolver {
	return &Resolver{baseDir: dataDir}
}

// Resolve turns a short name into an absolute path under the data directory.
// The containment check compares normalized absolute paths, not the input
// string, so "..", absolute paths, and any traversal sequence that escapes
// the directory all fail with ErrInvalidFileName.
func (r *Resolver) Resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidFileName)
	}
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidFileName, name)
	}

	base, err := filepath.Abs(r.baseDir)
	if err != nil {
		return "", fmt.Errorf("resolve data directory: %w", err)
	}

	path, err := filepath.Abs(filepath.Join(base, name))
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", name, err)
	}

	if !strings.HasPrefix(path, base+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q resolves outside the data directory", ErrInvalidFileName, name)
	}

	return path, nil
}

// LoadNamedFile resolves name under the data directory, opens it and ingests
// it as CSV with a header row. The frame's display name is the file's base
// name without extension. Open errors (including not-found) propagate as-is.
func (r *Resolver) LoadNamedFile(name string) (*frame.Frame, error) {
	path, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %q: %w", name, err)
	}
	defer f.Close()

	display := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return LoadContent(f, display)
}

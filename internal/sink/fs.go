package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FS writes objects as files under a root directory. Parent directories are
// created as needed and existing files are truncated and rewritten in place;
// there is no temp-file rename, so a failed write can leave a partial file.
type FS struct {
	root string
}

// NewFS returns a filesystem sink rooted at root ("data" if empty).
func NewFS(root string) *FS {
	if root == "" {
		root = "data"
	}
	return &FS{root: root}
}

func (s *FS) Driver() Driver { return DriverFilesystem }

// Root returns the directory objects are written under.
func (s *FS) Root() string { return s.root }

func (s *FS) Put(ctx context.Context, key string, r io.Reader, _ PutOptions) (Info, error) {
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}
	k, err := cleanKey(key)
	if err != nil {
		return Info{}, err
	}

	p := filepath.Join(s.root, filepath.FromSlash(k))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return Info{}, fmt.Errorf("create directory for %s: %w", k, err)
	}

	f, err := os.Create(p)
	if err != nil {
		return Info{}, err
	}
	n, err := io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		return Info{}, fmt.Errorf("write %s: %w", p, err)
	}
	if err := f.Close(); err != nil {
		return Info{}, fmt.Errorf("close %s: %w", p, err)
	}

	return Info{Key: k, Location: p, Size: n}, nil
}

package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver turns request path segments into absolute paths under a fixed root.
// It performs no sandboxing: ".." segments and absolute inputs escape the root.
type Resolver struct {
	root string
}

// NewResolver creates a resolver rooted at dir. An empty dir means the
// process working directory at the time of the call.
func NewResolver(dir string) (*Resolver, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", dir, err)
	}
	return &Resolver{root: abs}, nil
}

// Root returns the absolute root directory
func (r *Resolver) Root() string {
	return r.root
}

// Resolve maps p onto an absolute path: empty means the root, absolute paths
// are cleaned and returned unchanged, relative paths are joined to the root.
func (r *Resolver) Resolve(p string) string {
	if p == "" {
		return r.root
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(r.root, p)
}

// Join always combines the root with p, even when p looks absolute
func (r *Resolver) Join(p string) string {
	return filepath.Join(r.root, p)
}

package filesystem

import (
	"context"
	"os"
)

// DirectoryOps handles directory operations
type DirectoryOps struct {
	*FilesystemOps
}

// List returns the names of the direct children of dir
func (d *DirectoryOps) List(ctx context.Context, dir string) (names []string, err error) {
	done := d.track("list")
	defer func() { done(err) }()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newError(KindList, dir, err)
	}

	names = make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Create creates exactly one directory; missing parents and an existing
// target are both errors.
func (d *DirectoryOps) Create(ctx context.Context, dir string) (err error) {
	done := d.track("create_dir")
	defer func() { done(err) }()

	if err := os.Mkdir(dir, 0o755); err != nil {
		return newError(KindCreate, dir, err)
	}
	return nil
}

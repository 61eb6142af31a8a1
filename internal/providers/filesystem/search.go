package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// SearchOps handles recursive name search
type SearchOps struct {
	*FilesystemOps
}

// frame is a directory whose children are being visited
type frame struct {
	dir     string
	entries []os.DirEntry
	next    int
}

// Search walks root depth-first in pre-order and returns the absolute paths of
// files whose base name contains term. Subdirectories are descended into
// before their following siblings are examined, so the result order matches a
// recursive walk. Directory detection follows symlinks and there is no cycle
// detection. The first OS error aborts the whole search.
func (s *SearchOps) Search(ctx context.Context, term, root string) (matches []string, err error) {
	done := s.track("search")
	defer func() { done(err) }()

	root, err = filepath.Abs(root)
	if err != nil {
		return nil, newError(KindSearch, root, err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, newError(KindSearch, root, err)
	}

	matches = []string{}
	stack := []*frame{{dir: root, entries: entries}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}

		name := top.entries[top.next].Name()
		top.next++
		path := filepath.Join(top.dir, name)

		info, err := os.Stat(path)
		if err != nil {
			return nil, newError(KindSearch, path, err)
		}

		if !info.IsDir() {
			if strings.Contains(name, term) {
				matches = append(matches, path)
			}
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, newError(KindSearch, path, err)
		}

		children, err := os.ReadDir(path)
		if err != nil {
			return nil, newError(KindSearch, path, err)
		}
		stack = append(stack, &frame{dir: path, entries: children})
	}

	return matches, nil
}

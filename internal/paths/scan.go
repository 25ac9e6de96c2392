package paths

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"wayfind/internal/config"
)

// Scan walks root looking for project directories (anything holding a .git)
// and registers the ones it finds. Hidden directories, configured ignores,
// and anything deeper than scan.Depth are skipped. Returns the newly added
// entries sorted by name.
func (s *Store) Scan(root string, scan config.ScanConfig) ([]Entry, error) {
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	if scan.Depth < 0 {
		return nil, fmt.Errorf("depth must be >= 0")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve scan root: %w", err)
	}

	ignored := make(map[string]bool, len(scan.Ignore))
	for _, name := range scan.Ignore {
		ignored[name] = true
	}

	var added []Entry
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || !d.IsDir() {
			return nil
		}

		rel, _ := filepath.Rel(absRoot, path)
		level := depthFromRel(rel)
		if level > scan.Depth {
			return filepath.SkipDir
		}

		if level > 0 && (ignored[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
			return filepath.SkipDir
		}

		if _, err := os.Stat(filepath.Join(path, ".git")); err == nil {
			e, err := s.Add(path)
			if err != nil {
				if errors.Is(err, ErrPathExists) {
					return filepath.SkipDir
				}
				return nil
			}
			added = append(added, *e)
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan paths: %w", err)
	}

	sort.Slice(added, func(i, j int) bool { return added[i].Name < added[j].Name })
	return added, nil
}

func depthFromRel(rel string) int {
	if rel == "." || rel == "" {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

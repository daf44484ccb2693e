package file

import (
	"path/filepath"
	"sort"
)

// FindByExt returns all files directly under dir with the given extension
// (without leading dot), sorted lexicographically for deterministic order.
func FindByExt(dir, ext string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*."+ext))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

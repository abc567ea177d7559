package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExts is the extension filter for discovery (lowercase, no dot).
var DefaultExts = []string{"pdf"}

// ResolveInputs returns the documents to process. Explicit paths win and are
// used as given (absolutized); otherwise dir is scanned recursively; with
// neither, every *.pdf in the working directory is used. Discovery order is
// sorted so batch output is deterministic.
func ResolveInputs(paths []string, dir string, exts []string) ([]string, error) {
	if len(paths) > 0 {
		resolved := make([]string, 0, len(paths))
		for _, p := range paths {
			abs, err := filepath.Abs(p)
			if err != nil {
				return nil, fmt.Errorf("resolve %s: %w", p, err)
			}
			resolved = append(resolved, abs)
		}
		return resolved, nil
	}

	if dir != "" {
		return ScanDirectory(dir, exts)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getwd: %w", err)
	}
	matches, err := filepath.Glob(filepath.Join(cwd, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", cwd, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// ScanDirectory walks root and returns every file whose extension is in exts,
// skipping hidden files and directories, in sorted order.
func ScanDirectory(root string, exts []string) ([]string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("root path is required")
	}
	allowed := ExtSet(exts)

	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := allowed[extOf(path)]; !ok {
			return nil
		}
		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(found)
	return found, nil
}

// ExtSet normalizes exts into a lookup set, defaulting to DefaultExts.
func ExtSet(exts []string) map[string]struct{} {
	if len(exts) == 0 {
		exts = DefaultExts
	}
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			set[e] = struct{}{}
		}
	}
	return set
}

func extOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

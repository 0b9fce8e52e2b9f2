// Package resource implements embedded-resource file loading: bytes are
// read verbatim from files under -I search directories, and each path is
// mangled into a valid identifier by replacing every non-[letter/digit]
// byte with "_".
package resource

import (
	"os"
	"path/filepath"
	"sort"
)

// Loader walks a set of search directories and produces the
// map[string][]byte a Program carries in its Resources field.
type Loader struct {
	Dirs []string
}

// New constructs a Loader over the given -I search directories.
func New(dirs ...string) *Loader {
	return &Loader{Dirs: dirs}
}

// Load walks every search directory recursively and returns the mangled
// resource map. Later directories do not overwrite names already loaded
// from an earlier one, matching a first-match search-path convention.
func (l *Loader) Load() (map[string][]byte, error) {
	out := map[string][]byte{}

	for _, dir := range l.Dirs {
		err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				rel = path
			}
			name := MangleName(filepath.ToSlash(rel))
			if _, exists := out[name]; exists {
				return nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			out[name] = data
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MangleName replaces every non [letter/digit] byte with "_" so a
// resource path becomes a valid identifier.
func MangleName(name string) string {
	out := []byte(name)
	for i, c := range out {
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			out[i] = '_'
		}
	}
	return string(out)
}

// SortedKeys returns the resource map's keys in lexicographic order, so
// emitted resource attributes appear in a stable, sorted order.
func SortedKeys(resources map[string][]byte) []string {
	keys := make([]string, 0, len(resources))
	for k := range resources {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DirSource discovers configuration files directly inside a directory
// (non-recursive) and loads them in lexicographic filename order, so per-file
// overrides apply reproducibly regardless of filesystem listing order.
type DirSource struct {
	path     string
	format   Format
	priority int
}

// NewDirSource creates a directory source.
func NewDirSource(path string, format Format, priority int) *DirSource {
	return &DirSource{
		path:     path,
		format:   format,
		priority: priority,
	}
}

// Name data source name
func (s *DirSource) Name() string {
	return "dir:" + s.path
}

// Kind source kind
func (s *DirSource) Kind() Kind {
	return KindDirectory
}

// Priority source priority
func (s *DirSource) Priority() int {
	return s.priority
}

// Load discovers and parses matching files. An empty directory yields an
// empty list (a legitimate "no overrides" case). Any file failure aborts the
// whole directory load.
func (s *DirSource) Load() ([]Document, error) {
	exts, ok := formatExtensions[s.format]
	if !ok {
		return nil, ErrUnsupportedFormat.
			WithMsgf("unsupported configuration format %q for directory %s", s.format, s.path).
			WithData("path", s.path)
	}

	entries, err := os.ReadDir(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound.
				Wrapf(err, "configuration directory %s does not exist", s.path).
				WithData("path", s.path)
		}
		return nil, fmt.Errorf("read configuration directory %s: %w", s.path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if exts[filepath.Ext(entry.Name())] {
			names = append(names, entry.Name())
		}
	}
	// Byte-order sort: merge order must be stable and total
	sort.Strings(names)

	docs := make([]Document, 0, len(names))
	for _, name := range names {
		path := filepath.Join(s.path, name)
		data, err := parseFile(path, s.format)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{Path: path, Data: data})
	}
	return docs, nil
}

// formatExtensions lists the file extensions discovered per format.
var formatExtensions = map[Format]map[string]bool{
	FormatYAML: {".yaml": true, ".yml": true},
	FormatTOML: {".toml": true},
}

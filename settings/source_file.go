package settings

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// FileSource is a single-file configuration source.
type FileSource struct {
	path     string
	format   Format
	priority int
	optional bool
}

// NewFileSource creates a file source. A missing file is an error
// (ErrNotFound); use NewOptionalFileSource for overlay files that may be
// absent.
func NewFileSource(path string, format Format, priority int) *FileSource {
	return &FileSource{
		path:     path,
		format:   format,
		priority: priority,
	}
}

// NewOptionalFileSource creates a file source that loads zero documents when
// the file does not exist.
func NewOptionalFileSource(path string, format Format, priority int) *FileSource {
	return &FileSource{
		path:     path,
		format:   format,
		priority: priority,
		optional: true,
	}
}

// Name data source name
func (s *FileSource) Name() string {
	return "file:" + s.path
}

// Kind source kind
func (s *FileSource) Kind() Kind {
	return KindFile
}

// Priority source priority
func (s *FileSource) Priority() int {
	return s.priority
}

// Load parses the file into a single document.
func (s *FileSource) Load() ([]Document, error) {
	data, err := parseFile(s.path, s.format)
	if err != nil {
		if s.optional && IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return []Document{{Path: s.path, Data: data}}, nil
}

// parseFile parses one YAML or TOML document into a Mapping.
// Top-level keys mirror the document's keys verbatim (case preserved).
func parseFile(path string, format Format) (Mapping, error) {
	if format != FormatYAML && format != FormatTOML {
		return nil, ErrUnsupportedFormat.
			WithMsgf("unsupported configuration format %q for %s", format, path).
			WithData("path", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound.
				Wrapf(err, "configuration file %s does not exist", path).
				WithData("path", path)
		}
		return nil, fmt.Errorf("read configuration file %s: %w", path, err)
	}

	var doc map[string]any
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(raw, &doc)
	case FormatTOML:
		err = toml.Unmarshal(raw, &doc)
	}
	if err != nil {
		return nil, ErrParse.
			Wrapf(err, "cannot parse %s file %s", format, path).
			WithData("path", path)
	}

	// Empty document parses to nil
	return normalizeMapping(doc), nil
}

package settings

import (
	"sort"
)

// ProvenanceRecord identifies the last source that contributed a top-level
// key. Kept for diagnostics; correctness does not depend on it.
type ProvenanceRecord struct {
	Key    string // top-level key
	Source string // source name (file:..., dir:..., env:...)
	Path   string // contributing file path, empty for environment sources
}

// MergedResult is the terminal output of the pipeline.
type MergedResult struct {
	Data       Mapping
	Provenance map[string]ProvenanceRecord // top-level key -> last contributor
}

// Records returns the provenance records sorted by key.
func (r *MergedResult) Records() []ProvenanceRecord {
	records := make([]ProvenanceRecord, 0, len(r.Provenance))
	for _, rec := range r.Provenance {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Key < records[j].Key })
	return records
}

// mergeDocument deep-merges one source document into the result and records
// provenance for every top-level key the document carries.
func (r *MergedResult) mergeDocument(source Source, doc Document) {
	deepMerge(r.Data, doc.Data)
	for k := range doc.Data {
		r.Provenance[k] = ProvenanceRecord{
			Key:    k,
			Source: source.Name(),
			Path:   doc.Path,
		}
	}
}

// deepMerge merges src into dst, key path by key path: nested mappings merge
// recursively (union of keys), any other value on the src side wins outright.
// Sequences are replaced wholesale, never concatenated. Src values are
// cloned so the merged mapping never aliases a source document.
func deepMerge(dst, src Mapping) {
	for k, sv := range src {
		if dm, ok := dst[k].(Mapping); ok {
			if sm, ok := sv.(Mapping); ok {
				deepMerge(dm, sm)
				continue
			}
		}
		dst[k] = deepCloneValue(sv)
	}
}

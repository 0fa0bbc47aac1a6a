package college

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Index holds the distinct college names known to the game, sorted with a
// locale-aware collator so search results come back in a deterministic order.
// An Index is immutable once built and safe for concurrent readers.
type Index struct {
	names      []string
	normalized []string
}

// NewIndex builds an index from college names. Duplicates and empty names are
// dropped; the rest are sorted by collation order and their normalized forms
// precomputed for matching.
func NewIndex(names []string) *Index {
	seen := make(map[string]struct{}, len(names))
	distinct := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		distinct = append(distinct, name)
	}

	collator := collate.New(language.AmericanEnglish)
	sort.Slice(distinct, func(i, j int) bool {
		return collator.CompareString(distinct[i], distinct[j]) < 0
	})

	normalized := make([]string, len(distinct))
	for i, name := range distinct {
		normalized[i] = Normalize(name)
	}

	return &Index{names: distinct, normalized: normalized}
}

// Names returns the indexed college names in collation order.
func (idx *Index) Names() []string {
	out := make([]string, len(idx.names))
	copy(out, idx.names)
	return out
}

// Search returns colleges whose normalized name contains the normalized
// query. Prefix matches rank before substring matches; within each rank the
// index's collation order is preserved. An empty or blank query returns no
// results rather than the whole index.
func (idx *Index) Search(query string) []string {
	q := Normalize(query)
	if q == "" {
		return nil
	}

	var prefixed, contained []string
	for i, norm := range idx.normalized {
		switch {
		case strings.HasPrefix(norm, q):
			prefixed = append(prefixed, idx.names[i])
		case strings.Contains(norm, q):
			contained = append(contained, idx.names[i])
		}
	}
	return append(prefixed, contained...)
}

// Len returns the number of indexed colleges.
func (idx *Index) Len() int {
	return len(idx.names)
}

package sitesearch

import (
	"strconv"
	"strings"
)

// IndexDoc is the field-tagged unit registered with the index engine.
type IndexDoc struct {
	Title     string `json:"title,omitempty"`
	Name      string `json:"name,omitempty"`
	Text      string `json:"text,omitempty"`
	Component string `json:"component,omitempty"`
	Keyword   string `json:"keyword,omitempty"`
}

// WildcardMode selects the term-expansion stage of the escalating query
// strategy: run the query as typed, then with trailing wildcards, then with
// wildcards on both sides.
type WildcardMode int

const (
	WildcardNone WildcardMode = iota
	WildcardSuffix
	WildcardWrap
)

// String implements fmt.Stringer.
func (m WildcardMode) String() string {
	switch m {
	case WildcardSuffix:
		return "suffix"
	case WildcardWrap:
		return "wrap"
	}
	return "none"
}

// SearchOptions modify a single engine search.
type SearchOptions struct {
	Wildcard WildcardMode

	// Scope restricts matching to the given refs. Empty means the whole
	// index.
	Scope []string
}

// Hit is one match returned by the index engine.
type Hit struct {
	// Ref is the engine reference: a document id, or "<docID>-<titleID>"
	// for section-title entries.
	Ref string

	Score float64

	// Terms maps each matched field name to the query terms that matched
	// in it.
	Terms map[string][]string
}

// Engine is the inverted-index engine consumed as a black box: it indexes
// field-tagged documents under string refs, answers queries in its own
// boolean/wildcard/field-scoped syntax, and serializes its state.
type Engine interface {
	// Add registers a field-tagged document under ref. Stemming applies at
	// indexing time, so engine configuration is fixed before the first Add.
	Add(ref string, doc IndexDoc) error

	// Search runs one query. Malformed query syntax returns EINVALID.
	Search(query string, opts SearchOptions) ([]Hit, error)

	// Save serializes the engine state. Loading the result yields an
	// engine that answers every query identically.
	Save() ([]byte, error)

	// Close releases engine resources.
	Close() error
}

// DocRef returns the engine ref for a document.
func DocRef(id int) string {
	return strconv.Itoa(id)
}

// SectionRef returns the engine ref for one section title of a document, so
// individual section hits are independently addressable in results.
func SectionRef(docID, titleID int) string {
	return strconv.Itoa(docID) + "-" + strconv.Itoa(titleID)
}

// ParseRef splits an engine ref into a document id and an optional section
// title id (zero for document-level refs).
func ParseRef(ref string) (docID, titleID int, err error) {
	docPart, titlePart, found := strings.Cut(ref, "-")
	docID, err = strconv.Atoi(docPart)
	if err != nil || docID < 1 {
		return 0, 0, Errorf(EINVALID, "malformed ref %q", ref)
	}
	if !found {
		return docID, 0, nil
	}
	titleID, err = strconv.Atoi(titlePart)
	if err != nil || titleID < 1 {
		return 0, 0, Errorf(EINVALID, "malformed ref %q", ref)
	}
	return docID, titleID, nil
}

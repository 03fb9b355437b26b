// Package bleve implements the search engine on top of blevesearch/bleve
// with an in-memory index and per-language text analysis.
package bleve

import (
	"sort"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"

	// Language analyzers available for index configuration.
	_ "github.com/blevesearch/bleve/v2/analysis/lang/de"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/en"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/es"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/fr"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/it"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/pt"

	"github.com/fwojciec/sitesearch"
)

// maxHits caps the number of hits returned by a single search.
const maxHits = 500

var supportedLanguages = map[string]bool{
	"de": true,
	"en": true,
	"es": true,
	"fr": true,
	"it": true,
	"pt": true,
}

// analyzedFields are the document fields indexed with language analysis.
// The component field is indexed verbatim for exact filtering.
var analyzedFields = []string{"title", "name", "text", "keyword"}

// Engine is an in-memory search engine over indexed documents. It retains
// every added document so the index can be serialized and rebuilt.
type Engine struct {
	index     bleve.Index
	languages []string
	docs      map[string]sitesearch.IndexDoc
}

var _ sitesearch.Engine = (*Engine)(nil)

// New returns an engine with an empty in-memory index analyzed for the
// given languages. At least one language is required and each must be a
// supported analyzer code.
func New(languages []string) (*Engine, error) {
	if len(languages) == 0 {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "at least one language is required")
	}
	for _, lang := range languages {
		if !supportedLanguages[lang] {
			return nil, sitesearch.Errorf(sitesearch.EINVALID, "unsupported language %q", lang)
		}
	}

	index, err := bleve.NewMemOnly(buildMapping(languages))
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINTERNAL, "failed to create index: %v", err)
	}
	return &Engine{
		index:     index,
		languages: append([]string(nil), languages...),
		docs:      make(map[string]sitesearch.IndexDoc),
	}, nil
}

// buildMapping analyzes text fields with the single configured language,
// or indexes one sub-field per language when several are configured so a
// query matches under any of them.
func buildMapping(languages []string) mapping.IndexMapping {
	m := bleve.NewIndexMapping()

	docMapping := bleve.NewDocumentMapping()
	componentField := bleve.NewTextFieldMapping()
	componentField.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("component", componentField)

	if len(languages) == 1 {
		m.DefaultAnalyzer = languages[0]
	} else {
		for _, field := range analyzedFields {
			fms := make([]*mapping.FieldMapping, 0, len(languages))
			for _, lang := range languages {
				fm := bleve.NewTextFieldMapping()
				fm.Analyzer = lang
				fms = append(fms, fm)
			}
			docMapping.AddFieldMappingsAt(field, fms...)
		}
	}

	m.DefaultMapping = docMapping
	return m
}

// Add indexes doc under ref, replacing any previous document with the
// same ref.
func (e *Engine) Add(ref string, doc sitesearch.IndexDoc) error {
	if ref == "" {
		return sitesearch.Errorf(sitesearch.EINVALID, "ref is required")
	}
	if err := e.index.Index(ref, doc); err != nil {
		return sitesearch.Errorf(sitesearch.EINTERNAL, "failed to index %q: %v", ref, err)
	}
	e.docs[ref] = doc
	return nil
}

// Search runs query against the index and returns scored hits with the
// terms matched per field. A query the engine cannot parse fails with
// EINVALID.
func (e *Engine) Search(queryStr string, opts sitesearch.SearchOptions) ([]sitesearch.Hit, error) {
	q, err := buildQuery(queryStr, opts, e.languages)
	if err != nil {
		return nil, err
	}

	req := bleve.NewSearchRequestOptions(q, maxHits, 0, false)
	req.IncludeLocations = true

	res, err := e.index.Search(req)
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINTERNAL, "search failed: %v", err)
	}

	hits := make([]sitesearch.Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hit := sitesearch.Hit{Ref: h.ID, Score: h.Score}
		if len(h.Locations) > 0 {
			hit.Terms = make(map[string][]string, len(h.Locations))
			for field, terms := range h.Locations {
				matched := make([]string, 0, len(terms))
				for term := range terms {
					matched = append(matched, term)
				}
				sort.Strings(matched)
				hit.Terms[field] = matched
			}
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// DocCount returns the number of indexed documents.
func (e *Engine) DocCount() (uint64, error) {
	n, err := e.index.DocCount()
	if err != nil {
		return 0, sitesearch.Errorf(sitesearch.EINTERNAL, "doc count failed: %v", err)
	}
	return n, nil
}

// Close releases the index.
func (e *Engine) Close() error {
	if err := e.index.Close(); err != nil {
		return sitesearch.Errorf(sitesearch.EINTERNAL, "failed to close index: %v", err)
	}
	return nil
}

// Package search implements the query side of the search artifact: it
// orchestrates trie-scoped engine queries with wildcard escalation and
// resolves engine hits into renderable, highlighted results.
package search

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/highlight"
	"github.com/fwojciec/sitesearch/trie"
)

// DefaultMaxDistance is the edit distance used for title trie probes when
// the client does not configure one.
const DefaultMaxDistance = 3

// Filter restricts results to documents whose field equals a value.
type Filter struct {
	Field string
	Value string
}

// Result is one resolved search hit. Section is set for section-level
// hits; URL then points at the section anchor.
type Result struct {
	Ref        string
	Score      float64
	Doc        *sitesearch.Document
	Section    *sitesearch.SectionTitle
	URL        string
	Highlights map[string][]highlight.Segment
}

// Client answers queries against a loaded search artifact.
type Client struct {
	Engine sitesearch.Engine
	Titles *trie.Trie
	Store  *sitesearch.Store

	// MaxDistance bounds title trie probes; zero means DefaultMaxDistance.
	MaxDistance int

	// SnippetLength bounds highlight windows; zero means the default.
	SnippetLength int

	// Debug enables query diagnostics on Logger.
	Debug  bool
	Logger *slog.Logger
}

// Search runs query against the engine and resolves the hits. The query
// is first probed against the section-title trie; when titles match, the
// engine search is scoped to those documents and their sections, and the
// scope is kept even if it yields nothing. Queries escalate through
// wildcard stages until a stage produces hits. A query the engine rejects
// yields empty results.
func (c *Client) Search(query string, filters ...Filter) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	scope := c.probeTitles(query)

	var hits []sitesearch.Hit
	for _, mode := range []sitesearch.WildcardMode{
		sitesearch.WildcardNone,
		sitesearch.WildcardSuffix,
		sitesearch.WildcardWrap,
	} {
		var err error
		hits, err = c.Engine.Search(query, sitesearch.SearchOptions{Wildcard: mode, Scope: scope})
		if err != nil {
			if sitesearch.ErrorCode(err) == sitesearch.EINVALID {
				c.debugLog("query rejected", "query", query, "error", err)
				return nil, nil
			}
			return nil, err
		}
		if len(hits) > 0 {
			c.debugLog("query matched", "query", query, "wildcard", mode.String(), "hits", len(hits))
			break
		}
	}

	results := make([]Result, 0, len(hits))
	for _, h := range hits {
		r, ok := c.resolve(h)
		if !ok {
			c.debugLog("unresolvable hit", "ref", h.Ref)
			continue
		}
		if !matchesFilters(r.Doc, filters) {
			continue
		}
		c.highlightResult(&r, h.Terms)
		results = append(results, r)
	}
	return results, nil
}

// probeTitles looks the query up in the section-title trie and returns
// the engine refs of every matching document and its sections.
func (c *Client) probeTitles(query string) []string {
	if c.Titles == nil {
		return nil
	}
	maxDistance := c.MaxDistance
	if maxDistance == 0 {
		maxDistance = DefaultMaxDistance
	}

	matches := c.Titles.SearchWithLevenshtein(strings.ToLower(query), maxDistance)
	if len(matches) == 0 {
		return nil
	}

	docIDs := make(map[int]bool)
	for _, m := range matches {
		for _, id := range m.Data {
			docIDs[id] = true
		}
	}

	var refs []string
	for id := range docIDs {
		refs = append(refs, sitesearch.DocRef(id))
		if doc, ok := c.Store.Documents[strconv.Itoa(id)]; ok {
			for _, st := range doc.Titles {
				refs = append(refs, sitesearch.SectionRef(id, st.ID))
			}
		}
	}
	sort.Strings(refs)
	return refs
}

// resolve maps an engine ref back to its document and section.
func (c *Client) resolve(h sitesearch.Hit) (Result, bool) {
	docID, titleID, err := sitesearch.ParseRef(h.Ref)
	if err != nil {
		return Result{}, false
	}
	doc, ok := c.Store.Documents[strconv.Itoa(docID)]
	if !ok {
		return Result{}, false
	}

	r := Result{Ref: h.Ref, Score: h.Score, Doc: doc, URL: doc.URL}
	if titleID > 0 {
		section := doc.SectionByID(titleID)
		if section == nil {
			return Result{}, false
		}
		r.Section = section
		r.URL = doc.URL + "#" + section.Hash
	}
	return r, true
}

func matchesFilters(doc *sitesearch.Document, filters []Filter) bool {
	for _, f := range filters {
		if doc.Field(f.Field) != f.Value {
			return false
		}
	}
	return true
}

// highlightResult renders a highlighted snippet per matched field. For
// section hits the title field highlights the section's own text rather
// than the document title.
func (c *Client) highlightResult(r *Result, terms map[string][]string) {
	if len(terms) == 0 {
		return
	}
	snippetLength := c.SnippetLength
	if snippetLength == 0 {
		snippetLength = sitesearch.DefaultSnippetLength
	}

	fields := make([]string, 0, len(terms))
	for field := range terms {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		text := c.fieldText(r, field)
		if text == "" {
			continue
		}
		var positions []highlight.Position
		for _, term := range terms[field] {
			if p := highlight.FindTermPosition(term, text); p != (highlight.Position{}) {
				positions = append(positions, p)
			}
		}
		if len(positions) == 0 {
			continue
		}
		sort.Slice(positions, func(i, j int) bool { return positions[i].Start < positions[j].Start })
		if r.Highlights == nil {
			r.Highlights = make(map[string][]highlight.Segment)
		}
		r.Highlights[field] = highlight.BuildHighlightedText(text, positions, snippetLength)
	}
}

func (c *Client) fieldText(r *Result, field string) string {
	if field == "title" && r.Section != nil {
		return r.Section.Text
	}
	return r.Doc.Field(field)
}

func (c *Client) debugLog(msg string, args ...any) {
	if !c.Debug || c.Logger == nil {
		return
	}
	c.Logger.Debug(msg, args...)
}

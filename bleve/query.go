package bleve

import (
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/fwojciec/sitesearch"
)

// searchFields are the fields a term without a field prefix is matched
// against. Querying explicit fields instead of the composite _all field
// keeps match locations keyed by the real field names.
var searchFields = []string{"title", "name", "text", "keyword", "component"}

// buildQuery translates a query string and options into a bleve query.
// Malformed query syntax fails with EINVALID. A non-empty scope restricts
// candidates to the given refs.
func buildQuery(queryStr string, opts sitesearch.SearchOptions, languages []string) (query.Query, error) {
	if _, err := bleve.NewQueryStringQuery(queryStr).Parse(); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "invalid query %q: %v", queryStr, err)
	}

	q, err := expandQuery(queryStr, opts.Wildcard, languages)
	if err != nil {
		return nil, err
	}

	if len(opts.Scope) > 0 {
		q = bleve.NewConjunctionQuery(q, bleve.NewDocIDQuery(opts.Scope))
	}
	return q, nil
}

// expandQuery rebuilds queryStr as a boolean query: "+" terms are
// required, "-" terms are prohibited, and "field:term" scopes a term to
// one field. Positive terms use prefix or wildcard matching per mode;
// bleve's query string syntax has no wildcard form, and prohibited terms
// are never wildcarded.
func expandQuery(queryStr string, mode sitesearch.WildcardMode, languages []string) (query.Query, error) {
	bq := bleve.NewBooleanQuery()
	musts := 0
	shoulds := 0

	for _, token := range strings.Fields(queryStr) {
		switch {
		case strings.HasPrefix(token, "-"):
			term := trimToken(strings.TrimPrefix(token, "-"))
			if term == "" {
				continue
			}
			bq.AddMustNot(termQuery(term, sitesearch.WildcardNone, languages))
		case strings.HasPrefix(token, "+"):
			term := trimToken(strings.TrimPrefix(token, "+"))
			if term == "" {
				continue
			}
			bq.AddMust(termQuery(term, mode, languages))
			musts++
		default:
			term := trimToken(token)
			if term == "" {
				continue
			}
			bq.AddShould(termQuery(term, mode, languages))
			shoulds++
		}
	}

	if musts == 0 && shoulds == 0 {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "query %q has no searchable terms", queryStr)
	}
	if musts == 0 {
		bq.SetMinShould(1)
	}
	return bq, nil
}

func trimToken(token string) string {
	return strings.Trim(token, `"`)
}

// termQuery builds the query for a single token. A token with a field
// prefix queries that field; otherwise the term is matched against every
// search field.
func termQuery(token string, mode sitesearch.WildcardMode, languages []string) query.Query {
	if name, rest, ok := strings.Cut(token, ":"); ok && name != "" && rest != "" {
		return fieldQuery(rest, name, mode, languages)
	}

	parts := make([]query.Query, 0, len(searchFields))
	for _, field := range searchFields {
		parts = append(parts, fieldQuery(token, field, mode, languages))
	}
	return bleve.NewDisjunctionQuery(parts...)
}

// fieldQuery queries one field for a term. Match queries run the term
// through each configured language analyzer, so a document indexed under
// any of them can match. Prefix and wildcard queries bypass analysis; their
// terms are lowercased to line up with the indexed tokens.
func fieldQuery(term, field string, mode sitesearch.WildcardMode, languages []string) query.Query {
	switch mode {
	case sitesearch.WildcardSuffix:
		q := bleve.NewPrefixQuery(strings.ToLower(term))
		q.SetField(field)
		return q
	case sitesearch.WildcardWrap:
		q := bleve.NewWildcardQuery("*" + strings.ToLower(term) + "*")
		q.SetField(field)
		return q
	}

	if field == "component" {
		q := bleve.NewMatchQuery(term)
		q.SetField(field)
		return q
	}
	if len(languages) == 1 {
		q := bleve.NewMatchQuery(term)
		q.Analyzer = languages[0]
		q.SetField(field)
		return q
	}
	parts := make([]query.Query, 0, len(languages))
	for _, lang := range languages {
		q := bleve.NewMatchQuery(term)
		q.Analyzer = lang
		q.SetField(field)
		parts = append(parts, q)
	}
	return bleve.NewDisjunctionQuery(parts...)
}

package search_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/highlight"
	"github.com/fwojciec/sitesearch/mock"
	"github.com/fwojciec/sitesearch/search"
	"github.com/fwojciec/sitesearch/trie"
)

func testStore() *sitesearch.Store {
	return &sitesearch.Store{
		Documents: map[string]*sitesearch.Document{
			"1": {
				ID:        1,
				Title:     "Install Guide",
				Text:      "how to install the plugin properly",
				Component: "server",
				Version:   "2.0",
				Name:      "install",
				URL:       "/server/2.0/install",
				Titles: []sitesearch.SectionTitle{
					{Text: "Where To Begin", Hash: "where-to-begin", ID: 1},
					{Text: "Where_To_Begin", Hash: "where-to-begin", ID: 2},
				},
			},
			"2": {
				ID:        2,
				Title:     "Client Setup",
				Text:      "configure the client",
				Component: "client",
				Version:   "1.0",
				Name:      "setup",
				URL:       "/client/1.0/setup",
			},
		},
		ComponentVersions: map[string]sitesearch.ComponentVersion{
			"server/2.0": {Title: "Server", Version: "2.0", URL: "/server/2.0/"},
		},
	}
}

type engineCall struct {
	query string
	opts  sitesearch.SearchOptions
}

func recordingEngine(calls *[]engineCall, results map[sitesearch.WildcardMode][]sitesearch.Hit) *mock.Engine {
	return &mock.Engine{
		SearchFn: func(query string, opts sitesearch.SearchOptions) ([]sitesearch.Hit, error) {
			*calls = append(*calls, engineCall{query: query, opts: opts})
			return results[opts.Wildcard], nil
		},
	}
}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("escalates through wildcard stages in order", func(t *testing.T) {
		t.Parallel()
		var calls []engineCall
		c := &search.Client{
			Engine: recordingEngine(&calls, map[sitesearch.WildcardMode][]sitesearch.Hit{
				sitesearch.WildcardWrap: {{Ref: "1", Score: 1}},
			}),
			Store: testStore(),
		}

		results, err := c.Search("instal")
		require.NoError(t, err)

		require.Len(t, calls, 3)
		assert.Equal(t, sitesearch.WildcardNone, calls[0].opts.Wildcard)
		assert.Equal(t, sitesearch.WildcardSuffix, calls[1].opts.Wildcard)
		assert.Equal(t, sitesearch.WildcardWrap, calls[2].opts.Wildcard)
		require.Len(t, results, 1)
		assert.Equal(t, "Install Guide", results[0].Doc.Title)
	})

	t.Run("stops at the first stage with hits", func(t *testing.T) {
		t.Parallel()
		var calls []engineCall
		c := &search.Client{
			Engine: recordingEngine(&calls, map[sitesearch.WildcardMode][]sitesearch.Hit{
				sitesearch.WildcardNone: {{Ref: "1", Score: 1}},
			}),
			Store: testStore(),
		}

		_, err := c.Search("install")
		require.NoError(t, err)
		assert.Len(t, calls, 1)
	})

	t.Run("title matches scope the engine search", func(t *testing.T) {
		t.Parallel()
		titles := trie.New()
		titles.InsertWithData("where_to_begin", 1)

		var calls []engineCall
		c := &search.Client{
			Engine: recordingEngine(&calls, nil),
			Titles: titles,
			Store:  testStore(),
		}

		results, err := c.Search("where_to_begin")
		require.NoError(t, err)
		assert.Empty(t, results)

		// The scope covers the document and its sections and is kept for
		// every stage even though nothing matched.
		require.Len(t, calls, 3)
		for _, call := range calls {
			assert.Equal(t, []string{"1", "1-1", "1-2"}, call.opts.Scope)
		}
	})

	t.Run("no title match leaves the search unscoped", func(t *testing.T) {
		t.Parallel()
		titles := trie.New()
		titles.InsertWithData("where_to_begin", 1)

		var calls []engineCall
		c := &search.Client{
			Engine: recordingEngine(&calls, nil),
			Titles: titles,
			Store:  testStore(),
		}

		_, err := c.Search("completely unrelated words")
		require.NoError(t, err)
		require.Len(t, calls, 3)
		for _, call := range calls {
			assert.Empty(t, call.opts.Scope)
		}
	})

	t.Run("rejected query yields empty results", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		c := &search.Client{
			Engine: &mock.Engine{SearchFn: func(string, sitesearch.SearchOptions) ([]sitesearch.Hit, error) {
				return nil, sitesearch.Errorf(sitesearch.EINVALID, "bad syntax")
			}},
			Store:  testStore(),
			Debug:  true,
			Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		}

		results, err := c.Search(`"unclosed`)
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Contains(t, buf.String(), "query rejected")
	})

	t.Run("engine failures propagate", func(t *testing.T) {
		t.Parallel()
		c := &search.Client{
			Engine: &mock.Engine{SearchFn: func(string, sitesearch.SearchOptions) ([]sitesearch.Hit, error) {
				return nil, sitesearch.Errorf(sitesearch.EINTERNAL, "index gone")
			}},
			Store: testStore(),
		}

		_, err := c.Search("install")
		assert.Equal(t, sitesearch.EINTERNAL, sitesearch.ErrorCode(err))
	})

	t.Run("section hits resolve to anchored URLs", func(t *testing.T) {
		t.Parallel()
		var calls []engineCall
		c := &search.Client{
			Engine: recordingEngine(&calls, map[sitesearch.WildcardMode][]sitesearch.Hit{
				sitesearch.WildcardNone: {{Ref: "1-1", Score: 1}},
			}),
			Store: testStore(),
		}

		results, err := c.Search("begin")
		require.NoError(t, err)

		require.Len(t, results, 1)
		require.NotNil(t, results[0].Section)
		assert.Equal(t, "Where To Begin", results[0].Section.Text)
		assert.Equal(t, "/server/2.0/install#where-to-begin", results[0].URL)
	})

	t.Run("unresolvable hits are dropped", func(t *testing.T) {
		t.Parallel()
		var calls []engineCall
		c := &search.Client{
			Engine: recordingEngine(&calls, map[sitesearch.WildcardMode][]sitesearch.Hit{
				sitesearch.WildcardNone: {
					{Ref: "99", Score: 3},
					{Ref: "not-a-ref", Score: 2},
					{Ref: "1-99", Score: 2},
					{Ref: "1", Score: 1},
				},
			}),
			Store: testStore(),
		}

		results, err := c.Search("install")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "1", results[0].Ref)
	})

	t.Run("filters restrict results by document field", func(t *testing.T) {
		t.Parallel()
		var calls []engineCall
		c := &search.Client{
			Engine: recordingEngine(&calls, map[sitesearch.WildcardMode][]sitesearch.Hit{
				sitesearch.WildcardNone: {{Ref: "1", Score: 2}, {Ref: "2", Score: 1}},
			}),
			Store: testStore(),
		}

		results, err := c.Search("the", search.Filter{Field: "component", Value: "client"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Client Setup", results[0].Doc.Title)
	})

	t.Run("highlights matched terms in their fields", func(t *testing.T) {
		t.Parallel()
		c := &search.Client{
			Engine: &mock.Engine{SearchFn: func(query string, opts sitesearch.SearchOptions) ([]sitesearch.Hit, error) {
				return []sitesearch.Hit{{Ref: "1", Score: 1, Terms: map[string][]string{"text": {"install"}}}}, nil
			}},
			Store: testStore(),
		}

		results, err := c.Search("install")
		require.NoError(t, err)

		require.Len(t, results, 1)
		segs := results[0].Highlights["text"]
		require.NotEmpty(t, segs)
		var marked []string
		for _, s := range segs {
			if s.Type == highlight.Mark {
				marked = append(marked, s.Value)
			}
		}
		assert.Equal(t, []string{"install"}, marked)
	})

	t.Run("section hits highlight the section title", func(t *testing.T) {
		t.Parallel()
		c := &search.Client{
			Engine: &mock.Engine{SearchFn: func(query string, opts sitesearch.SearchOptions) ([]sitesearch.Hit, error) {
				return []sitesearch.Hit{{Ref: "1-1", Score: 1, Terms: map[string][]string{"title": {"begin"}}}}, nil
			}},
			Store: testStore(),
		}

		results, err := c.Search("begin")
		require.NoError(t, err)

		require.Len(t, results, 1)
		segs := results[0].Highlights["title"]
		require.NotEmpty(t, segs)
		found := false
		for _, s := range segs {
			if s.Type == highlight.Mark && s.Value == "Begin" {
				found = true
			}
		}
		assert.True(t, found, "expected the section text to carry the mark: %v", segs)
	})

	t.Run("blank query does nothing", func(t *testing.T) {
		t.Parallel()
		c := &search.Client{
			Engine: &mock.Engine{SearchFn: func(string, sitesearch.SearchOptions) ([]sitesearch.Hit, error) {
				t.Fatal("engine searched for a blank query")
				return nil, nil
			}},
			Store: testStore(),
		}

		results, err := c.Search("   ")
		require.NoError(t, err)
		assert.Nil(t, results)
	})
}

func TestClient_GroupResults(t *testing.T) {
	t.Parallel()

	store := testStore()
	c := &search.Client{Store: store}
	results := []search.Result{
		{Ref: "1", Doc: store.Documents["1"]},
		{Ref: "1-1", Doc: store.Documents["1"]},
		{Ref: "2", Doc: store.Documents["2"]},
	}

	groups := c.GroupResults(results)

	require.Len(t, groups, 2)
	assert.Equal(t, "server", groups[0].Component)
	assert.Len(t, groups[0].Results, 2)
	require.NotNil(t, groups[0].Meta)
	assert.Equal(t, "Server", groups[0].Meta.Title)
	assert.Equal(t, "client", groups[1].Component)
	assert.Nil(t, groups[1].Meta)
	assert.Len(t, groups[1].Results, 1)
}

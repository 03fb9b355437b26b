package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/bleve"
	"github.com/fwojciec/sitesearch/fs"
	"github.com/fwojciec/sitesearch/highlight"
	"github.com/fwojciec/sitesearch/search"
	sslog "github.com/fwojciec/sitesearch/slog"
	"github.com/fwojciec/sitesearch/trie"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	script, err := os.ReadFile(c.Index)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Run 'sitesearch build' first, or point -i at the artifact script")
		return fmt.Errorf("failed to read index at %q: %w", c.Index, err)
	}

	artifact, err := fs.DecodeScript(string(script))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	var engine sitesearch.Engine
	engine, err = bleve.Load(artifact.Index)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	defer engine.Close()
	if c.Debug {
		engine = sslog.NewLoggingEngine(engine, deps.Logger)
	}

	titles := trie.New()
	if len(artifact.Store.Trie) > 0 {
		if err := titles.Load(string(artifact.Store.Trie)); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
			return err
		}
	}

	client := &search.Client{
		Engine:        engine,
		Titles:        titles,
		Store:         &artifact.Store,
		MaxDistance:   c.Distance,
		SnippetLength: c.Snippet,
		Debug:         c.Debug,
		Logger:        deps.Logger,
	}

	var filters []search.Filter
	if c.Component != "" {
		filters = append(filters, search.Filter{Field: "component", Value: c.Component})
	}

	results, err := client.Search(c.Query, filters...)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}

	for _, g := range client.GroupResults(results) {
		title := g.Component
		if g.Meta != nil {
			title = g.Meta.Title
		}
		fmt.Fprintf(deps.Stdout, "%s %s\n", title, g.Version)
		for _, r := range g.Results {
			name := r.Doc.Title
			if r.Section != nil {
				name = name + " » " + r.Section.Text
			}
			fmt.Fprintf(deps.Stdout, "  %s\n    %s\n", name, r.URL)
			if snippet := renderSegments(r.Highlights["text"]); snippet != "" {
				fmt.Fprintf(deps.Stdout, "    %s\n", snippet)
			}
		}
	}
	return nil
}

// renderSegments renders a highlighted snippet with marked spans in bold.
func renderSegments(segments []highlight.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Type == highlight.Mark {
			b.WriteString("**")
			b.WriteString(s.Value)
			b.WriteString("**")
		} else {
			b.WriteString(s.Value)
		}
	}
	return b.String()
}

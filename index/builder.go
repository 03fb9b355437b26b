// Package index builds the search artifact for a documentation site: it
// extracts page content, feeds the search engine and the section-title
// trie, and assembles the serialized store shipped to the browser.
package index

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/trie"
)

// exportExcerptLength is the maximum length in runes of a document excerpt
// in the docs export.
const exportExcerptLength = 240

// Builder assembles a search artifact from a site's pages.
type Builder struct {
	Extractor sitesearch.Extractor

	// NewEngine creates the engine documents are indexed into.
	NewEngine func(languages []string) (sitesearch.Engine, error)

	// Converter renders content HTML to text for export excerpts.
	// Optional; without it excerpts fall back to extracted page text.
	Converter sitesearch.Converter

	Logger *slog.Logger
}

// Output is the result of a build: the artifact to publish and a
// plain-text export of the indexed documents.
type Output struct {
	Artifact   *sitesearch.Artifact
	DocsExport string
}

// Build indexes every publishable page of site and returns the artifact.
// Pages that fail extraction are skipped with a warning; invalid pages
// fail the whole build with EINVALID. When no page yields an indexable
// document there is nothing to publish and Build returns nil.
func (b *Builder) Build(ctx context.Context, site *sitesearch.Site, cfg sitesearch.Config) (*Output, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, p := range site.Pages {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	engine, err := b.NewEngine(cfg.Languages)
	if err != nil {
		return nil, err
	}
	defer engine.Close()

	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	titles := trie.New()
	indexed := make(map[string]map[int]bool)
	store := sitesearch.Store{
		Documents:         make(map[string]*sitesearch.Document),
		ComponentVersions: site.ComponentVersions,
	}
	var entries []sitesearch.IndexEntry

	nextID := 1
	for _, p := range site.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !p.Publishable || p.NoIndex {
			continue
		}
		if cfg.IndexLatestOnly && !site.IsLatest(p) {
			continue
		}

		contents, err := p.Contents()
		if err != nil {
			logger.Warn("skipping unreadable page", "url", p.URL, "error", err)
			continue
		}
		ext, err := b.Extractor.Extract(contents)
		if err != nil {
			logger.Warn("skipping unparseable page", "url", p.URL, "error", err)
			continue
		}
		if ext.Noindex {
			logger.Debug("skipping noindex page", "url", p.URL)
			continue
		}

		id := nextID
		nextID++

		doc := &sitesearch.Document{
			ID:        id,
			Title:     ext.Title,
			Text:      ext.Text,
			Component: p.Component,
			Version:   p.Version,
			Module:    p.Module,
			Name:      p.Name(),
			URL:       p.URL,
			Keyword:   p.Keywords,
			Titles:    sectionTitles(ext.Titles),
		}
		if doc.Title == "" {
			doc.Title = p.Name()
		}
		if doc.Keyword == "" {
			doc.Keyword = ext.Keywords
		}

		if err := engine.Add(sitesearch.DocRef(id), sitesearch.IndexDoc{
			Title:     doc.Title,
			Name:      doc.Name,
			Text:      doc.Text,
			Component: doc.Component,
			Keyword:   doc.Keyword,
		}); err != nil {
			return nil, err
		}
		for _, st := range doc.Titles {
			if err := engine.Add(sitesearch.SectionRef(id, st.ID), sitesearch.IndexDoc{
				Title:     st.Text,
				Component: doc.Component,
			}); err != nil {
				return nil, err
			}
			insertTitleTerm(titles, indexed, st.Text, id)
		}

		store.Documents[strconv.Itoa(id)] = doc
		entries = append(entries, sitesearch.IndexEntry{Doc: doc, Excerpt: b.excerpt(ext)})
	}

	if len(store.Documents) == 0 {
		logger.Info("no indexable documents, nothing to publish")
		return nil, nil
	}

	engineData, err := engine.Save()
	if err != nil {
		return nil, err
	}
	trieData, err := titles.Save()
	if err != nil {
		return nil, err
	}
	store.Trie = json.RawMessage(trieData)

	logger.Info("index built", "documents", len(store.Documents))
	return &Output{
		Artifact: &sitesearch.Artifact{
			Index: json.RawMessage(engineData),
			Store: store,
		},
		DocsExport: sitesearch.FormatIndex(entries),
	}, nil
}

// sectionTitles assigns sequential ids to the extracted section titles.
// A multi-word title additionally gets an underscore-joined variant with
// the next id and the same hash, so the joined spelling resolves to the
// same anchor.
func sectionTitles(extracted []sitesearch.SectionTitle) []sitesearch.SectionTitle {
	out := make([]sitesearch.SectionTitle, 0, len(extracted))
	nextID := 1
	for _, st := range extracted {
		out = append(out, sitesearch.SectionTitle{Text: st.Text, Hash: st.Hash, ID: nextID})
		nextID++
		joined := strings.Join(strings.Fields(st.Text), "_")
		if joined != st.Text {
			out = append(out, sitesearch.SectionTitle{Text: joined, Hash: st.Hash, ID: nextID})
			nextID++
		}
	}
	return out
}

// insertTitleTerm feeds a section title into the trie as a single
// lowercase underscore-joined term, guarding against duplicate
// (term, docID) pairs since the trie itself does not deduplicate.
func insertTitleTerm(titles *trie.Trie, indexed map[string]map[int]bool, title string, docID int) {
	term := strings.ToLower(strings.Join(strings.Fields(title), "_"))
	if term == "" {
		return
	}
	if indexed[term] == nil {
		indexed[term] = make(map[int]bool)
	}
	if indexed[term][docID] {
		return
	}
	indexed[term][docID] = true
	titles.InsertWithData(term, docID)
}

// excerpt derives the export excerpt for a document, preferring converted
// content over raw extracted text.
func (b *Builder) excerpt(ext *sitesearch.Extraction) string {
	text := ext.Text
	if b.Converter != nil {
		if md, err := b.Converter.Convert(ext.ContentHTML); err == nil {
			text = strings.TrimSpace(md)
		}
	}
	runes := []rune(text)
	if len(runes) <= exportExcerptLength {
		return text
	}
	return string(runes[:exportExcerptLength]) + "..."
}

// Package goquery implements HTML content extraction for the search index
// using PuerkitoBio/goquery.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/sitesearch"
)

// DefaultArticleSelector locates the main content region of a page, in
// preference order.
const DefaultArticleSelector = "article.doc, article, main"

// DefaultChromeSelector matches navigation and layout elements removed
// before extraction.
const DefaultChromeSelector = "nav, aside, .pagination, .breadcrumbs, .toolbar"

var whitespaceRe = regexp.MustCompile(`\s+`)

// Extractor extracts indexable content from rendered documentation pages.
type Extractor struct {
	// ArticleSelector locates the content region. The first match wins.
	ArticleSelector string

	// ChromeSelector matches elements stripped from the content region.
	ChromeSelector string
}

// NewExtractor returns an Extractor with the default selectors.
func NewExtractor() *Extractor {
	return &Extractor{
		ArticleSelector: DefaultArticleSelector,
		ChromeSelector:  DefaultChromeSelector,
	}
}

var _ sitesearch.Extractor = (*Extractor)(nil)

// Extract parses html and returns the page title, section titles, and
// flattened body text. A page whose robots meta declares noindex returns
// an Extraction with Noindex set and nothing else; a page without a
// content region fails with ENOTFOUND.
func (e *Extractor) Extract(html string) (*sitesearch.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "failed to parse HTML: %v", err)
	}

	if hasNoindexMeta(doc) {
		return &sitesearch.Extraction{Noindex: true}, nil
	}

	article := findContentRegion(doc, e.ArticleSelector)
	if article == nil {
		return nil, sitesearch.Errorf(sitesearch.ENOTFOUND, "no content region matching %q", e.ArticleSelector)
	}

	article.Find(e.ChromeSelector).Remove()

	extraction := &sitesearch.Extraction{Keywords: keywordsMeta(doc)}
	h1 := article.Find("h1").First()
	if h1.Length() > 0 {
		extraction.Title = strings.TrimSpace(h1.Text())
		h1.Remove()
	}

	// Content HTML is captured after chrome and title removal but before
	// section headings are stripped, so downstream conversion keeps the
	// document structure.
	contentHTML, err := article.Html()
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINTERNAL, "failed to render content region: %v", err)
	}
	extraction.ContentHTML = contentHTML

	headings := article.Find("h2, h3, h4, h5, h6")
	headings.Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		hash, ok := sel.Attr("id")
		if !ok || hash == "" {
			hash = GenerateAnchor(text)
		}
		extraction.Titles = append(extraction.Titles, sitesearch.SectionTitle{
			Text: text,
			Hash: hash,
		})
	})
	headings.Remove()

	extraction.Text = strings.TrimSpace(whitespaceRe.ReplaceAllString(article.Text(), " "))
	return extraction, nil
}

// findContentRegion tries each comma-separated selector in order and
// returns the first element matched by the earliest selector that matches
// anything, so "article.doc, article, main" is a preference list rather
// than a plain selector group.
func findContentRegion(doc *goquery.Document, selectors string) *goquery.Selection {
	for _, s := range strings.Split(selectors, ",") {
		sel := doc.Find(strings.TrimSpace(s)).First()
		if sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// keywordsMeta returns the content of the document's keywords meta tag.
func keywordsMeta(doc *goquery.Document) string {
	content, _ := doc.Find(`meta[name="keywords"]`).First().Attr("content")
	return strings.TrimSpace(content)
}

// hasNoindexMeta reports whether the document's robots meta tag contains a
// noindex directive.
func hasNoindexMeta(doc *goquery.Document) bool {
	noindex := false
	doc.Find(`meta[name="robots"]`).Each(func(_ int, sel *goquery.Selection) {
		content, _ := sel.Attr("content")
		for _, directive := range strings.Split(content, ",") {
			if strings.EqualFold(strings.TrimSpace(directive), "noindex") {
				noindex = true
			}
		}
	})
	return noindex
}

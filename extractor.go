package sitesearch

// Extraction holds the indexable content of one page.
type Extraction struct {
	// Title is the text of the first top-level heading, or empty.
	Title string

	// Titles are the remaining headings (levels 2-6) in document order.
	// Ids are assigned later, at index time.
	Titles []SectionTitle

	// Text is the normalized plain body text, excluding all headings.
	Text string

	// ContentHTML is the chrome-stripped article markup, retained for the
	// documents export.
	ContentHTML string

	// Keywords is the content of the page's keywords meta tag, if any.
	Keywords string

	// Noindex reports a robots noindex directive in the page markup. When
	// set, no other field is populated.
	Noindex bool
}

// Extractor extracts indexable content from rendered page markup.
type Extractor interface {
	// Extract processes raw HTML and returns the page's indexable content.
	// Only the primary article region is visible to extraction; navigation
	// and pagination chrome never reach the output.
	Extract(html string) (*Extraction, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input should be
	// clean article HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}

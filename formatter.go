package sitesearch

import "strings"

// IndexEntry pairs an indexed document with its export excerpt.
type IndexEntry struct {
	Doc     *Document
	Excerpt string
}

// FormatIndex renders a structured text summary of every indexed document
// for human or LLM consumption: title and link, section titles and links,
// keywords, and a short excerpt. Documents are grouped by component/version
// in stream order; blocks are separated by blank lines.
func FormatIndex(entries []IndexEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var blocks []string
	var component, version string
	for _, e := range entries {
		doc := e.Doc
		if doc.Component != component || doc.Version != version {
			blocks = append(blocks, "# "+doc.Component+" "+doc.Version)
			component, version = doc.Component, doc.Version
		}

		header := doc.Title
		if header == "" {
			header = doc.Name
		}

		var b strings.Builder
		b.WriteString("## " + header + " (" + doc.URL + ")")
		if doc.Keyword != "" {
			b.WriteString("\nKeywords: " + doc.Keyword)
		}
		for _, st := range doc.Titles {
			b.WriteString("\n- " + st.Text + " (" + doc.URL + "#" + st.Hash + ")")
		}
		if e.Excerpt != "" {
			b.WriteString("\n\n" + e.Excerpt)
		}
		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

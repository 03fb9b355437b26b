package sitesearch

// Document represents one indexed documentation page.
type Document struct {
	// ID is unique per build, assigned by insertion order starting at 1.
	// Ids are dense: excluded pages never consume one.
	ID int `json:"id"`

	// Title is the text of the page's first top-level heading, or empty.
	Title string `json:"title"`

	// Text is the normalized body text: entity-decoded, tag-stripped,
	// whitespace-collapsed, excluding headings and navigation chrome.
	Text string `json:"text"`

	// Provenance copied from the source page.
	Component string `json:"component"`
	Version   string `json:"version"`
	Module    string `json:"module,omitempty"`
	Name      string `json:"name"`

	// URL is the site-relative URL for the page, never absolute.
	URL string `json:"url"`

	// Keyword is an optional free-text keyword string.
	Keyword string `json:"keyword,omitempty"`

	// Titles are the page's section headings in document order.
	Titles []SectionTitle `json:"titles"`
}

// SectionTitle is one heading (level 2-6) inside a document. A document
// exclusively owns its SectionTitle sequence.
type SectionTitle struct {
	// Text is the heading text as found.
	Text string `json:"text"`

	// Hash is the heading's anchor identifier, used to build a same-page
	// fragment link.
	Hash string `json:"hash"`

	// ID is unique within the owning document, starting at 1, assigned in
	// document order.
	ID int `json:"id"`
}

// Field returns the named search field's value, or empty for unknown names.
func (d *Document) Field(name string) string {
	switch name {
	case "title":
		return d.Title
	case "text":
		return d.Text
	case "component":
		return d.Component
	case "version":
		return d.Version
	case "name":
		return d.Name
	case "keyword":
		return d.Keyword
	}
	return ""
}

// SectionByID returns the section title with the given per-document id, or
// nil if the document has no such section.
func (d *Document) SectionByID(id int) *SectionTitle {
	for i := range d.Titles {
		if d.Titles[i].ID == id {
			return &d.Titles[i]
		}
	}
	return nil
}

// ComponentVersion holds display metadata for one version of a site
// component. The store keys these as "component/version".
type ComponentVersion struct {
	Title          string `json:"title"`
	Version        string `json:"version"`
	DisplayVersion string `json:"displayVersion,omitempty"`
	URL            string `json:"url,omitempty"`
}

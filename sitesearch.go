// Package sitesearch builds an offline full-text search index for a static
// documentation site. It extracts indexable text from rendered pages, feeds
// documents and section titles into an inverted-index engine and into a
// typo-tolerant title trie, and emits a single self-contained artifact that
// search clients load read-only.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, bleve/) or their role
// (e.g., trie/, highlight/, index/, search/).
package sitesearch

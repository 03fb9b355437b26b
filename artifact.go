package sitesearch

import "encoding/json"

// Store is the document-side half of a search artifact: everything a client
// needs to resolve engine refs back into renderable results.
type Store struct {
	// Documents is keyed by string document id.
	Documents map[string]*Document `json:"documents"`

	// ComponentVersions maps "component/version" to version metadata for
	// every known component, indexed or not.
	ComponentVersions map[string]ComponentVersion `json:"componentVersions"`

	// Trie is the serialized title trie.
	Trie json.RawMessage `json:"trie"`
}

// Artifact is the build output: the serialized inverted-index state plus the
// document store. It is produced once per site build, is immutable
// thereafter, and is consumed read-only by search clients.
type Artifact struct {
	Index json.RawMessage `json:"index"`
	Store Store           `json:"store"`
}

package bleve

import (
	"encoding/json"
	"sort"

	"github.com/fwojciec/sitesearch"
)

// snapshot is the serialized form of an engine: the configured languages
// plus every indexed document. A memory-only index has no byte-level
// export, so loading rebuilds the index from the documents; analysis is
// deterministic, so the rebuilt index answers queries identically.
type snapshot struct {
	Languages []string                       `json:"languages"`
	Docs      map[string]sitesearch.IndexDoc `json:"docs"`
}

// Save serializes the engine so Load can reconstruct it.
func (e *Engine) Save() ([]byte, error) {
	b, err := json.Marshal(snapshot{Languages: e.languages, Docs: e.docs})
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINTERNAL, "marshal index: %v", err)
	}
	return b, nil
}

// Load reconstructs an engine from data produced by Save. Documents are
// re-indexed in sorted ref order. Corrupt data fails with EINVALID.
func Load(data []byte) (*Engine, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "unmarshal index: %v", err)
	}

	e, err := New(snap.Languages)
	if err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(snap.Docs))
	for ref := range snap.Docs {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	for _, ref := range refs {
		if err := e.Add(ref, snap.Docs[ref]); err != nil {
			e.Close()
			return nil, err
		}
	}
	return e, nil
}

package trie

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/fwojciec/sitesearch"
)

type nodeJSON struct {
	End      bool        `json:"end,omitempty"`
	Data     []int       `json:"data,omitempty"`
	Children []childJSON `json:"children,omitempty"`
}

type childJSON struct {
	Char string   `json:"char"`
	Node nodeJSON `json:"node"`
}

// Save serializes the trie to JSON. Children are emitted as (char, node)
// pairs sorted by character, so equal tries always serialize to equal
// bytes.
func (t *Trie) Save() (string, error) {
	b, err := json.Marshal(encode(t.root))
	if err != nil {
		return "", sitesearch.Errorf(sitesearch.EINTERNAL, "marshal trie: %v", err)
	}
	return string(b), nil
}

func encode(n *node) nodeJSON {
	out := nodeJSON{End: n.end, Data: n.data}
	if len(n.children) == 0 {
		return out
	}
	chars := make([]rune, 0, len(n.children))
	for r := range n.children {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	out.Children = make([]childJSON, 0, len(chars))
	for _, r := range chars {
		out.Children = append(out.Children, childJSON{Char: string(r), Node: encode(n.children[r])})
	}
	return out
}

// Load replaces the trie's contents with the serialized form produced by
// Save. A corrupt or structurally invalid payload fails with EINVALID and
// leaves the trie unchanged.
func (t *Trie) Load(data string) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.DisallowUnknownFields()
	var root nodeJSON
	if err := dec.Decode(&root); err != nil {
		return sitesearch.Errorf(sitesearch.EINVALID, "unmarshal trie: %v", err)
	}
	decoded, err := decode(root)
	if err != nil {
		return err
	}
	t.root = decoded
	return nil
}

func decode(nj nodeJSON) (*node, error) {
	n := newNode()
	n.end = nj.End
	n.data = nj.Data
	for _, c := range nj.Children {
		runes := []rune(c.Char)
		if len(runes) != 1 {
			return nil, sitesearch.Errorf(sitesearch.EINVALID, "invalid trie child char %q", c.Char)
		}
		if _, ok := n.children[runes[0]]; ok {
			return nil, sitesearch.Errorf(sitesearch.EINVALID, "duplicate trie child char %q", c.Char)
		}
		child, err := decode(c.Node)
		if err != nil {
			return nil, err
		}
		n.children[runes[0]] = child
	}
	return n, nil
}

// Package trie implements a character trie over indexed terms with exact
// and bounded edit-distance lookup. Each terminal node carries the document
// ids associated with its term.
package trie

import "sort"

// Match is one indexed term found by a search, with the data of the term's
// terminal node.
type Match struct {
	Word string `json:"word"`
	Data []int  `json:"data"`
}

type node struct {
	children map[rune]*node
	end      bool
	data     []int
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie maps indexed terms to associated document ids. A trie exclusively
// owns its node tree; the tree is acyclic by construction.
type Trie struct {
	root *node
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// InsertWithData inserts term character by character, creating nodes as
// needed, marks the terminal node as a word end, and appends docID to its
// data. Duplicate (term, docID) pairs are not deduplicated; guarding
// against them is the caller's responsibility.
func (t *Trie) InsertWithData(term string, docID int) {
	n := t.root
	for _, r := range term {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}
	n.end = true
	n.data = append(n.data, docID)
}

// SearchWithLevenshtein returns every distinct indexed term whose edit
// distance to query is at most maxDistance, together with each term's data.
// Results are sorted by word. A negative distance matches nothing.
func (t *Trie) SearchWithLevenshtein(query string, maxDistance int) []Match {
	if maxDistance < 0 {
		return nil
	}

	found := make(map[string][]int)
	walk(t.root, nil, []rune(query), 0, maxDistance, maxDistance, found)

	matches := make([]Match, 0, len(found))
	for word, data := range found {
		matches = append(matches, Match{Word: word, Data: data})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Word < matches[j].Word })
	return matches
}

// walk is a depth-first traversal carrying the assembled word, the position
// consumed in the query, and the remaining edit budget. Prefix pruning can
// over- or undercount trailing insertions and deletions, so terminal
// candidates are verified with the full distance before recording.
func walk(n *node, word, query []rune, pos, budget, maxDistance int, found map[string][]int) {
	if pos == len(query) && n.end {
		w := string(word)
		if _, ok := found[w]; !ok && Levenshtein(w, string(query)) <= maxDistance {
			found[w] = append([]int(nil), n.data...)
		}
	}
	if budget < 0 {
		return
	}

	if pos < len(query) {
		// Cost-free match of the next query character.
		if child, ok := n.children[query[pos]]; ok {
			walk(child, append(word, query[pos]), query, pos+1, budget, maxDistance, found)
		}
		// Insertion: consume a query character without descending.
		walk(n, word, query, pos+1, budget-1, maxDistance, found)
	}

	for r, child := range n.children {
		if pos < len(query) {
			if r == query[pos] {
				continue
			}
			// Substitution.
			walk(child, append(word, r), query, pos+1, budget-1, maxDistance, found)
		}
		// Deletion: consume a trie character against the budget. This is
		// the only path once the query is exhausted, finding words that
		// are proper extensions within the budget.
		walk(child, append(word, r), query, pos, budget-1, maxDistance, found)
	}
}

// Levenshtein returns the edit distance between a and b: the minimum number
// of single-character insertions, deletions, and substitutions transforming
// one into the other.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, min(cur[j-1]+1, prev[j-1]+cost))
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/trie"
)

func TestTrie_SaveLoad(t *testing.T) {
	t.Parallel()

	t.Run("round trip preserves search behavior", func(t *testing.T) {
		t.Parallel()
		tr := trie.New()
		tr.InsertWithData("install", 1)
		tr.InsertWithData("installation", 2)
		tr.InsertWithData("empêche", 3)
		tr.InsertWithData("install", 4)

		data, err := tr.Save()
		require.NoError(t, err)

		loaded := trie.New()
		require.NoError(t, loaded.Load(data))

		for _, q := range []string{"install", "installation", "empeche"} {
			assert.Equal(t, tr.SearchWithLevenshtein(q, 2), loaded.SearchWithLevenshtein(q, 2), "query %q", q)
		}
	})

	t.Run("serialization is deterministic", func(t *testing.T) {
		t.Parallel()
		build := func(words []string) *trie.Trie {
			tr := trie.New()
			for i, w := range words {
				tr.InsertWithData(w, i+1)
			}
			return tr
		}

		a, err := build([]string{"zeta", "alpha", "beta"}).Save()
		require.NoError(t, err)
		b, err := build([]string{"zeta", "alpha", "beta"}).Save()
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("empty trie round trips", func(t *testing.T) {
		t.Parallel()
		data, err := trie.New().Save()
		require.NoError(t, err)

		loaded := trie.New()
		require.NoError(t, loaded.Load(data))
		assert.Empty(t, loaded.SearchWithLevenshtein("anything", 3))
	})

	t.Run("invalid JSON fails with EINVALID", func(t *testing.T) {
		t.Parallel()
		tr := trie.New()
		err := tr.Load("{not json")
		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})

	t.Run("unknown fields fail with EINVALID", func(t *testing.T) {
		t.Parallel()
		tr := trie.New()
		err := tr.Load(`{"end":true,"extra":1}`)
		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})

	t.Run("multi-rune child char fails with EINVALID", func(t *testing.T) {
		t.Parallel()
		tr := trie.New()
		err := tr.Load(`{"children":[{"char":"ab","node":{"end":true}}]}`)
		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})

	t.Run("failed load leaves existing contents intact", func(t *testing.T) {
		t.Parallel()
		tr := trie.New()
		tr.InsertWithData("keep", 1)

		require.Error(t, tr.Load("garbage"))

		got := tr.SearchWithLevenshtein("keep", 0)
		require.Len(t, got, 1)
		assert.Equal(t, []int{1}, got[0].Data)
	})
}

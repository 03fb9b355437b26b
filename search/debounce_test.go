package search_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/mock"
	"github.com/fwojciec/sitesearch/search"
)

func TestClient_Debounced(t *testing.T) {
	t.Parallel()

	t.Run("runs only the last queued query", func(t *testing.T) {
		t.Parallel()
		var mu sync.Mutex
		var searched []string
		c := &search.Client{
			Engine: &mock.Engine{SearchFn: func(query string, _ sitesearch.SearchOptions) ([]sitesearch.Hit, error) {
				mu.Lock()
				searched = append(searched, query)
				mu.Unlock()
				return []sitesearch.Hit{{Ref: "1", Score: 1}}, nil
			}},
			Store: testStore(),
		}

		done := make(chan []search.Result, 1)
		queue, cancel := c.Debounced(20*time.Millisecond, func(results []search.Result, err error) {
			require.NoError(t, err)
			done <- results
		})
		defer cancel()

		queue("i")
		queue("in")
		queue("install")

		select {
		case results := <-done:
			require.Len(t, results, 1)
		case <-time.After(2 * time.Second):
			t.Fatal("debounced search never ran")
		}

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, searched, 1)
		assert.Equal(t, "install", searched[0])
	})

	t.Run("cancel discards the pending query", func(t *testing.T) {
		t.Parallel()
		c := &search.Client{
			Engine: &mock.Engine{SearchFn: func(string, sitesearch.SearchOptions) ([]sitesearch.Hit, error) {
				t.Error("search ran after cancel")
				return nil, nil
			}},
			Store: testStore(),
		}

		queue, cancel := c.Debounced(20*time.Millisecond, func([]search.Result, error) {
			t.Error("callback ran after cancel")
		})

		queue("install")
		cancel()
		time.Sleep(100 * time.Millisecond)
	})
}

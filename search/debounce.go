package search

import (
	"sync"
	"time"

	"github.com/romdo/go-debounce"
)

// Debounced returns a queue function for as-you-type searching. Queued
// queries reset a debounce timer; once input pauses for wait, the most
// recently queued query runs and callback receives its outcome. The
// returned cancel function discards any pending query.
func (c *Client) Debounced(wait time.Duration, callback func([]Result, error)) (queue func(query string), cancel func()) {
	var mu sync.Mutex
	var latest string

	debounced, cancel := debounce.New(wait, func() {
		mu.Lock()
		query := latest
		mu.Unlock()
		callback(c.Search(query))
	})

	queue = func(query string) {
		mu.Lock()
		latest = query
		mu.Unlock()
		debounced()
	}
	return queue, cancel
}

package mock

import "github.com/fwojciec/sitesearch"

var _ sitesearch.Engine = (*Engine)(nil)

// Engine is a mock implementation of sitesearch.Engine.
type Engine struct {
	AddFn    func(ref string, doc sitesearch.IndexDoc) error
	SearchFn func(query string, opts sitesearch.SearchOptions) ([]sitesearch.Hit, error)
	SaveFn   func() ([]byte, error)
	CloseFn  func() error
}

func (e *Engine) Add(ref string, doc sitesearch.IndexDoc) error {
	return e.AddFn(ref, doc)
}

func (e *Engine) Search(query string, opts sitesearch.SearchOptions) ([]sitesearch.Hit, error) {
	return e.SearchFn(query, opts)
}

func (e *Engine) Save() ([]byte, error) {
	return e.SaveFn()
}

func (e *Engine) Close() error {
	if e.CloseFn == nil {
		return nil
	}
	return e.CloseFn()
}

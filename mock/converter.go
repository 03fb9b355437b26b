package mock

import "github.com/fwojciec/sitesearch"

var _ sitesearch.Converter = (*Converter)(nil)

// Converter is a mock implementation of sitesearch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

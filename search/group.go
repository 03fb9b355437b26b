package search

import "github.com/fwojciec/sitesearch"

// Group is a run of consecutive results from one component version.
type Group struct {
	Component string
	Version   string

	// Meta is the registered component version, when known.
	Meta *sitesearch.ComponentVersion

	Results []Result
}

// GroupResults splits results into component-version groups, preserving
// stream order: a new group starts whenever the component or version
// changes from the previous result.
func (c *Client) GroupResults(results []Result) []Group {
	var groups []Group
	for _, r := range results {
		n := len(groups)
		if n == 0 || groups[n-1].Component != r.Doc.Component || groups[n-1].Version != r.Doc.Version {
			g := Group{Component: r.Doc.Component, Version: r.Doc.Version}
			if cv, ok := c.Store.ComponentVersions[r.Doc.Component+"/"+r.Doc.Version]; ok {
				g.Meta = &cv
			}
			groups = append(groups, g)
			n++
		}
		groups[n-1].Results = append(groups[n-1].Results, r)
	}
	return groups
}

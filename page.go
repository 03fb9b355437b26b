package sitesearch

import (
	"path"
	"strconv"
	"strings"
)

// Page is one rendered page exposed by the site pipeline for indexing.
type Page struct {
	// Source provenance.
	Component string
	Version   string
	Module    string

	// RelPath is the source-relative path, e.g. "install-foo.adoc".
	RelPath string

	// URL is the site-relative URL the page publishes to.
	URL string

	// Keywords is the page's free-text keyword string, if any.
	Keywords string

	// NoIndex reports the page-level "do not index" content attribute.
	NoIndex bool

	// Publishable reports whether the page has a publish target.
	Publishable bool

	// Contents returns the rendered markup. It is deliberately a function:
	// pages excluded by the attribute checks are never materialized.
	Contents func() (string, error)
}

// Validate returns an error if the page is missing structural data.
func (p *Page) Validate() error {
	if p.Component == "" {
		return Errorf(EINVALID, "page component required")
	}
	if p.Version == "" {
		return Errorf(EINVALID, "page version required")
	}
	if p.RelPath == "" {
		return Errorf(EINVALID, "page source path required")
	}
	if p.Contents == nil {
		return Errorf(EINVALID, "page contents required")
	}
	return nil
}

// Name returns the page's document name: the source file stem.
func (p *Page) Name() string {
	base := path.Base(p.RelPath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// ExtensionStyle controls how source paths map to published URLs.
type ExtensionStyle string

const (
	ExtensionStyleDefault  ExtensionStyle = "default"  // install-foo.html
	ExtensionStyleDrop     ExtensionStyle = "drop"     // install-foo
	ExtensionStyleIndexify ExtensionStyle = "indexify" // install-foo/
)

// PageURL computes the site-relative URL for a page under the given
// extension style. The module segment is omitted for the root module.
func PageURL(p *Page, style ExtensionStyle) string {
	stem := strings.TrimSuffix(p.RelPath, path.Ext(p.RelPath))
	segments := []string{p.Component, p.Version}
	if p.Module != "" && p.Module != "ROOT" {
		segments = append(segments, p.Module)
	}
	segments = append(segments, stem)
	u := "/" + path.Join(segments...)

	switch style {
	case ExtensionStyleDrop:
		return u
	case ExtensionStyleIndexify:
		if path.Base(u) == "index" {
			return strings.TrimSuffix(u, "index")
		}
		return u + "/"
	default:
		return u + ".html"
	}
}

// Site is the build-time input: the page collection, the components/versions
// registry, and the latest-version lookup.
type Site struct {
	Pages []*Page

	// ComponentVersions is keyed "component/version".
	ComponentVersions map[string]ComponentVersion

	// LatestVersions maps component name to its latest version.
	LatestVersions map[string]string
}

// IsLatest reports whether the page belongs to the latest version of its
// component. Components without a registered latest version count as latest.
func (s *Site) IsLatest(p *Page) bool {
	latest, ok := s.LatestVersions[p.Component]
	return !ok || latest == p.Version
}

// CompareVersions orders two version strings, comparing dot-separated
// segments numerically where both sides are numeric and lexically otherwise.
// It returns -1, 0, or 1.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		switch {
		case aerr == nil && berr == nil:
			if an != bn {
				return sign(an - bn)
			}
		default:
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c
			}
		}
	}
	return sign(len(as) - len(bs))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitesearch"
)

// LoadSite reads a rendered site tree laid out as
// component/version/**/*.html and returns it as an indexable Site. Page
// contents are read lazily, so pages the build excludes are never loaded.
// The latest version of each component is the highest by version order.
func LoadSite(baseDir string, style sitesearch.ExtensionStyle) (*sitesearch.Site, error) {
	components, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "read site directory: %v", err)
	}

	site := &sitesearch.Site{
		ComponentVersions: make(map[string]sitesearch.ComponentVersion),
		LatestVersions:    make(map[string]string),
	}

	for _, component := range components {
		if !component.IsDir() {
			continue
		}
		versions, err := os.ReadDir(filepath.Join(baseDir, component.Name()))
		if err != nil {
			return nil, sitesearch.Errorf(sitesearch.EINTERNAL, "read component directory: %v", err)
		}
		for _, version := range versions {
			if !version.IsDir() {
				continue
			}
			if err := loadVersion(site, baseDir, component.Name(), version.Name(), style); err != nil {
				return nil, err
			}
		}
	}
	return site, nil
}

func loadVersion(site *sitesearch.Site, baseDir, component, version string, style sitesearch.ExtensionStyle) error {
	root := filepath.Join(baseDir, component, version)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		p := &sitesearch.Page{
			Component:   component,
			Version:     version,
			RelPath:     filepath.ToSlash(rel),
			Publishable: true,
			Contents:    lazyContents(path),
		}
		p.URL = sitesearch.PageURL(p, style)
		site.Pages = append(site.Pages, p)
		return nil
	})
	if err != nil {
		return sitesearch.Errorf(sitesearch.EINTERNAL, "walk %s/%s: %v", component, version, err)
	}

	site.ComponentVersions[component+"/"+version] = sitesearch.ComponentVersion{
		Title:   component,
		Version: version,
		URL:     "/" + component + "/" + version + "/",
	}
	if latest, ok := site.LatestVersions[component]; !ok || sitesearch.CompareVersions(version, latest) > 0 {
		site.LatestVersions[component] = version
	}
	return nil
}

func lazyContents(path string) func() (string, error) {
	return func() (string, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", sitesearch.Errorf(sitesearch.EINTERNAL, "read page: %v", err)
		}
		return string(b), nil
	}
}

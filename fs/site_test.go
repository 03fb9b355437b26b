package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadSite(t *testing.T) {
	t.Parallel()

	t.Run("loads pages with lazy contents", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "component-a", "2.0", "install-foo.html"), "<article><p>foo</p></article>")
		writeFile(t, filepath.Join(dir, "component-a", "2.0", "guides", "setup.html"), "<article><p>setup</p></article>")
		writeFile(t, filepath.Join(dir, "component-a", "2.0", "notes.txt"), "ignored")

		site, err := fs.LoadSite(dir, sitesearch.ExtensionStyleDrop)
		require.NoError(t, err)

		require.Len(t, site.Pages, 2)
		byRel := map[string]*sitesearch.Page{}
		for _, p := range site.Pages {
			byRel[p.RelPath] = p
		}

		p := byRel["install-foo.html"]
		require.NotNil(t, p)
		assert.Equal(t, "component-a", p.Component)
		assert.Equal(t, "2.0", p.Version)
		assert.Equal(t, "/component-a/2.0/install-foo", p.URL)
		assert.True(t, p.Publishable)

		contents, err := p.Contents()
		require.NoError(t, err)
		assert.Equal(t, "<article><p>foo</p></article>", contents)

		nested := byRel["guides/setup.html"]
		require.NotNil(t, nested)
		assert.Equal(t, "/component-a/2.0/guides/setup", nested.URL)
	})

	t.Run("registers component versions and latest", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "c", "1.0", "a.html"), "x")
		writeFile(t, filepath.Join(dir, "c", "2.0", "a.html"), "x")
		writeFile(t, filepath.Join(dir, "c", "10.0", "a.html"), "x")

		site, err := fs.LoadSite(dir, sitesearch.ExtensionStyleDefault)
		require.NoError(t, err)

		assert.Len(t, site.ComponentVersions, 3)
		assert.Equal(t, "10.0", site.LatestVersions["c"])
		assert.Contains(t, site.ComponentVersions, "c/2.0")
	})

	t.Run("missing directory fails with EINVALID", func(t *testing.T) {
		t.Parallel()
		_, err := fs.LoadSite(filepath.Join(t.TempDir(), "nope"), sitesearch.ExtensionStyleDefault)
		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})
}

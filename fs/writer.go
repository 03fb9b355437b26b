// Package fs reads and writes search artifacts and site trees on disk.
package fs

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/fwojciec/sitesearch"
)

const (
	scriptPrefix = `siteSearchInit("`
	scriptSuffix = "\");\n"

	artifactBase   = "search-index"
	docsExportName = "search-docs.txt"
)

// EncodeScript serializes an artifact into the loader script shipped with
// the site: JSON, gzipped, base64-encoded, and wrapped in a call to the
// client bootstrap function.
func EncodeScript(a *sitesearch.Artifact) (string, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return "", sitesearch.Errorf(sitesearch.EINTERNAL, "marshal artifact: %v", err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return "", sitesearch.Errorf(sitesearch.EINTERNAL, "compress artifact: %v", err)
	}
	if err := zw.Close(); err != nil {
		return "", sitesearch.Errorf(sitesearch.EINTERNAL, "compress artifact: %v", err)
	}

	payload := base64.StdEncoding.EncodeToString(buf.Bytes())
	return scriptPrefix + payload + scriptSuffix, nil
}

// DecodeScript reverses EncodeScript. Anything that does not round trip
// cleanly, from a stray wrapper to truncated compressed bytes, fails with
// EINVALID rather than yielding a partial artifact.
func DecodeScript(script string) (*sitesearch.Artifact, error) {
	s := strings.TrimSpace(script)
	s, ok := strings.CutPrefix(s, scriptPrefix)
	if !ok {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "not an artifact script")
	}
	s, ok = strings.CutSuffix(s, strings.TrimSpace(scriptSuffix))
	if !ok {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "not an artifact script")
	}

	compressed, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "decode artifact payload: %v", err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "decompress artifact: %v", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "decompress artifact: %v", err)
	}
	if err := zr.Close(); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "decompress artifact: %v", err)
	}

	var a sitesearch.Artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "unmarshal artifact: %v", err)
	}
	return &a, nil
}

// Writer writes build outputs to a directory.
type Writer struct {
	baseDir string

	// Fingerprint embeds a content hash in the artifact file name so the
	// file can be served with immutable caching.
	Fingerprint bool
}

// NewWriter creates a Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteArtifact encodes the artifact and writes the loader script,
// returning the path written.
func (w *Writer) WriteArtifact(a *sitesearch.Artifact) (string, error) {
	script, err := EncodeScript(a)
	if err != nil {
		return "", err
	}

	name := artifactBase + ".js"
	if w.Fingerprint {
		name = fmt.Sprintf("%s-%016x.js", artifactBase, xxhash.Sum64([]byte(script)))
	}
	return w.write(name, script)
}

// WriteDocsExport writes the plain-text docs export, returning the path
// written.
func (w *Writer) WriteDocsExport(export string) (string, error) {
	return w.write(docsExportName, export)
}

func (w *Writer) write(name, content string) (string, error) {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", sitesearch.Errorf(sitesearch.EINTERNAL, "create output directory: %v", err)
	}
	path := filepath.Join(w.baseDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", sitesearch.Errorf(sitesearch.EINTERNAL, "write %s: %v", name, err)
	}
	return path, nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/bleve"
	"github.com/fwojciec/sitesearch/fs"
	"github.com/fwojciec/sitesearch/goquery"
	"github.com/fwojciec/sitesearch/htmltomarkdown"
	"github.com/fwojciec/sitesearch/index"
	sslog "github.com/fwojciec/sitesearch/slog"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	site, err := fs.LoadSite(c.SiteDir, sitesearch.ExtensionStyle(c.URLStyle))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	cfg := sitesearch.Config{
		IndexLatestOnly: c.LatestOnly,
		Languages:       c.Languages,
		SnippetLength:   c.Snippet,
	}

	builder := &index.Builder{
		Extractor: sslog.NewLoggingExtractor(goquery.NewExtractor(), deps.Logger),
		NewEngine: func(languages []string) (sitesearch.Engine, error) {
			engine, err := bleve.New(languages)
			if err != nil {
				return nil, err
			}
			return sslog.NewLoggingEngine(engine, deps.Logger), nil
		},
		Converter: htmltomarkdown.NewConverter(),
		Logger:    deps.Logger,
	}

	out, err := builder.Build(deps.Ctx, site, cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	if out == nil {
		fmt.Fprintln(deps.Stdout, "No indexable documents, nothing to publish.")
		return nil
	}

	w := fs.NewWriter(c.Output)
	w.Fingerprint = c.Fingerprint

	path, err := w.WriteArtifact(out.Artifact)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Indexed %d documents.\n", len(out.Artifact.Store.Documents))
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)

	if c.DocsExport {
		exportPath, err := w.WriteDocsExport(out.DocsExport)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", exportPath)
	}
	return nil
}

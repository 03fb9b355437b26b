package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds the execution context shared by all commands.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build  BuildCmd  `cmd:"" help:"Build a search index from a rendered site"`
	Search SearchCmd `cmd:"" help:"Query a built search index"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	SiteDir     string   `arg:"" help:"Rendered site root laid out as component/version/**/*.html"`
	Output      string   `short:"o" default:"." help:"Output directory"`
	Languages   []string `short:"l" default:"en" help:"Index analyzer languages (repeatable)"`
	LatestOnly  bool     `help:"Index only the latest version of each component"`
	URLStyle    string   `enum:"default,drop,indexify" default:"default" help:"Page URL extension style"`
	Snippet     int      `default:"100" help:"Highlight snippet length recorded in the build configuration"`
	Fingerprint bool     `help:"Embed a content hash in the artifact file name"`
	DocsExport  bool     `help:"Also write a plain-text export of the indexed documents"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query     string `arg:"" help:"Search query"`
	Index     string `short:"i" default:"search-index.js" help:"Path to the artifact script"`
	Component string `help:"Restrict results to one component"`
	Distance  int    `default:"3" help:"Edit distance bound for title matching"`
	Snippet   int    `default:"100" help:"Highlight snippet length"`
	Debug     bool   `help:"Log query diagnostics"`
}

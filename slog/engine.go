// Package slog provides logging decorators for the sitesearch interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitesearch"
)

// Ensure LoggingEngine implements sitesearch.Engine.
var _ sitesearch.Engine = (*LoggingEngine)(nil)

// LoggingEngine wraps an Engine with query timing logs.
type LoggingEngine struct {
	next   sitesearch.Engine
	logger *slog.Logger
}

// NewLoggingEngine creates a new LoggingEngine.
func NewLoggingEngine(next sitesearch.Engine, logger *slog.Logger) *LoggingEngine {
	return &LoggingEngine{next: next, logger: logger}
}

// Add delegates to the wrapped engine.
func (e *LoggingEngine) Add(ref string, doc sitesearch.IndexDoc) error {
	return e.next.Add(ref, doc)
}

// Search runs the query on the wrapped engine and logs its outcome.
func (e *LoggingEngine) Search(query string, opts sitesearch.SearchOptions) ([]sitesearch.Hit, error) {
	begin := time.Now()
	hits, err := e.next.Search(query, opts)
	if err != nil {
		e.logger.Warn("search failed",
			"query", query,
			"wildcard", opts.Wildcard.String(),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("search",
		"query", query,
		"wildcard", opts.Wildcard.String(),
		"scoped", len(opts.Scope) > 0,
		"hits", len(hits),
		"duration", time.Since(begin),
	)
	return hits, nil
}

// Save delegates to the wrapped engine.
func (e *LoggingEngine) Save() ([]byte, error) {
	return e.next.Save()
}

// Close delegates to the wrapped engine.
func (e *LoggingEngine) Close() error {
	return e.next.Close()
}

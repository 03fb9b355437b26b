package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitesearch"
)

// Ensure LoggingExtractor implements sitesearch.Extractor.
var _ sitesearch.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-page extraction logging.
type LoggingExtractor struct {
	next   sitesearch.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sitesearch.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract extracts via the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (*sitesearch.Extraction, error) {
	begin := time.Now()
	ext, err := e.next.Extract(html)
	if err != nil {
		e.logger.Warn("extraction failed", "error", err)
		return nil, err
	}
	e.logger.Debug("extraction",
		"title", ext.Title,
		"sections", len(ext.Titles),
		"noindex", ext.Noindex,
		"duration", time.Since(begin),
	)
	return ext, nil
}

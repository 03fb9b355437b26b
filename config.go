package sitesearch

// DefaultSnippetLength bounds highlighted excerpts when no explicit length
// is configured.
const DefaultSnippetLength = 100

// Config controls index generation.
type Config struct {
	// IndexLatestOnly restricts indexing to the latest version of each
	// component.
	IndexLatestOnly bool

	// Languages selects the stemmer/stopword support applied at indexing
	// time. Defaults to English only.
	Languages []string

	// SnippetLength bounds highlighted excerpts, in characters.
	SnippetLength int
}

// DefaultConfig returns the default index generation configuration.
func DefaultConfig() Config {
	return Config{
		Languages:     []string{"en"},
		SnippetLength: DefaultSnippetLength,
	}
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	if len(c.Languages) == 0 {
		return Errorf(EINVALID, "at least one language required")
	}
	for _, lang := range c.Languages {
		if lang == "" {
			return Errorf(EINVALID, "language code must not be empty")
		}
	}
	if c.SnippetLength <= 0 {
		return Errorf(EINVALID, "snippet length must be positive")
	}
	return nil
}

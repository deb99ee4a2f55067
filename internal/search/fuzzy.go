package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// FuzzyProvider matches when the query characters appear in order in any
// value ("mrsl" finds "Maria Silva").
type FuzzyProvider struct {
	opts Options
}

// NewFuzzyProvider creates a new fuzzy search provider.
func NewFuzzyProvider(opts ...Option) Provider {
	return &FuzzyProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if the query fuzzy-matches any non-empty value.
func (p *FuzzyProvider) Match(values []string, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}

	candidates := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			candidates = append(candidates, p.opts.normalize(value))
		}
	}
	if len(candidates) == 0 {
		return false
	}

	return len(fuzzy.Find(p.opts.normalize(query), candidates)) > 0
}

// Name returns the provider name.
func (p *FuzzyProvider) Name() string {
	return ModeFuzzy
}

package search

import (
	"slices"
	"strings"
)

// TokenProvider splits the query on whitespace and requires every token to
// occur in at least one value, so "maria engineering" finds Maria in the
// Engineering department.
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{opts: applyOptions(opts)}
}

func (p *TokenProvider) Match(values []string, query string) bool {
	tokens := strings.Fields(p.opts.normalize(query))
	if len(tokens) == 0 {
		return true
	}

	prepared := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			prepared = append(prepared, p.opts.normalize(value))
		}
	}

	for _, token := range tokens {
		if !slices.ContainsFunc(prepared, func(v string) bool { return strings.Contains(v, token) }) {
			return false
		}
	}
	return true
}

func (p *TokenProvider) Name() string {
	return ModeToken
}

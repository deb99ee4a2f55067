package search

import "strings"

// SubstringProvider matches when any value contains the whole query.
// It is the default for list pages.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{opts: applyOptions(opts)}
}

func (p *SubstringProvider) Match(values []string, query string) bool {
	if query == "" {
		return true
	}
	needle := p.opts.normalize(query)
	for _, value := range values {
		if value != "" && strings.Contains(p.opts.normalize(value), needle) {
			return true
		}
	}
	return false
}

func (p *SubstringProvider) Name() string {
	return ModeSubstring
}

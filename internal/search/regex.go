package search

import (
	"regexp"
	"sync"
)

// maxCachedPatterns bounds the compiled-pattern cache. The browser searches
// on every keystroke, so each prefix of a typed pattern lands here.
const maxCachedPatterns = 128

// RegexProvider matches when any value matches the query as a regular
// expression. A query that does not compile (often a pattern still being
// typed, like "ma[") is matched literally instead.
type RegexProvider struct {
	opts Options

	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

// NewRegexProvider creates a new regex search provider.
func NewRegexProvider(opts ...Option) Provider {
	return &RegexProvider{
		opts:  applyOptions(opts),
		cache: make(map[string]*regexp.Regexp),
	}
}

func (p *RegexProvider) Match(values []string, query string) bool {
	if query == "" {
		return true
	}
	re := p.compile(query)
	for _, value := range values {
		if value != "" && re.MatchString(value) {
			return true
		}
	}
	return false
}

func (p *RegexProvider) compile(pattern string) *regexp.Regexp {
	p.mu.Lock()
	defer p.mu.Unlock()
	if re, ok := p.cache[pattern]; ok {
		return re
	}

	prefix := ""
	if p.opts.CaseInsensitive {
		prefix = "(?i)"
	}
	re, err := regexp.Compile(prefix + pattern)
	if err != nil {
		re = regexp.MustCompile(prefix + regexp.QuoteMeta(pattern))
	}
	if len(p.cache) >= maxCachedPatterns {
		clear(p.cache)
	}
	p.cache[pattern] = re
	return re
}

func (p *RegexProvider) Name() string {
	return ModeRegex
}

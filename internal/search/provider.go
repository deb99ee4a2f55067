// Package search provides a unified search abstraction for list views.
// It supports multiple search strategies (substring, token, regex, fuzzy) through
// a common Provider interface, so every list page matches its search term the
// same way regardless of which entity it shows.
package search

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Provider defines the interface for search providers.
// Implementations receive the searchable string values of one entity and
// report whether the query matches any of them.
type Provider interface {
	// Match returns true if the values match the search query.
	// An empty query always matches.
	Match(values []string, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Provider mode names accepted by ByName.
const (
	ModeSubstring = "substring"
	ModeToken     = "token"
	ModeRegex     = "regex"
	ModeFuzzy     = "fuzzy"
)

// Modes lists every supported provider mode.
var Modes = []string{ModeSubstring, ModeToken, ModeRegex, ModeFuzzy}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool // If true, searches ignore case sensitivity
}

// DefaultOptions returns the default search options.
// List views search case-insensitively.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// normalize prepares s for comparison. Case-insensitive matching uses Unicode
// case folding, so "STRASSE" finds "Straße".
func (o Options) normalize(s string) string {
	if !o.CaseInsensitive {
		return s
	}
	return cases.Fold().String(s)
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ByName creates a provider for the given mode name.
func ByName(mode string, opts ...Option) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeSubstring:
		return NewSubstringProvider(opts...), nil
	case ModeToken:
		return NewTokenProvider(opts...), nil
	case ModeRegex:
		return NewRegexProvider(opts...), nil
	case ModeFuzzy:
		return NewFuzzyProvider(opts...), nil
	default:
		return nil, fmt.Errorf("unknown search mode: %s (must be one of %s)", mode, strings.Join(Modes, ", "))
	}
}

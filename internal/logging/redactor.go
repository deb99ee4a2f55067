package logging

import (
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var keySegments = regexp.MustCompile(`[^a-z0-9]+`)

// redactor masks values whose keys look like credentials.
type redactor struct {
	sensitive map[string]bool
}

func newRedactor() *redactor {
	words := []string{"secret", "password", "token", "bearer", "authorization", "auth", "credential", "key"}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return &redactor{sensitive: m}
}

// redact returns a copy of the flattened key/value pairs with sensitive
// values replaced.
func (r *redactor) redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	out := make([]any, len(pairs))
	copy(out, pairs)
	for i := 0; i+1 < len(out); i += 2 {
		if key, ok := out[i].(string); ok && r.isSensitive(key) {
			out[i+1] = redacted
		}
	}
	return out
}

// isSensitive reports whether any alphanumeric segment of key is a
// sensitive word. "api_token" and "apiToken" are both caught, "monkey" is not.
func (r *redactor) isSensitive(key string) bool {
	for _, part := range keySegments.Split(splitCamel(key), -1) {
		if r.sensitive[part] {
			return true
		}
	}
	return false
}

// splitCamel lowercases key and inserts an underscore at each lower-to-upper
// transition.
func splitCamel(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	var prevLower bool
	for _, c := range key {
		isUpper := c >= 'A' && c <= 'Z'
		if isUpper && prevLower {
			b.WriteByte('_')
		}
		prevLower = c >= 'a' && c <= 'z'
		if isUpper {
			c += 'a' - 'A'
		}
		b.WriteRune(c)
	}
	return b.String()
}

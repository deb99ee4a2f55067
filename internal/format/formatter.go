// Package format writes list pages and collection summaries for the CLI.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cristianoliveira/hrdesk/internal/views"
)

// Formatter writes one page of a list view.
type Formatter interface {
	FormatPage(page views.Page, w io.Writer) error
}

// FormatterType names an output style.
type FormatterType string

const (
	// FormatterTypeTable prints a header, aligned columns and a page footer.
	FormatterTypeTable FormatterType = "table"
	// FormatterTypeCompact prints one tab-separated line per record.
	FormatterTypeCompact FormatterType = "compact"
	// FormatterTypeJSON prints the page document used by the HTTP API.
	FormatterTypeJSON FormatterType = "json"
)

// FormatterTypes lists the accepted --format values.
var FormatterTypes = []string{string(FormatterTypeTable), string(FormatterTypeCompact), string(FormatterTypeJSON)}

// ParseFormatterType validates a --format value. Empty means table.
func ParseFormatterType(s string) (FormatterType, error) {
	switch t := FormatterType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return FormatterTypeTable, nil
	case FormatterTypeTable, FormatterTypeCompact, FormatterTypeJSON:
		return t, nil
	default:
		return "", fmt.Errorf("invalid format %q (must be one of %s)", s, strings.Join(FormatterTypes, ", "))
	}
}

// NewFormatter creates a formatter of the given type. Unknown types print tables.
func NewFormatter(t FormatterType) Formatter {
	switch t {
	case FormatterTypeCompact:
		return &CompactFormatter{}
	case FormatterTypeJSON:
		return &JSONFormatter{Indent: true}
	default:
		return &TableFormatter{}
	}
}

// Footer returns the page line, e.g. "Page 2 of 5  1 [2] 3 4 5".
// It is empty when there are no pages.
func Footer(page views.Page) string {
	if page.TotalPages == 0 {
		return ""
	}
	nums := make([]string, len(page.PageNumbers))
	for i, n := range page.PageNumbers {
		s := strconv.Itoa(n)
		if n == page.Page {
			s = "[" + s + "]"
		}
		nums[i] = s
	}
	return fmt.Sprintf("Page %d of %d  %s", page.Page, page.TotalPages, strings.Join(nums, " "))
}

// NoResults is printed in place of rows when nothing matched.
const NoResults = "No results"

// CompactFormatter prints rows without decoration, for piping into other tools.
type CompactFormatter struct{}

func (f *CompactFormatter) FormatPage(page views.Page, w io.Writer) error {
	for _, row := range page.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

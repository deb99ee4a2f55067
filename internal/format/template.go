package format

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/cristianoliveira/hrdesk/internal/views"
)

// variablePattern matches {{field.path}} placeholders.
var variablePattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// ParseTemplate returns the field paths used by tmpl, without duplicates,
// in order of first use.
func ParseTemplate(tmpl string) []string {
	seen := make(map[string]bool)
	var paths []string
	for _, m := range variablePattern.FindAllStringSubmatch(tmpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			paths = append(paths, m[1])
		}
	}
	return paths
}

// TemplateFormatter prints one line per record by substituting
// {{field.path}} placeholders, e.g. "{{employee.name}}: {{status}}".
// A missing value renders as "-"; an unknown field is an error.
type TemplateFormatter struct {
	Template string
}

func (f *TemplateFormatter) FormatPage(page views.Page, w io.Writer) error {
	if len(ParseTemplate(f.Template)) == 0 {
		return fmt.Errorf("template %q has no {{field}} placeholders", f.Template)
	}
	for i := range page.Items {
		line, err := f.render(page, i)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (f *TemplateFormatter) render(page views.Page, i int) (string, error) {
	var firstErr error
	line := variablePattern.ReplaceAllStringFunc(f.Template, func(match string) string {
		path := variablePattern.FindStringSubmatch(match)[1]
		value, err := page.Cell(i, path)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return value
	})
	if firstErr != nil {
		return "", firstErr
	}
	return strings.ReplaceAll(line, `\t`, "\t"), nil
}

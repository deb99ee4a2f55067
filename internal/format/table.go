package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/cristianoliveira/hrdesk/internal/views"
)

// columnGap separates table columns.
const columnGap = "  "

// TableFormatter prints a summary header, aligned columns and a page footer.
type TableFormatter struct{}

type tableStyles struct {
	summary lipgloss.Style
	header  lipgloss.Style
	footer  lipgloss.Style
	empty   lipgloss.Style
}

// newTableStyles binds styles to w so colors are only emitted on terminals.
func newTableStyles(w io.Writer) tableStyles {
	r := lipgloss.NewRenderer(w)
	return tableStyles{
		summary: r.NewStyle().Bold(true),
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		footer:  r.NewStyle().Faint(true),
		empty:   r.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

func (f *TableFormatter) FormatPage(page views.Page, w io.Writer) error {
	st := newTableStyles(w)
	if _, err := fmt.Fprintln(w, st.summary.Render(page.Summary())); err != nil {
		return err
	}
	if page.Empty() {
		_, err := fmt.Fprintln(w, st.empty.Render(NoResults))
		return err
	}

	widths := make([]int, len(page.Columns))
	headers := make([]string, len(page.Columns))
	for i, c := range page.Columns {
		widths[i] = max(c.Width, lipgloss.Width(c.Header))
		headers[i] = c.Header
	}
	if _, err := fmt.Fprintln(w, st.header.Render(joinCells(headers, widths))); err != nil {
		return err
	}
	for _, row := range page.Rows {
		if _, err := fmt.Fprintln(w, joinCells(row, widths)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, st.footer.Render(Footer(page)))
	return err
}

// joinCells pads or truncates each cell to its column width. The last
// column is not padded.
func joinCells(cells []string, widths []int) string {
	var b strings.Builder
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i > 0 {
			b.WriteString(columnGap)
		}
		b.WriteString(fit(cell, width, i == len(widths)-1))
	}
	return b.String()
}

// fit truncates s to width display cells with an ellipsis, then pads it.
func fit(s string, width int, last bool) string {
	if width <= 0 {
		return s
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if lipgloss.Width(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	if last {
		return s
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

// Package render draws the pieces of the interactive browser that do not
// depend on bubbletea state.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/hrdesk/internal/errors"
	"github.com/cristianoliveira/hrdesk/internal/format"
	"github.com/cristianoliveira/hrdesk/internal/query"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Padding(1, 2)

	statusStyles = map[errors.MessageType]lipgloss.Style{
		errors.MessageTypeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		errors.MessageTypeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		errors.MessageTypeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		errors.MessageTypeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
)

// Header renders the title and the result summary.
func Header(page views.Page, syncing bool) string {
	title := titleStyle.Render("hrdesk · " + page.Kind.String())
	if syncing {
		title += mutedStyle.Render("  syncing…")
	}
	return title + "\n" + summaryStyle.Render(page.Summary())
}

// Columns converts view columns to table columns.
func Columns(cols []views.Column) []table.Column {
	out := make([]table.Column, len(cols))
	for i, c := range cols {
		out[i] = table.Column{Title: c.Header, Width: max(c.Width, lipgloss.Width(c.Header))}
	}
	return out
}

// Rows converts rendered page rows to table rows.
func Rows(rows [][]string) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row(r)
	}
	return out
}

// Empty is shown instead of the table when no record matched.
func Empty() string {
	return emptyStyle.Render(format.NoResults)
}

// Controls describes the active sort and filter, e.g.
// "sort: createdAt desc · status: PENDING".
func Controls(state query.State, filter string) string {
	parts := []string{fmt.Sprintf("sort: %s %s", state.Sort.Field, state.Sort.Order)}
	if filter != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", filter, state.Filters.Value(filter)))
	}
	return mutedStyle.Render(strings.Join(parts, " · "))
}

// Footer renders the page line followed by the controls.
func Footer(page views.Page, controls string) string {
	line := format.Footer(page)
	if line == "" {
		return controls
	}
	return line + "   " + controls
}

// Status renders a status message in its severity color.
func Status(msg errors.Message) string {
	style, ok := statusStyles[msg.Type]
	if !ok {
		style = mutedStyle
	}
	return style.Render(msg.Text)
}

// Help returns the key hints for the current mode. gotoInput is the page
// number typed so far while pendingGoto is set.
func Help(searching, pendingGoto bool, gotoInput string, canMarkRead bool) string {
	switch {
	case searching:
		return mutedStyle.Render("type to search · enter keep · esc clear")
	case pendingGoto:
		return mutedStyle.Render("goto page: " + gotoInput + "_ · enter go · esc cancel")
	}
	hints := "/ search · ←/→ page · g<n> goto · s sort · o order · f filter · r refresh"
	if canMarkRead {
		hints += " · m mark read"
	}
	return mutedStyle.Render(hints + " · q quit")
}

package state

import (
	"slices"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/hrdesk/internal/errors"
	"github.com/cristianoliveira/hrdesk/internal/query"
)

// maxGotoDigits bounds the page number typed after g.
const maxGotoDigits = 6

// handleKeyMsg processes keyboard input for the browser.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.searching {
		return m, m.handleSearchKey(msg)
	}
	if m.pendingGoto {
		m.handleGotoKey(msg)
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "left", "h":
		m.apply(m.state.WithPage(query.PrevPage(m.state.Page)))
	case "right", "l":
		m.apply(m.state.WithPage(query.NextPage(m.state.Page, m.page.TotalPages)))
	case "g":
		m.pendingGoto = true
		m.gotoInput = ""
	case "s":
		m.apply(m.state.WithSort(query.SortSpec{Field: m.nextSortField(), Order: m.state.Sort.Order}))
	case "o":
		m.apply(m.state.WithSort(query.SortSpec{Field: m.state.Sort.Field, Order: m.state.Sort.Order.Toggle()}))
	case "f":
		if def, ok := m.cycleFilter(); ok {
			m.apply(m.state.WithFilter(def.Name, nextValue(def.Values(), m.state.Filters.Value(def.Name))))
		}
	case "r":
		if !m.syncing {
			return m, m.refresh()
		}
	case "m":
		if m.canMarkRead() {
			if id, ok := m.selectedID(); ok {
				return m, m.markRead(id)
			}
		}
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleSearchKey edits the search term. Every change reruns the query
// from page 1.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		if m.state.Search != "" {
			m.apply(m.state.WithSearch(""))
		}
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if term := m.search.Value(); term != m.state.Search {
		m.apply(m.state.WithSearch(term))
	}
	return cmd
}

// handleGotoKey collects the digits of a page number. Enter jumps to it,
// clamped to the page range; Esc or any other key cancels.
func (m *Model) handleGotoKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && isDigit(msg.Runes[0]) {
			if len(m.gotoInput) < maxGotoDigits {
				m.gotoInput += string(msg.Runes)
			}
			return
		}
	case tea.KeyBackspace:
		if m.gotoInput != "" {
			m.gotoInput = m.gotoInput[:len(m.gotoInput)-1]
			return
		}
	case tea.KeyEnter:
		if target, err := strconv.Atoi(m.gotoInput); err == nil && target > 0 {
			m.apply(m.state.WithPage(query.GotoPage(target, m.page.TotalPages)))
		}
	}
	m.pendingGoto = false
	m.gotoInput = ""
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// nextSortField cycles through the sortable columns.
func (m *Model) nextSortField() string {
	cols := m.view.Columns()
	paths := make([]string, 0, len(cols))
	for _, c := range cols {
		if slices.Contains(m.view.SortFields(), c.Path) {
			paths = append(paths, c.Path)
		}
	}
	if len(paths) == 0 {
		return m.state.Sort.Field
	}
	return nextValue(paths, m.state.Sort.Field)
}

// nextValue returns the element after current, wrapping around. An unknown
// current yields the first element.
func nextValue(values []string, current string) string {
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

func (m *Model) markRead(id string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		return markReadDoneMsg{id: id, err: svc.MarkRead(ctx, id)}
	}
}

func expireStatus() tea.Cmd {
	return tea.Tick(errors.StatusTTL+100*time.Millisecond, func(time.Time) tea.Msg {
		return statusExpiredMsg{}
	})
}

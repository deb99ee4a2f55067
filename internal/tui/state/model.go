// Package state holds the bubbletea model of the interactive list browser.
package state

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/hrdesk/internal/app"
	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/errors"
	"github.com/cristianoliveira/hrdesk/internal/query"
	"github.com/cristianoliveira/hrdesk/internal/tui/render"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

// Service is what the browser needs from the application layer.
type Service interface {
	List(kind domain.Kind, state query.State, pageSize int) (views.Page, error)
	Sync(ctx context.Context, kinds ...domain.Kind) ([]app.SyncResult, error)
	MarkRead(ctx context.Context, id string) error
}

// Model is the browser over one collection.
type Model struct {
	ctx      context.Context
	svc      Service
	view     views.View
	pageSize int

	state query.State
	page  views.Page

	search      textinput.Model
	searching   bool
	pendingGoto bool
	gotoInput   string
	syncing     bool

	table  table.Model
	status *errors.TUIHandler
	width  int
}

// NewModel creates a browser for view and runs the first query.
func NewModel(ctx context.Context, svc Service, view views.View, pageSize int) (*Model, error) {
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search " + view.Noun()
	search.CharLimit = 120

	m := &Model{
		ctx:      ctx,
		svc:      svc,
		view:     view,
		pageSize: pageSize,
		state:    query.NewState(view.DefaultSort()),
		search:   search,
		table: table.New(
			table.WithColumns(render.Columns(view.Columns())),
			table.WithFocused(true),
			table.WithHeight(pageSize+1),
		),
		status: errors.NewTUIHandler(),
	}
	if err := m.reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// State returns the current query state.
func (m *Model) State() query.State {
	return m.state
}

// Page returns the page currently shown.
func (m *Model) Page() views.Page {
	return m.page
}

// Restore replaces the query state, e.g. with remembered preferences.
// The previous state is kept when the new one cannot be run.
func (m *Model) Restore(state query.State) error {
	prev := m.state
	m.state = state
	if err := m.reload(); err != nil {
		m.state = prev
		return err
	}
	return nil
}

// Init starts a refresh so the browser shows fresh data.
func (m *Model) Init() tea.Cmd {
	return m.refresh()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetWidth(msg.Width)
		return m, nil
	case syncDoneMsg:
		return m, m.handleSyncDone(msg)
	case markReadDoneMsg:
		return m, m.handleMarkReadDone(msg)
	case statusExpiredMsg:
		return m, nil
	}
	return m, nil
}

// View renders the browser.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(render.Header(m.page, m.syncing))
	b.WriteString("\n")
	if m.searching || m.state.Search != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	if m.page.Empty() {
		b.WriteString(render.Empty())
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n")
	b.WriteString(render.Footer(m.page, render.Controls(m.state, m.filterName())))
	b.WriteString("\n")
	if msg, ok := m.status.Current(); ok {
		b.WriteString(render.Status(msg))
		b.WriteString("\n")
	}
	help := render.Help(m.searching, m.pendingGoto, m.gotoInput, m.canMarkRead())
	if m.width > 0 {
		help = lipgloss.NewStyle().MaxWidth(m.width).Render(help)
	}
	b.WriteString(help)
	return b.String()
}

// reload runs the current state and stores the clamped page back.
func (m *Model) reload() error {
	page, err := m.svc.List(m.view.Kind(), m.state, m.pageSize)
	if err != nil {
		return err
	}
	m.page = page
	m.state = m.state.WithPage(page.Page)
	m.table.SetRows(render.Rows(page.Rows))
	if c := m.table.Cursor(); c >= len(page.Rows) {
		m.table.SetCursor(max(0, len(page.Rows)-1))
	}
	return nil
}

// apply replaces the state and reruns the query, reporting failures.
func (m *Model) apply(next query.State) {
	m.state = next
	if err := m.reload(); err != nil {
		errors.Report(m.status, err)
	}
}

func (m *Model) refresh() tea.Cmd {
	m.syncing = true
	ctx, svc, kind := m.ctx, m.svc, m.view.Kind()
	return func() tea.Msg {
		results, err := svc.Sync(ctx, kind)
		return syncDoneMsg{results: results, err: err}
	}
}

func (m *Model) handleSyncDone(msg syncDoneMsg) tea.Cmd {
	m.syncing = false
	if msg.err != nil {
		m.status.Warning("refresh failed, showing last snapshot: " + errors.Describe(msg.err))
		return expireStatus()
	}
	for _, r := range msg.results {
		if r.Stale {
			return nil
		}
	}
	m.apply(m.state)
	m.status.Success(fmt.Sprintf("refreshed %d %s", m.page.TotalCount, m.page.Noun))
	return expireStatus()
}

func (m *Model) handleMarkReadDone(msg markReadDoneMsg) tea.Cmd {
	if msg.err != nil {
		errors.Report(m.status, msg.err)
		return nil
	}
	m.apply(m.state)
	m.status.Success(fmt.Sprintf("notification %s marked as read", msg.id))
	return expireStatus()
}

func (m *Model) canMarkRead() bool {
	return m.view.Kind() == domain.KindNotifications
}

// filterName returns the first equality filter of the view, the one the f
// key cycles.
func (m *Model) filterName() string {
	if def, ok := m.cycleFilter(); ok {
		return def.Name
	}
	return ""
}

func (m *Model) cycleFilter() (query.FilterDef, bool) {
	for _, def := range m.view.Filters() {
		if def.Type == query.FilterEquals && len(def.Options) > 0 {
			return def, true
		}
	}
	return query.FilterDef{}, false
}

// selectedID returns the id of the record under the cursor.
func (m *Model) selectedID() (string, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.page.Rows) || len(m.page.Rows[i]) == 0 {
		return "", false
	}
	return m.page.Rows[i][0], true
}

package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/hrdesk/cmd"
	"github.com/cristianoliveira/hrdesk/internal/colors"
	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/logging"
	"github.com/cristianoliveira/hrdesk/internal/settings"
	"github.com/cristianoliveira/hrdesk/internal/tui/state"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

type tuiClient interface {
	state.Service
	Registry() *views.Registry
	PageSize() int
	OnWarning(fn func(msg string))
}

// runProgram runs the interactive model and returns its final state.
// Replaced in tests.
var runProgram = func(ctx context.Context, m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
}

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(open func() (tuiClient, error)) *cobra.Command {
	if open == nil {
		panic("NewTUICmd: open dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui <kind>",
		Short: "Browse one kind interactively",
		Long: `Browse one kind interactively. The records are refreshed on start, and
the sort and filters in use on exit are restored next time.

USAGE:
    hrdesk tui <kind>

KEYS:
    /          Search (Enter keeps the term, Esc clears it)
    ←/→, h/l   Previous/next page
    g <n> ⏎    Go to page n
    s, o       Cycle sort field, toggle order
    f          Cycle the first filter's values
    r          Refresh from the HR API
    m          Mark the selected notification as read
    q          Quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			client, err := open()
			if err != nil {
				return err
			}
			view, err := client.Registry().Get(kind)
			if err != nil {
				return err
			}

			// The alternate screen owns the terminal, so sync warnings go to the log file.
			client.OnWarning(func(msg string) {
				logging.Warn("sync warning", "kind", kind.String(), "message", msg)
			})
			model, err := state.NewModel(cmd.Context(), client, view, client.PageSize())
			if err != nil {
				return err
			}

			prefs, err := settings.Load()
			if err != nil {
				logging.Warn("tui settings ignored", "error", err.Error())
				prefs = settings.New()
			}
			if saved, ok := prefs.For(kind); ok {
				if err := model.Restore(settings.Restore(view, saved)); err != nil {
					logging.Warn("tui settings not restored", "kind", kind.String(), "error", err.Error())
				}
			}

			final, err := runProgram(cmd.Context(), model)
			if err != nil {
				return err
			}
			if m, ok := final.(*state.Model); ok {
				prefs.Set(kind, settings.Capture(m.State()))
				if err := settings.Save(prefs); err != nil {
					colors.Warning(fmt.Sprintf("Could not save TUI settings: %v", err))
				}
			}
			return nil
		},
	}
}

func openTUIClient() (tuiClient, error) { return rt.service() }

// tuiCmd represents the tui command
var tuiCmd = NewTUICmd(openTUIClient)

func init() {
	cmd.RootCmd.AddCommand(tuiCmd)
}

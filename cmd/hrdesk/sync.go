package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/hrdesk/cmd"
	"github.com/cristianoliveira/hrdesk/internal/app"
	"github.com/cristianoliveira/hrdesk/internal/colors"
	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/hooks"
)

type syncClient interface {
	Sync(ctx context.Context, kinds ...domain.Kind) ([]app.SyncResult, error)
}

type hookRunner interface {
	Run(ctx context.Context, hookPoint string, env map[string]string) error
}

// NewSyncCmd creates the sync command with explicit dependencies.
// newHooks may return nil to skip hooks.
func NewSyncCmd(open func() (syncClient, error), newHooks func() hookRunner) *cobra.Command {
	if open == nil || newHooks == nil {
		panic("NewSyncCmd: dependencies cannot be nil")
	}

	return &cobra.Command{
		Use:   "sync [kind...]",
		Short: "Fetch records from the HR API",
		Long: `Fetch records from the HR API and replace the local snapshots.

USAGE:
    hrdesk sync [kind...]

Without arguments every kind is fetched. A kind that fails keeps its
previous snapshot. Executables in <hooks_dir>/post-sync/ run after each
kind that synced, with HRDESK_KIND, HRDESK_COUNT and HRDESK_FETCHED_AT set.

OPTIONS:
    -h, --help           Show this help`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := make([]domain.Kind, 0, len(args))
			for _, arg := range args {
				kind, err := domain.ParseKind(arg)
				if err != nil {
					return err
				}
				kinds = append(kinds, kind)
			}
			client, err := open()
			if err != nil {
				return err
			}
			return runSync(cmd.Context(), client, newHooks(), kinds)
		},
	}
}

func runSync(ctx context.Context, client syncClient, runner hookRunner, kinds []domain.Kind) error {
	results, err := client.Sync(ctx, kinds...)
	if len(results) == 0 {
		return err
	}

	failed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			// already reported as a warning by the service
			failed++
		case r.Stale:
			colors.Info(fmt.Sprintf("%s: newer sync in progress, response discarded", r.Kind))
		default:
			colors.Success(fmt.Sprintf("Synced %s %s", humanize.Comma(int64(r.Count)), r.Kind))
			if runner == nil {
				continue
			}
			env := map[string]string{
				"HRDESK_KIND":       r.Kind.String(),
				"HRDESK_COUNT":      strconv.Itoa(r.Count),
				"HRDESK_FETCHED_AT": r.FetchedAt.UTC().Format(time.RFC3339),
			}
			if err := runner.Run(ctx, hooks.PostSync, env); err != nil {
				return err
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("sync failed for %d of %d kinds", failed, len(results))
	}
	return nil
}

func openSyncClient() (syncClient, error) { return rt.service() }

func newHookRunner() hookRunner { return hooks.NewFromConfig() }

// syncCmd represents the sync command
var syncCmd = NewSyncCmd(openSyncClient, newHookRunner)

func init() {
	cmd.RootCmd.AddCommand(syncCmd)
}

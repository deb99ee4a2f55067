package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/hrdesk/cmd"
	"github.com/cristianoliveira/hrdesk/internal/colors"
)

type markReadClient interface {
	MarkRead(ctx context.Context, id string) error
}

// NewMarkReadCmd creates the mark-read command with explicit dependencies.
func NewMarkReadCmd(open func() (markReadClient, error)) *cobra.Command {
	if open == nil {
		panic("NewMarkReadCmd: open dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "mark-read <id>",
		Short: "Mark a notification as read",
		Long: `Mark a notification as read by ID.

USAGE:
    hrdesk mark-read <id>

OPTIONS:
    -h, --help           Show this help`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := open()
			if err != nil {
				return err
			}
			id := args[0]
			if err := client.MarkRead(cmd.Context(), id); err != nil {
				return fmt.Errorf("mark-read: %w", err)
			}
			colors.Success(fmt.Sprintf("Notification %s marked as read", id))
			return nil
		},
	}
}

func openMarkReadClient() (markReadClient, error) { return rt.service() }

// markReadCmd represents the mark-read command
var markReadCmd = NewMarkReadCmd(openMarkReadClient)

func init() {
	cmd.RootCmd.AddCommand(markReadCmd)
}

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/hrdesk/cmd"
	"github.com/cristianoliveira/hrdesk/internal/app"
	"github.com/cristianoliveira/hrdesk/internal/format"
)

type kindsClient interface {
	Kinds() ([]app.KindInfo, error)
}

// NewKindsCmd creates the kinds command with explicit dependencies.
func NewKindsCmd(open func() (kindsClient, error), now func() time.Time) *cobra.Command {
	if open == nil || now == nil {
		panic("NewKindsCmd: dependencies cannot be nil")
	}

	return &cobra.Command{
		Use:   "kinds",
		Short: "Show every kind with its snapshot size and age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := open()
			if err != nil {
				return err
			}
			kinds, err := client.Kinds()
			if err != nil {
				return err
			}
			return format.FormatKinds(kinds, now(), cmd.OutOrStdout())
		},
	}
}

func openKindsClient() (kindsClient, error) { return rt.service() }

// kindsCmd represents the kinds command
var kindsCmd = NewKindsCmd(openKindsClient, time.Now)

func init() {
	cmd.RootCmd.AddCommand(kindsCmd)
}

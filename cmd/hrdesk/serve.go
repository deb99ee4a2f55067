package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/hrdesk/cmd"
	"github.com/cristianoliveira/hrdesk/internal/colors"
	"github.com/cristianoliveira/hrdesk/internal/config"
	"github.com/cristianoliveira/hrdesk/internal/server"
)

// NewServeCmd creates the serve command with explicit dependencies.
func NewServeCmd(open func() (server.Lister, error)) *cobra.Command {
	if open == nil {
		panic("NewServeCmd: open dependency cannot be nil")
	}

	var addr string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve list queries over HTTP",
		Long: `Serve the synced snapshots over a read-only HTTP API.

USAGE:
    hrdesk serve [--addr host:port]

ENDPOINTS:
    GET /api/v1/kinds
    GET /api/v1/{kind}?search=&sort=&order=&page=&page_size=&<filter>=
    GET /health
    GET /metrics

OPTIONS:
    --addr <host:port>   Listen address (default from server_addr)
    -h, --help           Show this help`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := open()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = config.Get("server_addr", "127.0.0.1:8080")
			}
			colors.Info(fmt.Sprintf("Listening on http://%s", addr))
			return server.New(client).Run(cmd.Context(), addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address")
	return serveCmd
}

func openServeClient() (server.Lister, error) { return rt.service() }

// serveCmd represents the serve command
var serveCmd = NewServeCmd(openServeClient)

func init() {
	cmd.RootCmd.AddCommand(serveCmd)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cristianoliveira/hrdesk/cmd"
)

func main() {
	os.Exit(run(cmd.ExecuteContext))
}

// run executes the CLI until it finishes or the process is interrupted,
// and returns the exit code.
func run(execute func(context.Context) error) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer rt.Close()

	if err := execute(ctx); err != nil {
		return 1
	}
	return 0
}

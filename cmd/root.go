// Package cmd holds the root command shared by the hrdesk binary.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/hrdesk/internal/colors"
	"github.com/cristianoliveira/hrdesk/internal/config"
	"github.com/cristianoliveira/hrdesk/internal/errors"
	"github.com/cristianoliveira/hrdesk/internal/logging"
	"github.com/cristianoliveira/hrdesk/internal/version"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "hrdesk",
	Short:         "Browse HR records from the terminal.",
	Long:          `Browse HR records from the terminal.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.ShutdownGlobal()
	},
}

var debugFlag bool

// errorHandler reports the error returned by a command.
var errorHandler errors.ErrorHandler = errors.NewDefaultCLIHandler()

// Execute runs the root command and reports a failure on the console.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext is Execute with a context that commands observe for
// cancellation.
func ExecuteContext(ctx context.Context) error {
	err := RootCmd.ExecuteContext(ctx)
	if err != nil {
		errors.Report(errorHandler, err)
	}
	return err
}

// setup loads configuration and starts the file logger for the command
// being run.
func setup(cmd *cobra.Command) error {
	config.Load()
	if debugFlag {
		config.Set("debug", "true")
	}
	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(cmd.Name()); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
	logging.Debug("command started", "command", cmd.CommandPath(), "args", len(cmd.Flags().Args()))
	return nil
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Print debug output")

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			printCommandHelp(cmd)
			return
		}
		PrintHelp(cmd)
	})
}

// commandOrder is the order commands are listed in the help text.
var commandOrder = []string{
	"list",
	"sync",
	"tui",
	"mark-read",
	"kinds",
	"serve",
	"config",
	"help",
	"version",
}

// outputWriter is where help text goes. Nil means stdout.
var outputWriter io.Writer

func helpWriter() io.Writer {
	if outputWriter != nil {
		return outputWriter
	}
	return os.Stdout
}

// PrintHelp writes the top-level help text for cmd.
func PrintHelp(cmd *cobra.Command) {
	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-20s %s", found.Use, found.Short))
	}

	fmt.Fprintf(helpWriter(), `hrdesk %s

Browse HR records from the terminal.

USAGE:
    hrdesk [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    --debug         Print debug output
    -h, --help      Show help message
`, cmd.Version, strings.Join(cmdLines, "\n"))
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// helpCmd represents the help command
var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show help for hrdesk or one command",
	Long: `Show help for hrdesk or one command.

USAGE:
    hrdesk help [command]`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHelp(cmd.Root(), args)
	},
}

func runHelp(root *cobra.Command, args []string) error {
	if len(args) == 0 {
		PrintHelp(root)
		return nil
	}
	target, _, err := root.Find(args)
	if err != nil || target == root {
		return fmt.Errorf("unknown command %q, see 'hrdesk help'", args[0])
	}
	printCommandHelp(target)
	return nil
}

// printCommandHelp prints the long description of a subcommand, falling
// back to cobra's generated usage.
func printCommandHelp(c *cobra.Command) {
	if c.Long != "" {
		fmt.Fprintln(helpWriter(), c.Long)
		return
	}
	fmt.Fprint(helpWriter(), c.UsageString())
}

func init() {
	RootCmd.SetHelpCommand(helpCmd)
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/hrdesk/internal/version"
)

// versionOutputWriter is where PrintVersion writes. Can be changed for testing.
var versionOutputWriter io.Writer = os.Stdout

// GetVersion returns the short version string.
func GetVersion() string {
	return version.String()
}

// PrintVersion writes the long version line.
func PrintVersion() {
	fmt.Fprintln(versionOutputWriter, version.Long())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		PrintVersion()
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

package format

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/cristianoliveira/hrdesk/internal/app"
)

// FormatKinds prints one line per collection with its snapshot size and age.
func FormatKinds(kinds []app.KindInfo, now time.Time, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tRECORDS\tSYNCED")
	for _, k := range kinds {
		synced := "never"
		if k.Synced() {
			synced = humanize.RelTime(k.FetchedAt, now, "ago", "from now")
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", k.Kind, k.Count, synced)
	}
	return tw.Flush()
}

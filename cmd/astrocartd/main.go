// Command astrocartd exercises the astrocore library end to end: computing
// a birth chart's angular/aspect/paran lines, scoring a single city,
// ranking a catalogue of cities for a life category, running the
// hierarchical grid scout, and rolling city rankings up to the country
// level.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "astrocartd",
		Short: "Astrocartography line, scoring, and ranking engine",
	}
	root.AddCommand(newLinesCmd())
	root.AddCommand(newScoutCmd())
	root.AddCommand(newGridCmd())
	root.AddCommand(newRankCmd())
	return root
}

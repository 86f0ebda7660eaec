// Command bmpfilter is the BMP filter service's client stub (C7):
// submits one request and writes the filtered image to disk, per
// spec.md §4.6. Filter flags are generated by iterating
// internal/filter.Table rather than hand-declaring one cobra flag per
// filter (SUPPLEMENTED FEATURES item 2's derive-don't-duplicate rule).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bmpfilterd/bmpfilterd/api"
	"github.com/bmpfilterd/bmpfilterd/internal/client"
	"github.com/bmpfilterd/bmpfilterd/internal/filter"
)

var selectedFilter *filter.ID

var rootCmd = &cobra.Command{
	Use:   "bmpfilter <input> <output>",
	Short: "BMP image filter client",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if selectedFilter == nil {
			return errors.New("exactly one filter flag is required")
		}
		return runClient(cmd.Context(), args[0], args[1], *selectedFilter)
	},
}

func init() {
	flags := rootCmd.Flags()
	for _, entry := range filter.Table {
		// original_source's short flags (e.g. "bw", "gb5") are often
		// more than one character, which pflag's single-letter
		// shorthand mechanism can't represent; expandShortFlags below
		// rewrites "-<short>" into "--<long>" before cobra ever parses
		// argv, so every filter still gets a real long flag here.
		flags.Bool(entry.LongFlag, false, entry.Description)
	}
	rootCmd.PreRunE = resolveSelectedFilter
}

// expandShortFlags rewrites every standalone "-<shortflag>" argument into
// its "--<longflag>" long form, reproducing
// original_source/shared/opt_to_request.c's short/long flag equivalence
// without requiring pflag's one-character shorthand support.
func expandShortFlags(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a
		if len(a) < 2 || a[0] != '-' || a[1] == '-' {
			continue
		}
		short := a[1:]
		for _, entry := range filter.Table {
			if entry.ShortFlag == short {
				out[i] = "--" + entry.LongFlag
				break
			}
		}
	}
	return out
}

// resolveSelectedFilter scans the boolean flags cobra parsed and maps
// whichever one the user set back to its filter.ID, rejecting zero or
// more than one selection up front — matching
// original_source/shared/opt_to_request.c's single-positional-filter-arg
// contract generalized to flag form.
func resolveSelectedFilter(cmd *cobra.Command, args []string) error {
	var found *filter.ID
	for _, entry := range filter.Table {
		set, err := cmd.Flags().GetBool(entry.LongFlag)
		if err != nil {
			continue
		}
		if set {
			if found != nil {
				return fmt.Errorf("only one filter flag may be given (got both --%s and --%s)", filterNameOf(*found), entry.LongFlag)
			}
			id := entry.ID
			found = &id
		}
	}
	selectedFilter = found
	return nil
}

func filterNameOf(id filter.ID) string {
	if e, ok := filter.ByID(id); ok {
		return e.LongFlag
	}
	return "unknown"
}

func runClient(ctx context.Context, input, output string, id filter.ID) error {
	status, err := client.Run(ctx, input, output, id)
	if err != nil {
		if errors.Is(err, api.ErrServerNotRunning) {
			fmt.Fprintln(os.Stderr, "Server is not running, please start bmpfilterd first.")
			os.Exit(1)
		}
		return err
	}
	if status != api.StatusOK {
		fmt.Fprintf(os.Stderr, "Request failed: %s\n", status)
		os.Exit(1)
	}
	return nil
}

func main() {
	rootCmd.SetArgs(expandShortFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bmpfilter: %v\n", err)
		os.Exit(1)
	}
}

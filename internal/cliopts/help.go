// Package cliopts derives CLI help text from internal/filter.Table at
// runtime instead of duplicating flag lists by hand, following
// original_source/shared/opt_to_request.c's print_help (SUPPLEMENTED
// FEATURES item 2).
package cliopts

import (
	"fmt"
	"strings"

	"github.com/bmpfilterd/bmpfilterd/internal/filter"
)

// BuildHelp renders one line per filter table entry, column-aligned on
// the flag pair width, plus a usage line naming execName.
func BuildHelp(execName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "USAGE:\n\t%s <input> <output> [filter flag]\n\n", execName)
	fmt.Fprintf(&b, "FILTERS:\n")

	width := 0
	for _, e := range filter.Table {
		if w := flagPairWidth(e); w > width {
			width = w
		}
	}
	for _, e := range filter.Table {
		pair := flagPair(e)
		fmt.Fprintf(&b, "\t%-*s  %s\n", width, pair, e.Description)
	}
	return b.String()
}

func flagPair(e filter.Entry) string {
	return fmt.Sprintf("-%s, --%s", e.ShortFlag, e.LongFlag)
}

func flagPairWidth(e filter.Entry) int {
	return len(flagPair(e))
}

package breakpoint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffSummary is a human-readable account of how a breakpoint's resolved
// address set changed across a re-resolution pass (spec §3's "resolve-diff
// summaries").
type diffSummary struct {
	Changed bool
	Text    string
}

// diffLocations renders the before/after resolved-address sets as
// newline-separated hex address lists and runs them through
// diffmatchpatch's line-mode diff, grounded on the word-diff pipeline used
// elsewhere in this codebase for rendering hunk-level changes.
func diffLocations(before, after []BreakpointLocation) diffSummary {
	oldText := addressList(before)
	newText := addressList(after)
	if oldText == newText {
		return diffSummary{}
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			for _, line := range splitNonEmpty(d.Text) {
				sb.WriteString("+" + line + "\n")
			}
		case diffmatchpatch.DiffDelete:
			for _, line := range splitNonEmpty(d.Text) {
				sb.WriteString("-" + line + "\n")
			}
		}
	}

	return diffSummary{Changed: true, Text: strings.TrimRight(sb.String(), "\n")}
}

func addressList(locs []BreakpointLocation) string {
	addrs := make([]string, 0, len(locs))
	for _, l := range locs {
		addrs = append(addrs, fmt.Sprintf("%d:0x%x", l.ProcessKoid, l.Address))
	}
	sort.Strings(addrs)
	return strings.Join(addrs, "\n")
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Package format implements the Formatting component (spec §2): an
// abstract span/style model for rendering entities, locations, frames,
// stacks, and breakpoints into styled output buffers, plus a lipgloss
// backend grounded on internal/ui/styles. Producers (console, tui) build a
// Buffer without importing a rendering toolkit; a Renderer turns it into
// terminal text.
package format

import "strings"

// SpanKind classifies a fragment of output text by what it represents, not
// by how it should look — the Renderer owns that mapping.
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanHeading
	SpanEntityID
	SpanMuted
	SpanAddress

	SpanThreadRunning
	SpanThreadStopped
	SpanThreadExited

	SpanSeverityFatal
	SpanSeverityError
	SpanSeverityWarning
	SpanSeverityInfo

	SpanBreakpointEnabled
	SpanBreakpointDisabled
	SpanBreakpointPending
	SpanBreakpointInternal
	SpanFilterActive
	SpanFilterInactive

	SpanCmdVerb
	SpanCmdNoun
	SpanCmdSwitch
	SpanCmdString
	SpanCmdNumber
)

// Span is one styled fragment of text.
type Span struct {
	Kind SpanKind
	Text string
}

// Line is an ordered sequence of Spans rendered on one row.
type Line []Span

// Buffer is an ordered sequence of Lines: one rendered entity, location,
// frame, stack, or breakpoint listing.
type Buffer []Line

// Plain wraps text in an unstyled Span.
func Plain(text string) Span { return Span{Kind: SpanPlain, Text: text} }

// Heading wraps text as a section/label Span (e.g. "Process ", "stopped: ").
func Heading(text string) Span { return Span{Kind: SpanHeading, Text: text} }

// EntityID wraps a console-facing id (target/thread/breakpoint/filter/job
// number) as a Span.
func EntityID(text string) Span { return Span{Kind: SpanEntityID, Text: text} }

// Muted wraps secondary/hint text (file:line, hit counts) as a Span.
func Muted(text string) Span { return Span{Kind: SpanMuted, Text: text} }

// Address wraps a hex address as a Span.
func Address(text string) Span { return Span{Kind: SpanAddress, Text: text} }

// PlainText concatenates a Line's spans with no styling, for callers (tests,
// the non-interactive script runner) that want the raw text.
func (l Line) PlainText() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// PlainText joins a Buffer's lines with no styling.
func (b Buffer) PlainText() string {
	lines := make([]string, len(b))
	for i, l := range b {
		lines[i] = l.PlainText()
	}
	return strings.Join(lines, "\n")
}

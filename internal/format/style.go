package format

import "strings"

// Renderer turns the abstract Span/Line/Buffer model into terminal text.
type Renderer interface {
	RenderSpan(Span) string
	RenderLine(Line) string
	RenderBuffer(Buffer) string
}

// PlainRenderer discards all styling, for the non-interactive script runner
// and headless tests (spec §1's scripting non-goal still wants readable
// text, just not colored text).
type PlainRenderer struct{}

func (PlainRenderer) RenderSpan(s Span) string { return s.Text }

func (PlainRenderer) RenderLine(l Line) string { return l.PlainText() }

func (PlainRenderer) RenderBuffer(b Buffer) string { return b.PlainText() }

// renderLineWith is shared by every Renderer implementation that renders a
// Span at a time.
func renderLineWith(r Renderer, l Line) string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(r.RenderSpan(s))
	}
	return b.String()
}

func renderBufferWith(r Renderer, buf Buffer) string {
	lines := make([]string, len(buf))
	for i, l := range buf {
		lines[i] = r.RenderLine(l)
	}
	return strings.Join(lines, "\n")
}

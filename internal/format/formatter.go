package format

import (
	"context"
	"fmt"

	"github.com/zxconsole/zxconsole/internal/breakpoint"
	"github.com/zxconsole/zxconsole/internal/model"
)

// ConsoleFormatter implements internal/console's Formatter seam on top of a
// Renderer, replacing console.DefaultFormatter's raw fmt.Sprintf output with
// the styled span model (spec §4.8 point 3).
type ConsoleFormatter struct {
	Renderer Renderer
}

// NewConsoleFormatter wraps r as a console.Formatter implementation.
func NewConsoleFormatter(r Renderer) ConsoleFormatter { return ConsoleFormatter{Renderer: r} }

// StopHeader renders the "Process N Thread M stopped: <reason>" line,
// coloring the reason: a "breakpoint ..." reason uses the enabled-breakpoint
// style, an empty reason is plain, and any other reason (every exception
// name, including a single-step completion) uses the fatal style.
func (f ConsoleFormatter) StopHeader(targetID, threadID int, reason string) string {
	return f.Renderer.RenderLine(Line{
		Heading("Process "),
		EntityID(fmt.Sprintf("%d", targetID)),
		Heading(" Thread "),
		EntityID(fmt.Sprintf("%d", threadID)),
		Heading(" stopped: "),
		{Kind: severityKindForReason(reason), Text: reason},
	})
}

// SourceContext renders the active frame's source location, or a bare
// address when no symbol resolved it.
func (f ConsoleFormatter) SourceContext(_ context.Context, thread *model.Thread, frameIndex int) string {
	fr, ok := thread.Stack().At(frameIndex)
	if !ok {
		return ""
	}
	if fr.Function != "" {
		return f.Renderer.RenderLine(Line{
			{Kind: SpanCmdNoun, Text: fr.Function},
			Muted(fmt.Sprintf(" at %s:%d", fr.File, fr.Line)),
		})
	}
	return f.Renderer.RenderSpan(Address(fmt.Sprintf("0x%x", fr.PC)))
}

func severityKindForReason(reason string) SpanKind {
	switch reason {
	case "":
		return SpanPlain
	default:
		if len(reason) >= len("breakpoint") && reason[:len("breakpoint")] == "breakpoint" {
			return SpanBreakpointEnabled
		}
		return SpanSeverityFatal
	}
}

// ThreadLine renders one row of a thread listing: id, state, name.
func ThreadLine(r Renderer, id int, th *model.Thread) string {
	return r.RenderLine(Line{
		EntityID(fmt.Sprintf("%d ", id)),
		{Kind: threadStateSpanKind(th.State()), Text: th.State().String()},
		Muted(fmt.Sprintf(" %s", th.Name())),
	})
}

func threadStateSpanKind(s model.ThreadState) SpanKind {
	switch s {
	case model.ThreadRunning:
		return SpanThreadRunning
	case model.ThreadSuspended, model.ThreadBlocked:
		return SpanThreadStopped
	default:
		return SpanThreadExited
	}
}

// TargetLine renders one row of a process listing: id, state, process name.
func TargetLine(r Renderer, id int, t *model.Target) string {
	name := ""
	if t.Process() != nil {
		name = t.Process().Name()
	}
	return r.RenderLine(Line{
		EntityID(fmt.Sprintf("%d ", id)),
		Plain(t.State().String()),
		Muted(fmt.Sprintf(" %s", name)),
	})
}

// BreakpointLine renders one row of a breakpoint listing: id, resolution
// status, hit count.
func BreakpointLine(r Renderer, b *breakpoint.Breakpoint) string {
	status := "pending"
	kind := SpanBreakpointPending
	switch {
	case b.Internal():
		status, kind = "internal", SpanBreakpointInternal
	case !b.Settings().Enabled:
		status, kind = "disabled", SpanBreakpointDisabled
	case !b.Pending():
		status, kind = fmt.Sprintf("%d location(s)", len(b.Locations())), SpanBreakpointEnabled
	}
	return r.RenderLine(Line{
		EntityID(fmt.Sprintf("%d ", b.ID())),
		{Kind: kind, Text: status},
		Muted(fmt.Sprintf(" hits=%d", b.HitCount())),
	})
}

// FilterLine renders one row of a filter listing: id, active/inactive,
// pattern.
func FilterLine(r Renderer, f *breakpoint.Filter) string {
	kind := SpanFilterActive
	return r.RenderLine(Line{
		EntityID(fmt.Sprintf("%d ", f.ID())),
		{Kind: kind, Text: f.Pattern},
	})
}

// Stack renders a thread's unified call stack, one line per frame,
// innermost first, marking the active frame.
func Stack(r Renderer, th *model.Thread) Buffer {
	st := th.Stack()
	buf := make(Buffer, 0, st.Len())
	for i := 0; i < st.Len(); i++ {
		fr, _ := st.At(i)
		marker := "  "
		if i == th.ActiveFrame() {
			marker = "> "
		}
		line := Line{Plain(marker), EntityID(fmt.Sprintf("#%d ", i))}
		if fr.Function != "" {
			line = append(line, Span{Kind: SpanCmdNoun, Text: fr.Function}, Muted(fmt.Sprintf(" at %s:%d", fr.File, fr.Line)))
		} else {
			line = append(line, Address(fmt.Sprintf("0x%x", fr.PC)))
		}
		if fr.IsInline {
			line = append(line, Muted(" (inline)"))
		}
		buf = append(buf, line)
	}
	return buf
}

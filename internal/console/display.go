package console

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/breakpoint"
	"github.com/zxconsole/zxconsole/internal/model"
)

// Formatter produces the human-facing stop header and source context (spec
// §4.8 point 3). It is the seam between ConsoleContext and
// internal/format/internal/tui; a plain-text DefaultFormatter keeps this
// package independently testable without either of those wired in.
type Formatter interface {
	StopHeader(targetID, threadID int, reason string) string
	SourceContext(ctx context.Context, thread *model.Thread, frameIndex int) string
}

// DefaultFormatter renders plain, unstyled text.
type DefaultFormatter struct{}

func (DefaultFormatter) StopHeader(targetID, threadID int, reason string) string {
	return fmt.Sprintf("Process %d Thread %d stopped: %s", targetID, threadID, reason)
}

func (DefaultFormatter) SourceContext(ctx context.Context, thread *model.Thread, frameIndex int) string {
	f, ok := thread.Stack().At(frameIndex)
	if !ok {
		return ""
	}
	if f.Function != "" {
		return fmt.Sprintf("%s at %s:%d", f.Function, f.File, f.Line)
	}
	return fmt.Sprintf("0x%x", f.PC)
}

// SetOutput installs the sink that receives formatted stop output and
// display-expression results (spec §4.8 points 3-4). Defaults to a no-op,
// so Context is safe to use headless (e.g. in tests) before a TUI attaches.
func (c *Context) SetOutput(fn func(string)) { c.output = fn }

// SetOnStop installs a callback run on every on-stop sequence (spec §4.8),
// after the active target/thread/breakpoint have been updated and the
// formatter has emitted its header. breakpointID is 0 when the stop wasn't
// a breakpoint hit (e.g. an exception). reason matches the string passed
// to Formatter.StopHeader. Used by internal/history to record breakpoint
// hits and by internal/telemetry to start a span for the stop; both are
// optional, so this defaults to a no-op.
func (c *Context) SetOnStop(fn func(targetID, threadID int, breakpointID int, reason string)) {
	c.onStop = fn
}

// AddDisplay registers expr to be evaluated and printed in th's top
// (active) frame context on every subsequent stop (spec §4.8 point 4).
func (c *Context) AddDisplay(th *model.Thread, expr string) {
	if c.displays == nil {
		c.displays = make(map[*model.Thread][]string)
	}
	c.displays[th] = append(c.displays[th], expr)
}

// handleStop implements the ConsoleContext on-stop sequence (spec §4.8):
//  1. active Target/Thread/Frame become the stopping entities (frame 0),
//  2. active Breakpoint becomes the highest-id non-internal hit,
//  3. the formatter renders the stop header + source context,
//  4. configured display expressions are evaluated and printed.
func (c *Context) handleStop(t *model.Target, th *model.Thread, ev model.ThreadEvent) {
	tid, _ := c.targets.IDOf(t)
	c.activeTarget = tid
	if reg := c.threads[t]; reg != nil {
		if thid, ok := reg.IDOf(th); ok {
			c.activeThread[tid] = thid
		}
	}
	th.SetActiveFrame(0)

	var hitBreakpoint uint64
	if b := c.highestHitBreakpoint(ev.Matched); b != nil {
		c.activeBreakpoint = b.ID()
		hitBreakpoint = b.ID()
	}

	reason := stopReason(ev, c.engine, ev.Matched)
	threadID, _ := c.threads[t].IDOf(th)
	c.emit(c.formatter.StopHeader(tid, threadID, reason))
	if src := c.formatter.SourceContext(context.Background(), th, th.ActiveFrame()); src != "" {
		c.emit(src)
	}

	for _, expr := range c.displays[th] {
		f, ok := th.Stack().At(th.ActiveFrame())
		if !ok {
			continue
		}
		result, err := th.Symbols().EvaluateExpression(context.Background(), f.Module, f.PC, expr)
		if err != nil {
			c.emit(fmt.Sprintf("%s = <error: %s>", expr, err))
			continue
		}
		c.emit(fmt.Sprintf("%s = %s", expr, result))
	}

	if c.onStop != nil {
		c.onStop(tid, threadID, int(hitBreakpoint), reason)
	}
}

func (c *Context) emit(text string) {
	if c.output == nil || text == "" {
		return
	}
	c.output(text)
}

// highestHitBreakpoint picks the active breakpoint among a stop's matched
// set: the highest-id non-internal breakpoint (spec §4.8 point 2: "the
// most-recently-added wins ties"). MatchedBreakpoint.ClientID is the
// breakpoint's own id, assigned when the location was installed.
func (c *Context) highestHitBreakpoint(matched []agent.MatchedBreakpoint) *breakpoint.Breakpoint {
	var best *breakpoint.Breakpoint
	for _, m := range matched {
		b, ok := c.engine.BreakpointByID(m.ClientID)
		if !ok || b.Internal() {
			continue
		}
		if best == nil || b.ID() > best.ID() {
			best = b
		}
	}
	return best
}

func stopReason(ev model.ThreadEvent, engine *breakpoint.Engine, matched []agent.MatchedBreakpoint) string {
	if len(matched) > 0 {
		ids := make([]string, 0, len(matched))
		for _, m := range matched {
			if b, ok := engine.BreakpointByID(m.ClientID); ok && !b.Internal() {
				ids = append(ids, fmt.Sprintf("%d", b.ID()))
			}
		}
		if len(ids) > 0 {
			return fmt.Sprintf("breakpoint %s", strings.Join(ids, ", "))
		}
	}
	return ev.Exception.String()
}

func describeTarget(id int, t *model.Target) string {
	name := ""
	if t.Process() != nil {
		name = t.Process().Name()
	}
	return fmt.Sprintf("Process %d selected (%s)", id, name)
}

func describeThreadSelection(id int) string { return fmt.Sprintf("Thread %d selected", id) }

func describeBreakpointSelection(b *breakpoint.Breakpoint) string {
	return fmt.Sprintf("Breakpoint %d selected", b.ID())
}

func describeFilterSelection(f *breakpoint.Filter) string {
	return fmt.Sprintf("Filter %d selected (%s)", f.ID(), f.Pattern)
}

func describeJobSelection(id int) string { return fmt.Sprintf("Job %d selected", id) }

func describeSymServerSelection(id int) string { return fmt.Sprintf("SymbolServer %d selected", id) }

func listTargets(r *idRegistry[*model.Target]) string {
	ids := r.IDs()
	if len(ids) == 0 {
		return "No processes"
	}
	var b strings.Builder
	for _, id := range ids {
		t, _ := r.ByID(id)
		fmt.Fprintf(&b, "%d %s %s\n", id, t.State(), processName(t))
	}
	return b.String()
}

func processName(t *model.Target) string {
	if t.Process() == nil {
		return ""
	}
	return t.Process().Name()
}

func listThreads(r *idRegistry[*model.Thread]) string {
	ids := r.IDs()
	if len(ids) == 0 {
		return "No threads"
	}
	var b strings.Builder
	for _, id := range ids {
		th, _ := r.ByID(id)
		fmt.Fprintf(&b, "%d %s %s\n", id, th.State(), th.Name())
	}
	return b.String()
}

func listBreakpoints(bs []*breakpoint.Breakpoint) string {
	if len(bs) == 0 {
		return "No breakpoints"
	}
	var b strings.Builder
	for _, bp := range bs {
		status := "pending"
		if !bp.Pending() {
			status = fmt.Sprintf("%d location(s)", len(bp.Locations()))
		}
		fmt.Fprintf(&b, "%d %s hits=%d\n", bp.ID(), status, bp.HitCount())
	}
	return b.String()
}

func listFilters(fs []*breakpoint.Filter) string {
	if len(fs) == 0 {
		return "No filters"
	}
	sorted := append([]*breakpoint.Filter(nil), fs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID() < sorted[j].ID() })
	var b strings.Builder
	for _, f := range sorted {
		fmt.Fprintf(&b, "%d %s\n", f.ID(), f.Pattern)
	}
	return b.String()
}

func listJobs(r *idRegistry[*model.JobContext]) string {
	ids := r.IDs()
	if len(ids) == 0 {
		return "No jobs"
	}
	var b strings.Builder
	for _, id := range ids {
		j, _ := r.ByID(id)
		fmt.Fprintf(&b, "%d %s %s\n", id, j.State(), j.Name())
	}
	return b.String()
}

func listSymServers(r *idRegistry[*SymbolServer]) string {
	ids := r.IDs()
	if len(ids) == 0 {
		return "No symbol servers"
	}
	var b strings.Builder
	for _, id := range ids {
		s, _ := r.ByID(id)
		fmt.Fprintf(&b, "%d %s enabled=%v\n", id, s.URL, s.Enabled)
	}
	return b.String()
}

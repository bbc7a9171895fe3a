package breakpoint

import (
	"context"
	"sort"
	"strings"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/log"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/symbols"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// Engine owns the Breakpoint and Filter collections for a System (spec §2's
// BreakpointEngine + FilterEngine), kept separate from model.System itself
// to avoid a model<->breakpoint import cycle: Engine imports model for
// Process/Thread access, so model cannot import Engine back.
type Engine struct {
	system    *model.System
	transport agent.Transport
	symbols   symbols.Service

	nextID      uint64
	breakpoints []*Breakpoint
	filters     []*Filter
}

// NewEngine constructs an Engine bound to sys, issuing requests through
// transport and resolving locations through symbolService.
func NewEngine(sys *model.System, transport agent.Transport, symbolService symbols.Service) *Engine {
	return &Engine{system: sys, transport: transport, symbols: symbolService}
}

// Breakpoints returns every non-internal breakpoint, id-sorted for stable
// listing output (spec §4.6: internal breakpoints "are never listed").
func (e *Engine) Breakpoints() []*Breakpoint {
	var visible []*Breakpoint
	for _, b := range e.breakpoints {
		if !b.internal {
			visible = append(visible, b)
		}
	}
	return sortedByID(visible)
}

// BreakpointByID looks up any breakpoint, internal or not.
func (e *Engine) BreakpointByID(id uint64) (*Breakpoint, bool) {
	for _, b := range e.breakpoints {
		if b.id == id {
			return b, true
		}
	}
	return nil, false
}

// Filters returns all registered Filters.
func (e *Engine) Filters() []*Filter { return e.filters }

func (e *Engine) allocID() uint64 {
	e.nextID++
	return e.nextID
}

// CreateBreakpoint adds a user-visible breakpoint and resolves it
// immediately (spec §4.6: "On any of {add breakpoint ...}").
func (e *Engine) CreateBreakpoint(ctx context.Context, settings BreakpointSettings) (*Breakpoint, error) {
	b := NewBreakpoint(e.allocID(), settings)
	e.breakpoints = append(e.breakpoints, b)
	return b, e.resolveAndSync(ctx, b)
}

// CreateInternalBreakpoint adds a controller-owned, invisible breakpoint
// (spec §4.6's FinishController-style usage) and resolves it immediately.
func (e *Engine) CreateInternalBreakpoint(ctx context.Context, owner model.Controller, settings BreakpointSettings) (*Breakpoint, error) {
	b := NewInternalBreakpoint(e.allocID(), owner, settings)
	e.breakpoints = append(e.breakpoints, b)
	return b, e.resolveAndSync(ctx, b)
}

// UpdateSettings replaces a breakpoint's settings and re-resolves it (spec
// §4.6: "On any of {... modify settings ...}").
func (e *Engine) UpdateSettings(ctx context.Context, b *Breakpoint, s BreakpointSettings) error {
	b.SetSettings(s)
	return e.resolveAndSync(ctx, b)
}

// Remove deletes a breakpoint and asks the agent to drop its installed
// locations.
func (e *Engine) Remove(ctx context.Context, b *Breakpoint) error {
	for i, candidate := range e.breakpoints {
		if candidate == b {
			e.breakpoints = append(e.breakpoints[:i:i], e.breakpoints[i+1:]...)
			break
		}
	}
	_, err := e.transport.RemoveBreakpoint(ctx, agent.RemoveBreakpointRequest{ClientID: b.id})
	if err != nil {
		return zxerr.Wrap(zxerr.Agent, err, "breakpoint %d: remove", b.id)
	}
	return nil
}

// OnModuleLoaded and OnProcessChanged re-resolve every breakpoint, per spec
// §4.6's re-resolution triggers; errors are logged per-breakpoint rather
// than aborting the sweep so one bad breakpoint cannot block the rest.
func (e *Engine) OnModuleLoaded(ctx context.Context) { e.resolveAll(ctx) }
func (e *Engine) OnProcessChanged(ctx context.Context) { e.resolveAll(ctx) }

func (e *Engine) resolveAll(ctx context.Context) {
	for _, b := range e.breakpoints {
		if err := e.resolveAndSync(ctx, b); err != nil {
			log.ErrorErr(log.CatBreakpoint, "re-resolve failed", err, "breakpoint_id", b.id)
		}
	}
}

// resolveAndSync implements the resolve-then-sync-to-agent pipeline (spec
// §4.6): re-resolve b's InputLocation against every Process in scope,
// diff against the previously-installed address set, and issue a batch
// AddOrChangeBreakpoint request per affected process.
func (e *Engine) resolveAndSync(ctx context.Context, b *Breakpoint) error {
	if !b.settings.Enabled {
		return nil
	}

	var newLocations []BreakpointLocation
	var firstErr error
	for _, proc := range e.system.Processes() {
		module := proc.ModuleForPC(0)
		resolved, err := e.symbols.ResolveLocation(ctx, module, b.settings.Location)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		for _, r := range resolved {
			newLocations = append(newLocations, BreakpointLocation{ProcessKoid: proc.Koid(), Address: r.Address})
		}
	}

	summary := diffLocations(b.locations, newLocations)
	if summary.Changed {
		log.Debug(log.CatBreakpoint, "breakpoint locations changed", "breakpoint_id", b.id, "summary", summary.Text)
	}

	byProcess := make(map[uint64][]agent.AgentBreakpointLocation)
	for _, loc := range newLocations {
		byProcess[loc.ProcessKoid] = append(byProcess[loc.ProcessKoid], agent.AgentBreakpointLocation{Address: loc.Address})
	}

	b.locations = nil
	b.pending = len(newLocations) == 0
	for koid, locs := range byProcess {
		reply, err := e.transport.AddOrChangeBreakpoint(ctx, agent.AddOrChangeBreakpointRequest{
			ClientID:    b.id,
			Type:        agent.BreakpointSoftware,
			Locations:   locs,
			ProcessKoid: koid,
		})
		if err != nil {
			b.pending = true
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		for _, r := range reply.Results {
			b.locations = append(b.locations, BreakpointLocation{ProcessKoid: koid, Address: r.Address, Pending: !r.Ok})
			if !r.Ok {
				b.pending = true
			}
		}
	}

	if firstErr != nil {
		return zxerr.Wrap(zxerr.Agent, firstErr, "breakpoint %d: resolve", b.id)
	}
	return nil
}

// DispatchHit implements spec §4.6's hit-dispatch rule: increments hit
// counts, applies hit_mult throttling, and evaluates the condition, all in
// the stopping thread's top-frame context. It returns the subset of
// matched breakpoint ids that should actually cause a stop.
func (e *Engine) DispatchHit(ctx context.Context, thread *model.Thread, matched []agent.MatchedBreakpoint) []uint64 {
	var shouldStop []uint64
	for _, m := range matched {
		b, ok := e.BreakpointByID(m.ClientID)
		if !ok {
			continue
		}
		b.hitCount++
		if b.hitCount%b.settings.HitMult != 0 {
			continue
		}
		if b.settings.Condition != "" {
			if !e.evalCondition(ctx, thread, b.settings.Condition) {
				continue
			}
		}
		shouldStop = append(shouldStop, b.id)
	}
	return shouldStop
}

func (e *Engine) evalCondition(ctx context.Context, thread *model.Thread, expr string) bool {
	frames := thread.Stack().Frames()
	if len(frames) == 0 {
		return true
	}
	f := frames[0]
	result, err := e.symbols.EvaluateExpression(ctx, f.Module, f.PC, expr)
	if err != nil {
		log.ErrorErr(log.CatBreakpoint, "condition evaluation failed", err, "expr", expr)
		return true
	}
	return result != "" && result != "0" && result != "false"
}

// CreateFilter registers a pattern for autoattach-on-process-create (spec
// §4.6's FilterEngine).
func (e *Engine) CreateFilter(pattern string, jobKoid uint64) *Filter {
	f := NewFilter(e.allocID(), pattern, jobKoid)
	e.filters = append(e.filters, f)
	return f
}

// RemoveFilter deletes a previously-registered Filter.
func (e *Engine) RemoveFilter(f *Filter) {
	for i, candidate := range e.filters {
		if candidate == f {
			e.filters = append(e.filters[:i:i], e.filters[i+1:]...)
			return
		}
	}
}

// Matches reports whether any registered, non-job-scoped-elsewhere Filter
// matches name (spec §4.2's filter-driven autoattach).
func (e *Engine) Matches(name string, jobKoid uint64) bool {
	for _, f := range e.filters {
		if f.JobKoid != 0 && f.JobKoid != jobKoid {
			continue
		}
		if matchPattern(f.Pattern, name) {
			return true
		}
	}
	return false
}

// matchPattern supports a bare substring or a trailing "*" glob, which
// covers the patterns zxdb-style filters commonly use.
func matchPattern(pattern, name string) bool {
	if pattern == "" {
		return false
	}
	if pattern == "*" {
		return true
	}
	if n := len(pattern); n > 0 && pattern[n-1] == '*' {
		prefix := pattern[:n-1]
		return len(name) >= len(prefix) && name[:len(prefix)] == prefix
	}
	return strings.Contains(name, pattern)
}

// sortedByID returns breakpoints ordered by id ascending, used by listing
// verbs that want stable, deterministic output.
func sortedByID(bs []*Breakpoint) []*Breakpoint {
	out := append([]*Breakpoint(nil), bs...)
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

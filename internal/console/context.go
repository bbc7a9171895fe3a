package console

import (
	"context"

	"github.com/zxconsole/zxconsole/internal/breakpoint"
	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// Context is ConsoleContext (spec §4.8): the central registry binding
// CommandModel nouns to live ObjectModel/BreakpointEngine entities and
// tracking which one of each kind is "active". It runs on the same single
// dispatch thread as the rest of the core (spec §5), so no locking is
// needed here either.
type Context struct {
	session *model.Session
	engine  *breakpoint.Engine

	targets *idRegistry[*model.Target]
	jobs    *idRegistry[*model.JobContext]
	servers *idRegistry[*SymbolServer]

	// threads is scoped per-Target (spec §4.8): each Target gets its own
	// Thread id space.
	threads map[*model.Target]*idRegistry[*model.Thread]

	activeTarget     int
	activeJob        int
	activeServer     int
	activeBreakpoint uint64
	activeFilter     uint64
	// activeThread is keyed by Target id (not pointer), so it survives
	// being read after the Target itself might already be gone.
	activeThread map[int]int

	formatter Formatter
	output    func(string)
	displays  map[*model.Thread][]string
	onStop func(targetID, threadID int, breakpointID int, reason string)
}

// New constructs a Context bound to session and engine and subscribes to
// every observer needed to keep the id registries and active selection in
// sync with the ObjectModel as it evolves (spec §4.8's on-stop sequence).
func New(session *model.Session, engine *breakpoint.Engine, formatter Formatter) *Context {
	c := &Context{
		session:      session,
		engine:       engine,
		targets:      newIDRegistry[*model.Target](),
		jobs:         newIDRegistry[*model.JobContext](),
		servers:      newIDRegistry[*SymbolServer](),
		threads:      make(map[*model.Target]*idRegistry[*model.Thread]),
		activeThread: make(map[int]int),
		formatter:    formatter,
	}
	c.bind()
	return c
}

func (c *Context) bind() {
	c.session.System().AddObserver(c.onSystemEvent)
	// Targets created before New was called (e.g. replayed attached
	// processes from Session.Connect) still need registering.
	for _, t := range c.session.System().Targets() {
		c.registerTarget(t)
	}
}

func (c *Context) onSystemEvent(ev model.SystemEvent) {
	switch ev.Kind {
	case model.SystemTargetCreated:
		c.registerTarget(ev.Target)
	case model.SystemTargetDestroyed:
		c.unregisterTarget(ev.Target)
	}
}

func (c *Context) registerTarget(t *model.Target) {
	id := c.targets.Add(t)
	c.threads[t] = newIDRegistry[*model.Thread]()
	if c.activeTarget == 0 {
		c.activeTarget = id
	}
	t.AddObserver(func(ev model.TargetEvent) { c.onTargetEvent(t, ev) })
}

func (c *Context) unregisterTarget(t *model.Target) {
	id, _ := c.targets.IDOf(t)
	c.targets.Remove(t)
	delete(c.threads, t)
	delete(c.activeThread, id)
	if c.activeTarget == id {
		c.activeTarget = c.targets.FirstID()
	}
}

func (c *Context) onTargetEvent(t *model.Target, ev model.TargetEvent) {
	if ev.Kind != model.TargetStateChanged || ev.Process == nil {
		return
	}
	ev.Process.AddObserver(func(pev model.ProcessEvent) { c.onProcessEvent(t, pev) })
}

func (c *Context) onProcessEvent(t *model.Target, ev model.ProcessEvent) {
	reg := c.threads[t]
	if reg == nil {
		return
	}
	switch ev.Kind {
	case model.ProcessThreadCreated:
		id := reg.Add(ev.Thread)
		tid, _ := c.targets.IDOf(t)
		if c.activeThread[tid] == 0 {
			c.activeThread[tid] = id
		}
		ev.Thread.AddObserver(func(tev model.ThreadEvent) { c.onThreadEvent(t, ev.Thread, tev) })
	case model.ProcessThreadDestroyed:
		id, _ := reg.IDOf(ev.Thread)
		reg.Remove(ev.Thread)
		tid, _ := c.targets.IDOf(t)
		if c.activeThread[tid] == id {
			c.activeThread[tid] = reg.FirstID()
		}
	}
}

func (c *Context) onThreadEvent(t *model.Target, th *model.Thread, ev model.ThreadEvent) {
	if ev.Kind != model.ThreadStoppedEvent {
		return
	}
	c.handleStop(t, th, ev)
}

// CreateJobContext allocates a JobContext through System and registers it,
// for the `job` noun's explicit creation path.
func (c *Context) CreateJobContext() *model.JobContext {
	j := c.session.System().CreateJobContext()
	id := c.jobs.Add(j)
	if c.activeJob == 0 {
		c.activeJob = id
	}
	return j
}

// CreateSymbolServer registers a minimal symbol-server reference (spec §1
// non-goal: no actual file acquisition occurs).
func (c *Context) CreateSymbolServer(url string) *SymbolServer {
	s := &SymbolServer{URL: url, Enabled: true}
	id := c.servers.Add(s)
	if c.activeServer == 0 {
		c.activeServer = id
	}
	return s
}

// Resolve fills a parsed Command's nouns into a BoundCommand (spec §4.7's
// "Context binding"): explicit indices resolve directly, absent ones fall
// back to the active selection.
func (c *Context) Resolve(cmd *command.Command) (*command.BoundCommand, error) {
	bound := &command.BoundCommand{Command: cmd}

	for _, n := range cmd.Nouns {
		switch n.Kind {
		case "process":
			tgt, err := c.resolveTarget(n)
			if err != nil {
				return nil, err
			}
			bound.Target = tgt
		case "thread":
			th, err := c.resolveThread(bound, n)
			if err != nil {
				return nil, err
			}
			bound.Thread = th
		case "frame":
			bound.FrameIndex = n.Index
		case "breakpoint":
			b, err := c.resolveBreakpoint(n)
			if err != nil {
				return nil, err
			}
			bound.Breakpoint = b
		case "filter":
			f, err := c.resolveFilter(n)
			if err != nil {
				return nil, err
			}
			bound.Filter = f
		case "job":
			j, err := c.resolveJob(n)
			if err != nil {
				return nil, err
			}
			bound.Job = j
		case "sym-server", "global":
			// sym-server has no live backing consumer yet (spec §1 non-goal);
			// global carries no entity at all, it only scopes settings.
		}
	}

	if bound.Target == nil {
		if tgt, ok := c.targets.ByID(c.activeTarget); ok {
			bound.Target = tgt
		}
	}
	if bound.Thread == nil && bound.Target != nil {
		if reg := c.threads[bound.Target]; reg != nil {
			tid, _ := c.targets.IDOf(bound.Target)
			if th, ok := reg.ByID(c.activeThread[tid]); ok {
				bound.Thread = th
			}
		}
	}
	if bound.Thread != nil {
		frameGiven := false
		for _, n := range cmd.Nouns {
			if n.Kind == "frame" && n.HasIndex {
				frameGiven = true
			}
		}
		if !frameGiven {
			bound.FrameIndex = bound.Thread.ActiveFrame()
		}
	}
	if bound.Breakpoint == nil {
		if b, ok := c.engine.BreakpointByID(c.activeBreakpoint); ok {
			bound.Breakpoint = b
		}
	}
	if bound.Filter == nil {
		bound.Filter = c.filterByID(c.activeFilter)
	}
	if bound.Job == nil {
		if j, ok := c.jobs.ByID(c.activeJob); ok {
			bound.Job = j
		}
	}

	return bound, nil
}

func (c *Context) resolveTarget(n command.NounRef) (*model.Target, error) {
	if !n.HasIndex {
		return nil, nil
	}
	t, ok := c.targets.ByID(n.Index)
	if !ok {
		return nil, zxerr.NotFoundErr("no process %d", n.Index)
	}
	return t, nil
}

func (c *Context) resolveThread(bound *command.BoundCommand, n command.NounRef) (*model.Thread, error) {
	if !n.HasIndex {
		return nil, nil
	}
	tgt := bound.Target
	if tgt == nil {
		if t, ok := c.targets.ByID(c.activeTarget); ok {
			tgt = t
		}
	}
	if tgt == nil {
		return nil, zxerr.NotFoundErr("no active process to select thread %d from", n.Index)
	}
	reg := c.threads[tgt]
	if reg == nil {
		return nil, zxerr.NotFoundErr("no thread %d", n.Index)
	}
	th, ok := reg.ByID(n.Index)
	if !ok {
		return nil, zxerr.NotFoundErr("no thread %d", n.Index)
	}
	return th, nil
}

func (c *Context) resolveBreakpoint(n command.NounRef) (*breakpoint.Breakpoint, error) {
	if !n.HasIndex {
		return nil, nil
	}
	b, ok := c.engine.BreakpointByID(uint64(n.Index))
	if !ok || b.Internal() {
		return nil, zxerr.NotFoundErr("no breakpoint %d", n.Index)
	}
	return b, nil
}

func (c *Context) resolveFilter(n command.NounRef) (*breakpoint.Filter, error) {
	if !n.HasIndex {
		return nil, nil
	}
	f := c.filterByID(uint64(n.Index))
	if f == nil {
		return nil, zxerr.NotFoundErr("no filter %d", n.Index)
	}
	return f, nil
}

func (c *Context) filterByID(id uint64) *breakpoint.Filter {
	for _, f := range c.engine.Filters() {
		if f.ID() == id {
			return f
		}
	}
	return nil
}

func (c *Context) resolveJob(n command.NounRef) (*model.JobContext, error) {
	if !n.HasIndex {
		return nil, nil
	}
	j, ok := c.jobs.ByID(n.Index)
	if !ok {
		return nil, zxerr.NotFoundErr("no job %d", n.Index)
	}
	return j, nil
}

// SelectOrList handles a noun-without-verb command (spec §4.7: "a
// noun-without-verb either lists (no index) or selects-as-active (with
// index) the indexed entity"). It returns the text to print.
func (c *Context) SelectOrList(ctx context.Context, cmd *command.Command) (string, error) {
	if len(cmd.Nouns) == 0 {
		return "", zxerr.InputErr("expected at least one noun")
	}
	n := cmd.Nouns[len(cmd.Nouns)-1]
	if !n.HasIndex {
		return c.listNoun(n.Kind)
	}
	return c.selectActive(n)
}

func (c *Context) selectActive(n command.NounRef) (string, error) {
	switch n.Kind {
	case "process":
		if _, ok := c.targets.ByID(n.Index); !ok {
			return "", zxerr.NotFoundErr("no process %d", n.Index)
		}
		c.activeTarget = n.Index
		return describeTarget(n.Index, mustTarget(c.targets, n.Index)), nil
	case "thread":
		tgt, ok := c.targets.ByID(c.activeTarget)
		if !ok {
			return "", zxerr.NotRunningErr("no active process")
		}
		reg := c.threads[tgt]
		if _, ok := reg.ByID(n.Index); !ok {
			return "", zxerr.NotFoundErr("no thread %d", n.Index)
		}
		c.activeThread[c.activeTarget] = n.Index
		return describeThreadSelection(n.Index), nil
	case "breakpoint":
		b, ok := c.engine.BreakpointByID(uint64(n.Index))
		if !ok || b.Internal() {
			return "", zxerr.NotFoundErr("no breakpoint %d", n.Index)
		}
		c.activeBreakpoint = uint64(n.Index)
		return describeBreakpointSelection(b), nil
	case "filter":
		f := c.filterByID(uint64(n.Index))
		if f == nil {
			return "", zxerr.NotFoundErr("no filter %d", n.Index)
		}
		c.activeFilter = uint64(n.Index)
		return describeFilterSelection(f), nil
	case "job":
		if _, ok := c.jobs.ByID(n.Index); !ok {
			return "", zxerr.NotFoundErr("no job %d", n.Index)
		}
		c.activeJob = n.Index
		return describeJobSelection(n.Index), nil
	case "sym-server":
		if _, ok := c.servers.ByID(n.Index); !ok {
			return "", zxerr.NotFoundErr("no sym-server %d", n.Index)
		}
		c.activeServer = n.Index
		return describeSymServerSelection(n.Index), nil
	default:
		return "", zxerr.InputErr("noun %q cannot be selected", n.Kind)
	}
}

func (c *Context) listNoun(kind string) (string, error) {
	switch kind {
	case "process":
		return listTargets(c.targets), nil
	case "breakpoint":
		return listBreakpoints(c.engine.Breakpoints()), nil
	case "filter":
		return listFilters(c.engine.Filters()), nil
	case "job":
		return listJobs(c.jobs), nil
	case "sym-server":
		return listSymServers(c.servers), nil
	case "thread":
		tgt, ok := c.targets.ByID(c.activeTarget)
		if !ok {
			return "", zxerr.NotRunningErr("no active process")
		}
		return listThreads(c.threads[tgt]), nil
	default:
		return "", zxerr.InputErr("noun %q cannot be listed", kind)
	}
}

func mustTarget(r *idRegistry[*model.Target], id int) *model.Target {
	t, _ := r.ByID(id)
	return t
}

// TargetID returns the console-facing id for t, for callers (formatters,
// tests) that need it outside a BoundCommand.
func (c *Context) TargetID(t *model.Target) (int, bool) { return c.targets.IDOf(t) }

// ThreadID returns th's console-facing id within its owning Target's
// per-Target id space.
func (c *Context) ThreadID(t *model.Target, th *model.Thread) (int, bool) {
	reg := c.threads[t]
	if reg == nil {
		return 0, false
	}
	return reg.IDOf(th)
}

// ActiveTargetID returns the currently active Target's id, or 0 if none.
func (c *Context) ActiveTargetID() int { return c.activeTarget }

// ActiveBreakpointID returns the currently active Breakpoint's id, or 0.
func (c *Context) ActiveBreakpointID() uint64 { return c.activeBreakpoint }

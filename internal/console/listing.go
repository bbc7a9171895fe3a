package console

import (
	"github.com/zxconsole/zxconsole/internal/breakpoint"
	"github.com/zxconsole/zxconsole/internal/model"
)

// TargetIDs returns every live process id, ascending, for callers (e.g.
// internal/tui) that render a process listing themselves instead of going
// through SelectOrList's plain-text rendering.
func (c *Context) TargetIDs() []int { return c.targets.IDs() }

// TargetByID resolves a process id to its Target.
func (c *Context) TargetByID(id int) (*model.Target, bool) { return c.targets.ByID(id) }

// ThreadIDs returns every live thread id for t, ascending.
func (c *Context) ThreadIDs(t *model.Target) []int {
	reg := c.threads[t]
	if reg == nil {
		return nil
	}
	return reg.IDs()
}

// ThreadByID resolves a thread id scoped to t.
func (c *Context) ThreadByID(t *model.Target, id int) (*model.Thread, bool) {
	reg := c.threads[t]
	if reg == nil {
		return nil, false
	}
	return reg.ByID(id)
}

// ActiveThreadID returns the active thread id scoped to t, or 0 if none.
func (c *Context) ActiveThreadID(t *model.Target) int {
	tid, ok := c.targets.IDOf(t)
	if !ok {
		return 0
	}
	return c.activeThread[tid]
}

// JobIDs returns every live job-context id, ascending.
func (c *Context) JobIDs() []int { return c.jobs.IDs() }

// JobByID resolves a job id to its JobContext.
func (c *Context) JobByID(id int) (*model.JobContext, bool) { return c.jobs.ByID(id) }

// ActiveJobID returns the currently active job-context id, or 0 if none.
func (c *Context) ActiveJobID() int { return c.activeJob }

// ActiveFilterID returns the currently active filter id, or 0 if none.
func (c *Context) ActiveFilterID() uint64 { return c.activeFilter }

// Engine exposes the bound BreakpointEngine, for callers (internal/tui) that
// need Breakpoints()/Filters() alongside the id-registry accessors above.
func (c *Context) Engine() *breakpoint.Engine { return c.engine }

// Session exposes the bound Session, for callers that need System().Targets()
// or Process() details beyond what the id registries track.
func (c *Context) Session() *model.Session { return c.session }

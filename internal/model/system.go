package model

// System owns the collections of Targets and JobContexts (spec §3) and is
// tied to the lifetime of its owning Session. Breakpoints, Filters, and
// SymbolServers are also System-scoped per spec §3, but are owned and
// collected by internal/breakpoint.Engine (constructed against this System)
// rather than by this struct directly, keeping ObjectModel and
// BreakpointEngine the separately-weighted components spec §2's component
// table describes them as.
type System struct {
	session *Session

	targets     []*Target
	jobContexts []*JobContext
	processes   map[uint64]*Process // koid -> Process, across all Targets

	destroyed bool
	observers *ObserverList[SystemEvent]
}

// SystemEventKind distinguishes the observer events System fires.
type SystemEventKind int

const (
	SystemTargetCreated SystemEventKind = iota
	SystemTargetDestroyed
)

// SystemEvent is delivered to System observers.
type SystemEvent struct {
	Kind   SystemEventKind
	Target *Target
}

func newSystem(session *Session) *System {
	return &System{
		session:   session,
		processes: make(map[uint64]*Process),
		observers: NewObserverList[SystemEvent](),
	}
}

func (s *System) AddObserver(fn func(SystemEvent)) uint64 { return s.observers.Add(fn) }
func (s *System) RemoveObserver(id uint64)                { s.observers.Remove(id) }
func (s *System) Destroyed() bool                         { return s.destroyed }

// Targets returns all Targets, including ones in the None state.
func (s *System) Targets() []*Target { return s.targets }

// JobContexts returns all attached-or-attaching job contexts.
func (s *System) JobContexts() []*JobContext { return s.jobContexts }

// CreateTarget allocates a new, initially-None Target.
func (s *System) CreateTarget() *Target {
	t := newTarget(s)
	s.targets = append(s.targets, t)
	s.observers.Fire(SystemEvent{Kind: SystemTargetCreated, Target: t})
	return t
}

// UnusedTarget returns the first Target currently in state None, for reuse
// by autoattach-on-filter-match (spec §4.2), or nil if every Target is busy.
func (s *System) UnusedTarget() *Target {
	for _, t := range s.targets {
		if t.State() == TargetNone {
			return t
		}
	}
	return nil
}

// DestroyTarget removes t from the System after detaching/destroying its
// Process (spec §3 invariant: destroying a Target destroys its Process).
func (s *System) DestroyTarget(t *Target) {
	for i, candidate := range s.targets {
		if candidate == t {
			s.targets = append(s.targets[:i:i], s.targets[i+1:]...)
			break
		}
	}
	t.destroy()
	s.observers.Fire(SystemEvent{Kind: SystemTargetDestroyed, Target: t})
}

// CreateJobContext allocates a new, initially-None JobContext.
func (s *System) CreateJobContext() *JobContext {
	j := newJobContext(s)
	s.jobContexts = append(s.jobContexts, j)
	return j
}

// ProcessByKoid looks up a live Process across every Target by koid.
func (s *System) ProcessByKoid(koid uint64) (*Process, bool) {
	p, ok := s.processes[koid]
	return p, ok
}

// Processes returns every live Process across all Targets.
func (s *System) Processes() []*Process {
	out := make([]*Process, 0, len(s.processes))
	for _, p := range s.processes {
		out = append(out, p)
	}
	return out
}

func (s *System) registerProcess(p *Process)   { s.processes[p.koid] = p }
func (s *System) unregisterProcess(p *Process) { delete(s.processes, p.koid) }

func (s *System) destroy() {
	for _, t := range s.targets {
		t.destroy()
	}
	for _, j := range s.jobContexts {
		j.destroy()
	}
	s.destroyed = true
}

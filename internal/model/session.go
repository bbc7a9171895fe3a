package model

import (
	"context"
	"sync"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/log"
	"github.com/zxconsole/zxconsole/internal/symbols"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// SessionEventKind distinguishes the observer events Session fires: new
// connections, disconnects, and symbol-indexing progress (spec §3).
type SessionEventKind int

const (
	SessionConnected SessionEventKind = iota
	SessionDisconnected
	SessionIndexingProgress
)

// SessionEvent is delivered to Session observers.
type SessionEvent struct {
	Kind     SessionEventKind
	Hello    agent.HelloReply
	Err      error
	Progress float64 // 0..1, valid when Kind == SessionIndexingProgress
}

// Session is the root of the object model (spec §3): it owns the agent
// Transport, the symbol Service, and the single System instance, and
// dispatches incoming Notifications onto model mutations. All mutation
// happens on whatever goroutine drives run(), matching the "single dispatch
// thread" assumption documented on agent.Transport.
type Session struct {
	transport agent.Transport
	symbols   symbols.Service
	settings  Settings

	system *System

	connected bool
	observers *ObserverList[SessionEvent]

	// ShouldAutoAttach, when set, is consulted on every ProcessStarting
	// notification to decide whether to adopt the process into a Target
	// (spec §4.6's FilterEngine-driven autoattach). internal/breakpoint's
	// Engine lives above model (to avoid a model<->breakpoint import
	// cycle), so wiring code assigns this hook to Engine.Matches rather
	// than Session importing breakpoint directly. A nil hook attaches
	// every reported process, matching the behavior of a JobContext whose
	// own agent-side filter already did the narrowing.
	ShouldAutoAttach func(name string, jobKoid uint64) bool

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewSession constructs a disconnected Session around transport and symbol
// service collaborators (spec §6's declared-abstract collaborators).
func NewSession(transport agent.Transport, symbolService symbols.Service) *Session {
	s := &Session{
		transport: transport,
		symbols:   symbolService,
		settings:  NewMapSettings(),
		observers: NewObserverList[SessionEvent](),
	}
	s.system = newSystem(s)
	return s
}

// System returns the Session's single System instance.
func (s *Session) System() *System { return s.system }

// Transport returns the agent transport collaborator, for callers (verb
// handlers) that must issue requests outside a Thread's resume/stop cycle.
func (s *Session) Transport() agent.Transport { return s.transport }

// Settings returns the session-wide settings store.
func (s *Session) Settings() Settings { return s.settings }

// SetSettings replaces the session-wide settings store, for callers (e.g.
// cmd's wiring) that back it with a persistent collaborator such as
// internal/config.Store instead of the in-memory default.
func (s *Session) SetSettings(settings Settings) { s.settings = settings }

// AddObserver registers fn for Session events.
func (s *Session) AddObserver(fn func(SessionEvent)) uint64 { return s.observers.Add(fn) }

// RemoveObserver unregisters a previously-added observer.
func (s *Session) RemoveObserver(id uint64) { s.observers.Remove(id) }

// Connected reports whether Connect has succeeded and Disconnect has not
// since been called.
func (s *Session) Connected() bool { return s.connected }

// Connect performs the hello handshake and replays any processes the agent
// already had attached or parked in limbo (spec §4.1): each becomes a
// Target in the Running state, or surfaces for the user to triage via the
// limbo notification path.
func (s *Session) Connect(ctx context.Context) error {
	hello, err := s.transport.Hello(ctx)
	if err != nil {
		return zxerr.Wrap(zxerr.Agent, err, "Session: connect")
	}

	for _, info := range hello.AttachedProcesses {
		tgt := s.system.CreateTarget()
		if err := tgt.transition(TargetAttaching); err != nil {
			log.ErrorErr(log.CatModel, "replay attach transition failed", err)
			continue
		}
		if err := tgt.completeAttach(info); err != nil {
			log.ErrorErr(log.CatModel, "replay attach failed", err, "koid", info.Koid)
		}
	}

	s.connected = true
	s.observers.Fire(SessionEvent{Kind: SessionConnected, Hello: hello})

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	go s.run(runCtx)

	return nil
}

// Disconnect fires detach notifications for every attached entity and tears
// down the notification dispatch loop. Breakpoints and Filters are owned by
// internal/breakpoint.Engine, not Session, so they persist as pending across
// reconnection unaffected by this call (spec §4.1).
func (s *Session) Disconnect() error {
	if !s.connected {
		return nil
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()

	for _, t := range s.system.Targets() {
		if t.State() == TargetRunning {
			t.resolveToNone()
		}
	}
	for _, j := range s.system.JobContexts() {
		j.state = JobContextNone
	}

	err := s.transport.Close()
	s.connected = false
	s.observers.Fire(SessionEvent{Kind: SessionDisconnected, Err: err})
	return err
}

// run drains transport notifications and applies them to the object model
// until ctx is cancelled or the notification channel closes.
func (s *Session) run(ctx context.Context) {
	defer s.wg.Done()
	ch := s.transport.Notifications()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			s.dispatch(ctx, n)
		}
	}
}

func (s *Session) dispatch(ctx context.Context, n agent.Notification) {
	switch n.Kind {
	case agent.NotifyProcessStarting:
		if n.ProcessStarting != nil {
			s.onProcessStarting(*n.ProcessStarting)
		}
	case agent.NotifyProcessExiting:
		if n.ProcessExiting != nil {
			s.onProcessExiting(*n.ProcessExiting)
		}
	case agent.NotifyThreadStarting:
		if n.ThreadStarting != nil {
			s.onThreadStarting(*n.ThreadStarting)
		}
	case agent.NotifyThreadExiting:
		if n.ThreadExiting != nil {
			s.onThreadExiting(*n.ThreadExiting)
		}
	case agent.NotifyThreadStopped:
		if n.ThreadStopped != nil {
			s.onThreadStopped(ctx, *n.ThreadStopped)
		}
	case agent.NotifyModuleLoaded:
		if n.ModuleLoaded != nil {
			s.onModuleLoaded(*n.ModuleLoaded)
		}
	case agent.NotifyIOOutput:
		if n.IOOutput != nil {
			s.onIOOutput(*n.IOOutput)
		}
	case agent.NotifyLimboProcesses:
		// Surfaced to the UI layer via SessionEvent observers rather than
		// mutated into the model directly; limbo processes are not yet
		// attached Targets (spec §4.1).
	}
}

// onProcessStarting handles a new-process notification delivered through an
// attached JobContext (spec §4.2's filter-driven autoattach): a matching
// Filter is expected to have already caused the agent to attach, so this
// simply adopts the process into an unused (or freshly created) Target.
func (s *Session) onProcessStarting(info agent.ProcessInfo) {
	if s.ShouldAutoAttach != nil && !s.ShouldAutoAttach(info.Name, 0) {
		return
	}
	tgt := s.system.UnusedTarget()
	if tgt == nil {
		tgt = s.system.CreateTarget()
	}
	if err := tgt.transition(TargetAttaching); err != nil {
		log.ErrorErr(log.CatModel, "autoattach transition failed", err)
		return
	}
	if err := tgt.completeAttach(info); err != nil {
		log.ErrorErr(log.CatModel, "autoattach failed", err, "koid", info.Koid)
	}
}

func (s *Session) onProcessExiting(info agent.ProcessExitingInfo) {
	proc, ok := s.system.ProcessByKoid(info.Koid)
	if !ok {
		return
	}
	proc.target.resolveToNone()
}

func (s *Session) onThreadStarting(info agent.ThreadStartingInfo) {
	proc, ok := s.system.ProcessByKoid(info.ProcessKoid)
	if !ok {
		return
	}
	proc.createThread(info)
}

func (s *Session) onThreadExiting(info agent.ThreadExitingInfo) {
	proc, ok := s.system.ProcessByKoid(info.ProcessKoid)
	if !ok {
		return
	}
	proc.destroyThread(info.ThreadKoid)
}

// onThreadStopped routes a stop notification through Thread.HandleStop and,
// when the net decision is to keep running, immediately issues the resume
// request the winning controller asked for (spec §4.3 step 3).
func (s *Session) onThreadStopped(ctx context.Context, info agent.ThreadStoppedInfo) {
	proc, ok := s.system.ProcessByKoid(info.ProcessKoid)
	if !ok {
		return
	}
	th, ok := proc.ThreadByKoid(info.ThreadKoid)
	if !ok {
		return
	}
	mode, shouldResume := th.HandleStop(ctx, info)
	if !shouldResume {
		return
	}
	if _, err := s.transport.Resume(ctx, agent.ResumeRequest{
		ProcessKoid: proc.Koid(),
		ThreadKoid:  th.Koid(),
		Mode:        mode,
	}); err != nil {
		log.ErrorErr(log.CatModel, "auto-resume failed", err, "thread_koid", th.Koid())
	}
}

func (s *Session) onModuleLoaded(info agent.ModuleLoadedInfo) {
	proc, ok := s.system.ProcessByKoid(info.ProcessKoid)
	if !ok {
		return
	}
	proc.addModule(info.Module)
}

func (s *Session) onIOOutput(info agent.IOOutputInfo) {
	proc, ok := s.system.ProcessByKoid(info.ProcessKoid)
	if !ok {
		return
	}
	proc.writeStdio(info.Stream, info.Data)
}

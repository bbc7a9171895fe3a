package model

import (
	"context"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/log"
	"github.com/zxconsole/zxconsole/internal/symbols"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// ThreadState is one of the six execution states a Thread may be in (spec
// §3).
type ThreadState int

const (
	ThreadRunning ThreadState = iota
	ThreadSuspended
	ThreadBlocked
	ThreadCoreDump
	ThreadDying
	ThreadDead
)

func (s ThreadState) String() string {
	switch s {
	case ThreadSuspended:
		return "Suspended"
	case ThreadBlocked:
		return "Blocked"
	case ThreadCoreDump:
		return "CoreDump"
	case ThreadDying:
		return "Dying"
	case ThreadDead:
		return "Dead"
	default:
		return "Running"
	}
}

// ThreadEventKind distinguishes the observer events a Thread fires (spec
// §3: "stop... and frame-list invalidation").
type ThreadEventKind int

const (
	ThreadStoppedEvent ThreadEventKind = iota
	ThreadFramesInvalidated
)

// ThreadEvent is delivered to Thread observers.
type ThreadEvent struct {
	Kind      ThreadEventKind
	Thread    *Thread
	Exception agent.ExceptionKind
	Matched   []agent.MatchedBreakpoint
}

// Thread is a thread inside a Process (spec §3).
type Thread struct {
	process *Process
	koid    uint64
	name    string
	state   ThreadState

	stack         *Stack
	controllers   []Controller // LIFO, most recent last
	blockedReason string

	activeFrame int // unified-stack index of the user's last-selected frame

	destroyed bool
	observers *ObserverList[ThreadEvent]

	symbols   symbols.Service
	transport agent.Transport
}

func newThread(proc *Process, koid uint64, name string) *Thread {
	return &Thread{
		process:   proc,
		koid:      koid,
		name:      name,
		state:     ThreadRunning,
		stack:     newStack(),
		observers: NewObserverList[ThreadEvent](),
		symbols:   proc.target.system.session.symbols,
		transport: proc.target.system.session.transport,
	}
}

// AddObserver registers fn for Thread events.
func (t *Thread) AddObserver(fn func(ThreadEvent)) uint64 { return t.observers.Add(fn) }

// RemoveObserver unregisters a previously-added observer.
func (t *Thread) RemoveObserver(id uint64) { t.observers.Remove(id) }

// Destroyed implements Destroyable.
func (t *Thread) Destroyed() bool { return t.destroyed }

// Symbols returns the symbol service collaborator, for controllers that
// need to query line ranges or inline chains directly.
func (t *Thread) Symbols() symbols.Service { return t.symbols }

// Transport returns the agent transport collaborator, for controllers that
// must issue requests outside the resume/stop cycle (e.g. JumpTo writing
// registers directly).
func (t *Thread) Transport() agent.Transport { return t.transport }

func (t *Thread) Koid() uint64         { return t.koid }
func (t *Thread) Name() string         { return t.name }
func (t *Thread) State() ThreadState   { return t.state }
func (t *Thread) Process() *Process    { return t.process }
func (t *Thread) Stack() *Stack        { return t.stack }
func (t *Thread) ActiveFrame() int     { return t.activeFrame }
func (t *Thread) BlockedReason() string { return t.blockedReason }

// SetActiveFrame sets the user's selected unified-stack frame index.
func (t *Thread) SetActiveFrame(idx int) { t.activeFrame = idx }

// Controllers returns the controller stack, topmost (most recently pushed)
// last, matching "most recent on top" from spec §3 rendered as a Go slice
// append-at-end LIFO.
func (t *Thread) Controllers() []Controller { return t.controllers }

// PushController installs ctrl on top of the controller stack and
// initializes it (spec §4.5).
func (t *Thread) PushController(ctrl Controller) error {
	if err := ctrl.Init(t); err != nil {
		return err
	}
	t.controllers = append(t.controllers, ctrl)
	log.Debug(log.CatController, "controller pushed", "thread_koid", t.koid, "controller", ctrl.Name())
	return nil
}

// CancelAllThreadControllers unconditionally discards the controller stack
// (spec §4.5: used by "pause --clear-state").
func (t *Thread) CancelAllThreadControllers() {
	for i := len(t.controllers) - 1; i >= 0; i-- {
		t.controllers[i].Cancel()
	}
	t.controllers = nil
}

func (t *Thread) popController() {
	n := len(t.controllers)
	if n == 0 {
		return
	}
	t.controllers = t.controllers[:n-1]
}

// HandleStop implements the four-step processing order of spec §4.3:
//  1. update state + replace stack top (retaining inline expansion),
//  2. consult the controller stack top-down, first non-Continue wins,
//  3. if net decision is Continue, the caller resumes with the winning mode,
//  4. if the decision is to stop, fire OnThreadStopped observers.
//
// HandleStop returns the resume mode to issue when the decision is
// Continue/KeepSteppingWithNewPlan, or shouldResume=false when the thread
// should stop and observers have already been fired. When every controller
// returns Continue, the topmost controller's resume mode is used.
func (t *Thread) HandleStop(ctx context.Context, info agent.ThreadStoppedInfo) (mode agent.ResumeMode, shouldResume bool) {
	t.state = ThreadSuspended
	t.stack.replaceTop(ctx, t, info.Frames, info.HasAllFrames)

	stop := StopInfo{Thread: t, Exception: info.Exception, Matched: info.Matched}

	decision := DecisionStop
	var deciding Controller
	decidingIdx := len(t.controllers) - 1
	if decidingIdx >= 0 {
		decision = DecisionContinue
		deciding = t.controllers[decidingIdx]
	}
	for i := len(t.controllers) - 1; i >= 0; i-- {
		d := t.controllers[i].OnThreadStopped(stop)
		if d != DecisionContinue {
			decision = d
			deciding = t.controllers[i]
			decidingIdx = i
			break
		}
	}
	if len(t.controllers) == 0 {
		decision = DecisionStop
	}

	if decision == DecisionContinue || decision == DecisionKeepSteppingWithNewPlan {
		var m agent.ResumeMode
		if deciding != nil {
			m = deciding.GetResumeMode()
		}
		t.state = ThreadRunning
		return m, true
	}

	// Stop or StopAndReport: pop the deciding controller before firing
	// observers, so nested completion callbacks run in LIFO order (spec
	// §4.5's termination rule).
	if deciding != nil {
		t.controllers = append(t.controllers[:decidingIdx:decidingIdx], t.controllers[decidingIdx+1:]...)
	}
	t.observers.Fire(ThreadEvent{Kind: ThreadStoppedEvent, Thread: t, Exception: info.Exception, Matched: info.Matched})
	return agent.ResumeMode{}, false
}

// SyncFrames requests the full frame chain from the agent (spec §4.4).
func (t *Thread) SyncFrames(ctx context.Context) error {
	reply, err := t.transport.ThreadStatus(ctx, agent.ThreadStatusRequest{ProcessKoid: t.process.koid})
	if err != nil {
		return zxerr.Wrap(zxerr.Agent, err, "Thread %d: sync frames", t.koid)
	}
	if reply.Err != "" {
		return zxerr.New(zxerr.Agent, "Thread %d: sync frames: %s", t.koid, reply.Err)
	}
	// A real agent would return the physical frame chain here; the
	// LoopbackTransport used by tests drives SyncFrames through
	// DeliverThreadStopped with HasAllFrames=true instead.
	t.observers.Fire(ThreadEvent{Kind: ThreadFramesInvalidated, Thread: t})
	return nil
}

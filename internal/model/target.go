package model

import (
	"context"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/log"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// TargetState is one of the four states a Target slot may be in (spec §3).
type TargetState int

const (
	TargetNone TargetState = iota
	TargetStarting
	TargetAttaching
	TargetRunning
)

func (s TargetState) String() string {
	switch s {
	case TargetStarting:
		return "Starting"
	case TargetAttaching:
		return "Attaching"
	case TargetRunning:
		return "Running"
	default:
		return "None"
	}
}

// targetValidTransitions defines the allowed Target state machine
// transitions, grounded on the same validTransitions-map idiom used
// elsewhere in this codebase for phase transitions.
var targetValidTransitions = map[TargetState][]TargetState{
	TargetNone:      {TargetStarting, TargetAttaching},
	TargetStarting:  {TargetRunning, TargetNone},
	TargetAttaching: {TargetRunning, TargetNone},
	TargetRunning:   {TargetNone},
}

// CanTransitionTo reports whether from->to is an allowed Target transition.
func (s TargetState) CanTransitionTo(to TargetState) bool {
	for _, candidate := range targetValidTransitions[s] {
		if candidate == to {
			return true
		}
	}
	return false
}

// LaunchArgs carries the program arguments/environment configuration a
// Target remembers for Launch (spec §3's "Carries program arguments and
// environment configuration").
type LaunchArgs struct {
	Path string
	Argv []string
	Env  []string
}

// Target is a slot that may or may not currently refer to a running
// process (spec §3). Invariant: when Running, Target owns exactly one
// Process; destroying a Target destroys its Process (if any) after detach.
type Target struct {
	id         int
	system     *System
	state      TargetState
	process    *Process
	launchArgs LaunchArgs
	destroyed  bool

	observers *ObserverList[TargetEvent]
}

// TargetEventKind distinguishes the observer events a Target fires.
type TargetEventKind int

const (
	TargetStateChanged TargetEventKind = iota
	TargetFailed
)

// TargetEvent is delivered to Target observers.
type TargetEvent struct {
	Kind    TargetEventKind
	Target  *Target
	Process *Process // set on transition into Running
	Err     error     // set on TargetFailed
}

func newTarget(sys *System) *Target {
	return &Target{
		system:    sys,
		state:     TargetNone,
		observers: NewObserverList[TargetEvent](),
	}
}

// AddObserver registers fn for Target state-change events.
func (t *Target) AddObserver(fn func(TargetEvent)) uint64 { return t.observers.Add(fn) }

// RemoveObserver unregisters a previously-added observer.
func (t *Target) RemoveObserver(id uint64) { t.observers.Remove(id) }

// Destroyed implements Destroyable.
func (t *Target) Destroyed() bool { return t.destroyed }

// State returns the current Target state.
func (t *Target) State() TargetState { return t.state }

// Process returns the owned Process, or nil if the Target is not Running.
func (t *Target) Process() *Process { return t.process }

func (t *Target) transition(to TargetState) error {
	if !t.state.CanTransitionTo(to) {
		return zxerr.New(zxerr.WrongState, "Target %d: cannot transition from %s to %s", t.id, t.state, to)
	}
	t.state = to
	return nil
}

// AttachByKoid performs attach mode 1 (spec §4.2): explicit numeric koid.
func (t *Target) AttachByKoid(ctx context.Context, koid uint64) error {
	if err := t.transition(TargetAttaching); err != nil {
		return err
	}
	reply, err := t.system.session.transport.Attach(ctx, agent.AttachRequest{Koid: koid})
	if err != nil || reply.Err != "" {
		t.state = TargetNone
		failErr := err
		if failErr == nil {
			failErr = zxerr.New(zxerr.Agent, "attach to koid %d failed: %s", koid, reply.Err)
		}
		t.observers.Fire(TargetEvent{Kind: TargetFailed, Target: t, Err: failErr})
		return failErr
	}
	return t.completeAttach(reply.Process)
}

// Launch performs attach mode 3 (spec §4.2): request the agent start a
// program or component.
func (t *Target) Launch(ctx context.Context, args LaunchArgs, componentURL string) error {
	if err := t.transition(TargetStarting); err != nil {
		return err
	}
	t.launchArgs = args
	reply, err := t.system.session.transport.Launch(ctx, agent.LaunchRequest{
		Path: args.Path, Argv: args.Argv, Env: args.Env, ComponentURL: componentURL,
	})
	if err != nil || reply.Err != "" {
		t.state = TargetNone
		failErr := err
		if failErr == nil {
			failErr = zxerr.New(zxerr.Agent, "launch failed: %s", reply.Err)
		}
		t.observers.Fire(TargetEvent{Kind: TargetFailed, Target: t, Err: failErr})
		return failErr
	}
	return t.completeAttach(reply.Process)
}

// completeAttach performs the atomic Starting/Attaching -> Running
// transition: by the time observers see TargetStateChanged, t.process is
// already set (spec §4.2: "observers see a valid Process").
func (t *Target) completeAttach(info agent.ProcessInfo) error {
	proc := newProcess(t, info)
	t.process = proc
	if err := t.transition(TargetRunning); err != nil {
		return err
	}
	t.system.registerProcess(proc)
	log.Info(log.CatModel, "target attached", "target_id", t.id, "koid", info.Koid, "name", info.Name)
	t.observers.Fire(TargetEvent{Kind: TargetStateChanged, Target: t, Process: proc})
	return nil
}

// Kill requests the agent terminate the owned process (spec §4.2).
func (t *Target) Kill(ctx context.Context) error {
	if t.process == nil {
		return zxerr.New(zxerr.NotRunning, "Target %d is not running", t.id)
	}
	koid := t.process.Koid()
	_, err := t.system.session.transport.Kill(ctx, agent.KillRequest{Koid: koid})
	if err != nil {
		return zxerr.Wrap(zxerr.Agent, err, "Target %d: kill", t.id)
	}
	t.resolveToNone()
	return nil
}

// Detach releases the debug attach but leaves the process running (spec
// §4.2).
func (t *Target) Detach(ctx context.Context) error {
	if t.process == nil {
		return zxerr.New(zxerr.NotRunning, "Target %d is not running", t.id)
	}
	koid := t.process.Koid()
	reply, err := t.system.session.transport.Detach(ctx, agent.DetachRequest{Koid: koid})
	if err != nil {
		return zxerr.Wrap(zxerr.Agent, err, "Target %d: detach", t.id)
	}
	if reply.Err != "" {
		return zxerr.New(zxerr.Agent, "Target %d: detach: %s", t.id, reply.Err)
	}
	t.resolveToNone()
	return nil
}

// resolveToNone destroys the owned Process and returns the Target to None,
// per §3's "destroying a Target destroys its Process (if any) after detach."
func (t *Target) resolveToNone() {
	if t.process != nil {
		t.system.unregisterProcess(t.process)
		t.process.destroy()
		t.process = nil
	}
	t.state = TargetNone
	t.observers.Fire(TargetEvent{Kind: TargetStateChanged, Target: t})
}

// destroy marks the Target and its owned Process (if any) destroyed.
func (t *Target) destroy() {
	if t.process != nil {
		t.process.destroy()
	}
	t.destroyed = true
}

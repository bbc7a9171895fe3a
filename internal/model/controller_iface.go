package model

import "github.com/zxconsole/zxconsole/internal/agent"

// ControllerDecision is one of the four outcomes a Controller may return
// from OnThreadStopped (spec §4.5).
type ControllerDecision int

const (
	DecisionContinue ControllerDecision = iota
	DecisionStop
	DecisionStopAndReport
	DecisionKeepSteppingWithNewPlan
)

// StopInfo is what a Controller sees on each stop while it is active (spec
// §4.3/§4.5): the freshly updated Thread plus the exception/match data the
// agent delivered for this particular stop.
type StopInfo struct {
	Thread    *Thread
	Exception agent.ExceptionKind
	Matched   []agent.MatchedBreakpoint
}

// Controller is the ThreadController state-machine interface (spec §4.5).
// Declared in this package (rather than internal/controller) because Thread
// owns the `[]Controller` stack directly; internal/controller supplies the
// concrete implementations, importing model rather than the reverse.
type Controller interface {
	// Init is called once when the controller is pushed onto a Thread's
	// controller stack. It may request a synchronous stack sync.
	Init(thread *Thread) error

	// OnThreadStopped is called on every stop while this controller is
	// active, topmost controller first.
	OnThreadStopped(stop StopInfo) ControllerDecision

	// GetResumeMode is consulted when this controller's decision was
	// Continue or KeepSteppingWithNewPlan.
	GetResumeMode() agent.ResumeMode

	// Cancel drops any nested inner controller and signals this controller
	// is being unconditionally discarded (e.g. by "pause --clear-state").
	Cancel()

	// Name identifies the controller for logging/display (e.g. "step",
	// "finish", "until").
	Name() string
}

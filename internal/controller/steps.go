package controller

import (
	"context"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/symbols"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// StepIntoSpecificController is a specialized StepOver whose range ends at
// a specific call instruction (spec §4.5): once that call is reached, it
// performs a single StepInstruction to land inside the callee and stops.
type StepIntoSpecificController struct {
	call   symbols.CallInstruction
	landed bool
}

// NewStepIntoSpecificController targets call.
func NewStepIntoSpecificController(call symbols.CallInstruction) *StepIntoSpecificController {
	return &StepIntoSpecificController{call: call}
}

func (c *StepIntoSpecificController) Name() string { return "step-into-specific" }

func (c *StepIntoSpecificController) Init(thread *model.Thread) error { return nil }

func (c *StepIntoSpecificController) OnThreadStopped(stop model.StopInfo) model.ControllerDecision {
	frames := stop.Thread.Stack().Frames()
	if len(frames) == 0 {
		return model.DecisionStop
	}
	pc := frames[0].PC

	if c.landed {
		return model.DecisionStop
	}
	if pc == c.call.Address {
		c.landed = true
		return model.DecisionContinue // one more single-step lands inside the callee
	}
	if pc >= c.call.RangeBegin && pc < c.call.RangeEnd {
		return model.DecisionContinue
	}
	// Left the range without reaching the call; something else intervened
	// (e.g. a breakpoint), stop and report rather than silently overshoot.
	return model.DecisionStopAndReport
}

func (c *StepIntoSpecificController) GetResumeMode() agent.ResumeMode {
	if c.landed {
		return stepInstructionMode()
	}
	return stepRangeMode(c.call.RangeBegin, c.call.RangeEnd)
}

func (c *StepIntoSpecificController) Cancel() {}

var _ model.Controller = (*StepIntoSpecificController)(nil)

// StepChoice is one numbered option presented by the interactive "Steps"
// flow (spec §4.5).
type StepChoice struct {
	Index       int
	Call        symbols.CallInstruction
	Destination string
}

// threadSnapshot captures the stack/PC identity a StepChoice was computed
// against, so a later Choose call can detect the thread moved in between
// (spec §4.5: "if the thread moved, the operation fails").
type threadSnapshot struct {
	pc      uint64
	sp      uint64
	nframes int
}

// ListSteps asks the symbol service for every call instruction on the
// current source line and numbers them for presentation.
func ListSteps(ctx context.Context, thread *model.Thread) ([]StepChoice, threadSnapshot, error) {
	frames := thread.Stack().Frames()
	idx := thread.ActiveFrame()
	if idx < 0 || idx >= len(frames) {
		return nil, threadSnapshot{}, zxerr.New(zxerr.WrongState, "steps: no active frame")
	}
	f := frames[idx]

	calls, err := thread.Symbols().CallInstructionsOnLine(ctx, f.Module, f.PC)
	if err != nil {
		return nil, threadSnapshot{}, zxerr.Wrap(zxerr.Symbol, err, "steps: query calls")
	}

	choices := make([]StepChoice, 0, len(calls))
	for i, c := range calls {
		choices = append(choices, StepChoice{Index: i + 1, Call: c, Destination: c.Destination})
	}
	return choices, threadSnapshot{pc: f.PC, sp: f.SP, nframes: len(frames)}, nil
}

// ChooseStep validates that the thread has not moved since ListSteps was
// called and, if not, builds the StepIntoSpecificController for choice.
func ChooseStep(thread *model.Thread, snap threadSnapshot, choice StepChoice) (*StepIntoSpecificController, error) {
	frames := thread.Stack().Frames()
	idx := thread.ActiveFrame()
	if idx < 0 || idx >= len(frames) {
		return nil, zxerr.New(zxerr.WrongState, "steps: no active frame")
	}
	f := frames[idx]
	if f.PC != snap.pc || f.SP != snap.sp || len(frames) != snap.nframes {
		return nil, zxerr.New(zxerr.WrongState, "steps: thread state changed since choices were listed")
	}
	return NewStepIntoSpecificController(choice.Call), nil
}

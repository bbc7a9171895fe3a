package controller

import (
	"context"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/model"
)

// StepDirection selects whether a StepController steps into or over calls
// (spec §4.5's StepInto / StepOver).
type StepDirection int

const (
	StepInto StepDirection = iota
	StepOver
)

// StepController implements source-line (or, with PerInstruction set,
// single-instruction) stepping (spec §4.5). StepOver installs a nested
// FinishController whenever the stepped range is left by entering a
// deeper call frame; StepInto instead stops there unless the callee has no
// symbols and StopOnNoSymbols is false, in which case it likewise finishes
// out of the callee before resuming the line step.
type StepController struct {
	Direction       StepDirection
	PerInstruction  bool
	StopOnNoSymbols bool
	// SubframeShouldStop, if set, is consulted when StepOver enters a
	// sub-call: returning true stops inside the callee instead of
	// finishing out of it (spec §4.5's "step with fragment match").
	SubframeShouldStop func(model.Frame) bool

	rangeBegin, rangeEnd uint64
	startFrame           frameIdentity
	inner                model.Controller
}

func (c *StepController) Name() string {
	if c.Direction == StepOver {
		return "next"
	}
	return "step"
}

func (c *StepController) Init(thread *model.Thread) error {
	f, ok := thread.Stack().At(thread.ActiveFrame())
	if !ok {
		return nil
	}
	c.startFrame = identityOf(f)
	if c.PerInstruction {
		return nil
	}
	begin, end, err := thread.Symbols().LineRange(context.Background(), f.Module, f.PC)
	if err != nil {
		return err
	}
	c.rangeBegin, c.rangeEnd = begin, end
	return nil
}

func (c *StepController) OnThreadStopped(stop model.StopInfo) model.ControllerDecision {
	if c.inner != nil {
		d := c.inner.OnThreadStopped(stop)
		if d == model.DecisionContinue {
			return model.DecisionContinue
		}
		// The callee finished; fall through to keep stepping the original
		// line range from wherever the thread landed.
		c.inner = nil
	}

	if c.PerInstruction {
		return model.DecisionStop
	}

	frames := stop.Thread.Stack().Frames()
	if len(frames) == 0 {
		return model.DecisionStop
	}
	cur := frames[0]

	switch {
	case cur.SP > c.startFrame.SP:
		// Returned out of the original frame entirely.
		return model.DecisionStop
	case cur.SP < c.startFrame.SP:
		// Entered a deeper call.
		if c.Direction == StepOver {
			if c.SubframeShouldStop != nil && c.SubframeShouldStop(cur) {
				return model.DecisionStop
			}
			c.inner = NewFinishController(0)
			if err := c.inner.Init(stop.Thread); err != nil {
				return model.DecisionStop
			}
			return model.DecisionContinue
		}
		// StepInto: stop if the callee is symbolized, otherwise step back
		// out unless configured to stop anyway.
		if cur.Function != "" || c.StopOnNoSymbols {
			return model.DecisionStop
		}
		c.inner = NewFinishController(0)
		if err := c.inner.Init(stop.Thread); err != nil {
			return model.DecisionStop
		}
		return model.DecisionContinue
	default:
		if cur.PC >= c.rangeBegin && cur.PC < c.rangeEnd {
			return model.DecisionContinue
		}
		return model.DecisionStop
	}
}

func (c *StepController) GetResumeMode() agent.ResumeMode {
	if c.inner != nil {
		return c.inner.GetResumeMode()
	}
	if c.PerInstruction {
		return stepInstructionMode()
	}
	return stepRangeMode(c.rangeBegin, c.rangeEnd)
}

func (c *StepController) Cancel() {
	if c.inner != nil {
		c.inner.Cancel()
	}
}

var _ model.Controller = (*StepController)(nil)

package controller

import (
	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/model"
)

// UntilController behaves as a transient multi-location breakpoint that
// auto-removes on first hit (spec §4.5): it runs the thread until the PC
// lands on any one of Addresses, then stops.
type UntilController struct {
	Addresses []uint64
}

// NewUntilController targets locs.
func NewUntilController(locs []uint64) *UntilController {
	return &UntilController{Addresses: locs}
}

func (c *UntilController) Name() string { return "until" }

func (c *UntilController) Init(thread *model.Thread) error { return nil }

func (c *UntilController) OnThreadStopped(stop model.StopInfo) model.ControllerDecision {
	frames := stop.Thread.Stack().Frames()
	if len(frames) == 0 {
		return model.DecisionContinue
	}
	pc := frames[0].PC
	for _, addr := range c.Addresses {
		if addr == pc {
			return model.DecisionStop
		}
	}
	return model.DecisionContinue
}

func (c *UntilController) GetResumeMode() agent.ResumeMode { return continueMode() }

func (c *UntilController) Cancel() {}

var _ model.Controller = (*UntilController)(nil)

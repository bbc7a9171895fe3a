package controller

import (
	"context"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/model"
)

// FinishController runs a thread until it returns from a target frame (spec
// §4.5's FinishPhysical): it records the frame identity one level up from
// the target and single-steps (by instruction) until the thread lands back
// in that parent frame, tolerating recursion by comparing frame identity
// rather than return address alone.
type FinishController struct {
	frameIndex int
	parent     frameIdentity
	haveParent bool
	done       bool
}

// NewFinishController targets the physical frame at frameIndex on whatever
// thread it is later pushed onto.
func NewFinishController(frameIndex int) *FinishController {
	return &FinishController{frameIndex: frameIndex}
}

func (c *FinishController) Name() string { return "finish" }

func (c *FinishController) Init(thread *model.Thread) error {
	frames := thread.Stack().Frames()
	parentIdx := c.frameIndex + 1
	if parentIdx >= len(frames) {
		// No parent frame known yet; request a full sync so the next stop
		// can compute frame identity correctly.
		return thread.SyncFrames(context.Background())
	}
	c.parent = identityOf(frames[parentIdx])
	c.haveParent = true
	return nil
}

func (c *FinishController) OnThreadStopped(stop model.StopInfo) model.ControllerDecision {
	if c.done {
		return model.DecisionStop
	}
	if !c.haveParent {
		return model.DecisionStop
	}
	frames := stop.Thread.Stack().Frames()
	if len(frames) > 0 && identityOf(frames[0]) == c.parent {
		c.done = true
		return model.DecisionStop
	}
	return model.DecisionContinue
}

func (c *FinishController) GetResumeMode() agent.ResumeMode { return stepInstructionMode() }

func (c *FinishController) Cancel() { c.done = true }

var _ model.Controller = (*FinishController)(nil)

package controller

import (
	"context"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// JumpController is not a stepper (spec §4.5): it requests the agent set PC
// to Address during Init and reports the new stop context without
// resuming; its OnThreadStopped always stops immediately so the freshly
// relocated frame is what the user sees.
type JumpController struct {
	Address uint64
}

func NewJumpController(address uint64) *JumpController {
	return &JumpController{Address: address}
}

func (c *JumpController) Name() string { return "jump" }

func (c *JumpController) Init(thread *model.Thread) error {
	_, err := thread.Transport().WriteRegisters(context.Background(), agent.WriteRegistersRequest{
		ProcessKoid: thread.Process().Koid(),
		ThreadKoid:  thread.Koid(),
		Registers:   map[string]uint64{"pc": c.Address},
	})
	if err != nil {
		return zxerr.Wrap(zxerr.Agent, err, "jump: set pc to 0x%x", c.Address)
	}
	return thread.SyncFrames(context.Background())
}

func (c *JumpController) OnThreadStopped(stop model.StopInfo) model.ControllerDecision {
	return model.DecisionStop
}

func (c *JumpController) GetResumeMode() agent.ResumeMode { return continueMode() }

func (c *JumpController) Cancel() {}

var _ model.Controller = (*JumpController)(nil)

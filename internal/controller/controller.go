// Package controller implements the ThreadController hierarchy (spec §4.5):
// stepping, finish, until, jump, and the interactive "Steps" call picker.
// Every type here implements model.Controller; Thread owns the controller
// stack, so these import model rather than the reverse.
package controller

import (
	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/model"
)

// frameIdentity is the (SP) identity of a physical frame, used by
// FinishController to tell recursive invocations of the same function
// apart (spec §4.5: "Tolerates recursion correctly by comparing frame
// identity, not return address alone").
type frameIdentity struct {
	SP uint64
}

func identityOf(f model.Frame) frameIdentity { return frameIdentity{SP: f.SP} }

// stepInstructionMode is the GetResumeMode a controller returns when it
// wants to single-step one machine instruction and re-evaluate.
func stepInstructionMode() agent.ResumeMode {
	return agent.ResumeMode{Kind: agent.ResumeStepInstruction}
}

func continueMode() agent.ResumeMode {
	return agent.ResumeMode{Kind: agent.ResumeContinue}
}

func stepRangeMode(begin, end uint64) agent.ResumeMode {
	return agent.ResumeMode{Kind: agent.ResumeStepRange, RangeBegin: begin, RangeEndExcl: end}
}

package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/symbols"
)

func launchTestProcess(t *testing.T, sess *Session, transport *agent.LoopbackTransport) (*Process, *Thread) {
	t.Helper()
	ctx := context.Background()
	tgt := sess.System().CreateTarget()
	require.NoError(t, tgt.Launch(ctx, LaunchArgs{Path: "/bin/test"}, ""))
	proc := tgt.Process()
	require.NotNil(t, proc)

	threadKoid := transport.SpawnFakeThread(proc.Koid(), "main-thread")
	sess.dispatch(ctx, agent.Notification{
		Kind:           agent.NotifyThreadStarting,
		ThreadStarting: &agent.ThreadStartingInfo{ProcessKoid: proc.Koid(), ThreadKoid: threadKoid, Name: "main-thread"},
	})
	th, ok := proc.ThreadByKoid(threadKoid)
	require.True(t, ok)
	return proc, th
}

func TestHandleStopExpandsInlineFrames(t *testing.T) {
	transport := agent.NewLoopbackTransport()
	svc := symbols.NewFakeService(symbols.FakeModule{
		Name: "main",
		Lines: []symbols.FakeLine{
			{
				Address: 0x2000, File: "main.c", Line: 42, Function: "outer",
				InlineChain: []symbols.InlineFrame{{Function: "inlined_helper", File: "helper.c", Line: 7}},
			},
		},
	})
	sess := NewSession(transport, symbols.NewCachedService(svc))
	require.NoError(t, sess.Connect(context.Background()))
	defer sess.Disconnect()

	proc, th := launchTestProcess(t, sess, transport)

	info := agent.ThreadStoppedInfo{
		ProcessKoid:  proc.Koid(),
		ThreadKoid:   th.Koid(),
		Exception:    agent.ExceptionSoftwareBreakpoint,
		Frames:       []agent.AgentFrame{{PC: 0x2000, SP: 0x7000, BP: 0x7010, HasBP: true}},
		HasAllFrames: true,
	}
	sess.dispatch(context.Background(), agent.Notification{Kind: agent.NotifyThreadStopped, ThreadStopped: &info})

	require.Equal(t, ThreadSuspended, th.State())
	frames := th.Stack().Frames()
	require.Len(t, frames, 2, "one inline frame plus the physical frame")
	require.True(t, frames[0].IsInline)
	require.Equal(t, "inlined_helper", frames[0].Function)
	require.False(t, frames[1].IsInline)
	require.Equal(t, "outer", frames[1].Function)
	require.Equal(t, uint64(0x2000), frames[1].PC)
}

type recordingController struct {
	decision ControllerDecision
	inits    int
}

func (c *recordingController) Name() string                             { return "recording" }
func (c *recordingController) Init(thread *Thread) error                { c.inits++; return nil }
func (c *recordingController) OnThreadStopped(stop StopInfo) ControllerDecision { return c.decision }
func (c *recordingController) GetResumeMode() agent.ResumeMode          { return agent.ResumeMode{} }
func (c *recordingController) Cancel()                                  {}

func TestHandleStopConsultsControllerStackTopDown(t *testing.T) {
	transport := agent.NewLoopbackTransport()
	sess := NewSession(transport, symbols.NewCachedService(symbols.NewFakeService()))
	require.NoError(t, sess.Connect(context.Background()))
	defer sess.Disconnect()

	proc, th := launchTestProcess(t, sess, transport)

	bottom := &recordingController{decision: DecisionStop}
	top := &recordingController{decision: DecisionContinue}
	require.NoError(t, th.PushController(bottom))
	require.NoError(t, th.PushController(top))

	info := agent.ThreadStoppedInfo{ProcessKoid: proc.Koid(), ThreadKoid: th.Koid()}
	mode, shouldResume := th.HandleStop(context.Background(), info)
	require.False(t, shouldResume, "the bottom controller's Stop is the first non-Continue decision")
	require.Equal(t, agent.ResumeMode{}, mode)
	require.Len(t, th.Controllers(), 1, "only the deciding (bottom) controller is popped")

	top.decision = DecisionStop
	_, shouldResume = th.HandleStop(context.Background(), info)
	require.False(t, shouldResume)
	require.Len(t, th.Controllers(), 0, "the deciding (topmost) controller is popped")
}

func TestCancelAllThreadControllers(t *testing.T) {
	transport := agent.NewLoopbackTransport()
	sess := NewSession(transport, symbols.NewCachedService(symbols.NewFakeService()))
	require.NoError(t, sess.Connect(context.Background()))
	defer sess.Disconnect()

	_, th := launchTestProcess(t, sess, transport)
	require.NoError(t, th.PushController(&recordingController{}))
	require.NoError(t, th.PushController(&recordingController{}))
	th.CancelAllThreadControllers()
	require.Empty(t, th.Controllers())
}

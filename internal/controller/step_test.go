package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/symbols"
)

// newStoppedThread builds a Thread with a live stack by driving it through
// a fresh Session/LoopbackTransport pair and an initial stop notification,
// giving controller tests a realistic model.Thread to operate on.
func newStoppedThread(t *testing.T, svc symbols.Service, frames []agent.AgentFrame) *model.Thread {
	t.Helper()
	transport := agent.NewLoopbackTransport()
	sess := model.NewSession(transport, symbols.NewCachedService(svc))
	require.NoError(t, sess.Connect(context.Background()))
	t.Cleanup(func() { sess.Disconnect() })

	tgt := sess.System().CreateTarget()
	require.NoError(t, tgt.Launch(context.Background(), model.LaunchArgs{}, ""))
	proc := tgt.Process()
	threadKoid := transport.SpawnFakeThread(proc.Koid(), "t")
	th, ok := proc.ThreadByKoid(threadKoid)
	require.True(t, ok)

	th.HandleStop(context.Background(), agent.ThreadStoppedInfo{
		ProcessKoid: proc.Koid(), ThreadKoid: threadKoid,
		Frames: frames, HasAllFrames: true,
	})
	return th
}

func TestUntilControllerStopsOnMatchingAddress(t *testing.T) {
	c := NewUntilController([]uint64{0x4242})

	th := newStoppedThread(t, symbols.NewFakeService(), []agent.AgentFrame{{PC: 0x1111}})
	require.Equal(t, model.DecisionContinue, c.OnThreadStopped(model.StopInfo{Thread: th}))

	th = newStoppedThread(t, symbols.NewFakeService(), []agent.AgentFrame{{PC: 0x4242}})
	require.Equal(t, model.DecisionStop, c.OnThreadStopped(model.StopInfo{Thread: th}))
}

func TestFinishControllerToleratesRecursionByFrameIdentity(t *testing.T) {
	// Two frames: [0]=callee (SP=0x6ff0), [1]=caller (SP=0x7000).
	th := newStoppedThread(t, symbols.NewFakeService(), []agent.AgentFrame{
		{PC: 0x1000, SP: 0x6ff0}, {PC: 0x2000, SP: 0x7000},
	})

	fc := NewFinishController(0)
	require.NoError(t, fc.Init(th))

	decision := fc.OnThreadStopped(model.StopInfo{Thread: th})
	require.Equal(t, model.DecisionContinue, decision, "still inside a deeper recursive call")

	th.HandleStop(context.Background(), agent.ThreadStoppedInfo{
		Frames: []agent.AgentFrame{{PC: 0x2004, SP: 0x7000}}, HasAllFrames: true,
	})
	decision = fc.OnThreadStopped(model.StopInfo{Thread: th})
	require.Equal(t, model.DecisionStop, decision, "SP matches the recorded parent frame identity")
}

func TestStepControllerStepsOverCall(t *testing.T) {
	svc := symbols.NewFakeService(symbols.FakeModule{
		Name: "main",
		Lines: []symbols.FakeLine{
			{Address: 0x1000, File: "main.c", Line: 10, Function: "caller"},
			{Address: 0x1010, File: "main.c", Line: 11, Function: "caller"},
		},
	})
	th := newStoppedThread(t, svc, []agent.AgentFrame{{PC: 0x1000, SP: 0x7000}})

	sc := &StepController{Direction: StepOver}
	require.NoError(t, sc.Init(th))

	// A deeper call is entered (lower SP): StepOver installs an inner
	// FinishController and asks to keep going.
	th.HandleStop(context.Background(), agent.ThreadStoppedInfo{
		Frames: []agent.AgentFrame{{PC: 0x5000, SP: 0x6ff0}, {PC: 0x1004, SP: 0x7000}}, HasAllFrames: true,
	})
	decision := sc.OnThreadStopped(model.StopInfo{Thread: th})
	require.Equal(t, model.DecisionContinue, decision)

	// Back in the original frame, past the line's range: stop.
	th.HandleStop(context.Background(), agent.ThreadStoppedInfo{
		Frames: []agent.AgentFrame{{PC: 0x1010, SP: 0x7000}}, HasAllFrames: true,
	})
	decision = sc.OnThreadStopped(model.StopInfo{Thread: th})
	require.Equal(t, model.DecisionStop, decision)
}

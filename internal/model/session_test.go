package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/symbols"
)

func newTestSession(t *testing.T) (*Session, *agent.LoopbackTransport) {
	t.Helper()
	transport := agent.NewLoopbackTransport()
	svc := symbols.NewFakeService(symbols.FakeModule{
		Name: "main",
		Lines: []symbols.FakeLine{
			{Address: 0x1000, File: "main.c", Line: 10, Function: "main"},
		},
	})
	sess := NewSession(transport, symbols.NewCachedService(svc))
	return sess, transport
}

func TestSessionReplayAttachSequenceReachesRunning(t *testing.T) {
	transport := agent.NewLoopbackTransport()
	proc := transport.SpawnFakeProcess("already-attached", agent.OriginAttach)

	// LoopbackTransport's Hello reports no attached processes, so this
	// applies the transition + completeAttach sequence that Connect runs
	// for each replayed process directly, after connecting.
	sess := NewSession(transport, symbols.NewCachedService(symbols.NewFakeService()))
	require.NoError(t, sess.Connect(context.Background()))
	defer sess.Disconnect()

	tgt := sess.System().CreateTarget()
	require.NoError(t, tgt.transition(TargetAttaching))
	require.NoError(t, tgt.completeAttach(proc))
	require.Equal(t, TargetRunning, tgt.State())
	require.NotNil(t, tgt.Process())
}

func TestSessionDispatchProcessLifecycle(t *testing.T) {
	sess, transport := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, sess.Connect(ctx))
	defer sess.Disconnect()

	info := transport.SpawnFakeProcess("target1", agent.OriginLaunch)
	sess.dispatch(ctx, agent.Notification{Kind: agent.NotifyProcessStarting, ProcessStarting: &info})

	procs := sess.System().Processes()
	require.Len(t, procs, 1)
	require.Equal(t, info.Koid, procs[0].Koid())

	exitInfo := agent.ProcessExitingInfo{Koid: info.Koid, ExitCode: 0}
	sess.dispatch(ctx, agent.Notification{Kind: agent.NotifyProcessExiting, ProcessExiting: &exitInfo})
	require.Empty(t, sess.System().Processes())
}

func TestSessionAutoAttachHookCanReject(t *testing.T) {
	sess, transport := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, sess.Connect(ctx))
	defer sess.Disconnect()

	sess.ShouldAutoAttach = func(name string, jobKoid uint64) bool { return false }

	info := transport.SpawnFakeProcess("ignored", agent.OriginLaunch)
	sess.dispatch(ctx, agent.Notification{Kind: agent.NotifyProcessStarting, ProcessStarting: &info})

	require.Empty(t, sess.System().Processes())
}

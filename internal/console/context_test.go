package console

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/breakpoint"
	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/symbols"
)

func newTestContext(t *testing.T) (*Context, *model.Session, *agent.LoopbackTransport, *breakpoint.Engine) {
	t.Helper()
	transport := agent.NewLoopbackTransport()
	svc := symbols.NewCachedService(symbols.NewFakeService(symbols.FakeModule{
		Name: "main",
		Lines: []symbols.FakeLine{
			{Address: 0x1000, File: "main.c", Line: 10, Function: "main"},
		},
	}))
	sess := model.NewSession(transport, svc)
	// The loopback agent republishes ProcessStarting for every Launch call
	// on the notification channel as well as answering the Launch RPC
	// directly; rejecting autoattach here avoids double-registering the
	// process this test already attaches explicitly via Target.Launch.
	sess.ShouldAutoAttach = func(name string, jobKoid uint64) bool { return false }
	require.NoError(t, sess.Connect(context.Background()))
	t.Cleanup(func() { _ = sess.Disconnect() })

	engine := breakpoint.NewEngine(sess.System(), transport, svc)
	cc := New(sess, engine, DefaultFormatter{})
	return cc, sess, transport, engine
}

func launchTarget(t *testing.T, sess *model.Session, path string) *model.Target {
	t.Helper()
	tgt := sess.System().CreateTarget()
	require.NoError(t, tgt.Launch(context.Background(), model.LaunchArgs{Path: path}, ""))
	return tgt
}

func TestRegisterTargetAssignsMonotonicIDs(t *testing.T) {
	cc, sess, _, _ := newTestContext(t)

	t1 := launchTarget(t, sess, "first")
	id1, ok := cc.TargetID(t1)
	require.True(t, ok)
	require.Equal(t, 1, id1)

	t2 := launchTarget(t, sess, "second")
	id2, ok := cc.TargetID(t2)
	require.True(t, ok)
	require.Equal(t, 2, id2)

	require.Equal(t, id1, cc.ActiveTargetID())
}

func TestDestroyingActiveTargetPromotesNextSurvivor(t *testing.T) {
	cc, sess, _, _ := newTestContext(t)

	t1 := launchTarget(t, sess, "first")
	t2 := launchTarget(t, sess, "second")
	require.Equal(t, 1, cc.ActiveTargetID())

	sess.System().DestroyTarget(t1)
	require.Equal(t, 2, cc.ActiveTargetID())

	id2, ok := cc.TargetID(t2)
	require.True(t, ok)
	require.Equal(t, 2, id2)
}

func TestThreadIDsScopedPerTarget(t *testing.T) {
	cc, sess, transport, _ := newTestContext(t)

	t1 := launchTarget(t, sess, "first")
	t2 := launchTarget(t, sess, "second")

	transport.SpawnFakeThread(t1.Process().Koid(), "thread-a")
	transport.SpawnFakeThread(t2.Process().Koid(), "thread-b")

	require.Eventually(t, func() bool {
		return len(t1.Process().Threads()) == 1 && len(t2.Process().Threads()) == 1
	}, time.Second, time.Millisecond)

	require.Eventually(t, func() bool {
		_, ok1 := cc.ThreadID(t1, t1.Process().Threads()[0])
		_, ok2 := cc.ThreadID(t2, t2.Process().Threads()[0])
		return ok1 && ok2
	}, time.Second, time.Millisecond)

	id1, _ := cc.ThreadID(t1, t1.Process().Threads()[0])
	id2, _ := cc.ThreadID(t2, t2.Process().Threads()[0])
	require.Equal(t, 1, id1)
	require.Equal(t, 1, id2, "each Target gets its own Thread id space")
}

func TestResolveFallsBackToActiveSelection(t *testing.T) {
	cc, sess, transport, _ := newTestContext(t)

	tgt := launchTarget(t, sess, "only")
	transport.SpawnFakeThread(tgt.Process().Koid(), "main-thread")

	require.Eventually(t, func() bool { return len(tgt.Process().Threads()) == 1 }, time.Second, time.Millisecond)

	bound, err := cc.Resolve(&command.Command{Verb: "stack"})
	require.NoError(t, err)
	require.Equal(t, tgt, bound.Target)
	require.Equal(t, tgt.Process().Threads()[0], bound.Thread)
}

func TestResolveExplicitIndexOverridesActive(t *testing.T) {
	cc, sess, _, _ := newTestContext(t)

	launchTarget(t, sess, "first")
	t2 := launchTarget(t, sess, "second")

	bound, err := cc.Resolve(&command.Command{
		Nouns: []command.NounRef{{Kind: "process", Index: 2, HasIndex: true}},
		Verb:  "stack",
	})
	require.NoError(t, err)
	require.Equal(t, t2, bound.Target)
}

func TestResolveUnknownIndexIsNotFound(t *testing.T) {
	cc, _, _, _ := newTestContext(t)

	_, err := cc.Resolve(&command.Command{
		Nouns: []command.NounRef{{Kind: "process", Index: 99, HasIndex: true}},
		Verb:  "stack",
	})
	require.Error(t, err)
}

func TestHandleStopSelectsHighestIDNonInternalBreakpoint(t *testing.T) {
	cc, sess, transport, engine := newTestContext(t)

	tgt := launchTarget(t, sess, "prog")
	transport.SpawnFakeThread(tgt.Process().Koid(), "main-thread")
	require.Eventually(t, func() bool { return len(tgt.Process().Threads()) == 1 }, time.Second, time.Millisecond)

	th := tgt.Process().Threads()[0]

	lowBP, err := engine.CreateBreakpoint(context.Background(), breakpoint.BreakpointSettings{
		Location: symbolLocation(10), Enabled: true, StopMode: breakpoint.StopAll, HitMult: 1,
	})
	require.NoError(t, err)
	highBP, err := engine.CreateBreakpoint(context.Background(), breakpoint.BreakpointSettings{
		Location: symbolLocation(10), Enabled: true, StopMode: breakpoint.StopAll, HitMult: 1,
	})
	require.NoError(t, err)

	var output []string
	cc.SetOutput(func(s string) { output = append(output, s) })

	transport.DeliverThreadStopped(agent.ThreadStoppedInfo{
		ProcessKoid: tgt.Process().Koid(),
		ThreadKoid:  th.Koid(),
		Exception:   agent.ExceptionSoftwareBreakpoint,
		Matched: []agent.MatchedBreakpoint{
			{ClientID: lowBP.ID()},
			{ClientID: highBP.ID()},
		},
		HasAllFrames: true,
	})

	require.Eventually(t, func() bool { return cc.ActiveBreakpointID() == highBP.ID() }, time.Second, time.Millisecond)
	require.Equal(t, 0, th.ActiveFrame())
	require.NotEmpty(t, output)
}

func TestSelectOrListProcess(t *testing.T) {
	cc, sess, _, _ := newTestContext(t)

	launchTarget(t, sess, "alpha")
	launchTarget(t, sess, "beta")

	text, err := cc.SelectOrList(context.Background(), &command.Command{
		Nouns: []command.NounRef{{Kind: "process"}},
	})
	require.NoError(t, err)
	require.Contains(t, text, "alpha")
	require.Contains(t, text, "beta")

	text, err = cc.SelectOrList(context.Background(), &command.Command{
		Nouns: []command.NounRef{{Kind: "process", Index: 2, HasIndex: true}},
	})
	require.NoError(t, err)
	require.Contains(t, text, "2")
	require.Equal(t, 2, cc.ActiveTargetID())
}

func symbolLocation(line int) symbols.InputLocation {
	return symbols.InputLocation{Kind: symbols.LocationFileLine, File: "main.c", Line: line}
}

package breakpoint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/symbols"
)

func newEngineWithProcess(t *testing.T) (*Engine, *model.Process, *agent.LoopbackTransport) {
	t.Helper()
	transport := agent.NewLoopbackTransport()
	svc := symbols.NewFakeService(symbols.FakeModule{
		Name: "main",
		Functions: []symbols.FunctionInfo{
			{Name: "DoWork", File: "work.c", LowPC: 0x1000, HighPC: 0x1100},
		},
		Lines: []symbols.FakeLine{
			{Address: 0x1000, File: "work.c", Line: 5, Function: "DoWork"},
		},
	})
	cached := symbols.NewCachedService(svc)

	sess := model.NewSession(transport, cached)
	require.NoError(t, sess.Connect(context.Background()))
	t.Cleanup(func() { sess.Disconnect() })

	tgt := sess.System().CreateTarget()
	require.NoError(t, tgt.Launch(context.Background(), model.LaunchArgs{Path: "/bin/test"}, ""))

	e := NewEngine(sess.System(), transport, cached)
	return e, tgt.Process(), transport
}

func TestCreateBreakpointResolvesAgainstLiveProcess(t *testing.T) {
	e, proc, _ := newEngineWithProcess(t)

	b, err := e.CreateBreakpoint(context.Background(), BreakpointSettings{
		Enabled:  true,
		HitMult:  1,
		Location: symbols.InputLocation{Kind: symbols.LocationSymbol, Symbol: "DoWork"},
	})
	require.NoError(t, err)
	require.False(t, b.Pending())
	require.Len(t, b.Locations(), 1)
	require.Equal(t, proc.Koid(), b.Locations()[0].ProcessKoid)
	require.Equal(t, uint64(0x1000), b.Locations()[0].Address)
}

func TestCreateBreakpointNoMatchIsPending(t *testing.T) {
	e, _, _ := newEngineWithProcess(t)

	b, err := e.CreateBreakpoint(context.Background(), BreakpointSettings{
		Enabled:  true,
		HitMult:  1,
		Location: symbols.InputLocation{Kind: symbols.LocationSymbol, Symbol: "NoSuchFunction"},
	})
	require.NoError(t, err)
	require.True(t, b.Pending())
	require.Empty(t, b.Locations())
}

func TestInternalBreakpointsAreHiddenFromListing(t *testing.T) {
	e, _, _ := newEngineWithProcess(t)

	_, err := e.CreateBreakpoint(context.Background(), BreakpointSettings{
		Enabled: true, HitMult: 1,
		Location: symbols.InputLocation{Kind: symbols.LocationSymbol, Symbol: "DoWork"},
	})
	require.NoError(t, err)

	_, err = e.CreateInternalBreakpoint(context.Background(), nil, BreakpointSettings{
		Enabled: true, HitMult: 1,
		Location: symbols.InputLocation{Kind: symbols.LocationAddress, Address: 0x1000},
	})
	require.NoError(t, err)

	require.Len(t, e.Breakpoints(), 1, "internal breakpoints must not appear in the visible list")
}

func TestDispatchHitThrottlesByHitMult(t *testing.T) {
	e, proc, _ := newEngineWithProcess(t)
	_ = proc

	b, err := e.CreateBreakpoint(context.Background(), BreakpointSettings{
		Enabled: true, HitMult: 2,
		Location: symbols.InputLocation{Kind: symbols.LocationSymbol, Symbol: "DoWork"},
	})
	require.NoError(t, err)

	matched := []agent.MatchedBreakpoint{{ClientID: b.ID(), Address: 0x1000}}

	stopped := e.DispatchHit(context.Background(), nil, matched)
	require.Empty(t, stopped, "first hit of hit_mult=2 should be swallowed")

	stopped = e.DispatchHit(context.Background(), nil, matched)
	require.Equal(t, []uint64{b.ID()}, stopped, "second hit should report")
}

func TestFilterMatchesGlobPattern(t *testing.T) {
	e, _, _ := newEngineWithProcess(t)
	e.CreateFilter("my-service*", 0)

	require.True(t, e.Matches("my-service-worker", 0))
	require.False(t, e.Matches("unrelated", 0))
}

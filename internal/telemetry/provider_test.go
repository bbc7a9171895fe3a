package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zxconsole/zxconsole/internal/command"
)

func TestDefaultConfigDisabled(t *testing.T) {
	p, err := NewProvider(DefaultConfig())
	require.NoError(t, err)
	require.False(t, p.Enabled())
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestWrapDispatchPassesThroughResult(t *testing.T) {
	p, err := NewProvider(DefaultConfig())
	require.NoError(t, err)

	called := false
	wrapped := WrapDispatch(p.Tracer(), func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
		called = true
		return command.Outcome{Text: "ok"}, nil
	})

	bound := &command.BoundCommand{Command: &command.Command{Verb: "continue"}}
	outcome, err := wrapped(context.Background(), bound)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, "ok", outcome.Text)
}

func TestOnStopDoesNotPanic(t *testing.T) {
	p, err := NewProvider(DefaultConfig())
	require.NoError(t, err)

	onStop := OnStop(p.Tracer())
	require.NotPanics(t, func() { onStop(1, 2, 3, "breakpoint 3") })
}

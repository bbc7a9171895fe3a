package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zxconsole/zxconsole/internal/command"
)

// Span attribute keys, mirroring the teacher's AttrCommand* constants.
const (
	AttrVerb       = "zxconsole.command.verb"
	AttrNoun       = "zxconsole.command.noun"
	AttrBreakpoint = "zxconsole.breakpoint.id"
	AttrTarget     = "zxconsole.target.id"
	AttrThread     = "zxconsole.thread.id"
)

// DispatchFunc matches command.Registry.Dispatch's signature, so
// WrapDispatch can sit in front of either a *command.Registry or a test
// double without an import cycle back into internal/command for the
// Registry type itself.
type DispatchFunc func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error)

// WrapDispatch returns dispatch wrapped in a span per call: verb and the
// first noun are recorded as attributes, the handler's error (if any)
// marks the span failed, otherwise it's OK (spec §4.7's "Outcome" dispatch
// contract). Pass a Provider's Tracer(); a no-op tracer makes this a
// zero-overhead pass-through.
func WrapDispatch(tracer trace.Tracer, dispatch DispatchFunc) DispatchFunc {
	return func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
		ctx, span := tracer.Start(ctx, "command."+bound.Command.Verb, trace.WithSpanKind(trace.SpanKindInternal))
		defer span.End()

		span.SetAttributes(attribute.String(AttrVerb, bound.Command.Verb))
		if len(bound.Command.Nouns) > 0 {
			span.SetAttributes(attribute.String(AttrNoun, bound.Command.Nouns[0].Kind))
		}

		outcome, err := dispatch(ctx, bound)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		return outcome, err
	}
}

// OnStop returns a console.Context.SetOnStop callback that opens and
// immediately closes a span describing the stop, since the on-stop
// sequence (spec §4.8) is synchronous and has no natural start event of
// its own to bracket. The span starts from context.Background(), so it is
// a root span with no link to any command span in flight (e.g. a "process
// continue" that triggered the stop); the stop reason is recorded as an
// event on it.
func OnStop(tracer trace.Tracer) func(targetID, threadID, breakpointID int, reason string) {
	return func(targetID, threadID, breakpointID int, reason string) {
		_, span := tracer.Start(context.Background(), "thread.stop", trace.WithSpanKind(trace.SpanKindInternal))
		span.SetAttributes(
			attribute.Int(AttrTarget, targetID),
			attribute.Int(AttrThread, threadID),
		)
		if breakpointID != 0 {
			span.SetAttributes(attribute.Int(AttrBreakpoint, breakpointID))
		}
		span.AddEvent(reason)
		span.End()
	}
}

package verbs

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/controller"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

func registerThreadVerbs(reg *command.Registry, deps Deps) {
	nouns := nounSet("process", "thread", "frame")

	reg.Register(command.VerbSpec{
		Name: "continue", ValidNouns: nouns, Detail: command.DetailNone,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			return resume(ctx, deps, bound, agent.ResumeMode{Kind: agent.ResumeContinue})
		},
	})

	reg.Register(command.VerbSpec{
		Name: "pause", ValidNouns: nouns, Detail: command.DetailNone,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			koid := uint64(0)
			if bound.Target != nil && bound.Target.Process() != nil {
				koid = bound.Target.Process().Koid()
			}
			reply, err := deps.Session.Transport().Pause(ctx, agent.PauseRequest{Koid: koid})
			if err != nil {
				return command.Outcome{}, zxerr.Wrap(zxerr.Agent, err, "pause failed")
			}
			if !reply.Confirmed {
				return command.Outcome{}, zxerr.AgentErr("pause was not confirmed before the timeout")
			}
			return command.Outcome{Text: "Paused"}, nil
		},
	})

	reg.Register(command.VerbSpec{Name: "step", ValidNouns: nouns, Detail: command.DetailNone, Handler: stepHandler(deps, controller.StepInto, false)})
	reg.Register(command.VerbSpec{Name: "next", ValidNouns: nouns, Detail: command.DetailNone, Handler: stepHandler(deps, controller.StepOver, false)})
	reg.Register(command.VerbSpec{Name: "stepi", ValidNouns: nouns, Detail: command.DetailNone, Handler: stepHandler(deps, controller.StepInto, true)})
	reg.Register(command.VerbSpec{Name: "nexti", ValidNouns: nouns, Detail: command.DetailNone, Handler: stepHandler(deps, controller.StepOver, true)})

	reg.Register(command.VerbSpec{
		Name: "finish", ValidNouns: nouns, Detail: command.DetailNone,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			th, err := requireThread(bound)
			if err != nil {
				return command.Outcome{}, err
			}
			ctrl := controller.NewFinishController(bound.FrameIndex)
			if err := th.PushController(ctrl); err != nil {
				return command.Outcome{}, err
			}
			return resume(ctx, deps, bound, ctrl.GetResumeMode())
		},
	})

	reg.Register(command.VerbSpec{
		Name: "until", ValidNouns: nouns, Detail: command.DetailTyped,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			th, err := requireThread(bound)
			if err != nil {
				return command.Outcome{}, err
			}
			loc, err := locationFromArgs(bound.Command.Args)
			if err != nil {
				return command.Outcome{}, err
			}
			module := th.Process().ModuleForPC(0)
			resolved, err := th.Symbols().ResolveLocation(ctx, module, loc)
			if err != nil {
				return command.Outcome{}, err
			}
			if len(resolved) == 0 {
				return command.Outcome{}, zxerr.NotFoundErr("location did not resolve to any address")
			}
			addrs := make([]uint64, len(resolved))
			for i, r := range resolved {
				addrs[i] = r.Address
			}
			ctrl := controller.NewUntilController(addrs)
			if err := th.PushController(ctrl); err != nil {
				return command.Outcome{}, err
			}
			return resume(ctx, deps, bound, ctrl.GetResumeMode())
		},
	})

	reg.Register(command.VerbSpec{
		Name: "jump", ValidNouns: nouns, Detail: command.DetailTyped,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			th, err := requireThread(bound)
			if err != nil {
				return command.Outcome{}, err
			}
			if len(bound.Command.Args) == 0 {
				return command.Outcome{}, zxerr.InputErr("jump requires an address")
			}
			addr, err := strconv.ParseUint(bound.Command.Args[0], 0, 64)
			if err != nil {
				return command.Outcome{}, zxerr.InputErr("invalid address %q", bound.Command.Args[0])
			}
			ctrl := controller.NewJumpController(addr)
			if err := th.PushController(ctrl); err != nil {
				return command.Outcome{}, err
			}
			return resume(ctx, deps, bound, ctrl.GetResumeMode())
		},
	})

	reg.Register(command.VerbSpec{
		Name: "steps", ValidNouns: nouns, Detail: command.DetailTyped,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			th, err := requireThread(bound)
			if err != nil {
				return command.Outcome{}, err
			}
			choices, snap, err := controller.ListSteps(ctx, th)
			if err != nil {
				return command.Outcome{}, err
			}
			if len(choices) == 0 {
				return command.Outcome{Text: "No calls on the current line"}, nil
			}
			if len(bound.Command.Args) == 0 {
				text := "Calls on the current line:"
				for _, c := range choices {
					text += fmt.Sprintf("\n  %d: %s", c.Index, c.Destination)
				}
				return command.Outcome{Text: text}, nil
			}
			idx, err := strconv.Atoi(bound.Command.Args[0])
			if err != nil {
				return command.Outcome{}, zxerr.InputErr("invalid step index %q", bound.Command.Args[0])
			}
			var chosen *controller.StepChoice
			for i := range choices {
				if choices[i].Index == idx {
					chosen = &choices[i]
					break
				}
			}
			if chosen == nil {
				return command.Outcome{}, zxerr.InputErr("no such step index %d", idx)
			}
			ctrl, err := controller.ChooseStep(th, snap, *chosen)
			if err != nil {
				return command.Outcome{}, err
			}
			if err := th.PushController(ctrl); err != nil {
				return command.Outcome{}, err
			}
			return resume(ctx, deps, bound, ctrl.GetResumeMode())
		},
	})
}

func requireThread(bound *command.BoundCommand) (*model.Thread, error) {
	if bound.Thread == nil {
		return nil, zxerr.NotRunningErr("no thread is selected")
	}
	return bound.Thread, nil
}

// resume issues a Resume request for the bound thread (or every thread in
// the bound process, if no thread is selected) and reports the command as
// asynchronous: its eventual outcome is the next stop, delivered through
// Thread observers rather than this call's return value.
func resume(ctx context.Context, deps Deps, bound *command.BoundCommand, mode agent.ResumeMode) (command.Outcome, error) {
	if bound.Target == nil || bound.Target.Process() == nil {
		return command.Outcome{}, zxerr.NotRunningErr("no running process")
	}
	threadKoid := uint64(0)
	if bound.Thread != nil {
		threadKoid = bound.Thread.Koid()
	}
	reply, err := deps.Session.Transport().Resume(ctx, agent.ResumeRequest{
		ProcessKoid: bound.Target.Process().Koid(),
		ThreadKoid:  threadKoid,
		Mode:        mode,
	})
	if err != nil {
		return command.Outcome{}, zxerr.Wrap(zxerr.Agent, err, "resume failed")
	}
	if reply.Err != "" {
		return command.Outcome{}, zxerr.New(zxerr.Agent, "resume failed: %s", reply.Err)
	}
	return command.Outcome{Async: true}, nil
}

func stepHandler(deps Deps, dir controller.StepDirection, perInstruction bool) command.Handler {
	return func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
		th, err := requireThread(bound)
		if err != nil {
			return command.Outcome{}, err
		}
		ctrl := &controller.StepController{Direction: dir, PerInstruction: perInstruction}
		if err := th.PushController(ctrl); err != nil {
			return command.Outcome{}, err
		}
		return resume(ctx, deps, bound, ctrl.GetResumeMode())
	}
}

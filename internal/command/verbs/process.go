package verbs

import (
	"context"
	"fmt"

	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

func registerProcessVerbs(reg *command.Registry, deps Deps) {
	nouns := nounSet("process", "job")

	reg.Register(command.VerbSpec{
		Name: "run", ValidNouns: nouns, Detail: command.DetailTokenized,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if len(bound.Command.Args) == 0 {
				return command.Outcome{}, zxerr.InputErr("run requires a path")
			}
			tgt := bound.Target
			if tgt == nil {
				tgt = deps.Session.System().CreateTarget()
			}
			args := bound.Command.Args
			launchArgs := agentLaunchArgsOf(args)
			if err := tgt.Launch(ctx, launchArgs, ""); err != nil {
				return command.Outcome{}, err
			}
			return command.Outcome{Text: fmt.Sprintf("Launched %s", args[0])}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "attach", ValidNouns: nouns, Detail: command.DetailTyped,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if bound.Target == nil {
				return command.Outcome{}, zxerr.InputErr("attach requires a target")
			}
			koid, err := firstArgKoid(bound.Command.Args)
			if err != nil {
				return command.Outcome{}, err
			}
			if err := bound.Target.AttachByKoid(ctx, koid); err != nil {
				return command.Outcome{}, err
			}
			return command.Outcome{Text: fmt.Sprintf("Attached to %d", koid)}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "detach", ValidNouns: nouns, Detail: command.DetailNone,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if bound.Target == nil {
				return command.Outcome{}, zxerr.NotRunningErr("no process to detach")
			}
			if err := bound.Target.Detach(ctx); err != nil {
				return command.Outcome{}, err
			}
			return command.Outcome{Text: "Detached"}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "kill", ValidNouns: nouns, Detail: command.DetailNone,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if bound.Target == nil {
				return command.Outcome{}, zxerr.NotRunningErr("no process to kill")
			}
			if err := bound.Target.Kill(ctx); err != nil {
				return command.Outcome{}, err
			}
			return command.Outcome{Text: "Killed"}, nil
		},
	})
}

func agentLaunchArgsOf(args []string) model.LaunchArgs {
	la := model.LaunchArgs{Path: args[0]}
	if len(args) > 1 {
		la.Argv = args[1:]
	}
	return la
}

func firstArgKoid(args []string) (uint64, error) {
	if len(args) == 0 {
		return 0, zxerr.InputErr("expected a koid argument")
	}
	var koid uint64
	if _, err := fmt.Sscanf(args[0], "%d", &koid); err != nil {
		return 0, zxerr.InputErr("invalid koid %q", args[0])
	}
	return koid, nil
}

package verbs

import (
	"context"
	"fmt"
	"strings"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

func registerIOVerbs(reg *command.Registry, deps Deps) {
	procNouns := nounSet("process")

	reg.Register(command.VerbSpec{
		Name: "libs", ValidNouns: procNouns, Detail: command.DetailNone,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if bound.Target == nil || bound.Target.Process() == nil {
				return command.Outcome{}, zxerr.NotRunningErr("no running process")
			}
			mods := bound.Target.Process().Modules()
			if len(mods) == 0 {
				return command.Outcome{Text: "No modules loaded"}, nil
			}
			var b strings.Builder
			for _, m := range mods {
				fmt.Fprintf(&b, "0x%x %s (%s)\n", m.Base, m.Name, m.BuildID)
			}
			return command.Outcome{Text: b.String()}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "aspace", ValidNouns: procNouns, Detail: command.DetailNone,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if bound.Target == nil || bound.Target.Process() == nil {
				return command.Outcome{}, zxerr.NotRunningErr("no running process")
			}
			reply, err := deps.Session.Transport().AddressSpace(ctx, agent.AddressSpaceRequest{
				ProcessKoid: bound.Target.Process().Koid(),
			})
			if err != nil {
				return command.Outcome{}, zxerr.Wrap(zxerr.Agent, err, "aspace failed")
			}
			if reply.Err != "" {
				return command.Outcome{}, zxerr.New(zxerr.Agent, "aspace failed: %s", reply.Err)
			}
			var b strings.Builder
			for _, r := range reply.Regions {
				fmt.Fprintf(&b, "0x%x - 0x%x  %s\n", r.Base, r.Base+r.Size, r.Name)
			}
			return command.Outcome{Text: b.String()}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "handle", ValidNouns: procNouns, Detail: command.DetailNone,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if bound.Target == nil || bound.Target.Process() == nil {
				return command.Outcome{}, zxerr.NotRunningErr("no running process")
			}
			reply, err := deps.Session.Transport().HandleTable(ctx, agent.HandleTableRequest{
				ProcessKoid: bound.Target.Process().Koid(),
			})
			if err != nil {
				return command.Outcome{}, zxerr.Wrap(zxerr.Agent, err, "handle failed")
			}
			if reply.Err != "" {
				return command.Outcome{}, zxerr.New(zxerr.Agent, "handle failed: %s", reply.Err)
			}
			var b strings.Builder
			for _, h := range reply.Handles {
				fmt.Fprintf(&b, "0x%x  %s\n", h.Handle, h.Type)
			}
			return command.Outcome{Text: b.String()}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "stdout", ValidNouns: procNouns, Detail: command.DetailNone,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if bound.Target == nil || bound.Target.Process() == nil {
				return command.Outcome{}, zxerr.NotRunningErr("no running process")
			}
			return command.Outcome{Text: string(bound.Target.Process().Stdout())}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "stderr", ValidNouns: procNouns, Detail: command.DetailNone,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if bound.Target == nil || bound.Target.Process() == nil {
				return command.Outcome{}, zxerr.NotRunningErr("no running process")
			}
			return command.Outcome{Text: string(bound.Target.Process().Stderr())}, nil
		},
	})
}

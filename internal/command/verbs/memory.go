package verbs

import (
	"context"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

func registerMemoryVerbs(reg *command.Registry, deps Deps) {
	frameNouns := nounSet("process", "thread", "frame")

	reg.Register(command.VerbSpec{
		Name: "print", ValidNouns: frameNouns, Detail: command.DetailExpression,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			th, err := requireThread(bound)
			if err != nil {
				return command.Outcome{}, err
			}
			if len(bound.Command.Args) == 0 {
				return command.Outcome{}, zxerr.InputErr("print requires an expression")
			}
			expr := strings.Join(bound.Command.Args, " ")
			f, ok := th.Stack().At(bound.FrameIndex)
			if !ok {
				return command.Outcome{}, zxerr.WrongStateErr("frame %d is not available", bound.FrameIndex)
			}
			result, err := th.Symbols().EvaluateExpression(ctx, f.Module, f.PC, expr)
			if err != nil {
				return command.Outcome{}, err
			}
			return command.Outcome{Text: result}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "sym-info", ValidNouns: frameNouns, Detail: command.DetailString,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			th, err := requireThread(bound)
			if err != nil {
				return command.Outcome{}, err
			}
			f, ok := th.Stack().At(bound.FrameIndex)
			if !ok {
				return command.Outcome{}, zxerr.WrongStateErr("frame %d is not available", bound.FrameIndex)
			}
			info, ok, err := th.Symbols().DescribeFunction(ctx, f.Module, f.PC)
			if err != nil {
				return command.Outcome{}, err
			}
			if !ok {
				return command.Outcome{Text: "No symbol information at this location"}, nil
			}
			return command.Outcome{Text: fmt.Sprintf("%s\n  %s:%d-%d\n  [0x%x, 0x%x)",
				info.Name, info.File, info.StartLine, info.EndLine, info.LowPC, info.HighPC)}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "sym-near", ValidNouns: nounSet("process"), Detail: command.DetailTyped,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if bound.Target == nil || bound.Target.Process() == nil {
				return command.Outcome{}, zxerr.NotRunningErr("no running process")
			}
			if len(bound.Command.Args) == 0 {
				return command.Outcome{}, zxerr.InputErr("sym-near requires an address")
			}
			addr, err := strconv.ParseUint(strings.TrimPrefix(bound.Command.Args[0], "0x"), 16, 64)
			if err != nil {
				return command.Outcome{}, zxerr.InputErr("invalid address %q", bound.Command.Args[0])
			}
			if bound.Thread == nil {
				return command.Outcome{}, zxerr.NotRunningErr("no thread is selected")
			}
			proc := bound.Target.Process()
			module := proc.ModuleForPC(addr)
			info, ok, err := bound.Thread.Symbols().DescribeFunction(ctx, module, addr)
			if err != nil {
				return command.Outcome{}, err
			}
			if !ok {
				return command.Outcome{Text: fmt.Sprintf("No symbol near 0x%x", addr)}, nil
			}
			return command.Outcome{Text: fmt.Sprintf("%s (0x%x is 0x%x into %s)", info.Name, addr, addr-info.LowPC, info.Name)}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "mem-read", ValidNouns: nounSet("process"), Detail: command.DetailTyped,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if bound.Target == nil || bound.Target.Process() == nil {
				return command.Outcome{}, zxerr.NotRunningErr("no running process")
			}
			if len(bound.Command.Args) < 1 {
				return command.Outcome{}, zxerr.InputErr("mem-read requires an address")
			}
			addr, err := strconv.ParseUint(strings.TrimPrefix(bound.Command.Args[0], "0x"), 16, 64)
			if err != nil {
				return command.Outcome{}, zxerr.InputErr("invalid address %q", bound.Command.Args[0])
			}
			size := 64
			if len(bound.Command.Args) > 1 {
				if n, err := strconv.Atoi(bound.Command.Args[1]); err == nil {
					size = n
				}
			}
			reply, err := deps.Session.Transport().ReadMemory(ctx, agent.ReadMemoryRequest{
				ProcessKoid: bound.Target.Process().Koid(), Address: addr, Size: size,
			})
			if err != nil {
				return command.Outcome{}, zxerr.Wrap(zxerr.Agent, err, "mem-read failed")
			}
			return command.Outcome{Text: hexDump(addr, reply.Data)}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "mem-analyze", ValidNouns: nounSet("process"), Detail: command.DetailTyped,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if bound.Target == nil || bound.Target.Process() == nil {
				return command.Outcome{}, zxerr.NotRunningErr("no running process")
			}
			if len(bound.Command.Args) < 1 {
				return command.Outcome{}, zxerr.InputErr("mem-analyze requires an address")
			}
			addr, err := strconv.ParseUint(strings.TrimPrefix(bound.Command.Args[0], "0x"), 16, 64)
			if err != nil {
				return command.Outcome{}, zxerr.InputErr("invalid address %q", bound.Command.Args[0])
			}
			count := 16
			if len(bound.Command.Args) > 1 {
				if n, err := strconv.Atoi(bound.Command.Args[1]); err == nil {
					count = n
				}
			}
			reply, err := deps.Session.Transport().ReadMemory(ctx, agent.ReadMemoryRequest{
				ProcessKoid: bound.Target.Process().Koid(), Address: addr, Size: count * 8,
			})
			if err != nil {
				return command.Outcome{}, zxerr.Wrap(zxerr.Agent, err, "mem-analyze failed")
			}
			var b strings.Builder
			for off := 0; off+8 <= len(reply.Data); off += 8 {
				word := binary.LittleEndian.Uint64(reply.Data[off : off+8])
				fmt.Fprintf(&b, "0x%016x: 0x%016x\n", addr+uint64(off), word)
			}
			return command.Outcome{Text: b.String()}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "stack", ValidNouns: nounSet("process", "thread"), Detail: command.DetailNone,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			th, err := requireThread(bound)
			if err != nil {
				return command.Outcome{}, err
			}
			if !th.Stack().HasAllFrames() {
				if err := th.SyncFrames(ctx); err != nil {
					return command.Outcome{}, err
				}
			}
			var b strings.Builder
			for i, f := range th.Stack().Frames() {
				marker := " "
				if i == bound.FrameIndex {
					marker = "*"
				}
				if f.Function != "" {
					fmt.Fprintf(&b, "%s%d %s %s:%d\n", marker, i, f.Function, f.File, f.Line)
				} else {
					fmt.Fprintf(&b, "%s%d 0x%x\n", marker, i, f.PC)
				}
			}
			return command.Outcome{Text: b.String()}, nil
		},
	})
}

func hexDump(base uint64, data []byte) string {
	var b strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(&b, "0x%08x: % x\n", base+uint64(off), data[off:end])
	}
	return b.String()
}

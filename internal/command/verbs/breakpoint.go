package verbs

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zxconsole/zxconsole/internal/breakpoint"
	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/symbols"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

func registerBreakpointVerbs(reg *command.Registry, deps Deps) {
	reg.Register(command.VerbSpec{
		Name: "break", ValidNouns: nounSet("breakpoint", "process"), Detail: command.DetailTyped,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			loc, err := locationFromArgs(bound.Command.Args)
			if err != nil {
				return command.Outcome{}, err
			}
			settings := breakpoint.BreakpointSettings{
				Location: loc,
				Enabled:  true,
				StopMode: breakpoint.StopAll,
				HitMult:  1,
			}
			if v, ok := bound.Command.Switch("stop"); ok {
				if mode, ok := parseStopMode(v); ok {
					settings.StopMode = mode
				} else {
					return command.Outcome{}, zxerr.InputErr("unknown --stop value %q", v)
				}
			}
			if v, ok := bound.Command.Switch("if"); ok {
				settings.Condition = v
			}
			b, err := deps.Engine.CreateBreakpoint(ctx, settings)
			if err != nil {
				return command.Outcome{}, err
			}
			status := "pending"
			if !b.Pending() {
				status = fmt.Sprintf("%d location(s)", len(b.Locations()))
			}
			return command.Outcome{Text: fmt.Sprintf("Created breakpoint %d (%s)", b.ID(), status)}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "filter", ValidNouns: nounSet("filter", "job"), Detail: command.DetailTyped,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if len(bound.Command.Args) == 0 {
				return command.Outcome{}, zxerr.InputErr("filter requires a pattern")
			}
			jobKoid := uint64(0)
			if bound.Job != nil {
				jobKoid = bound.Job.Koid()
			}
			f := deps.Engine.CreateFilter(bound.Command.Args[0], jobKoid)
			return command.Outcome{Text: fmt.Sprintf("Created filter %d matching %q", f.ID(), f.Pattern)}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "save", ValidNouns: nounSet("breakpoint", "global"), Detail: command.DetailTyped,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if len(bound.Command.Args) == 0 {
				return command.Outcome{}, zxerr.InputErr("save requires a path")
			}
			if err := deps.Engine.Save(bound.Command.Args[0]); err != nil {
				return command.Outcome{}, err
			}
			return command.Outcome{Text: fmt.Sprintf("Saved breakpoints to %s", bound.Command.Args[0])}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "load", ValidNouns: nounSet("breakpoint", "global"), Detail: command.DetailTyped,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			if len(bound.Command.Args) == 0 {
				return command.Outcome{}, zxerr.InputErr("load requires a path")
			}
			if err := deps.Engine.Load(ctx, bound.Command.Args[0]); err != nil {
				return command.Outcome{}, err
			}
			return command.Outcome{Text: fmt.Sprintf("Loaded breakpoints from %s", bound.Command.Args[0])}, nil
		},
	})

	reg.Register(command.VerbSpec{
		Name: "clear", ValidNouns: nounSet("breakpoint"), Detail: command.DetailTyped,
		Handler: func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error) {
			b := bound.Breakpoint
			if b == nil {
				if len(bound.Command.Args) == 0 {
					return command.Outcome{}, zxerr.InputErr("clear requires a breakpoint")
				}
				id, err := strconv.ParseUint(bound.Command.Args[0], 10, 64)
				if err != nil {
					return command.Outcome{}, zxerr.InputErr("invalid breakpoint id %q", bound.Command.Args[0])
				}
				var ok bool
				b, ok = deps.Engine.BreakpointByID(id)
				if !ok {
					return command.Outcome{}, zxerr.NotFoundErr("no breakpoint %d", id)
				}
			}
			if err := deps.Engine.Remove(ctx, b); err != nil {
				return command.Outcome{}, err
			}
			return command.Outcome{Text: fmt.Sprintf("Removed breakpoint %d", b.ID())}, nil
		},
	})
}

func parseStopMode(v string) (breakpoint.StopMode, bool) {
	switch strings.ToLower(v) {
	case "all":
		return breakpoint.StopAll, true
	case "process":
		return breakpoint.StopProcess, true
	case "thread":
		return breakpoint.StopThread, true
	case "none":
		return breakpoint.StopNone, true
	default:
		return 0, false
	}
}

// locationFromArgs parses a single positional location argument shared by
// the break/until verbs (spec §4.6's four location forms): "file:line",
// a bare "line" number, a "0x..." address, or a bare symbol name.
func locationFromArgs(args []string) (symbols.InputLocation, error) {
	if len(args) == 0 {
		return symbols.InputLocation{}, zxerr.InputErr("expected a location")
	}
	arg := args[0]

	if strings.HasPrefix(arg, "0x") {
		addr, err := strconv.ParseUint(arg[2:], 16, 64)
		if err != nil {
			return symbols.InputLocation{}, zxerr.InputErr("invalid address %q", arg)
		}
		return symbols.InputLocation{Kind: symbols.LocationAddress, Address: addr}, nil
	}

	if file, lineStr, ok := strings.Cut(arg, ":"); ok {
		line, err := strconv.Atoi(lineStr)
		if err != nil {
			return symbols.InputLocation{}, zxerr.InputErr("invalid line in %q", arg)
		}
		return symbols.InputLocation{Kind: symbols.LocationFileLine, File: file, Line: line}, nil
	}

	if line, err := strconv.Atoi(arg); err == nil {
		return symbols.InputLocation{Kind: symbols.LocationBareLine, Line: line}, nil
	}

	return symbols.InputLocation{Kind: symbols.LocationSymbol, Symbol: arg}, nil
}

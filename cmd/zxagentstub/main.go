// Command zxagentstub runs zxconsole's core against an in-process fake
// agent pre-seeded with one process, one thread, and one breakpoint hit,
// for manual smoke testing without a real target (SPEC_FULL.md §0).
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/breakpoint"
	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/command/verbs"
	"github.com/zxconsole/zxconsole/internal/console"
	"github.com/zxconsole/zxconsole/internal/format"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/symbols"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	transport := agent.NewLoopbackTransport()
	svc := symbols.NewCachedService(symbols.NewFakeService(symbols.FakeModule{
		Name: "demo",
		Lines: []symbols.FakeLine{
			{Address: 0x4000, File: "demo.c", Line: 20, Function: "compute"},
		},
	}))

	sess := model.NewSession(transport, svc)
	sess.ShouldAutoAttach = func(name string, jobKoid uint64) bool { return false }
	if err := sess.Connect(ctx); err != nil {
		return fmt.Errorf("session handshake: %w", err)
	}
	defer sess.Disconnect()

	engine := breakpoint.NewEngine(sess.System(), transport, svc)
	cc := console.New(sess, engine, format.NewConsoleFormatter(format.PlainRenderer{}))
	cc.SetOutput(func(s string) { fmt.Println(s) })

	reg := command.NewRegistry()
	verbs.RegisterAll(reg, verbs.Deps{Session: sess, Engine: engine})

	tgt := sess.System().CreateTarget()
	if err := tgt.Launch(ctx, model.LaunchArgs{Path: "demo"}, ""); err != nil {
		return fmt.Errorf("launching demo process: %w", err)
	}
	proc := tgt.Process()

	b, err := engine.CreateBreakpoint(ctx, breakpoint.BreakpointSettings{
		Location: symbols.InputLocation{Kind: symbols.LocationFileLine, File: "demo.c", Line: 20},
		Enabled:  true,
		StopMode: breakpoint.StopAll,
		HitMult:  1,
	})
	if err != nil {
		return fmt.Errorf("creating demo breakpoint: %w", err)
	}

	threadKoid := transport.SpawnFakeThread(proc.Koid(), "demo-thread")
	fmt.Printf("zxagentstub: seeded process %q, thread %d, breakpoint %d at demo.c:20\n",
		proc.Name(), threadKoid, b.ID())

	transport.DeliverThreadStopped(agent.ThreadStoppedInfo{
		ProcessKoid: proc.Koid(),
		ThreadKoid:  threadKoid,
		Exception:   agent.ExceptionSoftwareBreakpoint,
		Matched:     []agent.MatchedBreakpoint{{ClientID: b.ID(), Address: 0x4000}},
		Frames: []agent.AgentFrame{
			{PC: 0x4000, SP: 0x7fff0000},
		},
		HasAllFrames: true,
	})

	return repl(ctx, os.Stdin, cc, reg)
}

func repl(ctx context.Context, in *os.File, cc *console.Context, reg *command.Registry) error {
	scanner := bufio.NewScanner(in)
	fmt.Print("zxagentstub> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			runLine(ctx, cc, reg, line)
		}
		fmt.Print("zxagentstub> ")
	}
	return scanner.Err()
}

func runLine(ctx context.Context, cc *console.Context, reg *command.Registry, line string) {
	cmd, err := command.Parse(line)
	if err != nil {
		fmt.Println(err)
		return
	}
	if !cmd.HasVerb() {
		text, err := cc.SelectOrList(ctx, cmd)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Print(text)
		return
	}
	if err := reg.ValidateNouns(cmd.Verb, cmd.Nouns); err != nil {
		fmt.Println(err)
		return
	}
	bound, err := cc.Resolve(cmd)
	if err != nil {
		fmt.Println(err)
		return
	}
	outcome, err := reg.Dispatch(ctx, bound)
	if err != nil {
		fmt.Println(err)
		return
	}
	if outcome.Text != "" {
		fmt.Println(outcome.Text)
	}
}

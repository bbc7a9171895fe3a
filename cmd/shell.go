package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/console"
	"github.com/zxconsole/zxconsole/internal/history"
	"github.com/zxconsole/zxconsole/internal/log"
)

// shell drives the command grammar (spec §4.7): each line is parsed, bound
// to live entities through ConsoleContext, and either dispatched as a Verb
// or, for a noun-without-verb line, listed/selected directly.
type shell struct {
	ctx  *console.Context
	reg  *command.Registry
	hist *history.DB // optional; nil disables command-history recording

	// dispatch defaults to reg.Dispatch; runRoot overrides it with
	// telemetry.WrapDispatch to span every verb invocation.
	dispatch func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error)
}

func (sh *shell) dispatchFunc() func(context.Context, *command.BoundCommand) (command.Outcome, error) {
	if sh.dispatch != nil {
		return sh.dispatch
	}
	return sh.reg.Dispatch
}

func (sh *shell) runInteractive(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "zxconsole> ")
	for scanner.Scan() {
		sh.runLine(ctx, scanner.Text())
		fmt.Fprint(out, "zxconsole> ")
	}
	return scanner.Err()
}

// runScript executes every non-empty, non-comment line in r and stops at
// the first error, matching the strict no-partial-effect parsing policy
// (spec §4.7) applied at the script-line granularity.
func (sh *shell) runScript(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := sh.runLine(ctx, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (sh *shell) runLine(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if sh.hist != nil {
		if err := sh.hist.RecordCommand(line); err != nil {
			log.ErrorErr(log.CatHistory, "recording command history", err)
		}
	}

	cmd, err := command.Parse(line)
	if err != nil {
		fmt.Println(err)
		return err
	}

	if !cmd.HasVerb() {
		text, err := sh.ctx.SelectOrList(ctx, cmd)
		if err != nil {
			fmt.Println(err)
			return err
		}
		fmt.Print(text)
		return nil
	}

	if err := sh.reg.ValidateNouns(cmd.Verb, cmd.Nouns); err != nil {
		fmt.Println(err)
		return err
	}

	bound, err := sh.ctx.Resolve(cmd)
	if err != nil {
		fmt.Println(err)
		return err
	}

	outcome, err := sh.dispatchFunc()(ctx, bound)
	if err != nil {
		fmt.Println(err)
		return err
	}
	if outcome.Text != "" {
		fmt.Println(outcome.Text)
	}
	return nil
}

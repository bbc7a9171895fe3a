package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/log"
)

// confirmVerbs require an interactive yes/no before dispatch (spec's
// on-exit-process confirmation for a destructive verb); everything else
// dispatches straight away, matching the plain-text shell's behavior.
var confirmVerbs = map[string]bool{
	"kill":   true,
	"detach": true,
}

// submitCommand runs the command line the same way cmd/shell.go's runLine
// does: parse, optional no-verb select/list, noun validation, Context
// binding, dispatch. A destructive verb routes through the confirmation
// modal instead of dispatching immediately.
func (m *Model) submitCommand() (tea.Model, tea.Cmd) {
	line := m.cmdInput.Value()
	if line == "" {
		return m, nil
	}
	m.cmdInput.SetValue("")
	m.lastErr = ""

	if m.hist != nil {
		if err := m.hist.RecordCommand(line); err != nil {
			log.ErrorErr(log.CatHistory, "recording command history", err)
		}
	}

	cmd, err := command.Parse(line)
	if err != nil {
		m.lastErr = err.Error()
		return m, nil
	}

	if !cmd.HasVerb() {
		text, err := m.ctx.SelectOrList(context.Background(), cmd)
		if err != nil {
			m.lastErr = err.Error()
			return m, nil
		}
		m.appendOutput(text)
		return m, nil
	}

	if err := m.reg.ValidateNouns(cmd.Verb, cmd.Nouns); err != nil {
		m.lastErr = err.Error()
		return m, nil
	}

	if confirmVerbs[cmd.Verb] {
		return m.openConfirm(cmd)
	}
	return m, m.runBound(cmd)
}

// runBound resolves cmd against Context and dispatches it, reporting the
// outcome text or error into the output pane.
func (m *Model) runBound(cmd *command.Command) tea.Cmd {
	return func() tea.Msg {
		bound, err := m.ctx.Resolve(cmd)
		if err != nil {
			return commandResultMsg{err: err}
		}
		outcome, err := m.dispatch(context.Background(), bound)
		return commandResultMsg{outcome: outcome, err: err}
	}
}

type commandResultMsg struct {
	outcome command.Outcome
	err     error
}

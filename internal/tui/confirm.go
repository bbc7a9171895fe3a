package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/ui/modal"
)

// openConfirm shows the kill/detach confirmation modal (spec's destructive
// verb confirmation) instead of dispatching cmd immediately. The command
// itself is held in m.pendingConfirm until the modal resolves.
func (m *Model) openConfirm(cmd *command.Command) (tea.Model, tea.Cmd) {
	m.confirmVerb = cmd.Verb
	m.pendingConfirm = cmd
	m.confirm = modal.New(modal.Config{
		Title:          "Confirm",
		Message:        fmt.Sprintf("Really %s? This cannot be undone.", cmd.Verb),
		ConfirmVariant: modal.ButtonDanger,
	})
	m.confirm.SetSize(m.width, m.height)
	m.confirmVisible = true
	return m, m.confirm.Init()
}

func (m *Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(modal.SubmitMsg); ok {
		m.confirmVisible = false
		cmd := m.pendingConfirm
		m.pendingConfirm = nil
		if cmd == nil {
			return m, nil
		}
		return m, m.runBound(cmd)
	}
	if _, ok := msg.(modal.CancelMsg); ok {
		m.confirmVisible = false
		m.pendingConfirm = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	return m, cmd
}

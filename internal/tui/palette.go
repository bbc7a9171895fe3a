package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zxconsole/zxconsole/internal/ui/commandpalette"
)

// paletteConfig builds the command palette's item list from the Registry's
// verb set (command.Registry.Names), so adding a verb automatically shows
// up in the picker (case-insensitive substring search) without touching
// internal/tui.
func (m *Model) paletteConfig() commandpalette.Config {
	names := m.reg.Names()
	items := make([]commandpalette.Item, 0, len(names))
	for _, name := range names {
		items = append(items, commandpalette.Item{ID: name, Name: name})
	}
	return commandpalette.Config{
		Title:       "Commands",
		Placeholder: "verb name...",
		Items:       items,
	}
}

func (m *Model) updatePalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sel, ok := msg.(commandpalette.SelectMsg); ok {
		m.paletteVisible = false
		m.cmdInput.SetValue(sel.Item.Name + " ")
		m.cmdInput.CursorEnd()
		return m, nil
	}
	if _, ok := msg.(commandpalette.CancelMsg); ok {
		m.paletteVisible = false
		return m, nil
	}

	var cmd tea.Cmd
	m.palette, cmd = m.palette.Update(msg)
	return m, cmd
}

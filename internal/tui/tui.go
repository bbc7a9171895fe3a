// Package tui is zxconsole's interactive Bubble Tea front end: a root Model
// assembling process/thread/breakpoint/filter list panes, a scrollable
// output/source pane, a command line fed through the same
// command.Registry dispatch the plain-text shell uses, and the modal/
// command-palette/log-overlay/help overlays built in internal/ui. Grounded
// on the teacher's internal/app root Model (sub-views + overlays layered by
// input-precedence: confirmation modal, then command palette, then log
// overlay, then the base view).
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/console"
	"github.com/zxconsole/zxconsole/internal/format"
	"github.com/zxconsole/zxconsole/internal/history"
	"github.com/zxconsole/zxconsole/internal/log"
	"github.com/zxconsole/zxconsole/internal/ui/commandpalette"
	"github.com/zxconsole/zxconsole/internal/ui/modal"
	"github.com/zxconsole/zxconsole/internal/ui/shared/logoverlay"
	"github.com/zxconsole/zxconsole/internal/ui/shared/panes"
	"github.com/zxconsole/zxconsole/internal/ui/shared/selection"
	"github.com/zxconsole/zxconsole/internal/ui/shared/table"
	"github.com/zxconsole/zxconsole/internal/ui/styles"
)

// refreshInterval is how often the list panes re-read ConsoleContext's id
// registries. The debug agent's notifications arrive on Context's own
// internal observers (console/context.go), which have no public fan-out of
// their own, so the tables poll instead of subscribing directly.
const refreshInterval = 300 * time.Millisecond

// tab identifies which list pane is on top.
type tab int

const (
	tabProcesses tab = iota
	tabThreads
	tabBreakpoints
	tabFilters
	tabJobs
	tabCount
)

func (t tab) label() string {
	switch t {
	case tabProcesses:
		return "Processes"
	case tabThreads:
		return "Threads"
	case tabBreakpoints:
		return "Breakpoints"
	case tabFilters:
		return "Filters"
	case tabJobs:
		return "Jobs"
	default:
		return ""
	}
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx      *console.Context
	reg      *command.Registry
	dispatch func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error)
	hist     *history.DB
	renderer format.Renderer

	width, height int

	activeTab   tab
	tables      [tabCount]table.Model
	focusOutput bool

	output     *selection.SelectablePane
	outputText []string

	cmdInput textinput.Model
	lastErr  string

	palette        commandpalette.Model
	paletteVisible bool

	confirm        modal.Model
	confirmVisible bool
	confirmVerb    string
	pendingConfirm *command.Command

	logOverlay  logoverlay.Model
	helpVisible bool

	onStopHook func(targetID, threadID, breakpointID int, reason string)
}

// Deps bundles the wiring New needs from cmd/root.go.
type Deps struct {
	Context  *console.Context
	Registry *command.Registry
	Dispatch func(ctx context.Context, bound *command.BoundCommand) (command.Outcome, error)
	History  *history.DB // optional

	// OnStop is cmd/root.go's telemetry/history on-stop hook. The Model
	// calls it before its own tab-switching behavior, since Context only
	// holds a single onStop callback (console.Context.SetOnStop).
	OnStop func(targetID, threadID, breakpointID int, reason string)
}

// New builds the root Model and installs Context's output/on-stop sinks so
// stop headers, source context, and display-expression results land in the
// output pane instead of stdout.
func New(deps Deps) *Model {
	zone.NewGlobal()

	ti := textinput.New()
	ti.Placeholder = "command (e.g. process 1 thread 2 continue)"
	ti.Prompt = "› "
	ti.Focus()

	m := &Model{
		ctx:        deps.Context,
		reg:        deps.Registry,
		dispatch:   deps.Dispatch,
		hist:       deps.History,
		renderer:   format.LipglossRenderer{},
		cmdInput:   ti,
		onStopHook: deps.OnStop,
		output: selection.NewPane(selection.PaneConfig{
			Clipboard: clipboardWriter{},
			MakeToast: nil,
		}),
		logOverlay: logoverlay.New(),
	}
	for t := tab(0); t < tabCount; t++ {
		m.tables[t] = table.New(m.tableConfig(t))
	}
	m.palette = commandpalette.New(m.paletteConfig())

	deps.Context.SetOutput(m.appendOutput)
	deps.Context.SetOnStop(m.onStop)

	return m
}

// Init starts the refresh ticker.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return refreshTickMsg{} })
}

type refreshTickMsg struct{}

// appendOutput is ConsoleContext's output sink (console.Context.SetOutput):
// every stop header, source line, and display-expression result is appended
// to the output pane instead of printed to stdout.
func (m *Model) appendOutput(text string) {
	m.outputText = append(m.outputText, text)
	m.refreshOutputPane()
}

// onStop is ConsoleContext's on-stop hook (console.Context.SetOnStop). It
// first calls the hook passed in as Deps.OnStop (cmd/root.go's
// telemetry/history recording), then flips to the Threads tab so the
// stopped thread is visible without the user hunting for it.
func (m *Model) onStop(targetID, threadID, breakpointID int, reason string) {
	if m.onStopHook != nil {
		m.onStopHook(targetID, threadID, breakpointID, reason)
	}
	m.activeTab = tabThreads
}

func (m *Model) refreshOutputPane() {
	joined := ""
	for i, line := range m.outputText {
		if i > 0 {
			joined += "\n"
		}
		joined += line
	}
	m.output.SetContent(joined, m.outputText, true)
}

// Update implements tea.Model. Input precedence, outermost first: the
// confirmation modal, then the command palette, then the log overlay, then
// the base view (list panes + command line).
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case refreshTickMsg:
		m.refreshTables()
		return m, tickCmd()

	case log.LogEvent:
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd

	case commandResultMsg:
		if msg.err != nil {
			m.lastErr = msg.err.Error()
		} else if msg.outcome.Text != "" {
			m.appendOutput(msg.outcome.Text)
		}
		return m, nil
	}

	if m.confirmVisible {
		return m.updateConfirm(msg)
	}
	if m.paletteVisible {
		return m.updatePalette(msg)
	}
	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

var (
	keyQuit    = key.NewBinding(key.WithKeys("ctrl+c"))
	keyHelp    = key.NewBinding(key.WithKeys("?"))
	keyLogs    = key.NewBinding(key.WithKeys("ctrl+l"))
	keyPalette = key.NewBinding(key.WithKeys("ctrl+p"))
	keyTabNext = key.NewBinding(key.WithKeys("tab"))
	keyFocus   = key.NewBinding(key.WithKeys("ctrl+o"))
)

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keyQuit):
		return m, tea.Quit
	case key.Matches(msg, keyHelp):
		m.helpVisible = !m.helpVisible
		return m, nil
	case key.Matches(msg, keyLogs):
		m.logOverlay.Toggle()
		return m, nil
	case key.Matches(msg, keyPalette):
		m.paletteVisible = true
		m.palette = commandpalette.New(m.paletteConfig()).SetSize(m.width, m.height)
		return m, m.palette.Init()
	case key.Matches(msg, keyFocus):
		m.focusOutput = !m.focusOutput
		return m, nil
	case key.Matches(msg, keyTabNext):
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil
	}

	if msg.Type == tea.KeyEnter && !m.focusOutput {
		return m.submitCommand()
	}

	if m.focusOutput {
		return m, nil
	}

	var cmd tea.Cmd
	m.cmdInput, cmd = m.cmdInput.Update(msg)
	return m, cmd
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if cmd := m.output.HandleMouse(msg); cmd != nil {
		return m, cmd
	}
	return m, nil
}

// View renders the base layout with overlays composited by precedence.
func (m *Model) View() string {
	base := m.baseView()
	if m.helpVisible {
		base = helpOverlay(m.width, m.height, base)
	}
	if m.logOverlay.Visible() {
		base = m.logOverlay.Overlay(base)
	}
	if m.paletteVisible {
		base = m.palette.Overlay(base)
	}
	if m.confirmVisible {
		base = m.confirm.Overlay(base)
	}
	return zone.Scan(base)
}

func (m *Model) baseView() string {
	if m.width == 0 {
		return ""
	}
	listWidth := m.width / 3
	outputWidth := m.width - listWidth
	listsHeight := m.height - 3

	tabs := make([]panes.Tab, 0, int(tabCount))
	for t := tab(0); t < tabCount; t++ {
		m.tables[t] = m.tables[t].SetSize(listWidth-2, listsHeight-2)
		tabs = append(tabs, panes.Tab{
			Label:   t.label(),
			Content: m.tables[t].View(),
		})
	}
	left := panes.BorderedPane(panes.BorderConfig{
		Content:   tabs[m.activeTab].Content,
		Width:     listWidth,
		Height:    listsHeight,
		Tabs:      tabs,
		ActiveTab: int(m.activeTab),
		Focused:   !m.focusOutput,
	})

	m.output.SetSize(outputWidth-2, listsHeight-2)
	right := panes.BorderedPane(panes.BorderConfig{
		Content:  m.output.View(),
		Width:    outputWidth,
		Height:   listsHeight,
		TopLeft:  "Output",
		TopRight: panes.BuildScrollIndicator(m.output.Viewport()),
		Focused:  m.focusOutput,
	})

	status := m.statusLine()
	cmdLine := m.cmdInput.View()

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		status,
		cmdLine,
	)
}

func (m *Model) statusLine() string {
	style := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	text := "tab: switch list  ctrl+o: focus output  ctrl+p: commands  ?: help  ctrl+l: logs  ctrl+c: quit"
	if m.lastErr != "" {
		text = fmt.Sprintf("error: %s", m.lastErr)
		style = style.Foreground(styles.SeverityFatalColor)
	}
	return style.Render(text)
}

func (m *Model) layout() {
	m.cmdInput.Width = m.width - 4
}

// Close releases resources the Model owns; cmd/root.go defers it alongside
// the history DB and telemetry provider it passed in via Deps.
func (m *Model) Close() error { return nil }

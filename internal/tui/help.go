package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zxconsole/zxconsole/internal/ui/overlay"
	"github.com/zxconsole/zxconsole/internal/ui/styles"
)

var helpText = strings.Join([]string{
	"zxconsole",
	"",
	"tab          switch list pane (Processes/Threads/Breakpoints/Filters/Jobs)",
	"ctrl+o       toggle focus between list pane and output pane",
	"ctrl+p       open the command palette (verb search)",
	"ctrl+l       toggle the debug log overlay",
	"enter        run the typed command line",
	"ctrl+c       quit",
	"",
	"Command line grammar matches the plain-text shell: [noun id]... [verb] [args]",
	"e.g. \"process 1 thread 2 continue\", \"break create main\", \"kill\"",
	"",
	"? to close this screen",
}, "\n")

// helpOverlay renders the static help screen over background, grounded on
// the same overlay.Place centering every other overlay in this package uses.
func helpOverlay(width, height int, background string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(1, 2).
		Render(helpText)

	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Center,
	}, box, background)
}

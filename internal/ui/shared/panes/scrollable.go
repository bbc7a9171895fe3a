// Package panes contains reusable bordered pane UI components.
package panes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/zxconsole/zxconsole/internal/ui/styles"
)

// ScrollIndicatorStyle is the style for scroll position indicators (e.g., "↑50%").
// Uses muted text color for subtlety.
var ScrollIndicatorStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)

// BuildScrollIndicator returns a styled scroll position indicator for the viewport.
// Returns empty string if content fits in viewport or if at bottom (live view).
// Returns styled "↑XX%" when scrolled up from bottom.
//
// This function is exported for use by external packages that may need to build
// custom scroll indicators or test the scroll indicator logic.
func BuildScrollIndicator(vp viewport.Model) string {
	if vp.TotalLineCount() <= vp.Height {
		return "" // Content fits, no indicator needed
	}
	if vp.AtBottom() {
		return "" // At live position, no indicator needed
	}
	return ScrollIndicatorStyle.Render(fmt.Sprintf("↑%.0f%%", vp.ScrollPercent()*100))
}

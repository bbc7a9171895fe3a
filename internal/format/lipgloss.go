package format

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zxconsole/zxconsole/internal/ui/styles"
)

// LipglossRenderer renders Spans with internal/ui/styles' color tokens, so
// the interactive TUI (internal/tui) and the styled formatter share a
// single palette with the rest of the UI toolkit. Styles are resolved from
// the package-level styles vars on every call rather than cached, so a
// runtime theme change (styles.ApplyTheme) takes effect immediately without
// this package needing to register a rebuild callback.
type LipglossRenderer struct{}

func (LipglossRenderer) RenderSpan(s Span) string {
	return lipglossStyleFor(s.Kind).Render(s.Text)
}

func (r LipglossRenderer) RenderLine(l Line) string { return renderLineWith(r, l) }

func (r LipglossRenderer) RenderBuffer(b Buffer) string { return renderBufferWith(r, b) }

func lipglossStyleFor(kind SpanKind) lipgloss.Style {
	switch kind {
	case SpanHeading:
		return lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)
	case SpanEntityID:
		return lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Bold(true)
	case SpanMuted:
		return lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	case SpanAddress:
		return lipgloss.NewStyle().Foreground(styles.CmdAddressColor)

	case SpanThreadRunning:
		return lipgloss.NewStyle().Foreground(styles.ThreadRunningColor)
	case SpanThreadStopped:
		return lipgloss.NewStyle().Foreground(styles.ThreadStoppedColor).Bold(true)
	case SpanThreadExited:
		return lipgloss.NewStyle().Foreground(styles.ThreadExitedColor)

	case SpanSeverityFatal:
		return styles.SeverityFatalStyle
	case SpanSeverityError:
		return styles.SeverityErrorStyle
	case SpanSeverityWarning:
		return styles.SeverityWarningStyle
	case SpanSeverityInfo:
		return styles.SeverityInfoStyle

	case SpanBreakpointEnabled:
		return styles.BreakpointEnabledStyle
	case SpanBreakpointDisabled:
		return styles.BreakpointDisabledStyle
	case SpanBreakpointPending:
		return styles.BreakpointPendingStyle
	case SpanBreakpointInternal:
		return styles.BreakpointInternalStyle
	case SpanFilterActive:
		return styles.FilterActiveStyle
	case SpanFilterInactive:
		return styles.FilterInactiveStyle

	case SpanCmdVerb:
		return lipgloss.NewStyle().Foreground(styles.CmdVerbColor).Bold(true)
	case SpanCmdNoun:
		return lipgloss.NewStyle().Foreground(styles.CmdNounColor)
	case SpanCmdSwitch:
		return lipgloss.NewStyle().Foreground(styles.CmdSwitchColor)
	case SpanCmdString:
		return lipgloss.NewStyle().Foreground(styles.CmdStringColor)
	case SpanCmdNumber:
		return lipgloss.NewStyle().Foreground(styles.CmdNumberColor)

	default:
		return lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	}
}

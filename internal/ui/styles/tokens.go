// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextDescription ColorToken = "text.description"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderFocus     ColorToken = "border.focus"
	TokenBorderHighlight ColorToken = "border.highlight"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Selection
	TokenSelectionIndicator  ColorToken = "selection.indicator"
	TokenSelectionBackground ColorToken = "selection.background"

	// Buttons
	TokenButtonText             ColorToken = "button.text"
	TokenButtonPrimaryBg        ColorToken = "button.primary.bg"
	TokenButtonPrimaryFocusBg   ColorToken = "button.primary.focus"
	TokenButtonSecondaryBg      ColorToken = "button.secondary.bg"
	TokenButtonSecondaryFocusBg ColorToken = "button.secondary.focus"
	TokenButtonDangerBg         ColorToken = "button.danger.bg"
	TokenButtonDangerFocusBg    ColorToken = "button.danger.focus"
	TokenButtonDisabledBg       ColorToken = "button.disabled.bg"

	// Forms
	TokenFormBorder      ColorToken = "form.border"
	TokenFormBorderFocus ColorToken = "form.border.focus" //nolint:gosec // UI color token, not credentials
	TokenFormLabel       ColorToken = "form.label"
	TokenFormLabelFocus  ColorToken = "form.label.focus"

	// Overlays/Modals
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	// Toast notifications
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"

	// Thread state
	TokenThreadRunning ColorToken = "thread.running"
	TokenThreadStopped ColorToken = "thread.stopped"
	TokenThreadExited  ColorToken = "thread.exited"

	// Stop-reason severity
	TokenSeverityFatal   ColorToken = "severity.fatal"
	TokenSeverityError   ColorToken = "severity.error"
	TokenSeverityWarning ColorToken = "severity.warning"
	TokenSeverityInfo    ColorToken = "severity.info"
	TokenSeverityMuted   ColorToken = "severity.muted"

	// Breakpoint/filter status
	TokenBreakpointEnabled  ColorToken = "breakpoint.enabled"
	TokenBreakpointDisabled ColorToken = "breakpoint.disabled"
	TokenBreakpointPending  ColorToken = "breakpoint.pending"
	TokenBreakpointInternal ColorToken = "breakpoint.internal"
	TokenFilterActive       ColorToken = "filter.active"
	TokenFilterInactive     ColorToken = "filter.inactive"
	TokenJobAttached        ColorToken = "job.attached"
	TokenJobActive          ColorToken = "job.active"

	// Command-grammar syntax highlighting (noun/verb/switch)
	TokenCmdVerb      ColorToken = "cmd.verb"
	TokenCmdSwitch    ColorToken = "cmd.switch"
	TokenCmdNoun      ColorToken = "cmd.noun"
	TokenCmdString    ColorToken = "cmd.string"
	TokenCmdNumber    ColorToken = "cmd.number"
	TokenCmdAddress   ColorToken = "cmd.address" //nolint:gosec // UI color token, not credentials
	TokenCmdSeparator ColorToken = "cmd.separator"

	// Misc
	TokenSpinner ColorToken = "spinner"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		// Text hierarchy
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenTextDescription,
		TokenTextPlaceholder,

		// Borders
		TokenBorderDefault,
		TokenBorderFocus,
		TokenBorderHighlight,

		// Status indicators
		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		// Selection
		TokenSelectionIndicator,
		TokenSelectionBackground,

		// Buttons
		TokenButtonText,
		TokenButtonPrimaryBg,
		TokenButtonPrimaryFocusBg,
		TokenButtonSecondaryBg,
		TokenButtonSecondaryFocusBg,
		TokenButtonDangerBg,
		TokenButtonDangerFocusBg,
		TokenButtonDisabledBg,

		// Forms
		TokenFormBorder,
		TokenFormBorderFocus,
		TokenFormLabel,
		TokenFormLabelFocus,

		// Overlays/Modals
		TokenOverlayTitle,
		TokenOverlayBorder,

		// Toast notifications
		TokenToastSuccess,
		TokenToastError,
		TokenToastInfo,
		TokenToastWarn,

		// Thread state
		TokenThreadRunning,
		TokenThreadStopped,
		TokenThreadExited,

		// Stop-reason severity
		TokenSeverityFatal,
		TokenSeverityError,
		TokenSeverityWarning,
		TokenSeverityInfo,
		TokenSeverityMuted,

		// Breakpoint/filter status
		TokenBreakpointEnabled,
		TokenBreakpointDisabled,
		TokenBreakpointPending,
		TokenBreakpointInternal,
		TokenFilterActive,
		TokenFilterInactive,
		TokenJobAttached,
		TokenJobActive,

		// Command-grammar syntax highlighting
		TokenCmdVerb,
		TokenCmdSwitch,
		TokenCmdNoun,
		TokenCmdString,
		TokenCmdNumber,
		TokenCmdAddress,
		TokenCmdSeparator,

		// Misc
		TokenSpinner,
	}
}

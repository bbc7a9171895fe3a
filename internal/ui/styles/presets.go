// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the console's default color scheme.
// Color values extracted from styles.go AdaptiveColor definitions (Dark values).
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default zxconsole theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextDescription: "#999999",
		TokenTextPlaceholder: "#777777",

		// Borders
		TokenBorderDefault:   "#696969",
		TokenBorderFocus:     "#FFFFFF",
		TokenBorderHighlight: "#54A0FF",

		// Status indicators
		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		// Selection
		TokenSelectionIndicator:  "#FFFFFF",
		TokenSelectionBackground: "#313244",

		// Buttons
		TokenButtonText:             "#FFFFFF",
		TokenButtonPrimaryBg:        "#1A5276",
		TokenButtonPrimaryFocusBg:   "#3498DB",
		TokenButtonSecondaryBg:      "#2D3436",
		TokenButtonSecondaryFocusBg: "#636E72",
		TokenButtonDangerBg:         "#922B21",
		TokenButtonDangerFocusBg:    "#E74C3C",
		TokenButtonDisabledBg:       "#2D2D2D",

		// Forms
		TokenFormBorder:      "#8C8C8C",
		TokenFormBorderFocus: "#FFFFFF",
		TokenFormLabel:       "#8C8C8C",
		TokenFormLabelFocus:  "#FFFFFF",

		// Overlays/Modals
		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		// Toast notifications
		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",

		// Thread state
		TokenThreadRunning: "#73F59F",
		TokenThreadStopped: "#54A0FF",
		TokenThreadExited:  "#BBBBBB",

		// Stop-reason severity
		TokenSeverityFatal:   "#FF8787",
		TokenSeverityError:   "#FF9F43",
		TokenSeverityWarning: "#FECA57",
		TokenSeverityInfo:    "#999999",
		TokenSeverityMuted:   "#666666",

		// Breakpoint/filter/job status
		TokenBreakpointEnabled:  "#54A0FF",
		TokenBreakpointDisabled: "#777777",
		TokenBreakpointPending:  "#7D56F4",
		TokenBreakpointInternal: "#FF8787",
		TokenFilterActive:       "#73F59F",
		TokenFilterInactive:     "#FF731A",
		TokenJobAttached:        "#73F59F",
		TokenJobActive:          "#54A0FF",

		// Command-grammar syntax highlighting (Catppuccin Mocha inspired)
		TokenCmdVerb:      "#CBA6F7",
		TokenCmdSwitch:    "#F38BA8",
		TokenCmdNoun:      "#94E2D5",
		TokenCmdString:    "#F9E2AF",
		TokenCmdNumber:    "#FAB387",
		TokenCmdAddress:   "#89B4FA",
		TokenCmdSeparator: "#6C7086",

		// Misc
		TokenSpinner: "#FFFFFF",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) theme.
// Colors from: https://catppuccin.com/palette
// Mocha flavor - warm, cozy dark theme with pastel colors.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextSecondary:   "#BAC2DE", // subtext1
		TokenTextMuted:       "#6C7086", // overlay0
		TokenTextDescription: "#A6ADC8", // subtext0
		TokenTextPlaceholder: "#585B70", // surface2

		// Borders
		TokenBorderDefault:   "#6C7086", // overlay0
		TokenBorderFocus:     "#CDD6F4", // text
		TokenBorderHighlight: "#89B4FA", // blue

		// Status indicators
		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		// Selection
		TokenSelectionIndicator:  "#CDD6F4", // text
		TokenSelectionBackground: "#313244", // surface0

		// Buttons
		TokenButtonText:             "#1E1E2E", // base
		TokenButtonPrimaryBg:        "#89B4FA", // blue
		TokenButtonPrimaryFocusBg:   "#B4BEFE", // lavender
		TokenButtonSecondaryBg:      "#45475A", // surface1
		TokenButtonSecondaryFocusBg: "#585B70", // surface2
		TokenButtonDangerBg:         "#F38BA8", // red
		TokenButtonDangerFocusBg:    "#EBA0AC", // maroon
		TokenButtonDisabledBg:       "#313244", // surface0

		// Forms
		TokenFormBorder:      "#6C7086", // overlay0
		TokenFormBorderFocus: "#CDD6F4", // text
		TokenFormLabel:       "#6C7086", // overlay0
		TokenFormLabelFocus:  "#CDD6F4", // text

		// Overlays/Modals
		TokenOverlayTitle:  "#CDD6F4", // text
		TokenOverlayBorder: "#6C7086", // overlay0

		// Toast notifications
		TokenToastSuccess: "#A6E3A1", // green
		TokenToastError:   "#F38BA8", // red
		TokenToastInfo:    "#89B4FA", // blue
		TokenToastWarn:    "#F9E2AF", // yellow

		// Thread state
		TokenThreadRunning: "#A6E3A1", // green
		TokenThreadStopped: "#89B4FA", // blue
		TokenThreadExited:  "#6C7086", // overlay0

		// Stop-reason severity
		TokenSeverityFatal:   "#F38BA8", // red
		TokenSeverityError:   "#FAB387", // peach
		TokenSeverityWarning: "#F9E2AF", // yellow
		TokenSeverityInfo:    "#A6ADC8", // subtext0
		TokenSeverityMuted:   "#6C7086", // overlay0

		// Breakpoint/filter/job status
		TokenBreakpointEnabled:  "#89B4FA", // blue
		TokenBreakpointDisabled: "#6C7086", // overlay0
		TokenBreakpointPending:  "#CBA6F7", // mauve
		TokenBreakpointInternal: "#F38BA8", // red
		TokenFilterActive:       "#A6E3A1", // green
		TokenFilterInactive:     "#6C7086", // overlay0
		TokenJobAttached:        "#A6E3A1", // green
		TokenJobActive:          "#89B4FA", // blue

		// Command-grammar syntax highlighting
		TokenCmdVerb:      "#CBA6F7", // mauve
		TokenCmdSwitch:    "#F38BA8", // red
		TokenCmdNoun:      "#94E2D5", // teal
		TokenCmdString:    "#F9E2AF", // yellow
		TokenCmdNumber:    "#FAB387", // peach
		TokenCmdAddress:   "#89B4FA", // blue
		TokenCmdSeparator: "#6C7086", // overlay0

		// Misc
		TokenSpinner: "#CBA6F7", // mauve
	},
}

// CatppuccinLattePreset is the Catppuccin Latte (light) theme.
// Colors from: https://catppuccin.com/palette
// Latte flavor - light theme for bright environments.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - warm, cozy light theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#4C4F69", // text
		TokenTextSecondary:   "#5C5F77", // subtext1
		TokenTextMuted:       "#9CA0B0", // overlay0
		TokenTextDescription: "#6C6F85", // subtext0
		TokenTextPlaceholder: "#ACB0BE", // surface2

		// Borders
		TokenBorderDefault:   "#9CA0B0", // overlay0
		TokenBorderFocus:     "#4C4F69", // text
		TokenBorderHighlight: "#1E66F5", // blue

		// Status indicators
		TokenStatusSuccess: "#40A02B", // green
		TokenStatusWarning: "#DF8E1D", // yellow
		TokenStatusError:   "#D20F39", // red

		// Selection
		TokenSelectionIndicator:  "#4C4F69", // text
		TokenSelectionBackground: "#CCD0DA", // surface0

		// Buttons
		TokenButtonText:             "#EFF1F5", // base
		TokenButtonPrimaryBg:        "#1E66F5", // blue
		TokenButtonPrimaryFocusBg:   "#7287FD", // lavender
		TokenButtonSecondaryBg:      "#BCC0CC", // surface1
		TokenButtonSecondaryFocusBg: "#ACB0BE", // surface2
		TokenButtonDangerBg:         "#D20F39", // red
		TokenButtonDangerFocusBg:    "#E64553", // maroon
		TokenButtonDisabledBg:       "#CCD0DA", // surface0

		// Forms
		TokenFormBorder:      "#9CA0B0", // overlay0
		TokenFormBorderFocus: "#4C4F69", // text
		TokenFormLabel:       "#9CA0B0", // overlay0
		TokenFormLabelFocus:  "#4C4F69", // text

		// Overlays/Modals
		TokenOverlayTitle:  "#4C4F69", // text
		TokenOverlayBorder: "#9CA0B0", // overlay0

		// Toast notifications
		TokenToastSuccess: "#40A02B", // green
		TokenToastError:   "#D20F39", // red
		TokenToastInfo:    "#1E66F5", // blue
		TokenToastWarn:    "#DF8E1D", // yellow

		// Thread state
		TokenThreadRunning: "#40A02B", // green
		TokenThreadStopped: "#1E66F5", // blue
		TokenThreadExited:  "#9CA0B0", // overlay0

		// Stop-reason severity
		TokenSeverityFatal:   "#D20F39", // red
		TokenSeverityError:   "#FE640B", // peach
		TokenSeverityWarning: "#DF8E1D", // yellow
		TokenSeverityInfo:    "#6C6F85", // subtext0
		TokenSeverityMuted:   "#9CA0B0", // overlay0

		// Breakpoint/filter/job status
		TokenBreakpointEnabled:  "#1E66F5", // blue
		TokenBreakpointDisabled: "#9CA0B0", // overlay0
		TokenBreakpointPending:  "#8839EF", // mauve
		TokenBreakpointInternal: "#D20F39", // red
		TokenFilterActive:       "#40A02B", // green
		TokenFilterInactive:     "#9CA0B0", // overlay0
		TokenJobAttached:        "#40A02B", // green
		TokenJobActive:          "#1E66F5", // blue

		// Command-grammar syntax highlighting
		TokenCmdVerb:      "#8839EF", // mauve
		TokenCmdSwitch:    "#D20F39", // red
		TokenCmdNoun:      "#179299", // teal
		TokenCmdString:    "#DF8E1D", // yellow
		TokenCmdNumber:    "#FE640B", // peach
		TokenCmdAddress:   "#1E66F5", // blue
		TokenCmdSeparator: "#9CA0B0", // overlay0

		// Misc
		TokenSpinner: "#8839EF", // mauve
	},
}

// DraculaPreset is the Dracula theme.
// Colors from: https://draculatheme.com/contribute
// Dark theme with vibrant, high-contrast colors.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#F8F8F2", // foreground
		TokenTextSecondary:   "#F8F8F2", // foreground
		TokenTextMuted:       "#6272A4", // comment
		TokenTextDescription: "#F8F8F2", // foreground
		TokenTextPlaceholder: "#6272A4", // comment

		// Borders
		TokenBorderDefault:   "#6272A4", // comment
		TokenBorderFocus:     "#F8F8F2", // foreground
		TokenBorderHighlight: "#BD93F9", // purple

		// Status indicators
		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red

		// Selection
		TokenSelectionIndicator:  "#F8F8F2", // foreground
		TokenSelectionBackground: "#44475A", // current line

		// Buttons
		TokenButtonText:             "#282A36", // background
		TokenButtonPrimaryBg:        "#BD93F9", // purple
		TokenButtonPrimaryFocusBg:   "#FF79C6", // pink
		TokenButtonSecondaryBg:      "#44475A", // current line
		TokenButtonSecondaryFocusBg: "#6272A4", // comment
		TokenButtonDangerBg:         "#FF5555", // red
		TokenButtonDangerFocusBg:    "#FF6E6E", // lighter red
		TokenButtonDisabledBg:       "#44475A", // current line

		// Forms
		TokenFormBorder:      "#6272A4", // comment
		TokenFormBorderFocus: "#F8F8F2", // foreground
		TokenFormLabel:       "#6272A4", // comment
		TokenFormLabelFocus:  "#F8F8F2", // foreground

		// Overlays/Modals
		TokenOverlayTitle:  "#F8F8F2", // foreground
		TokenOverlayBorder: "#6272A4", // comment

		// Toast notifications
		TokenToastSuccess: "#50FA7B", // green
		TokenToastError:   "#FF5555", // red
		TokenToastInfo:    "#8BE9FD", // cyan
		TokenToastWarn:    "#F1FA8C", // yellow

		// Thread state
		TokenThreadRunning: "#50FA7B", // green
		TokenThreadStopped: "#8BE9FD", // cyan
		TokenThreadExited:  "#6272A4", // comment

		// Stop-reason severity
		TokenSeverityFatal:   "#FF5555", // red
		TokenSeverityError:   "#FFB86C", // orange
		TokenSeverityWarning: "#F1FA8C", // yellow
		TokenSeverityInfo:    "#6272A4", // comment
		TokenSeverityMuted:   "#44475A", // current line

		// Breakpoint/filter/job status
		TokenBreakpointEnabled:  "#8BE9FD", // cyan
		TokenBreakpointDisabled: "#6272A4", // comment
		TokenBreakpointPending:  "#BD93F9", // purple
		TokenBreakpointInternal: "#FF5555", // red
		TokenFilterActive:       "#50FA7B", // green
		TokenFilterInactive:     "#6272A4", // comment
		TokenJobAttached:        "#50FA7B", // green
		TokenJobActive:          "#8BE9FD", // cyan

		// Command-grammar syntax highlighting
		TokenCmdVerb:      "#FF79C6", // pink
		TokenCmdSwitch:    "#FF5555", // red
		TokenCmdNoun:      "#8BE9FD", // cyan
		TokenCmdString:    "#F1FA8C", // yellow
		TokenCmdNumber:    "#FFB86C", // orange
		TokenCmdAddress:   "#BD93F9", // purple
		TokenCmdSeparator: "#6272A4", // comment

		// Misc
		TokenSpinner: "#BD93F9", // purple
	},
}

// NordPreset is the Nord theme.
// Colors from: https://www.nordtheme.com/docs/colors-and-palettes
// Arctic, north-bluish color palette with calm, muted tones.
// Polar Night: #2E3440, #3B4252, #434C5E, #4C566A (backgrounds)
// Snow Storm: #D8DEE9, #E5E9F0, #ECEFF4 (text)
// Frost: #8FBCBB, #88C0D0, #81A1C1, #5E81AC (accents)
// Aurora: #BF616A (red), #D08770 (orange), #EBCB8B (yellow), #A3BE8C (green), #B48EAD (purple)
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#ECEFF4", // snow storm 3
		TokenTextSecondary:   "#E5E9F0", // snow storm 2
		TokenTextMuted:       "#4C566A", // polar night 4
		TokenTextDescription: "#D8DEE9", // snow storm 1
		TokenTextPlaceholder: "#4C566A", // polar night 4

		// Borders
		TokenBorderDefault:   "#4C566A", // polar night 4
		TokenBorderFocus:     "#ECEFF4", // snow storm 3
		TokenBorderHighlight: "#88C0D0", // frost 2

		// Status indicators
		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red

		// Selection
		TokenSelectionIndicator:  "#ECEFF4", // snow storm 3
		TokenSelectionBackground: "#434C5E", // polar night 3

		// Buttons
		TokenButtonText:             "#2E3440", // polar night 1
		TokenButtonPrimaryBg:        "#5E81AC", // frost 4
		TokenButtonPrimaryFocusBg:   "#81A1C1", // frost 3
		TokenButtonSecondaryBg:      "#434C5E", // polar night 3
		TokenButtonSecondaryFocusBg: "#4C566A", // polar night 4
		TokenButtonDangerBg:         "#BF616A", // aurora red
		TokenButtonDangerFocusBg:    "#D08770", // aurora orange
		TokenButtonDisabledBg:       "#3B4252", // polar night 2

		// Forms
		TokenFormBorder:      "#4C566A", // polar night 4
		TokenFormBorderFocus: "#ECEFF4", // snow storm 3
		TokenFormLabel:       "#4C566A", // polar night 4
		TokenFormLabelFocus:  "#ECEFF4", // snow storm 3

		// Overlays/Modals
		TokenOverlayTitle:  "#ECEFF4", // snow storm 3
		TokenOverlayBorder: "#4C566A", // polar night 4

		// Toast notifications
		TokenToastSuccess: "#A3BE8C", // aurora green
		TokenToastError:   "#BF616A", // aurora red
		TokenToastInfo:    "#81A1C1", // frost 3
		TokenToastWarn:    "#EBCB8B", // aurora yellow

		// Thread state
		TokenThreadRunning: "#A3BE8C", // aurora green
		TokenThreadStopped: "#88C0D0", // frost 2
		TokenThreadExited:  "#4C566A", // polar night 4

		// Stop-reason severity
		TokenSeverityFatal:   "#BF616A", // aurora red
		TokenSeverityError:   "#D08770", // aurora orange
		TokenSeverityWarning: "#EBCB8B", // aurora yellow
		TokenSeverityInfo:    "#4C566A", // polar night 4
		TokenSeverityMuted:   "#434C5E", // polar night 3

		// Breakpoint/filter/job status
		TokenBreakpointEnabled:  "#88C0D0", // frost 2
		TokenBreakpointDisabled: "#4C566A", // polar night 4
		TokenBreakpointPending:  "#B48EAD", // aurora purple
		TokenBreakpointInternal: "#BF616A", // aurora red
		TokenFilterActive:       "#A3BE8C", // aurora green
		TokenFilterInactive:     "#4C566A", // polar night 4
		TokenJobAttached:        "#A3BE8C", // aurora green
		TokenJobActive:          "#88C0D0", // frost 2

		// Command-grammar syntax highlighting
		TokenCmdVerb:      "#81A1C1", // frost 3
		TokenCmdSwitch:    "#BF616A", // aurora red
		TokenCmdNoun:      "#8FBCBB", // frost 1
		TokenCmdString:    "#EBCB8B", // aurora yellow
		TokenCmdNumber:    "#D08770", // aurora orange
		TokenCmdAddress:   "#5E81AC", // frost 4
		TokenCmdSeparator: "#4C566A", // polar night 4

		// Misc
		TokenSpinner: "#88C0D0", // frost 2
	},
}

// HighContrastPreset is a high contrast theme for accessibility.
// Designed for users with visual impairments or those who prefer maximum visibility.
// All colors meet WCAG AAA contrast requirements (7:1 minimum ratio against black).
// No subtle or muted colors - everything is clearly visible.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		// Text hierarchy - pure white for maximum visibility
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#FFFFFF", // no muted colors in high contrast
		TokenTextDescription: "#FFFFFF",
		TokenTextPlaceholder: "#CCCCCC", // slightly dimmed but still readable

		// Borders - white for maximum visibility
		TokenBorderDefault:   "#FFFFFF",
		TokenBorderFocus:     "#FFFF00", // bright yellow for focus
		TokenBorderHighlight: "#00FFFF", // cyan for highlights

		// Status indicators - pure, saturated colors
		TokenStatusSuccess: "#00FF00", // pure green
		TokenStatusWarning: "#FFFF00", // pure yellow
		TokenStatusError:   "#FF0000", // pure red

		// Selection - bright indicator
		TokenSelectionIndicator:  "#FFFF00", // yellow for visibility
		TokenSelectionBackground: "#404040", // dark gray, high contrast against yellow

		// Buttons - high contrast backgrounds
		TokenButtonText:             "#000000", // black text on bright buttons
		TokenButtonPrimaryBg:        "#00FFFF", // cyan
		TokenButtonPrimaryFocusBg:   "#FFFFFF", // white when focused
		TokenButtonSecondaryBg:      "#808080", // gray
		TokenButtonSecondaryFocusBg: "#FFFFFF", // white when focused
		TokenButtonDangerBg:         "#FF0000", // red
		TokenButtonDangerFocusBg:    "#FF6666", // lighter red
		TokenButtonDisabledBg:       "#404040", // dark gray

		// Forms - white borders for visibility
		TokenFormBorder:      "#FFFFFF",
		TokenFormBorderFocus: "#FFFF00", // yellow focus
		TokenFormLabel:       "#FFFFFF",
		TokenFormLabelFocus:  "#FFFF00",

		// Overlays/Modals - white borders
		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		// Toast notifications - pure colors
		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
		TokenToastWarn:    "#FFFF00",

		// Thread state - distinct, saturated colors
		TokenThreadRunning: "#00FF00", // green
		TokenThreadStopped: "#00FFFF", // cyan
		TokenThreadExited:  "#808080", // gray (only muted color - exited is inactive)

		// Stop-reason severity - distinct colors from red to white
		TokenSeverityFatal:   "#FF0000", // red
		TokenSeverityError:   "#FF8800", // orange
		TokenSeverityWarning: "#FFFF00", // yellow
		TokenSeverityInfo:    "#FFFFFF", // white
		TokenSeverityMuted:   "#808080", // gray

		// Breakpoint/filter/job status - distinct colors
		TokenBreakpointEnabled:  "#00FFFF", // cyan
		TokenBreakpointDisabled: "#808080", // gray
		TokenBreakpointPending:  "#FF00FF", // magenta
		TokenBreakpointInternal: "#FF0000", // red
		TokenFilterActive:       "#00FF00", // green
		TokenFilterInactive:     "#808080", // gray
		TokenJobAttached:        "#00FF00", // green
		TokenJobActive:          "#00FFFF", // cyan

		// Command-grammar syntax highlighting - high contrast
		TokenCmdVerb:      "#FF00FF", // magenta
		TokenCmdSwitch:    "#FF0000", // red
		TokenCmdNoun:      "#00FFFF", // cyan
		TokenCmdString:    "#FFFF00", // yellow
		TokenCmdNumber:    "#FF8800", // orange
		TokenCmdAddress:   "#FFFFFF", // white
		TokenCmdSeparator: "#FFFFFF", // white

		// Misc
		TokenSpinner: "#FFFF00", // yellow for visibility
	},
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output.
const (
	// ColorPrimary is purple, used for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, used for subtitles and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green, used for enabled features and success states.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red, used for errors and disabled features.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber, used for warnings and lossy conversions.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue, used for flag and bit names.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and enabled features.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warnings.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for commands, flag names and bit names.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// disabledStyle marks values that do not apply.
	disabledStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

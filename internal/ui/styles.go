package ui

import "charm.land/lipgloss/v2"

// Color palette - Purple + Cyan/Teal theme
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#7C3AED") // Purple when focused
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#B0B8C4") // Muted text
	ColorUser        = lipgloss.Color("#A78BFA") // Light purple for outgoing messages
	ColorPeer        = lipgloss.Color("#22D3EE") // Bright cyan for incoming messages
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber
	ColorError       = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess     = lipgloss.Color("#10B981") // Green
	ColorKeyboard    = lipgloss.Color("#111827") // Keyboard overlay background
	ColorKeyboardKey = lipgloss.Color("#4B5563") // Key caps
)

// Phone frame styles
var (
	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Background(lipgloss.Color("#111827")).
			Padding(0, 1)

	SafeAreaStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	HomeIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)

// Chat styles
var (
	ChatUserStyle = lipgloss.NewStyle().
			Foreground(ColorUser).
			Bold(true)

	ChatPeerStyle = lipgloss.NewStyle().
			Foreground(ColorPeer).
			Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	ChatTimestampStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	ChatInputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus).
				Padding(0, 1)
)

// Keyboard overlay styles
var (
	KeyboardStyle = lipgloss.NewStyle().
			Background(ColorKeyboard).
			Foreground(ColorTextMuted)

	KeyboardKeyStyle = lipgloss.NewStyle().
				Background(ColorKeyboardKey).
				Foreground(ColorText)

	KeyboardAccessoryStyle = lipgloss.NewStyle().
				Background(ColorKeyboard).
				Foreground(ColorSecondary)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Status styles
var (
	StatusStreamingStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pocketchat/internal/ui"
)

// maxPhoneWidth keeps the bezel phone-shaped on wide terminals.
const maxPhoneWidth = 46

// footerBindings are the global shortcuts shown under the phone.
var footerBindings = [][2]string{
	{"tab", "focus"},
	{"enter", "send"},
	{"esc", "dismiss"},
	{"ctrl+r", "rotate"},
	{"ctrl+a", "accessory"},
	{"ctrl+b", "url bar"},
	{"ctrl+y", "copy"},
	{"ctrl+c", "quit"},
}

// updateSizes recomputes the bezel from the terminal dimensions, then the
// inner panel from the current keyboard geometry.
func (m *Model) updateSizes() {
	width := m.width - 2
	if width > maxPhoneWidth {
		width = maxPhoneWidth
	}
	height := m.height - 3 // status line + footer
	m.phone.SetSize(width, height)
	m.syncLayout()
}

// syncLayout resizes the chat panel to the screen area the keyboard overlay
// leaves free. Called whenever geometry changes: window resize, keyboard
// events, animation frames, rotation.
func (m *Model) syncLayout() {
	frame := m.currentFrame()
	m.chat.SetSize(m.phone.ContentWidth(), m.phone.ContentRows(frame))
	m.statusLine = statusFor(m.controller.State())
}

// currentFrame assembles the renderable snapshot: static device geometry plus
// the interpolator's animated keyboard height.
func (m *Model) currentFrame() ui.Frame {
	profile := m.device.Profile()
	screenPx := profile.Height
	if m.device.Landscape() {
		screenPx = profile.Width
	}

	return ui.Frame{
		ProfileName:    profile.Name,
		Landscape:      m.device.Landscape(),
		ScreenHeightPx: screenPx,
		KeyboardPx:     m.interp.Height(),
		AccessoryShown: m.accessory && m.controller.IsVisible(),
		SafeArea:       m.device.SafeArea(),
	}
}

// View renders the phone, the controller status line, and the footer.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	frame := m.currentFrame()
	frame.Content = m.chat.View()

	phoneView := m.phone.Render(frame)
	status := ui.FooterStyle.Render(m.statusLine)

	screen := lipgloss.JoinVertical(lipgloss.Center, phoneView, status, m.renderFooter())
	v.SetContent(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screen))
	return v
}

// renderFooter draws the shortcut hints.
func (m *Model) renderFooter() string {
	parts := make([]string, 0, len(footerBindings))
	for _, b := range footerBindings {
		parts = append(parts, ui.FooterKeyStyle.Render(b[0])+" "+ui.FooterDescStyle.Render(b[1]))
	}
	return ui.FooterStyle.Render(strings.Join(parts, "  "))
}

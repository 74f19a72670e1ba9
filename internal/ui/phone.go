package ui

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"pocketchat/internal/sample"
)

// keyCapRows is the key layout drawn inside the keyboard overlay, top row
// first. A partially-risen keyboard shows its top rows only.
var keyCapRows = []string{
	"q w e r t y u i o p",
	"a s d f g h j k l",
	"⇧  z x c v b n m  ⌫",
	"123     space     ⏎",
}

// accessorySuggestions fills the suggestion bar above the key caps.
const accessorySuggestions = `"the"   "and"   "keyboard"`

// Frame is one renderable snapshot of the simulated screen.
type Frame struct {
	ProfileName    string
	Landscape      bool
	ScreenHeightPx float64 // full window height in px, used for px -> row scaling
	KeyboardPx     float64 // current (possibly mid-animation) keyboard height
	AccessoryShown bool
	SafeArea       sample.SafeAreaInsets
	Content        string // pre-rendered screen content, newline separated
	StatusRight    string // right-aligned status bar text, e.g. battery
}

// Phone renders frames inside a rounded device bezel. Pixel heights from the
// keyboard controller are scaled to terminal rows against the profile's
// screen height, so the overlay occludes the same fraction of the screen the
// real keyboard would.
type Phone struct {
	width  int
	height int
}

// NewPhone creates a phone renderer.
func NewPhone() *Phone {
	return &Phone{}
}

// SetSize sets the outer bezel dimensions in terminal cells.
func (p *Phone) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Width returns the outer bezel width.
func (p *Phone) Width() int { return p.width }

// Height returns the outer bezel height.
func (p *Phone) Height() int { return p.height }

// ContentRows returns how many rows of screen content fit given the current
// frame geometry: the bezel, status bar, safe areas, and keyboard overlay are
// all subtracted.
func (p *Phone) ContentRows(f Frame) int {
	innerHeight := p.height - 2 // bezel border
	rows := innerHeight - 1     // status bar
	rows -= p.pxToRows(f.SafeArea.Top, f.ScreenHeightPx)
	rows -= p.homeRows(f)
	rows -= p.keyboardRows(f)
	if rows < 0 {
		rows = 0
	}
	return rows
}

// ContentWidth returns the inner screen width in cells.
func (p *Phone) ContentWidth() int {
	w := p.width - 2
	if w < 0 {
		w = 0
	}
	return w
}

// Render draws the frame: status bar, notch spacer, content, keyboard
// overlay, home indicator, all inside the bezel.
func (p *Phone) Render(f Frame) string {
	innerWidth := p.ContentWidth()
	if innerWidth <= 0 || p.height <= 2 {
		return ""
	}

	var rows []string
	rows = append(rows, p.renderStatusBar(f, innerWidth))

	for i := 0; i < p.pxToRows(f.SafeArea.Top, f.ScreenHeightPx); i++ {
		rows = append(rows, SafeAreaStyle.Render(padCell("", innerWidth)))
	}

	contentRows := p.ContentRows(f)
	lines := strings.Split(f.Content, "\n")
	if len(lines) > contentRows {
		lines = lines[len(lines)-contentRows:] // bottom-anchored, like a chat
	}
	for len(lines) < contentRows {
		lines = append(lines, "")
	}
	for _, line := range lines {
		rows = append(rows, padCell(line, innerWidth))
	}

	rows = append(rows, p.renderKeyboard(f, innerWidth)...)

	if p.homeRows(f) > 0 {
		indicator := strings.Repeat("─", min(innerWidth/3, 12))
		centered := lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, indicator)
		rows = append(rows, HomeIndicatorStyle.Render(centered))
	}

	return FrameStyle.Render(strings.Join(rows, "\n"))
}

// renderStatusBar draws the clock, profile name, and right status text.
func (p *Phone) renderStatusBar(f Frame, width int) string {
	left := "9:41"
	center := f.ProfileName
	if f.Landscape {
		center += " ⟳"
	}
	right := f.StatusRight
	if right == "" {
		right = "▂▄▆█ 100%"
	}

	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(center) - runewidth.StringWidth(right)
	if gap < 2 {
		return StatusBarStyle.Render(padCell(left+" "+center, width))
	}
	line := left + strings.Repeat(" ", gap/2) + center + strings.Repeat(" ", gap-gap/2) + right
	return StatusBarStyle.Render(padCell(line, width))
}

// renderKeyboard draws the visible slice of the keyboard overlay. The
// keyboard rises from the bottom, so its top rows appear first.
func (p *Phone) renderKeyboard(f Frame, width int) []string {
	total := p.keyboardRows(f)
	if total == 0 {
		return nil
	}

	var layout []string
	if f.AccessoryShown {
		layout = append(layout, KeyboardAccessoryStyle.Render(padCell(" "+accessorySuggestions, width)))
	}
	for _, caps := range keyCapRows {
		centered := lipgloss.PlaceHorizontal(width, lipgloss.Center, KeyboardKeyStyle.Render(caps))
		layout = append(layout, KeyboardStyle.Render(centered))
	}

	if total > len(layout) {
		for len(layout) < total {
			layout = append(layout, KeyboardStyle.Render(padCell("", width)))
		}
	}
	return layout[:total]
}

// keyboardRows converts the animated keyboard pixel height to overlay rows.
func (p *Phone) keyboardRows(f Frame) int {
	return p.pxToRows(f.KeyboardPx, f.ScreenHeightPx)
}

// homeRows reserves one row for the home indicator when the profile has a
// bottom inset.
func (p *Phone) homeRows(f Frame) int {
	if f.SafeArea.Bottom > 0 {
		return 1
	}
	return 0
}

// pxToRows scales a pixel height to terminal rows against the screen height.
func (p *Phone) pxToRows(px, screenPx float64) int {
	if px <= 0 || screenPx <= 0 {
		return 0
	}
	inner := p.height - 2
	if inner <= 0 {
		return 0
	}
	rows := int(math.Round(px / screenPx * float64(inner)))
	if rows < 1 {
		rows = 1 // a nonzero height always occupies at least one row
	}
	if rows > inner {
		rows = inner
	}
	return rows
}

// padCell right-pads a line to width. Content is wrapped upstream, so
// overflow only happens for degenerate widths and is left to lipgloss.
func padCell(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, s)
}

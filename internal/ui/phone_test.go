package ui

import (
	"strings"
	"testing"

	"pocketchat/internal/sample"
)

func testFrame(keyboardPx float64) Frame {
	return Frame{
		ProfileName:    "iphone",
		ScreenHeightPx: 812,
		KeyboardPx:     keyboardPx,
		SafeArea:       sample.SafeAreaInsets{Top: 47, Bottom: 34},
		Content:        "hello",
	}
}

func TestPhonePxToRows(t *testing.T) {
	p := NewPhone()
	p.SetSize(40, 30) // 28 inner rows

	tests := []struct {
		px       float64
		expected int
	}{
		{0, 0},
		{336, 12}, // full iphone keyboard: 336/812 of 28 rows
		{100, 3},
		{10, 1},    // nonzero height occupies at least one row
		{2000, 28}, // clamped to the screen
	}

	for _, tt := range tests {
		if got := p.pxToRows(tt.px, 812); got != tt.expected {
			t.Errorf("pxToRows(%v) = %d, want %d", tt.px, got, tt.expected)
		}
	}
}

func TestPhoneContentRows(t *testing.T) {
	p := NewPhone()
	p.SetSize(40, 30)

	// 28 inner - 1 status - 2 notch - 1 home indicator - 12 keyboard.
	if got := p.ContentRows(testFrame(336)); got != 12 {
		t.Errorf("ContentRows with keyboard = %d, want 12", got)
	}
	// Same, keyboard hidden.
	if got := p.ContentRows(testFrame(0)); got != 24 {
		t.Errorf("ContentRows without keyboard = %d, want 24", got)
	}
}

func TestPhoneRenderRowCount(t *testing.T) {
	p := NewPhone()
	p.SetSize(40, 30)

	for _, px := range []float64{0, 100, 336} {
		out := p.Render(testFrame(px))
		if got := len(strings.Split(out, "\n")); got != 30 {
			t.Errorf("Render(kb=%v) has %d rows, want 30", px, got)
		}
	}
}

func TestPhoneRenderKeyboardOverlay(t *testing.T) {
	p := NewPhone()
	p.SetSize(40, 30)

	hidden := p.Render(testFrame(0))
	if strings.Contains(hidden, "q w e r t y") {
		t.Error("key caps rendered while keyboard hidden")
	}

	shown := p.Render(testFrame(336))
	if !strings.Contains(shown, "q w e r t y") {
		t.Error("key caps missing while keyboard shown")
	}

	f := testFrame(336)
	f.AccessoryShown = true
	if !strings.Contains(p.Render(f), "keyboard") {
		t.Error("suggestion bar missing while accessory shown")
	}
}

func TestPhoneRenderPartialKeyboardShowsTopRows(t *testing.T) {
	p := NewPhone()
	p.SetSize(40, 30)

	// One row of keyboard: only the top key row should be visible.
	out := p.Render(testFrame(30))
	if !strings.Contains(out, "q w e r t y") {
		t.Error("top key row missing on partial keyboard")
	}
	if strings.Contains(out, "space") {
		t.Error("bottom key row visible on partial keyboard")
	}
}

func TestPhoneNoHomeRowWithoutBottomInset(t *testing.T) {
	p := NewPhone()
	p.SetSize(40, 30)

	f := testFrame(0)
	f.SafeArea = sample.SafeAreaInsets{}
	if got := p.ContentRows(f); got != 27 { // 28 inner - 1 status
		t.Errorf("ContentRows = %d, want 27", got)
	}
}

func TestPhoneContentBottomAnchored(t *testing.T) {
	p := NewPhone()
	p.SetSize(40, 6) // 4 inner rows, 1 status, no insets -> 3 content rows

	f := Frame{
		ProfileName:    "web",
		ScreenHeightPx: 800,
		Content:        "one\ntwo\nthree\nfour",
	}
	out := p.Render(f)
	if strings.Contains(out, "one") {
		t.Error("oldest overflow line should be trimmed")
	}
	if !strings.Contains(out, "four") {
		t.Error("newest line should be visible")
	}
}

package ui

import (
	"strings"
	"testing"

	"pocketchat/internal/chat"
)

func TestChatTranscriptRendering(t *testing.T) {
	c := NewChat()
	c.SetSize(40, 12)

	c.SetMessages([]chat.Message{
		chat.NewMessage(chat.RoleUser, "hello peer"),
		chat.NewMessage(chat.RoleAssistant, "hello you"),
	})

	view := c.View()
	if !strings.Contains(view, "You:") {
		t.Error("user role label missing")
	}
	if !strings.Contains(view, "Peer:") {
		t.Error("peer role label missing")
	}
	if !strings.Contains(view, "hello peer") {
		t.Error("user message missing")
	}
}

func TestChatStreaming(t *testing.T) {
	c := NewChat()
	c.SetSize(40, 12)

	if c.IsStreaming() {
		t.Fatal("new chat should not be streaming")
	}

	c.AppendStreaming("partial ")
	c.AppendStreaming("reply")
	if !c.IsStreaming() {
		t.Error("IsStreaming() = false during stream")
	}
	if !strings.Contains(c.View(), "partial reply") {
		t.Error("streamed content missing from view")
	}

	c.FinishStreaming()
	if c.IsStreaming() {
		t.Error("IsStreaming() = true after finish")
	}
}

func TestChatInput(t *testing.T) {
	c := NewChat()
	c.SetSize(40, 12)

	c.SetInput("  hello  ")
	if got := c.GetInput(); got != "hello" {
		t.Errorf("GetInput() = %q, want %q", got, "hello")
	}

	c.ClearInput()
	if got := c.GetInput(); got != "" {
		t.Errorf("GetInput() after clear = %q", got)
	}
}

func TestChatFocus(t *testing.T) {
	c := NewChat()

	if c.IsFocused() {
		t.Fatal("new chat should be blurred")
	}
	c.SetFocused(true)
	if !c.IsFocused() {
		t.Error("SetFocused(true) not reflected")
	}
	c.SetFocused(false)
	if c.IsFocused() {
		t.Error("SetFocused(false) not reflected")
	}
}

func TestChatTinySizeDoesNotPanic(t *testing.T) {
	c := NewChat()
	c.SetSize(0, 0)
	_ = c.View()
}

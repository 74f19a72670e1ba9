package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"pocketchat/internal/chat"
	"pocketchat/internal/clipboard"
	"pocketchat/internal/keys"
	"pocketchat/internal/logger"
	"pocketchat/internal/notification"
)

// Update routes messages: lifecycle events from the keyboard controller,
// streamed peer chunks, animation frames, and key presses.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case KeyboardEventMsg:
		return m, m.handleKeyboardEvent(msg.Event)

	case ChatChunkMsg:
		return m, m.handleChatChunk(msg.Chunk)

	case FrameMsg:
		return m, m.handleFrame(time.Time(msg))

	case tea.KeyPressMsg:
		if model, cmd, handled := m.handleKeyPress(msg); handled {
			return model, cmd
		}
	}

	// Everything else goes to the chat panel (composer input, scrolling).
	chatPanel, cmd := m.chat.Update(msg)
	m.chat = chatPanel
	return m, cmd
}

// handleKeyPress handles global shortcuts. Unhandled keys fall through to the
// chat panel.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case keys.CtrlC:
		return m, tea.Quit, true

	case keys.Tab:
		m.toggleFocus()
		return m, nil, true

	case keys.Escape, keys.CtrlD:
		// Dismiss is a request to the environment; the state machine reacts
		// to the resulting focus-out, not to the key press.
		m.controller.Dismiss()
		return m, nil, true

	case keys.CtrlR:
		m.device.Rotate()
		m.syncLayout()
		return m, nil, true

	case keys.CtrlA:
		m.accessory = !m.accessory
		m.device.SetAccessory(m.accessory)
		return m, nil, true

	case keys.CtrlB:
		m.addressBar = !m.addressBar
		px := 0.0
		if m.addressBar {
			px = addressBarCollapsePx
		}
		m.device.CollapseAddressBar(px)
		m.syncLayout()
		return m, nil, true

	case keys.CtrlY:
		m.copyLastReply()
		return m, nil, true

	case keys.Enter:
		if m.chat.IsFocused() {
			return m, m.sendMessage(), true
		}
	}
	return nil, nil, false
}

// toggleFocus focuses or blurs the composer, driving the simulated device so
// the keyboard controller sees real focus triggers.
func (m *Model) toggleFocus() {
	if m.chat.IsFocused() {
		m.chat.SetFocused(false)
		if err := m.device.Blur(); err != nil {
			logger.Log("App: blur failed: %v", err)
		}
		return
	}
	m.chat.SetFocused(true)
	m.device.FocusEditable(composerElementID)
}

// sendMessage commits the composer text to the transcript and starts the
// peer's streamed reply.
func (m *Model) sendMessage() tea.Cmd {
	text := m.chat.GetInput()
	if text == "" || m.peer.IsStreaming() {
		return nil
	}

	m.store.Add(chat.RoleUser, text)
	m.chat.SetMessages(m.store.Messages())
	m.chat.ClearInput()

	ctx, cancel := context.WithCancel(context.Background())
	m.streamCancel = cancel
	m.streamBuf = ""
	m.responseCh = m.peer.Send(ctx, text)

	logger.Log("App: sent message, len=%d", len(text))
	return m.listenForChatChunk()
}

// handleChatChunk appends streamed content and commits the reply when the
// stream finishes.
func (m *Model) handleChatChunk(chunk chat.ResponseChunk) tea.Cmd {
	if chunk.Type == chat.ChunkTypeText {
		m.streamBuf += chunk.Content
		m.chat.AppendStreaming(chunk.Content)
		return m.listenForChatChunk()
	}

	// Stream finished.
	m.responseCh = nil
	if m.streamCancel != nil {
		m.streamCancel()
		m.streamCancel = nil
	}
	if m.streamBuf != "" {
		reply := m.store.Add(chat.RoleAssistant, m.streamBuf)
		m.chat.FinishStreaming()
		m.chat.SetMessages(m.store.Messages())
		m.streamBuf = ""

		// Notify like a phone would: only when attention is elsewhere.
		if m.config.GetNotificationsEnabled() && !m.chat.IsFocused() {
			if err := notification.MessageReceived(preview(reply.Content)); err != nil {
				logger.Log("App: notification failed: %v", err)
			}
		}
	}
	return nil
}

// handleFrame advances the keyboard animation one frame and reschedules while
// it is still in flight.
func (m *Model) handleFrame(now time.Time) tea.Cmd {
	m.animating = false
	st := m.interp.Tick(now)
	m.syncLayout()
	if st.Done {
		return nil
	}
	return m.frameTick()
}

// copyLastReply puts the most recent peer reply on the system clipboard.
func (m *Model) copyLastReply() {
	messages := m.store.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == chat.RoleAssistant {
			if err := clipboard.WriteText(messages[i].Content); err != nil {
				logger.Log("App: clipboard copy failed: %v", err)
			}
			return
		}
	}
}

// preview truncates reply text for the notification body.
func preview(s string) string {
	const max = 80
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

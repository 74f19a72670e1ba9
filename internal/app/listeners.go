package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"pocketchat/internal/animation"
	"pocketchat/internal/chat"
	"pocketchat/internal/keyboard"
	"pocketchat/internal/logger"
)

// subscribeKeyboard bridges the controller's synchronous lifecycle callbacks
// into the Bubble Tea message loop. The callbacks run on the controller's
// timer goroutines, so they only push into a buffered channel; Update drains
// it one event per listenForKeyboardEvent command.
func (m *Model) subscribeKeyboard() {
	kinds := []keyboard.EventKind{
		keyboard.EventWillShow,
		keyboard.EventDidShow,
		keyboard.EventWillHide,
		keyboard.EventDidHide,
	}
	for _, kind := range kinds {
		m.controller.AddListener(kind, func(ev keyboard.Event) {
			select {
			case m.keyboardEvents <- ev:
			default:
				// Full buffer: drop the oldest so the newest state wins.
				select {
				case <-m.keyboardEvents:
				default:
				}
				select {
				case m.keyboardEvents <- ev:
				default:
				}
			}
		})
	}
}

// listenForKeyboardEvent creates a command that waits for the next keyboard
// lifecycle event. Update re-issues it after handling each one.
func (m *Model) listenForKeyboardEvent() tea.Cmd {
	ch := m.keyboardEvents
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return KeyboardEventMsg{Event: ev}
	}
}

// listenForChatChunk creates a command that waits for the next streamed peer
// chunk on the active response channel.
func (m *Model) listenForChatChunk() tea.Cmd {
	ch := m.responseCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		chunk, ok := <-ch
		if !ok {
			return ChatChunkMsg{Chunk: chat.ResponseChunk{Type: chat.ChunkTypeDone, Done: true}}
		}
		return ChatChunkMsg{Chunk: chunk}
	}
}

// handleKeyboardEvent reacts to a lifecycle event: will* events retarget the
// interpolator toward the committed height, did* events just settle status.
func (m *Model) handleKeyboardEvent(ev keyboard.Event) tea.Cmd {
	logger.Debug("App: keyboard event %s height=%v", ev.Kind, ev.State.Height)

	var cmds []tea.Cmd
	switch ev.Kind {
	case keyboard.EventWillShow:
		m.interp.Start(ev.State.Height, ev.State.TransitionDuration, ev.Timestamp)
		cmds = append(cmds, m.frameTick())
	case keyboard.EventWillHide:
		m.interp.Start(0, ev.State.TransitionDuration, ev.Timestamp)
		m.chat.SetFocused(false)
		cmds = append(cmds, m.frameTick())
	case keyboard.EventDidShow, keyboard.EventDidHide:
		// Transition settled; the interpolator finishes on its own frames.
	}

	m.statusLine = statusFor(m.controller.State())
	m.syncLayout()

	cmds = append(cmds, m.listenForKeyboardEvent())
	return tea.Batch(cmds...)
}

// frameTick schedules the next animation frame unless one is already pending.
func (m *Model) frameTick() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return tea.Tick(animation.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

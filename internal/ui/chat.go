package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pocketchat/internal/chat"
)

// inputTotalHeight is the input area's rows including its border.
const inputTotalHeight = 3

// defaultWrapWidth is used before the first SetSize.
const defaultWrapWidth = 40

// Chat is the conversation panel rendered inside the phone screen: a
// transcript viewport with a single-line composer below it.
type Chat struct {
	viewport  viewport.Model
	input     textarea.Model
	width     int
	height    int
	focused   bool
	messages  []chat.Message
	streaming string // partial peer reply being streamed in
}

// NewChat creates a chat panel.
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Message..."
	ti.CharLimit = 0
	ti.SetHeight(1)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
	}
	c.updateContent()
	return c
}

// SetSize sets the panel dimensions. The viewport gets whatever is left above
// the composer; the keyboard overlay shrinking the panel shrinks the
// transcript, never the composer.
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	viewportHeight := height - inputTotalHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	viewportWidth := width
	if viewportWidth < 1 {
		viewportWidth = 1
	}
	inputWidth := width - 4 // composer border and padding
	if inputWidth < 1 {
		inputWidth = 1
	}

	c.viewport.SetWidth(viewportWidth)
	c.viewport.SetHeight(viewportHeight)
	c.input.SetWidth(inputWidth)

	c.updateContent()
}

// SetFocused focuses or blurs the composer.
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the composer focus state.
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetMessages replaces the transcript.
func (c *Chat) SetMessages(messages []chat.Message) {
	c.messages = messages
	c.updateContent()
}

// AppendStreaming appends a chunk to the in-flight peer reply.
func (c *Chat) AppendStreaming(content string) {
	c.streaming += content
	c.updateContent()
}

// FinishStreaming clears the streaming buffer; the caller is expected to have
// committed the full reply to the transcript already.
func (c *Chat) FinishStreaming() {
	c.streaming = ""
	c.updateContent()
}

// IsStreaming reports whether a peer reply is being streamed in.
func (c *Chat) IsStreaming() bool {
	return c.streaming != ""
}

// GetInput returns the trimmed composer text.
func (c *Chat) GetInput() string {
	return strings.TrimSpace(c.input.Value())
}

// ClearInput clears the composer.
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput sets the composer text.
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = defaultWrapWidth
	}

	var sb strings.Builder
	if len(c.messages) == 0 && c.streaming == "" {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("Say something..."))
	} else {
		for i, msg := range c.messages {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(renderRole(msg.Role))
			sb.WriteString("\n")
			sb.WriteString(renderMessageBody(strings.TrimSpace(msg.Content), wrapWidth))
		}

		if c.streaming != "" {
			if len(c.messages) > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(renderRole(chat.RoleAssistant))
			sb.WriteString("\n")
			sb.WriteString(renderMessageBody(strings.TrimSpace(c.streaming), wrapWidth))
			sb.WriteString(StatusStreamingStyle.Render(" ▍"))
		}
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

func renderRole(role string) string {
	if role == chat.RoleUser {
		return ChatUserStyle.Render("You:")
	}
	return ChatPeerStyle.Render("Peer:")
}

// Update routes messages: scroll keys go to the viewport, everything else to
// the composer while it is focused.
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	if c.focused {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case "pgup", "pgdown", "ctrl+up", "ctrl+down", "home", "end":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				return c, cmd
			}
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)

		// Keys never scroll the transcript while typing.
		if _, isKey := msg.(tea.KeyPressMsg); isKey {
			return c, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the transcript above the composer.
func (c *Chat) View() string {
	transcriptHeight := c.height - inputTotalHeight
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}
	transcript := lipgloss.NewStyle().
		Width(c.width).
		Height(transcriptHeight).
		Render(c.viewport.View())

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	composer := inputStyle.Width(c.width - 2).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, transcript, composer)
}

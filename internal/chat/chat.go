// Package chat holds the conversation model: messages, the transcript store,
// and a scripted peer that streams canned replies the way a remote chat
// service would.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is a single transcript entry.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage creates a message with a fresh ID and timestamp.
func NewMessage(role, content string) Message {
	return Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// ChunkType identifies what a response chunk carries.
type ChunkType int

const (
	ChunkTypeText ChunkType = iota
	ChunkTypeDone
)

// ResponseChunk is one unit of a streamed reply.
type ResponseChunk struct {
	Type    ChunkType
	Content string
	Done    bool
}

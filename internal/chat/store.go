package chat

import "sync"

// Store is a thread-safe transcript.
type Store struct {
	mu       sync.RWMutex
	messages []Message
}

// NewStore creates an empty transcript.
func NewStore() *Store {
	return &Store{messages: []Message{}}
}

// Add appends a message and returns it with ID and timestamp populated.
func (s *Store) Add(role, content string) Message {
	msg := NewMessage(role, content)
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return msg
}

// Append stores an already-built message.
func (s *Store) Append(msg Message) {
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
}

// Messages returns a copy of the transcript.
func (s *Store) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := make([]Message, len(s.messages))
	copy(msgs, s.messages)
	return msgs
}

// Len returns the number of messages.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Clear empties the transcript.
func (s *Store) Clear() {
	s.mu.Lock()
	s.messages = s.messages[:0]
	s.mu.Unlock()
}

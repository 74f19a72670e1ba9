package chat

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Peer produces streamed replies to outgoing messages. The UI consumes it
// through this interface so a real transport could replace the scripted one.
type Peer interface {
	Send(ctx context.Context, prompt string) <-chan ResponseChunk
	IsStreaming() bool
	Stop()
}

// defaultReplies cycle when nothing has been queued, so the demo always has
// something to say.
var defaultReplies = []string{
	"Sounds good, let me take a look.",
	"On it. Give me a second.",
	"Done! Anything else?",
	"Hmm, can you share a bit more detail?",
}

// ScriptedPeer streams canned replies word by word. Tests queue exact replies
// with QueueReply; otherwise the built-in rotation is used.
type ScriptedPeer struct {
	mu sync.RWMutex

	queue       []string
	rotation    int
	isStreaming bool
	chunkDelay  time.Duration
	stopped     bool

	// OnSend is invoked with the outgoing prompt, for test assertions.
	OnSend func(prompt string)
}

// NewScriptedPeer creates a peer that streams with the given inter-chunk
// delay. Zero delay streams as fast as the consumer reads.
func NewScriptedPeer(chunkDelay time.Duration) *ScriptedPeer {
	return &ScriptedPeer{chunkDelay: chunkDelay}
}

// QueueReply queues replies to be returned by subsequent Sends, in order.
func (p *ScriptedPeer) QueueReply(replies ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, replies...)
}

// IsStreaming reports whether a reply is currently being streamed.
func (p *ScriptedPeer) IsStreaming() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.isStreaming
}

// Stop prevents any further streaming.
func (p *ScriptedPeer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
}

// nextReply pops the queued reply or falls back to the rotation.
func (p *ScriptedPeer) nextReply() string {
	if len(p.queue) > 0 {
		reply := p.queue[0]
		p.queue = p.queue[1:]
		return reply
	}
	reply := defaultReplies[p.rotation%len(defaultReplies)]
	p.rotation++
	return reply
}

// Send streams the next reply over the returned channel. The channel is
// closed after the done chunk. A cancelled context ends the stream early
// with a done chunk.
func (p *ScriptedPeer) Send(ctx context.Context, prompt string) <-chan ResponseChunk {
	p.mu.Lock()
	if p.OnSend != nil {
		p.OnSend(prompt)
	}
	stopped := p.stopped
	reply := p.nextReply()
	p.isStreaming = !stopped
	p.mu.Unlock()

	ch := make(chan ResponseChunk, 64)
	if stopped {
		ch <- ResponseChunk{Type: ChunkTypeDone, Done: true}
		close(ch)
		return ch
	}

	go func() {
		defer func() {
			p.mu.Lock()
			p.isStreaming = false
			p.mu.Unlock()
			close(ch)
		}()

		words := strings.Fields(reply)
		for i, word := range words {
			if i > 0 {
				word = " " + word
			}
			select {
			case <-ctx.Done():
				ch <- ResponseChunk{Type: ChunkTypeDone, Done: true}
				return
			case ch <- ResponseChunk{Type: ChunkTypeText, Content: word}:
			}
			if p.chunkDelay > 0 {
				select {
				case <-ctx.Done():
					ch <- ResponseChunk{Type: ChunkTypeDone, Done: true}
					return
				case <-time.After(p.chunkDelay):
				}
			}
		}
		ch <- ResponseChunk{Type: ChunkTypeDone, Done: true}
	}()

	return ch
}

var _ Peer = (*ScriptedPeer)(nil)

package core

import (
	"sync"

	"github.com/Rorical/RoriChat/internal/models"
)

// Conversation is an append-only message history
type Conversation struct {
	mu       sync.RWMutex
	messages []models.Message
}

func NewConversation(initial ...models.Message) *Conversation {
	c := &Conversation{messages: make([]models.Message, 0, len(initial)+2)}
	c.Append(initial...)
	return c
}

// Append adds messages to the end of the history
func (c *Conversation) Append(messages ...models.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, messages...)
}

// Messages returns a copy of the history
func (c *Conversation) Messages() []models.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]models.Message, len(c.messages))
	copy(result, c.messages)
	return result
}

func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

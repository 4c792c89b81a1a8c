package chat

import (
	"context"

	"github.com/Rorical/RoriChat/internal/models"
)

// Strategy is a swappable chat backend. Implementations make one call per
// invocation and never retry.
type Strategy interface {
	Name() string
	Chat(ctx context.Context, messages []models.Message, opts *models.ChatOptions) (*models.ChatResponse, error)
}

// Chat holds the active strategy and forwards calls to it. It is not safe
// to call SetStrategy concurrently with Chat; give each conversation its own Chat.
type Chat struct {
	strategy Strategy
}

func New(strategy Strategy) *Chat {
	return &Chat{strategy: strategy}
}

// Chat delegates to the active strategy
func (c *Chat) Chat(ctx context.Context, messages []models.Message, opts *models.ChatOptions) (*models.ChatResponse, error) {
	return c.strategy.Chat(ctx, messages, opts)
}

func (c *Chat) SetStrategy(strategy Strategy) {
	c.strategy = strategy
}

func (c *Chat) Strategy() Strategy {
	return c.strategy
}

package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rorical/RoriChat/internal/chat"
	"github.com/Rorical/RoriChat/internal/logging"
	"github.com/Rorical/RoriChat/internal/models"
)

// Chatter sends a conversation to a chat backend
type Chatter interface {
	Chat(ctx context.Context, messages []models.Message, opts *models.ChatOptions) (*models.ChatResponse, error)
}

// ToolDispatcher runs a named tool
type ToolDispatcher interface {
	Dispatch(ctx context.Context, name string, args map[string]any) (string, error)
}

// Result describes one completed run
type Result struct {
	Final        models.Message   // Message whose content answers the prompt
	Conversation []models.Message // Every message sent or received, in order
	ToolCall     *models.ToolCall // The tool call that was executed, if any
	ToolResult   string
	// Tool calls the backend asked for beyond the first one. They are never executed.
	IgnoredToolCalls []models.ToolCall
}

// Orchestrator runs a single tool-calling round trip
type Orchestrator struct {
	chat       Chatter
	dispatcher ToolDispatcher
	catalog    []models.ToolDescriptor
	options    models.ChatOptions
	logger     *logging.Logger
}

type Option func(*Orchestrator)

// WithLogger sets the logger; the default discards output
func WithLogger(logger *logging.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithChatOptions sets the base options for every chat call. The catalog
// always replaces the Tools field.
func WithChatOptions(opts models.ChatOptions) Option {
	return func(o *Orchestrator) {
		o.options = opts
	}
}

func NewOrchestrator(chat Chatter, dispatcher ToolDispatcher, catalog []models.ToolDescriptor, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		chat:       chat,
		dispatcher: dispatcher,
		catalog:    catalog,
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Orchestrator) chatOptions() *models.ChatOptions {
	opts := o.options
	opts.Tools = o.catalog
	return &opts
}

// Run sends prompt with the catalog attached. If the backend asks for a
// tool, only the first requested call is executed and its result is sent
// back for a final answer. Errors are returned as-is and never retried.
func (o *Orchestrator) Run(ctx context.Context, prompt string) (*Result, error) {
	conversation := NewConversation(models.UserMessage(prompt))
	opts := o.chatOptions()

	o.logger.Debug("sending prompt with %d tools", len(opts.Tools))
	response, err := o.chat.Chat(ctx, conversation.Messages(), opts)
	if err != nil {
		return nil, fmt.Errorf("initial chat call: %w", err)
	}
	if response == nil {
		return nil, fmt.Errorf("initial chat call: %w", errEmptyResponse())
	}

	if !response.Message.HasToolCalls() {
		conversation.Append(response.Message)
		return &Result{
			Final:        response.Message,
			Conversation: conversation.Messages(),
		}, nil
	}

	calls := response.Message.ToolCalls
	call := calls[0]
	ignored := append([]models.ToolCall(nil), calls[1:]...)
	if len(ignored) > 0 {
		o.logger.Warning("backend requested %d tool calls; only %q is executed", len(calls), call.Function.Name)
	}

	o.logger.Debug("dispatching tool %s with %v", call.Function.Name, call.Function.Arguments)
	toolResult, err := o.dispatcher.Dispatch(ctx, call.Function.Name, call.Function.Arguments)
	if err != nil {
		return nil, fmt.Errorf("dispatch %s: %w", call.Function.Name, err)
	}

	conversation.Append(
		response.Message,
		models.ToolMessage(call.Function.Name, toolResult),
	)

	final, err := o.chat.Chat(ctx, conversation.Messages(), opts)
	if err != nil {
		return nil, fmt.Errorf("follow-up chat call: %w", err)
	}
	if final == nil {
		return nil, fmt.Errorf("follow-up chat call: %w", errEmptyResponse())
	}
	conversation.Append(final.Message)
	o.logger.Info("run finished after tool %s", call.Function.Name)

	return &Result{
		Final:            final.Message,
		Conversation:     conversation.Messages(),
		ToolCall:         &call,
		ToolResult:       toolResult,
		IgnoredToolCalls: ignored,
	}, nil
}

func errEmptyResponse() error {
	return &chat.DecodeError{Err: errors.New("backend returned no response")}
}

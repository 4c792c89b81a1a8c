package models

// Conversation roles understood by the chat backends
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is a single conversation turn. Messages are treated as immutable
// once built; a conversation only ever grows by appending new ones.
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	ToolName  string     `json:"tool_name,omitempty"` // For tool-role messages
}

// ToolCall is a backend request to run a local tool
type ToolCall struct {
	ID       string           `json:"id,omitempty"`
	Function ToolCallFunction `json:"function"`
}

type ToolCallFunction struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ChatResponse is what a strategy returns for one completion call
type ChatResponse struct {
	Model     string  `json:"model,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
	Message   Message `json:"message"`
	Done      bool    `json:"done,omitempty"`
}

// HasToolCalls reports whether the message asks for at least one tool
func (m Message) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

func ToolMessage(name, content string) Message {
	return Message{Role: RoleTool, Content: content, ToolName: name}
}

package models

// ToolDescriptor advertises a callable tool to the chat backend. The
// parameter schema is advisory; nothing validates arguments against it locally.
type ToolDescriptor struct {
	Type     string             `json:"type"`
	Function FunctionDescriptor `json:"function"`
}

type FunctionDescriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  ParameterSchema `json:"parameters"`
}

type ParameterSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required"`
}

type PropertySchema struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ChatOptions configures a single chat call
type ChatOptions struct {
	Model       string           // Overrides the strategy's default model
	Tools       []ToolDescriptor // Tools advertised to the backend
	Temperature *float64
	MaxTokens   *int
	Extra       map[string]any // Backend-specific keys
}

// ModelOr returns the model override, or fallback when none is set
func (o *ChatOptions) ModelOr(fallback string) string {
	if o == nil || o.Model == "" {
		return fallback
	}
	return o.Model
}

// ToolList returns the advertised tools, nil when there are none
func (o *ChatOptions) ToolList() []ToolDescriptor {
	if o == nil || len(o.Tools) == 0 {
		return nil
	}
	return o.Tools
}

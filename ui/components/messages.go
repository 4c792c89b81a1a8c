package components

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/ui/styles"
)

// RenderMessages renders a conversation, one block per turn
func RenderMessages(messages []models.Message) string {
	var b strings.Builder

	userStyle := styles.UserStyle()
	assistantStyle := styles.AssistantStyle()
	toolCallStyle := styles.ToolCallStyle()
	toolResultStyle := styles.ToolResultStyle()
	systemStyle := styles.MutedStyle()
	otherStyle := styles.MutedStyle().Italic(true)

	for _, msg := range messages {
		switch msg.Role {
		case models.RoleUser:
			b.WriteString(userStyle.Render("You: "+msg.Content) + "\n\n")
		case models.RoleAssistant:
			if msg.Content != "" {
				b.WriteString(assistantStyle.Render("Assistant: "+msg.Content) + "\n\n")
			}
			for _, call := range msg.ToolCalls {
				b.WriteString(toolCallStyle.Render(FormatToolCall(call)) + "\n\n")
			}
		case models.RoleTool:
			b.WriteString(toolResultStyle.Render(fmt.Sprintf("Tool %s: %s", msg.ToolName, msg.Content)) + "\n\n")
		case models.RoleSystem:
			b.WriteString(systemStyle.Render("System: "+msg.Content) + "\n\n")
		default:
			b.WriteString(otherStyle.Render(msg.Content) + "\n\n")
		}
	}

	return b.String()
}

// FormatToolCall renders a call as name(args)
func FormatToolCall(call models.ToolCall) string {
	args, err := json.Marshal(call.Function.Arguments)
	if err != nil {
		args = []byte("?")
	}
	return fmt.Sprintf("Call %s(%s)", call.Function.Name, args)
}

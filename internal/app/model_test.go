package app

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/models"
)

func cannedRun(result *core.Result, err error) runFunc {
	return func(ctx context.Context, prompt string) (*core.Result, error) {
		return result, err
	}
}

func TestRunModelShowsResult(t *testing.T) {
	result := &core.Result{
		Final: models.Message{Role: models.RoleAssistant, Content: "Sunny."},
		Conversation: []models.Message{
			models.UserMessage("Weather?"),
			{Role: models.RoleAssistant, Content: "Sunny."},
		},
	}
	m := NewRunModel(context.Background(), "Weather?", cannedRun(result, nil))
	require.Contains(t, m.View(), "You: Weather?")
	require.Contains(t, m.View(), "Thinking")

	msg := m.runCmd()()
	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)

	got, err := m.Result()
	require.NoError(t, err)
	require.Same(t, result, got)
	require.Contains(t, m.View(), "Assistant: Sunny.")
	require.Contains(t, m.View(), "Done")
}

func TestRunModelShowsError(t *testing.T) {
	m := NewRunModel(context.Background(), "Weather?", cannedRun(nil, errors.New("connection refused")))

	m.Update(m.runCmd()())
	_, err := m.Result()
	require.EqualError(t, err, "connection refused")
	require.Contains(t, m.View(), "Error: connection refused")
}

func TestRunModelCancel(t *testing.T) {
	m := NewRunModel(context.Background(), "Weather?", cannedRun(nil, nil))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, err := m.Result()
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, m.ctx.Err(), context.Canceled)
}

func TestRunModelTickAnimatesWhileLoading(t *testing.T) {
	m := NewRunModel(context.Background(), "Weather?", cannedRun(nil, nil))

	_, cmd := m.Update(TickMsg{})
	require.NotNil(t, cmd)
	require.Equal(t, 1, m.loadingDots)

	m.loading = false
	_, cmd = m.Update(TickMsg{})
	require.Nil(t, cmd)
}

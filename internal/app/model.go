package app

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/ui/components"
)

type runFunc func(ctx context.Context, prompt string) (*core.Result, error)

type resultMsg struct {
	result *core.Result
	err    error
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// RunModel shows progress while a single prompt is answered
type RunModel struct {
	ctx         context.Context
	cancel      context.CancelFunc
	prompt      string
	run         runFunc
	status      string
	loading     bool
	loadingDots int
	width       int
	result      *core.Result
	err         error
}

func NewRunModel(ctx context.Context, prompt string, run runFunc) *RunModel {
	ctx, cancel := context.WithCancel(ctx)
	return &RunModel{
		ctx:     ctx,
		cancel:  cancel,
		prompt:  prompt,
		run:     run,
		status:  "Thinking",
		loading: true,
	}
}

func (m *RunModel) runCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := m.run(m.ctx, m.prompt)
		return resultMsg{result: result, err: err}
	}
}

func (m *RunModel) Init() tea.Cmd {
	return tea.Batch(TickCmd(), m.runCmd())
}

func (m *RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.loading = false
		m.result = msg.result
		m.err = msg.err
		if msg.err != nil {
			m.status = "Failed"
		} else {
			m.status = "Done"
		}
		m.cancel()
		return m, tea.Quit
	case TickMsg:
		if !m.loading {
			return m, nil
		}
		m.loadingDots = (m.loadingDots + 1) % 4
		return m, TickCmd()
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancel()
			m.loading = false
			m.status = "Cancelled"
			m.err = context.Canceled
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *RunModel) View() string {
	var b strings.Builder

	if m.result != nil {
		b.WriteString(components.RenderMessages(m.result.Conversation))
		for _, call := range m.result.IgnoredToolCalls {
			b.WriteString(components.RenderStatus("skipped "+components.FormatToolCall(call), false, 0, 0) + "\n")
		}
	} else {
		b.WriteString(components.RenderMessages([]models.Message{models.UserMessage(m.prompt)}))
	}

	if m.err != nil {
		b.WriteString(components.RenderError(m.err) + "\n")
	}
	b.WriteString(components.RenderStatus(m.status, m.loading, m.loadingDots, m.width))
	b.WriteString("\n")

	return b.String()
}

func (m *RunModel) Result() (*core.Result, error) {
	return m.result, m.err
}

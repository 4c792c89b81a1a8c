package app

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/chat"
	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/logging"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/tools"
)

// Application wires one chat facade, the tool table and the catalog
type Application struct {
	profile    config.Profile
	chat       *chat.Chat
	dispatcher *tools.Dispatcher
	catalog    []models.ToolDescriptor
	options    models.ChatOptions
	logger     *logging.Logger
}

// endpoint is implemented by backends that talk to a configurable host
type endpoint interface {
	Host() string
	DefaultModel() string
}

// NewStrategy builds the chat backend described by profile
func NewStrategy(profile config.Profile) (chat.Strategy, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	switch profile.Provider {
	case config.ProviderOpenAI:
		return chat.NewOpenAIStrategy(profile.APIKey, profile.Host, profile.Model), nil
	default:
		return chat.NewOllamaStrategy(profile.Host, profile.Model), nil
	}
}

func NewApplication(profile config.Profile, options models.ChatOptions, logger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	strategy, err := NewStrategy(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat strategy: %w", err)
	}

	dispatcher := tools.NewDispatcher()
	catalog := tools.Catalog()
	if report := tools.CheckCatalog(catalog, dispatcher); !report.OK() {
		logger.Warning("tool catalog out of sync: undispatchable=%v unadvertised=%v",
			report.Undispatchable, report.Unadvertised)
	}

	if ep, ok := strategy.(endpoint); ok {
		logger.Info("using %s backend at %s (model %s)", strategy.Name(), ep.Host(), options.ModelOr(ep.DefaultModel()))
	} else {
		logger.Info("using %s backend", strategy.Name())
	}

	return &Application{
		profile:    profile,
		chat:       chat.New(strategy),
		dispatcher: dispatcher,
		catalog:    catalog,
		options:    options,
		logger:     logger,
	}, nil
}

func (a *Application) Chat() *chat.Chat {
	return a.chat
}

func (a *Application) Catalog() []models.ToolDescriptor {
	return a.catalog
}

func (a *Application) Dispatcher() *tools.Dispatcher {
	return a.dispatcher
}

func (a *Application) orchestrator() *core.Orchestrator {
	return core.NewOrchestrator(a.chat, a.dispatcher, a.catalog,
		core.WithChatOptions(a.options),
		core.WithLogger(a.logger),
	)
}

// Ask runs one prompt to completion
func (a *Application) Ask(ctx context.Context, prompt string) (*core.Result, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, fmt.Errorf("prompt is empty")
	}
	result, err := a.orchestrator().Run(ctx, prompt)
	if err != nil {
		a.logger.Error("run failed on %s backend: %v", a.chat.Strategy().Name(), err)
		return nil, err
	}
	return result, nil
}

// RunInteractive runs one prompt behind a terminal progress view
func (a *Application) RunInteractive(ctx context.Context, prompt string) (*core.Result, error) {
	model := NewRunModel(ctx, prompt, a.Ask)

	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	return final.(*RunModel).Result()
}

package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Rorical/RoriChat/internal/models"
)

const (
	DefaultOllamaHost  = "http://localhost:11434"
	DefaultOllamaModel = "functiongemma"
)

// OllamaStrategy talks to an Ollama server through its /api/chat endpoint
type OllamaStrategy struct {
	host         string
	defaultModel string
	client       *http.Client
}

type OllamaOption func(*OllamaStrategy)

// WithHTTPClient replaces the HTTP client used for requests
func WithHTTPClient(client *http.Client) OllamaOption {
	return func(s *OllamaStrategy) {
		s.client = client
	}
}

// NewOllamaStrategy creates a strategy for host and model. Empty values
// fall back to the local defaults.
func NewOllamaStrategy(host, model string, opts ...OllamaOption) *OllamaStrategy {
	if host == "" {
		host = DefaultOllamaHost
	}
	if model == "" {
		model = DefaultOllamaModel
	}

	s := &OllamaStrategy{
		host:         strings.TrimRight(host, "/"),
		defaultModel: model,
		client:       http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type ollamaChatRequest struct {
	Model    string                  `json:"model"`
	Messages []models.Message        `json:"messages"`
	Tools    []models.ToolDescriptor `json:"tools,omitempty"`
	Stream   bool                    `json:"stream"`
	Options  map[string]any          `json:"options,omitempty"`
}

func (s *OllamaStrategy) Name() string {
	return "ollama"
}

func (s *OllamaStrategy) Host() string {
	return s.host
}

func (s *OllamaStrategy) DefaultModel() string {
	return s.defaultModel
}

func (s *OllamaStrategy) Chat(ctx context.Context, messages []models.Message, opts *models.ChatOptions) (*models.ChatResponse, error) {
	body, err := json.Marshal(ollamaChatRequest{
		Model:    opts.ModelOr(s.defaultModel),
		Messages: messages,
		Tools:    opts.ToolList(),
		Stream:   false,
		Options:  ollamaOptions(opts),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var chatResp models.ChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &chatResp, nil
}

// ollamaOptions maps the generic options onto Ollama's "options" object
func ollamaOptions(opts *models.ChatOptions) map[string]any {
	if opts == nil {
		return nil
	}

	options := make(map[string]any)
	for k, v := range opts.Extra {
		options[k] = v
	}
	if opts.Temperature != nil {
		options["temperature"] = *opts.Temperature
	}
	if opts.MaxTokens != nil {
		options["num_predict"] = *opts.MaxTokens
	}

	if len(options) == 0 {
		return nil
	}
	return options
}

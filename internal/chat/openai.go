package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"

	"github.com/Rorical/RoriChat/internal/models"
)

const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIStrategy talks to any OpenAI-compatible chat completions endpoint
type OpenAIStrategy struct {
	client       *openai.Client
	baseURL      string
	defaultModel string
}

// NewOpenAIStrategy creates a strategy for the given key and endpoint. An
// empty baseURL uses the public OpenAI API.
func NewOpenAIStrategy(apiKey, baseURL, model string) *OpenAIStrategy {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIStrategy{
		client:       openai.NewClientWithConfig(clientConfig),
		baseURL:      clientConfig.BaseURL,
		defaultModel: model,
	}
}

func (s *OpenAIStrategy) Name() string {
	return "openai"
}

func (s *OpenAIStrategy) Host() string {
	return s.baseURL
}

func (s *OpenAIStrategy) DefaultModel() string {
	return s.defaultModel
}

func (s *OpenAIStrategy) Chat(ctx context.Context, messages []models.Message, opts *models.ChatOptions) (*models.ChatResponse, error) {
	openaiMessages, err := toOpenAIMessages(messages)
	if err != nil {
		return nil, err
	}

	req := openai.ChatCompletionRequest{
		Model:    opts.ModelOr(s.defaultModel),
		Messages: openaiMessages,
		Tools:    toOpenAITools(opts.ToolList()),
	}
	if opts != nil {
		if opts.Temperature != nil {
			req.Temperature = float32(*opts.Temperature)
			// go-openai omits a zero temperature; the smallest float32 is sent as 0
			if req.Temperature == 0 {
				req.Temperature = math.SmallestNonzeroFloat32
			}
		}
		if opts.MaxTokens != nil {
			req.MaxTokens = *opts.MaxTokens
		}
		if topP, ok := opts.Extra["top_p"].(float64); ok {
			req.TopP = float32(topP)
		}
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, &DecodeError{Err: errors.New("response has no choices")}
	}

	message, err := fromOpenAIMessage(resp.Choices[0].Message)
	if err != nil {
		return nil, err
	}

	return &models.ChatResponse{
		Model:   resp.Model,
		Message: message,
		Done:    true,
	}, nil
}

// toOpenAIMessages converts the conversation. Tool calls without an ID get
// one, and each following tool message is linked to the next pending ID.
func toOpenAIMessages(messages []models.Message) ([]openai.ChatCompletionMessage, error) {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	var pending []string

	for _, msg := range messages {
		openaiMsg := openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}

		switch msg.Role {
		case models.RoleAssistant:
			for _, call := range msg.ToolCalls {
				args, err := json.Marshal(call.Function.Arguments)
				if err != nil {
					return nil, fmt.Errorf("failed to marshal arguments for %s: %w", call.Function.Name, err)
				}

				id := call.ID
				if id == "" {
					id = "call_" + uuid.NewString()
				}
				pending = append(pending, id)

				openaiMsg.ToolCalls = append(openaiMsg.ToolCalls, openai.ToolCall{
					ID:   id,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      call.Function.Name,
						Arguments: string(args),
					},
				})
			}
		case models.RoleTool:
			if len(pending) > 0 {
				openaiMsg.ToolCallID = pending[0]
				pending = pending[1:]
			}
		}

		result = append(result, openaiMsg)
	}

	return result, nil
}

func toOpenAITools(descriptors []models.ToolDescriptor) []openai.Tool {
	if len(descriptors) == 0 {
		return nil
	}

	openaiTools := make([]openai.Tool, len(descriptors))
	for i, desc := range descriptors {
		openaiTools[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        desc.Function.Name,
				Description: desc.Function.Description,
				Parameters:  desc.Function.Parameters,
			},
		}
	}
	return openaiTools
}

func fromOpenAIMessage(msg openai.ChatCompletionMessage) (models.Message, error) {
	result := models.Message{
		Role:    msg.Role,
		Content: msg.Content,
	}

	for _, call := range msg.ToolCalls {
		args := map[string]any{}
		if call.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
				return models.Message{}, &DecodeError{Err: fmt.Errorf("arguments for %s: %w", call.Function.Name, err)}
			}
		}

		result.ToolCalls = append(result.ToolCalls, models.ToolCall{
			ID: call.ID,
			Function: models.ToolCallFunction{
				Name:      call.Function.Name,
				Arguments: args,
			},
		})
	}

	return result, nil
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &TransportError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &TransportError{StatusCode: reqErr.HTTPStatusCode, Body: string(reqErr.Body)}
	}

	return fmt.Errorf("OpenAI API error: %w", err)
}

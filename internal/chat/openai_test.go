package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/tools"
)

func openAIServer(t *testing.T, status int, reply string, captured *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		if captured != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const toolCallReply = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"model": "gpt-4o-mini",
	"choices": [{
		"index": 0,
		"finish_reason": "tool_calls",
		"message": {
			"role": "assistant",
			"content": "",
			"tool_calls": [{
				"id": "call_abc",
				"type": "function",
				"function": {"name": "get_weather", "arguments": "{\"city\":\"Paris\"}"}
			}]
		}
	}]
}`

func TestOpenAIChatDecodesToolCalls(t *testing.T) {
	var body map[string]any
	srv := openAIServer(t, http.StatusOK, toolCallReply, &body)

	s := NewOpenAIStrategy("test-key", srv.URL+"/v1", "")
	require.Equal(t, "gpt-4o-mini", s.DefaultModel())

	resp, err := s.Chat(context.Background(), []models.Message{models.UserMessage("weather in Paris?")}, &models.ChatOptions{Tools: tools.Catalog()})
	require.NoError(t, err)
	require.Equal(t, "gpt-4o-mini", resp.Model)
	require.Len(t, resp.Message.ToolCalls, 1)

	call := resp.Message.ToolCalls[0]
	require.Equal(t, "call_abc", call.ID)
	require.Equal(t, "get_weather", call.Function.Name)
	require.Equal(t, map[string]any{"city": "Paris"}, call.Function.Arguments)

	require.Equal(t, "gpt-4o-mini", body["model"])
	require.Len(t, body["tools"], 2)
}

func TestOpenAIChatLinksToolMessagesToCalls(t *testing.T) {
	var body map[string]any
	srv := openAIServer(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"Sunny, 22C"}}]}`, &body)

	conversation := []models.Message{
		models.UserMessage("weather in Paris?"),
		{
			Role: models.RoleAssistant,
			ToolCalls: []models.ToolCall{{
				Function: models.ToolCallFunction{Name: "get_weather", Arguments: map[string]any{"city": "Paris"}},
			}},
		},
		models.ToolMessage("get_weather", `{"city":"Paris"}`),
	}

	resp, err := NewOpenAIStrategy("k", srv.URL+"/v1", "gpt-4o").Chat(context.Background(), conversation, nil)
	require.NoError(t, err)
	require.Equal(t, "Sunny, 22C", resp.Message.Content)

	messages := body["messages"].([]any)
	require.Len(t, messages, 3)

	assistant := messages[1].(map[string]any)
	calls := assistant["tool_calls"].([]any)
	id := calls[0].(map[string]any)["id"].(string)
	require.True(t, strings.HasPrefix(id, "call_"))
	require.Equal(t, `{"city":"Paris"}`, calls[0].(map[string]any)["function"].(map[string]any)["arguments"])

	tool := messages[2].(map[string]any)
	require.Equal(t, id, tool["tool_call_id"])
}

func TestOpenAIChatTransportError(t *testing.T) {
	srv := openAIServer(t, http.StatusBadRequest, `{"error":{"message":"model not found","type":"invalid_request_error"}}`, nil)

	_, err := NewOpenAIStrategy("k", srv.URL+"/v1", "missing").Chat(context.Background(), []models.Message{models.UserMessage("x")}, nil)
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	require.Equal(t, http.StatusBadRequest, transportErr.StatusCode)
	require.Equal(t, "model not found", transportErr.Body)
}

func TestOpenAIChatNoChoicesIsDecodeError(t *testing.T) {
	srv := openAIServer(t, http.StatusOK, `{"choices":[]}`, nil)

	_, err := NewOpenAIStrategy("k", srv.URL+"/v1", "").Chat(context.Background(), []models.Message{models.UserMessage("x")}, nil)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
}

func TestOpenAIChatBadArgumentsIsDecodeError(t *testing.T) {
	reply := `{"choices":[{"message":{"role":"assistant","tool_calls":[{"id":"c1","type":"function","function":{"name":"get_time","arguments":"{not json"}}]}}]}`
	srv := openAIServer(t, http.StatusOK, reply, nil)

	_, err := NewOpenAIStrategy("k", srv.URL+"/v1", "").Chat(context.Background(), []models.Message{models.UserMessage("x")}, nil)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	require.Contains(t, err.Error(), "get_time")
}

func TestOpenAIChatNonJSONErrorKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	t.Cleanup(srv.Close)

	_, err := NewOpenAIStrategy("k", srv.URL+"/v1", "").Chat(context.Background(), []models.Message{models.UserMessage("x")}, nil)
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	require.Equal(t, http.StatusBadGateway, transportErr.StatusCode)
	require.Equal(t, "upstream down", transportErr.Body)
}

func TestOpenAIChatSendsZeroTemperature(t *testing.T) {
	var body map[string]any
	srv := openAIServer(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`, &body)

	zero := 0.0
	_, err := NewOpenAIStrategy("k", srv.URL+"/v1", "").Chat(context.Background(), []models.Message{models.UserMessage("x")}, &models.ChatOptions{Temperature: &zero})
	require.NoError(t, err)

	temperature, ok := body["temperature"].(float64)
	require.True(t, ok, "temperature missing from request")
	require.Greater(t, temperature, 0.0)
	require.Less(t, temperature, 1e-30)
}

func TestOpenAIChatOmitsUnsetTemperature(t *testing.T) {
	var body map[string]any
	srv := openAIServer(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`, &body)

	s := NewOpenAIStrategy("k", srv.URL+"/v1", "")
	require.Equal(t, srv.URL+"/v1", s.Host())

	_, err := s.Chat(context.Background(), []models.Message{models.UserMessage("x")}, nil)
	require.NoError(t, err)
	require.NotContains(t, body, "temperature")
}

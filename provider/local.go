package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	ollamaapi "github.com/ollama/ollama/api"

	"github.com/jnun/contactcmd-sub001/model"
)

const (
	defaultOllamaHost = "http://localhost:11434"
	pingTimeout       = 5 * time.Second
)

// LocalProvider runs completions against a local Ollama server, keeping
// inference on-device. It implements the same contract as the remote
// provider, including finish-reason signaling, so the session loop never
// knows which backend it is talking to.
type LocalProvider struct {
	client *ollamaapi.Client
	model  string
	host   string
}

// NewLocalProvider creates a provider bound to an Ollama server. The model
// must be named; the host defaults to the standard local port.
func NewLocalProvider(host, modelName string) (*LocalProvider, error) {
	if host == "" {
		host = defaultOllamaHost
	}
	if modelName == "" {
		return nil, fmt.Errorf("local provider: no model configured")
	}

	parsed, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	return &LocalProvider{
		client: ollamaapi.NewClient(parsed, http.DefaultClient),
		model:  modelName,
		host:   host,
	}, nil
}

// Complete implements model.Provider with a single non-streamed chat call.
// Ollama assigns no tool-call ids, so ids are synthesized here; the session
// only needs them to be unique within the turn.
func (p *LocalProvider) Complete(ctx context.Context, messages []model.ChatMessage, tools []model.Tool) (*model.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	stream := false
	req := &ollamaapi.ChatRequest{
		Model:    p.model,
		Messages: ollamaMessages(messages),
		Tools:    ollamaTools(tools),
		Stream:   &stream,
	}

	var last ollamaapi.ChatResponse
	err := p.client.Chat(ctx, req, func(resp ollamaapi.ChatResponse) error {
		last = resp
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ollama chat failed: %w", err)
	}

	toolCalls := make([]model.ToolCall, 0, len(last.Message.ToolCalls))
	for _, tc := range last.Message.ToolCalls {
		args, err := json.Marshal(tc.Function.Arguments)
		if err != nil {
			return nil, fmt.Errorf("ollama tool call arguments: %w", err)
		}
		toolCalls = append(toolCalls, model.ToolCall{
			ID:   "call_" + uuid.NewString(),
			Type: "function",
			Function: model.FunctionCall{
				Name:      tc.Function.Name,
				Arguments: string(args),
			},
		})
	}

	finishReason := "stop"
	if len(toolCalls) > 0 {
		finishReason = "tool_calls"
	} else if last.DoneReason != "" && last.DoneReason != "stop" {
		finishReason = last.DoneReason
	}

	return &model.Response{
		Content:      last.Message.Content,
		ToolCalls:    toolCalls,
		IsComplete:   finishReason == "stop",
		FinishReason: finishReason,
	}, nil
}

// Name implements model.Provider.
func (p *LocalProvider) Name() string { return "local" }

// Ready implements model.Provider. Reachability of the server is probed
// separately with Ping; readiness stays a local check.
func (p *LocalProvider) Ready() bool { return p.model != "" }

// Ping checks that the Ollama server answers, with a short deadline.
func (p *LocalProvider) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if _, err := p.client.List(ctx); err != nil {
		return fmt.Errorf("ollama ping failed: %w", err)
	}
	return nil
}

// ListModels reports the models installed on the Ollama server, for the
// model registry and setup flows.
func (p *LocalProvider) ListModels(ctx context.Context) ([]ModelInfo, error) {
	resp, err := p.client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	models := make([]ModelInfo, len(resp.Models))
	for i, m := range resp.Models {
		models[i] = ModelInfo{Name: m.Name, Size: m.Size}
	}
	return models, nil
}

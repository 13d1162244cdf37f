package provider

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/jnun/contactcmd-sub001/model"
)

const (
	defaultAnthropicURL   = "https://api.anthropic.com"
	defaultAnthropicModel = string(anthropic.ModelClaudeSonnet4_5_20250929)

	// Required by the Messages API; generous for short command suggestions.
	anthropicMaxTokens = 1024
)

// AnthropicProvider talks to the Anthropic Messages API. It exists mainly
// to prove the session loop is genuinely backend-agnostic: tool_use blocks
// map onto the same ToolCall shape the other providers produce.
type AnthropicProvider struct {
	client *anthropic.Client
	model  anthropic.Model
	apiKey string
}

// NewAnthropicProvider creates an Anthropic provider. The API key is
// required; URL and model fall back to defaults.
func NewAnthropicProvider(baseURL, apiKey, modelName string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic provider: API key not configured")
	}
	if baseURL == "" {
		baseURL = defaultAnthropicURL
	}
	if modelName == "" {
		modelName = defaultAnthropicModel
	}

	client := anthropic.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &AnthropicProvider{
		client: &client,
		model:  anthropic.Model(modelName),
		apiKey: apiKey,
	}, nil
}

// Complete implements model.Provider with one non-streamed Messages call.
func (p *AnthropicProvider) Complete(ctx context.Context, messages []model.ChatMessage, tools []model.Tool) (*model.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	converted, system := anthropicMessages(messages)
	params := anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: anthropicMaxTokens,
		Messages:  converted,
	}
	if len(system) > 0 {
		params.System = system
	}
	if len(tools) > 0 {
		params.Tools = anthropicTools(tools)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	var content string
	var toolCalls []model.ToolCall
	for _, block := range msg.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			content += b.Text
		case anthropic.ToolUseBlock:
			toolCalls = append(toolCalls, model.ToolCall{
				ID:   b.ID,
				Type: "function",
				Function: model.FunctionCall{
					Name:      b.Name,
					Arguments: string(b.Input),
				},
			})
		}
	}

	finishReason := anthropicFinishReason(msg.StopReason)
	return &model.Response{
		Content:      content,
		ToolCalls:    toolCalls,
		IsComplete:   finishReason == "stop",
		FinishReason: finishReason,
	}, nil
}

// anthropicFinishReason maps Anthropic stop reasons onto the
// OpenAI-compatible vocabulary the session loop understands.
func anthropicFinishReason(reason anthropic.StopReason) string {
	switch reason {
	case anthropic.StopReasonEndTurn, anthropic.StopReasonStopSequence:
		return "stop"
	case anthropic.StopReasonToolUse:
		return "tool_calls"
	default:
		return string(reason)
	}
}

// Name implements model.Provider.
func (p *AnthropicProvider) Name() string { return "anthropic" }

// Ready implements model.Provider.
func (p *AnthropicProvider) Ready() bool { return p.apiKey != "" }

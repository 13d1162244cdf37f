package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/jnun/contactcmd-sub001/model"
)

const (
	defaultAPIURL      = "https://api.openai.com"
	defaultAPIEndpoint = "/v1/chat/completions"
	defaultRemoteModel = "gpt-4o-mini"

	// Ceiling for one completion round-trip. Retry policy belongs to the
	// caller; this layer fails fast.
	completionTimeout = 60 * time.Second
)

// ErrNoChoices indicates a well-formed HTTP response whose body carried no
// completion choices. Treated as a protocol error, not a transport error.
var ErrNoChoices = errors.New("no completion choices returned")

// RemoteProvider talks to any OpenAI-compatible chat-completions endpoint
// (OpenAI, Groq, Together, a local vLLM, ...) over HTTPS with bearer auth.
// The underlying SDK client pools connections and carries no per-session
// state, so one RemoteProvider is safe for concurrent use across sessions.
type RemoteProvider struct {
	client openai.Client
	model  string
	apiKey string
}

// NewRemoteProvider creates a remote provider. The API key is required;
// URL, endpoint, and model fall back to OpenAI defaults.
func NewRemoteProvider(apiURL, endpoint, apiKey, modelName string) (*RemoteProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("remote provider: API key not configured")
	}
	if modelName == "" {
		modelName = defaultRemoteModel
	}

	client := openai.NewClient(
		option.WithBaseURL(chatBaseURL(apiURL, endpoint)),
		option.WithAPIKey(apiKey),
	)

	return &RemoteProvider{
		client: client,
		model:  modelName,
		apiKey: apiKey,
	}, nil
}

// chatBaseURL combines the configured api_url and api_endpoint into the
// base URL the SDK expects. The SDK appends "chat/completions" itself, so
// that suffix is stripped when the configured endpoint already names it.
func chatBaseURL(apiURL, endpoint string) string {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	if endpoint == "" {
		endpoint = defaultAPIEndpoint
	}
	full := strings.TrimRight(apiURL, "/") + "/" + strings.Trim(endpoint, "/")
	return strings.TrimSuffix(full, "/chat/completions")
}

// Complete sends the conversation and tool catalog and returns the first
// choice. Multiple choices are never aggregated; non-2xx statuses surface
// as errors carrying the status code and raw body. No retries happen here.
func (p *RemoteProvider) Complete(ctx context.Context, messages []model.ChatMessage, tools []model.Tool) (*model.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: openAIMessages(messages),
	}
	if len(tools) > 0 {
		params.Tools = openAITools(tools)
		params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("auto"),
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return nil, fmt.Errorf("API error %d: %w", apierr.StatusCode, err)
		}
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, ErrNoChoices
	}
	choice := completion.Choices[0]

	toolCalls := make([]model.ToolCall, 0, len(choice.Message.ToolCalls))
	for _, tc := range choice.Message.ToolCalls {
		toolCalls = append(toolCalls, model.ToolCall{
			ID:   tc.ID,
			Type: "function",
			Function: model.FunctionCall{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		})
	}

	return &model.Response{
		Content:      choice.Message.Content,
		ToolCalls:    toolCalls,
		IsComplete:   choice.FinishReason == "stop",
		FinishReason: choice.FinishReason,
	}, nil
}

// Name implements model.Provider.
func (p *RemoteProvider) Name() string { return "remote" }

// Ready implements model.Provider. Credential check only; never a network
// call.
func (p *RemoteProvider) Ready() bool { return p.apiKey != "" }

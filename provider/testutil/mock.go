// Package testutil provides a scriptable mock provider for session and
// integration tests.
package testutil

import (
	"context"
	"encoding/json"

	"github.com/jnun/contactcmd-sub001/model"
)

// MockProvider implements model.Provider by replaying a scripted sequence
// of responses. Each Complete call consumes the next response and records
// the message history it received, so tests can assert both the transcript
// the session built and what went over the wire.
type MockProvider struct {
	// CompleteFunc overrides the scripted behavior entirely when set.
	CompleteFunc func(ctx context.Context, messages []model.ChatMessage, tools []model.Tool) (*model.Response, error)

	// Err, when set, is returned by every Complete call.
	Err error

	// NotReady makes Ready report false.
	NotReady bool

	responses []*model.Response
	calls     [][]model.ChatMessage
	toolSets  [][]model.Tool
}

// NewMockProvider creates a mock that replays the given responses in order.
// When the script runs out it keeps returning the last response, which lets
// loop-bound tests model a provider that never finishes.
func NewMockProvider(responses ...*model.Response) *MockProvider {
	return &MockProvider{responses: responses}
}

// Complete implements model.Provider.
func (m *MockProvider) Complete(ctx context.Context, messages []model.ChatMessage, tools []model.Tool) (*model.Response, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, messages, tools)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	snapshot := make([]model.ChatMessage, len(messages))
	copy(snapshot, messages)
	m.calls = append(m.calls, snapshot)
	m.toolSets = append(m.toolSets, tools)

	if len(m.responses) == 0 {
		return model.TextResponse("mock response"), nil
	}
	resp := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	return resp, nil
}

// Name implements model.Provider.
func (m *MockProvider) Name() string { return "mock" }

// Ready implements model.Provider.
func (m *MockProvider) Ready() bool { return !m.NotReady }

// CallCount reports how many Complete calls were recorded.
func (m *MockProvider) CallCount() int { return len(m.calls) }

// Messages returns the message history received by call i.
func (m *MockProvider) Messages(i int) []model.ChatMessage { return m.calls[i] }

// Tools returns the tool catalog received by call i.
func (m *MockProvider) Tools(i int) []model.Tool { return m.toolSets[i] }

// ToolCallResponse builds a single-tool-call response with the arguments
// marshaled from a map, saving tests the JSON plumbing.
func ToolCallResponse(id, name string, args map[string]any) *model.Response {
	encoded, err := json.Marshal(args)
	if err != nil {
		panic(err)
	}
	return model.ToolCallResponse(model.ToolCall{
		ID:   id,
		Type: "function",
		Function: model.FunctionCall{
			Name:      name,
			Arguments: string(encoded),
		},
	})
}

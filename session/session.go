// Package session runs the bounded tool-calling conversation loop.
//
// A session owns an append-only message history, one provider, and the
// command-suggestion executor. The firewall property of the tools package
// extends here: nothing a session holds can reach persisted contact data,
// so the model only ever sees what the user typed, the prior turns, and
// the tool schemas.
package session

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jnun/contactcmd-sub001/model"
	"github.com/jnun/contactcmd-sub001/tools"
)

//go:embed instructions.md
var systemPrompt string

// DefaultMaxIterations bounds the tool-call loop when the caller does not
// choose a limit. A misbehaving provider issuing endless tool calls stops
// here instead of looping forever.
const DefaultMaxIterations = 8

var (
	// ErrLoopExceeded is returned when the provider keeps requesting tools
	// past the iteration bound without ever finishing.
	ErrLoopExceeded = errors.New("tool-call loop exceeded")
	// ErrDuplicateToolCall is returned when one provider turn carries two
	// tool calls with the same id. Ids link tool results back to calls, so
	// a duplicate would silently corrupt the transcript.
	ErrDuplicateToolCall = errors.New("duplicate tool call id in provider response")
)

// Result is what a successful chat turn yields: the assistant's final
// text, every suggested command in emission order, and the transcript.
type Result struct {
	Reply    string
	Commands []string
	// Suggestions pairs each command with its explanation, in the same
	// order as Commands.
	Suggestions []tools.Result
	// Transcript is the conversation so far, system prompt excluded.
	Transcript []model.ChatMessage
}

// Session manages one conversation. Not safe for concurrent use; each
// caller owns its session exclusively.
type Session struct {
	messages      []model.ChatMessage
	provider      model.Provider
	executor      tools.Executor
	catalog       []model.Tool
	maxIterations int
}

// New creates a session bound to a provider. maxIterations <= 0 selects
// DefaultMaxIterations.
func New(provider model.Provider, maxIterations int) *Session {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &Session{
		messages:      []model.ChatMessage{model.SystemMessage(systemPrompt)},
		provider:      provider,
		executor:      tools.NewExecutor(),
		catalog:       tools.Catalog(),
		maxIterations: maxIterations,
	}
}

// Chat appends the user's text and runs the completion loop until the
// provider finishes, the iteration bound trips, or a hard error occurs.
//
// Tool-execution failures never abort the turn: they are encoded into the
// tool result fed back to the provider, which may correct itself on the
// next round. Transport and protocol errors do abort; the accumulated
// transcript stays readable through Transcript.
func (s *Session) Chat(ctx context.Context, userText string) (*Result, error) {
	s.messages = append(s.messages, model.UserMessage(userText))

	var (
		commands    []string
		suggestions []tools.Result
	)
	for i := 0; i < s.maxIterations; i++ {
		resp, err := s.provider.Complete(ctx, s.messages, s.catalog)
		if err != nil {
			return nil, fmt.Errorf("completion failed: %w", err)
		}

		if len(resp.ToolCalls) == 0 {
			if resp.IsComplete {
				s.messages = append(s.messages, model.AssistantMessage(resp.Content))
				return &Result{
					Reply:       resp.Content,
					Commands:    commands,
					Suggestions: suggestions,
					Transcript:  s.Transcript(),
				}, nil
			}
			// An assistant turn carries content or tool calls; an
			// incomplete response with neither adds no turn.
			if resp.Content != "" {
				s.messages = append(s.messages, model.AssistantMessage(resp.Content))
			}
			continue
		}

		// Reject the whole turn before appending anything, so a partial
		// transcript never contains an assistant turn with unmatched calls.
		if id, dup := duplicateID(resp.ToolCalls); dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateToolCall, id)
		}

		s.messages = append(s.messages, model.AssistantToolCalls(resp.ToolCalls...))
		for _, call := range resp.ToolCalls {
			content, result := s.runTool(call)
			s.messages = append(s.messages, model.ToolResultMessage(call.ID, content))
			if result != nil {
				commands = append(commands, result.Command)
				suggestions = append(suggestions, *result)
			}
		}
	}

	return nil, fmt.Errorf("%w after %d iterations", ErrLoopExceeded, s.maxIterations)
}

// runTool executes one tool call and renders the content of the tool turn.
// Failures become explanatory text for the model instead of errors; the
// returned result is nil when the call failed.
func (s *Session) runTool(call model.ToolCall) (string, *tools.Result) {
	args := map[string]any{}
	raw := call.Function.Arguments
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return fmt.Sprintf("Error: arguments for %s are not valid JSON. Call the tool again with a JSON object.", call.Function.Name), nil
		}
	}

	result, err := s.executor.Execute(call.Function.Name, args)
	if err != nil {
		return fmt.Sprintf("Error: %v. Correct the call and try once more.", err), nil
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("Error: %v", err), nil
	}
	guidance := fmt.Sprintf("%s\nCommand queued: %s. STOP - do not call more tools. Respond to the user with a brief explanation.", encoded, result.Command)
	return guidance, result
}

// duplicateID reports the first tool-call id that appears twice in a turn.
func duplicateID(calls []model.ToolCall) (string, bool) {
	seen := make(map[string]bool, len(calls))
	for _, c := range calls {
		if seen[c.ID] {
			return c.ID, true
		}
		seen[c.ID] = true
	}
	return "", false
}

// Transcript returns the conversation without the system prompt.
func (s *Session) Transcript() []model.ChatMessage {
	out := make([]model.ChatMessage, len(s.messages)-1)
	copy(out, s.messages[1:])
	return out
}

// ClearHistory drops every turn except the system prompt.
func (s *Session) ClearHistory() {
	s.messages = s.messages[:1]
}

// MessageCount reports the number of turns, system prompt excluded.
func (s *Session) MessageCount() int {
	return len(s.messages) - 1
}

// ProviderName reports which backend the session talks to, for display.
func (s *Session) ProviderName() string {
	return s.provider.Name()
}

// Ready reports whether the underlying provider has what it needs.
func (s *Session) Ready() bool {
	return s.provider.Ready()
}

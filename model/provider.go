// Package model defines the provider-agnostic protocol types shared by the
// rest of the program: conversation messages, tool calls, tool definitions,
// completion responses, and the Provider interface itself.
//
// The Provider interface lives here (not in the provider package) so that
// provider implementations can import model without creating an import
// cycle, and so the session loop depends only on this package.
//
// None of these types can carry contact data. A provider sees the
// conversation history and the tool catalog, nothing else.
package model

import "context"

// Provider abstracts a completion backend (remote OpenAI-compatible API,
// local Ollama server, Anthropic API). The session loop is written entirely
// against this interface; backends are interchangeable.
type Provider interface {
	// Complete sends the conversation and the tool catalog to the backend
	// and returns a single completion. The call blocks for the network
	// round-trip or local inference; cancel via ctx.
	Complete(ctx context.Context, messages []ChatMessage, tools []Tool) (*Response, error)

	// Name identifies the backend for display purposes.
	Name() string

	// Ready reports whether the provider has what it needs to attempt a
	// completion (credential present, model selected). It is a cheap local
	// check and never performs a network call.
	Ready() bool
}

// Response is the outcome of one Complete call.
type Response struct {
	// Content is the assistant's text, if any.
	Content string
	// ToolCalls are the tool invocations the model requested, in the order
	// the backend returned them. Order is significant.
	ToolCalls []ToolCall
	// IsComplete is true iff the backend signaled a final answer
	// (finish reason "stop").
	IsComplete bool
	// FinishReason is the backend's raw completion signal.
	FinishReason string
}

// TextResponse builds a final text response.
func TextResponse(content string) *Response {
	return &Response{Content: content, IsComplete: true, FinishReason: "stop"}
}

// ToolCallResponse builds a response that requests tool invocations.
func ToolCallResponse(calls ...ToolCall) *Response {
	return &Response{ToolCalls: calls, FinishReason: "tool_calls"}
}

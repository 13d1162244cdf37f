package provider

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	ollamaapi "github.com/ollama/ollama/api"
	"github.com/openai/openai-go/v3"

	"github.com/jnun/contactcmd-sub001/model"
)

// This file translates the catalog and the conversation between our
// provider-agnostic types and each backend's own types. All backend type
// knowledge stays here; the rest of the program only sees model types.

// schemaProperties builds the JSON-schema "properties" object shared by the
// OpenAI and Anthropic function descriptors.
func schemaProperties(t model.Tool) map[string]any {
	properties := make(map[string]any, len(t.Parameters))
	for _, p := range t.Parameters {
		prop := map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		properties[p.Name] = prop
	}
	return properties
}

// openAITools converts the catalog to OpenAI function-tool descriptors.
// The required list always carries exactly the declared required parameters,
// even when empty, to keep the wire shape stable.
func openAITools(catalog []model.Tool) []openai.ChatCompletionToolUnionParam {
	if len(catalog) == 0 {
		return nil
	}

	result := make([]openai.ChatCompletionToolUnionParam, len(catalog))
	for i, tool := range catalog {
		params := openai.FunctionParameters{
			"type":       "object",
			"properties": schemaProperties(tool),
			"required":   tool.RequiredNames(),
		}
		result[i] = openai.ChatCompletionFunctionTool(
			openai.FunctionDefinitionParam{
				Name:        tool.Name,
				Description: openai.String(tool.Description),
				Parameters:  params,
			},
		)
	}
	return result
}

// openAIMessages converts the conversation to the OpenAI wire format,
// preserving assistant tool calls and tool-result linkage.
func openAIMessages(messages []model.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case model.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))
		case model.RoleUser:
			result = append(result, openai.UserMessage(msg.Content))
		case model.RoleAssistant:
			if len(msg.ToolCalls) == 0 {
				result = append(result, openai.AssistantMessage(msg.Content))
				continue
			}
			assistant := openai.ChatCompletionAssistantMessageParam{
				ToolCalls: make([]openai.ChatCompletionMessageToolCallUnionParam, len(msg.ToolCalls)),
			}
			for i, tc := range msg.ToolCalls {
				assistant.ToolCalls[i] = openai.ChatCompletionMessageToolCallUnionParam{
					OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
						ID: tc.ID,
						Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
							Name:      tc.Function.Name,
							Arguments: tc.Function.Arguments,
						},
					},
				}
			}
			result = append(result, openai.ChatCompletionMessageParamUnion{OfAssistant: &assistant})
		case model.RoleTool:
			result = append(result, openai.ToolMessage(msg.Content, msg.ToolCallID))
		default:
			result = append(result, openai.UserMessage(msg.Content))
		}
	}
	return result
}

// ollamaTools converts the catalog to Ollama tool descriptors.
func ollamaTools(catalog []model.Tool) []ollamaapi.Tool {
	if len(catalog) == 0 {
		return nil
	}

	result := make([]ollamaapi.Tool, len(catalog))
	for i, tool := range catalog {
		properties := make(map[string]ollamaapi.ToolProperty, len(tool.Parameters))
		for _, p := range tool.Parameters {
			prop := ollamaapi.ToolProperty{
				Type:        ollamaapi.PropertyType{p.Type},
				Description: p.Description,
			}
			if len(p.Enum) > 0 {
				enum := make([]any, len(p.Enum))
				for j, v := range p.Enum {
					enum[j] = v
				}
				prop.Enum = enum
			}
			properties[p.Name] = prop
		}

		result[i] = ollamaapi.Tool{
			Type: "function",
			Function: ollamaapi.ToolFunction{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters: ollamaapi.ToolFunctionParameters{
					Type:       "object",
					Required:   tool.RequiredNames(),
					Properties: properties,
				},
			},
		}
	}
	return result
}

// ollamaMessages converts the conversation to Ollama chat messages.
// Ollama carries tool-call arguments as a decoded object, not a JSON string,
// and assigns no call ids.
func ollamaMessages(messages []model.ChatMessage) []ollamaapi.Message {
	result := make([]ollamaapi.Message, 0, len(messages))
	for _, msg := range messages {
		converted := ollamaapi.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
		for _, tc := range msg.ToolCalls {
			var args map[string]any
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				args = map[string]any{}
			}
			converted.ToolCalls = append(converted.ToolCalls, ollamaapi.ToolCall{
				Function: ollamaapi.ToolCallFunction{
					Name:      tc.Function.Name,
					Arguments: args,
				},
			})
		}
		result = append(result, converted)
	}
	return result
}

// anthropicTools converts the catalog to Anthropic tool descriptors.
func anthropicTools(catalog []model.Tool) []anthropic.ToolUnionParam {
	if len(catalog) == 0 {
		return nil
	}

	result := make([]anthropic.ToolUnionParam, len(catalog))
	for i, tool := range catalog {
		schema := anthropic.ToolInputSchemaParam{
			Properties: schemaProperties(tool),
			Required:   tool.RequiredNames(),
		}
		result[i] = anthropic.ToolUnionParamOfTool(schema, tool.Name)
		if tool.Description != "" {
			result[i].OfTool.Description = anthropic.String(tool.Description)
		}
	}
	return result
}

// anthropicMessages converts the conversation to Anthropic message params.
// System turns move to the separate system parameter; assistant tool calls
// become tool_use blocks; tool results become tool_result user blocks.
func anthropicMessages(messages []model.ChatMessage) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var system []anthropic.TextBlockParam
	result := make([]anthropic.MessageParam, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case model.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: msg.Content})
		case model.RoleUser:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		case model.RoleAssistant:
			var blocks []anthropic.ContentBlockParamUnion
			if msg.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(msg.Content))
			}
			for _, tc := range msg.ToolCalls {
				var input any
				if err := json.Unmarshal([]byte(tc.Function.Arguments), &input); err != nil {
					input = map[string]any{}
				}
				blocks = append(blocks, anthropic.NewToolUseBlock(tc.ID, input, tc.Function.Name))
			}
			if len(blocks) > 0 {
				result = append(result, anthropic.NewAssistantMessage(blocks...))
			}
		case model.RoleTool:
			result = append(result, anthropic.NewUserMessage(
				anthropic.NewToolResultBlock(msg.ToolCallID, msg.Content, false),
			))
		}
	}
	return result, system
}

package tools

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sahilm/fuzzy"
)

var (
	// ErrUnknownTool is returned when a tool name matches no catalog entry.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrInvalidArguments is returned when a required parameter is missing
	// or has the wrong type.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// ToolError wraps an executor failure with the tool name it occurred in.
type ToolError struct {
	Tool string
	Err  error
	Hint string
}

func (e *ToolError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %v (%s)", e.Tool, e.Err, e.Hint)
	}
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// Result is the only thing a tool call can ever yield: a CLI command string
// and a human explanation. It carries no data fields by construction.
type Result struct {
	Command     string `json:"command"`
	Explanation string `json:"explanation"`
}

// Executor turns tool calls into command suggestions. It is stateless and
// deliberately constructed with nothing: no data store, no client, no
// session. That absence is the firewall guarantee.
type Executor struct{}

// NewExecutor returns the command-suggestion executor.
func NewExecutor() Executor {
	return Executor{}
}

// Execute dispatches a tool call by name against the fixed catalog.
// Unrecognized argument keys are ignored for forward compatibility.
func (Executor) Execute(name string, args map[string]any) (*Result, error) {
	switch name {
	case "suggest_search":
		return suggestSearch(args)
	case "suggest_list":
		return &Result{Command: "/list", Explanation: "List all contacts"}, nil
	case "suggest_show":
		return suggestShow(args)
	case "suggest_messages":
		return suggestMessages(args)
	case "suggest_recent":
		return suggestRecent(args)
	case "suggest_browse":
		return &Result{Command: "/browse", Explanation: "Browse previous results in TUI"}, nil
	default:
		return nil, &ToolError{Tool: name, Err: ErrUnknownTool, Hint: closestTool(name)}
	}
}

// closestTool ranks the unknown name against the catalog for a
// "did you mean" hint in the error fed back to the model.
func closestTool(name string) string {
	names := make([]string, 0, 6)
	for _, t := range Catalog() {
		names = append(names, t.Name)
	}
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf("did you mean %q", matches[0].Str)
}

// suggestSearch builds a /search command. Free-text query terms lead,
// then the structured fields as flags in a fixed order so the same
// arguments always template to the same command.
func suggestSearch(args map[string]any) (*Result, error) {
	parts := []string{"/search"}
	if query := stringArg(args, "query"); query != "" {
		parts = append(parts, query)
	}

	// Models sometimes bake the preposition into the value.
	location := strings.TrimSpace(strings.TrimPrefix(stringArg(args, "location"), "in "))
	organization := strings.TrimSpace(strings.TrimPrefix(stringArg(args, "organization"), "at "))

	if name := stringArg(args, "name"); name != "" {
		parts = append(parts, "--name", name)
	}
	if location != "" {
		parts = append(parts, "--location", location)
	}
	if organization != "" {
		parts = append(parts, "--organization", organization)
	}

	command := strings.Join(parts, " ")
	if command == "/search" {
		return &Result{Command: command, Explanation: "Search for contacts"}, nil
	}
	return &Result{
		Command:     command,
		Explanation: "Search for: " + strings.TrimPrefix(command, "/search "),
	}, nil
}

func suggestShow(args map[string]any) (*Result, error) {
	name := stringArg(args, "name")
	if name == "" {
		return nil, &ToolError{Tool: "suggest_show", Err: ErrInvalidArguments, Hint: "name is required"}
	}
	return &Result{
		Command:     "/search " + name,
		Explanation: fmt.Sprintf("Search for %s then use /browse to view details", name),
	}, nil
}

func suggestMessages(args map[string]any) (*Result, error) {
	contact := stringArg(args, "contact")
	if contact == "" {
		return nil, &ToolError{Tool: "suggest_messages", Err: ErrInvalidArguments, Hint: "contact is required"}
	}
	return &Result{
		Command:     "/messages " + contact,
		Explanation: "View messages with " + contact,
	}, nil
}

func suggestRecent(args map[string]any) (*Result, error) {
	days, ok, err := intArg(args, "days")
	if err != nil {
		return nil, &ToolError{Tool: "suggest_recent", Err: ErrInvalidArguments, Hint: "days must be an integer"}
	}
	if !ok || days == 7 {
		return &Result{Command: "/recent", Explanation: "View recently messaged contacts"}, nil
	}
	return &Result{
		Command:     fmt.Sprintf("/recent %d", days),
		Explanation: fmt.Sprintf("View contacts messaged in last %d days", days),
	}, nil
}

// stringArg extracts a trimmed string argument, treating any other type as
// absent. Tolerance here keeps one sloppy call from killing a conversation.
func stringArg(args map[string]any, key string) string {
	v, ok := args[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// intArg extracts an integer argument. JSON numbers arrive as float64;
// a fractional value is rejected rather than truncated.
func intArg(args map[string]any, key string) (int, bool, error) {
	v, ok := args[key]
	if !ok {
		return 0, false, nil
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false, fmt.Errorf("%s: expected integer, got %v", key, n)
		}
		return int(n), true, nil
	case int:
		return n, true, nil
	default:
		return 0, false, fmt.Errorf("%s: expected integer, got %T", key, v)
	}
}

package tools

import (
	"errors"
	"strings"
	"testing"
)

func TestExecuteSearch(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		command string
	}{
		{
			"name and location",
			map[string]any{"name": "john", "location": "texas"},
			"/search --name john --location texas",
		},
		{
			"query only",
			map[string]any{"query": "plumber"},
			"/search plumber",
		},
		{
			"location only",
			map[string]any{"location": "miami"},
			"/search --location miami",
		},
		{
			"organization only",
			map[string]any{"organization": "google"},
			"/search --organization google",
		},
		{
			"query name location organization",
			map[string]any{"query": "sales lead", "name": "ana", "location": "austin", "organization": "att"},
			"/search sales lead --name ana --location austin --organization att",
		},
		{
			"strips accidental in prefix",
			map[string]any{"location": "in miami"},
			"/search --location miami",
		},
		{
			"strips accidental at prefix",
			map[string]any{"organization": "at google"},
			"/search --organization google",
		},
		{
			"no arguments",
			map[string]any{},
			"/search",
		},
		{
			"blank values ignored",
			map[string]any{"name": "  ", "query": ""},
			"/search",
		},
	}

	exec := NewExecutor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := exec.Execute("suggest_search", tt.args)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if result.Command != tt.command {
				t.Errorf("command = %q, want %q", result.Command, tt.command)
			}
			if result.Explanation == "" {
				t.Error("explanation is empty")
			}
		})
	}
}

// suggest_list takes no parameters; extraneous keys must be ignored.
func TestExecuteListIgnoresExtraKeys(t *testing.T) {
	exec := NewExecutor()
	for _, args := range []map[string]any{
		{},
		{"bogus": "value", "count": 42.0},
	} {
		result, err := exec.Execute("suggest_list", args)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Command != "/list" {
			t.Errorf("command = %q, want /list", result.Command)
		}
	}
}

func TestExecuteShow(t *testing.T) {
	exec := NewExecutor()

	result, err := exec.Execute("suggest_show", map[string]any{"name": "maria"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Command != "/search maria" {
		t.Errorf("command = %q, want /search maria", result.Command)
	}

	// Missing required parameter.
	_, err = exec.Execute("suggest_show", map[string]any{})
	if !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("missing name: error = %v, want ErrInvalidArguments", err)
	}

	// Wrong type counts as missing a valid required value.
	_, err = exec.Execute("suggest_show", map[string]any{"name": 12.0})
	if !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("non-string name: error = %v, want ErrInvalidArguments", err)
	}
}

func TestExecuteMessages(t *testing.T) {
	exec := NewExecutor()

	result, err := exec.Execute("suggest_messages", map[string]any{"contact": "dave"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Command != "/messages dave" {
		t.Errorf("command = %q, want /messages dave", result.Command)
	}

	if _, err := exec.Execute("suggest_messages", map[string]any{}); !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("missing contact: error = %v, want ErrInvalidArguments", err)
	}
}

func TestExecuteRecent(t *testing.T) {
	exec := NewExecutor()

	tests := []struct {
		name    string
		args    map[string]any
		command string
	}{
		{"default days", map[string]any{}, "/recent"},
		{"explicit default", map[string]any{"days": 7.0}, "/recent"},
		{"custom days", map[string]any{"days": 30.0}, "/recent 30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := exec.Execute("suggest_recent", tt.args)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if result.Command != tt.command {
				t.Errorf("command = %q, want %q", result.Command, tt.command)
			}
		})
	}

	if _, err := exec.Execute("suggest_recent", map[string]any{"days": "thirty"}); !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("string days: error = %v, want ErrInvalidArguments", err)
	}

	// A fractional day count is rejected, not truncated.
	if _, err := exec.Execute("suggest_recent", map[string]any{"days": 2.5}); !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("fractional days: error = %v, want ErrInvalidArguments", err)
	}
}

func TestExecuteUnknownTool(t *testing.T) {
	exec := NewExecutor()

	_, err := exec.Execute("bogus_tool", map[string]any{})
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("error = %v, want ErrUnknownTool", err)
	}

	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("error is not a *ToolError: %v", err)
	}
	if toolErr.Tool != "bogus_tool" {
		t.Errorf("tool = %q, want bogus_tool", toolErr.Tool)
	}
}

// A near-miss name should produce a usable hint for the model.
func TestUnknownToolHint(t *testing.T) {
	_, err := NewExecutor().Execute("suggest_serch", map[string]any{})
	if err == nil || !strings.Contains(err.Error(), "suggest_search") {
		t.Errorf("error %v does not hint at suggest_search", err)
	}
}

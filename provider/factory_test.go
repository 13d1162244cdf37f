package provider

import (
	"errors"
	"testing"
)

func TestNewProviderDispatch(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantName string
		wantErr  bool
	}{
		{
			name:     "remote",
			cfg:      Config{Type: TypeRemote, APIKey: "sk-test"},
			wantName: "remote",
		},
		{
			name:     "local",
			cfg:      Config{Type: TypeLocal, LocalModel: "qwen3:4b"},
			wantName: "local",
		},
		{
			name:     "anthropic",
			cfg:      Config{Type: TypeAnthropic, APIKey: "sk-ant-test"},
			wantName: "anthropic",
		},
		{
			name:    "remote without key",
			cfg:     Config{Type: TypeRemote},
			wantErr: true,
		},
		{
			name:    "local without model",
			cfg:     Config{Type: TypeLocal},
			wantErr: true,
		},
		{
			name:    "unknown type",
			cfg:     Config{Type: "carrier-pigeon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider() error = %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
			if !p.Ready() {
				t.Errorf("%s provider not ready after construction", tt.wantName)
			}
		})
	}
}

func TestNewProviderNotConfigured(t *testing.T) {
	for _, typ := range []Type{TypeNone, ""} {
		if _, err := NewProvider(Config{Type: typ}); !errors.Is(err, ErrNotConfigured) {
			t.Errorf("Type %q: error = %v, want ErrNotConfigured", typ, err)
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	registry := NewLocalModelRegistry()
	tests := []struct {
		id     string
		wantID string
		found  bool
	}{
		{"qwen3-4b", "qwen3-4b", true},
		{"qwen3_4b", "qwen3-4b", true},
		{"llama3.1-8b", "llama31-8b", true},
		{"Llama31-8B", "llama31-8b", true},
		{"gpt-4o", "", false},
	}
	for _, tt := range tests {
		m, ok := registry.Lookup(tt.id)
		if ok != tt.found {
			t.Errorf("Lookup(%q) found = %v, want %v", tt.id, ok, tt.found)
			continue
		}
		if ok && m.ID != tt.wantID {
			t.Errorf("Lookup(%q) = %q, want %q", tt.id, m.ID, tt.wantID)
		}
	}
}

func TestRegistryModels(t *testing.T) {
	registry := NewLocalModelRegistry()
	models := registry.Models()
	if len(models) == 0 {
		t.Fatal("registry is empty")
	}
	if models[0].ID != DefaultLocalModelID {
		t.Errorf("first entry = %q, want default %q", models[0].ID, DefaultLocalModelID)
	}
	if registry.Default().ID != DefaultLocalModelID {
		t.Errorf("Default() = %q, want %q", registry.Default().ID, DefaultLocalModelID)
	}
	for _, m := range models {
		if m.OllamaName == "" || m.DisplayName == "" || m.MinRAMGB == 0 {
			t.Errorf("incomplete registry entry: %+v", m)
		}
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jnun/contactcmd-sub001/provider"
)

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CONTACTCMD_AI_PROVIDER", "remote")
	t.Setenv("CONTACTCMD_AI_API_KEY", "sk-env")
	t.Setenv("CONTACTCMD_AI_MODEL", "gpt-4o")
	t.Setenv("CONTACTCMD_AI_MAX_ITERATIONS", "12")

	cfg := &Config{ProviderType: "local", APIKey: "sk-file"}
	cfg.applyEnvOverrides()

	if cfg.ProviderType != "remote" {
		t.Errorf("ProviderType = %q, want remote", cfg.ProviderType)
	}
	if cfg.APIKey != "sk-env" {
		t.Errorf("APIKey = %q, want the env value", cfg.APIKey)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", cfg.Model)
	}
	if cfg.MaxIterations != 12 {
		t.Errorf("MaxIterations = %d, want 12", cfg.MaxIterations)
	}
}

func TestEnvOverridesIgnoreBadIterations(t *testing.T) {
	t.Setenv("CONTACTCMD_AI_MAX_ITERATIONS", "many")

	cfg := &Config{MaxIterations: 8}
	cfg.applyEnvOverrides()
	if cfg.MaxIterations != 8 {
		t.Errorf("MaxIterations = %d, want 8 untouched", cfg.MaxIterations)
	}
}

func TestIsConfigured(t *testing.T) {
	tests := []struct {
		providerType string
		want         bool
	}{
		{"", false},
		{"none", false},
		{"remote", true},
		{"local", true},
		{"anthropic", true},
	}
	for _, tt := range tests {
		cfg := &Config{ProviderType: tt.providerType}
		if got := cfg.IsConfigured(); got != tt.want {
			t.Errorf("IsConfigured() with %q = %v, want %v", tt.providerType, got, tt.want)
		}
	}
}

func TestProviderConfigResolvesLocalModel(t *testing.T) {
	registry := provider.NewLocalModelRegistry()

	cfg := &Config{ProviderType: "local", LocalModel: "qwen3-4b"}
	pc := cfg.ProviderConfig(registry)
	if pc.Type != provider.TypeLocal {
		t.Errorf("Type = %q, want local", pc.Type)
	}
	if pc.LocalModel != "qwen3:4b" {
		t.Errorf("LocalModel = %q, want Ollama tag qwen3:4b", pc.LocalModel)
	}

	// Unknown ids pass through as raw Ollama tags.
	cfg = &Config{ProviderType: "local", LocalModel: "mistral:7b"}
	if got := cfg.ProviderConfig(registry).LocalModel; got != "mistral:7b" {
		t.Errorf("LocalModel = %q, want raw tag mistral:7b", got)
	}

	// Empty selection uses the registry default.
	cfg = &Config{ProviderType: "local"}
	if got := cfg.ProviderConfig(registry).LocalModel; got != registry.Default().OllamaName {
		t.Errorf("LocalModel = %q, want default %q", got, registry.Default().OllamaName)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	original := &Config{
		ProviderType:  "remote",
		APIKey:        "sk-test",
		Model:         "gpt-4o-mini",
		MaxIterations: 10,
	}
	if err := original.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	path := GetSettingsFilePath()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("settings file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("settings perms = %o, want 0600", perm)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.ProviderType != "remote" || loaded.APIKey != "sk-test" || loaded.MaxIterations != 10 {
		t.Errorf("loaded = %+v, want the saved values", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.IsConfigured() {
		t.Error("empty config reports configured")
	}
}

func TestExpandPath(t *testing.T) {
	home := os.Getenv("HOME")
	if home == "" {
		t.Skip("no HOME in environment")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

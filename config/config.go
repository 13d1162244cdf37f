// Package config loads and saves the AI settings file and the debug log.
// It holds credentials and provider selection only; the session layer gets
// a finished provider configuration and never touches the file itself.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/jnun/contactcmd-sub001/provider"
)

// Config is the persisted AI configuration. Zero value means "not set up":
// chat surfaces a setup hint instead of a provider error.
type Config struct {
	ProviderType string `toml:"provider_type"`

	APIURL      string `toml:"api_url,omitempty"`
	APIEndpoint string `toml:"api_endpoint,omitempty"`
	APIKey      string `toml:"api_key,omitempty"`
	Model       string `toml:"model,omitempty"`

	OllamaHost string `toml:"ollama_host,omitempty"`
	LocalModel string `toml:"local_model,omitempty"`

	MaxIterations int `toml:"max_iterations,omitempty"`
}

var Debug = false
var DebugLog *log.Logger

// Load reads the settings file and applies environment overrides. A
// missing file is not an error; the zero config comes back and env vars
// alone can make it usable.
func Load() (*Config, error) {
	cfg := &Config{}

	path := GetSettingsFilePath()
	if FileExists(path) {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the settings file with owner-only permissions; it carries an
// API key.
func (c *Config) Save() error {
	path := GetSettingsFilePath()
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CONTACTCMD_AI_PROVIDER"); v != "" {
		c.ProviderType = v
	}
	if v := os.Getenv("CONTACTCMD_AI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("CONTACTCMD_AI_API_URL"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("CONTACTCMD_AI_API_ENDPOINT"); v != "" {
		c.APIEndpoint = v
	}
	if v := os.Getenv("CONTACTCMD_AI_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("CONTACTCMD_AI_OLLAMA_HOST"); v != "" {
		c.OllamaHost = v
	}
	if v := os.Getenv("CONTACTCMD_AI_LOCAL_MODEL"); v != "" {
		c.LocalModel = v
	}
	if v := os.Getenv("CONTACTCMD_AI_MAX_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxIterations = n
		}
	}
}

// IsConfigured reports whether a provider has been chosen.
func (c *Config) IsConfigured() bool {
	return c.ProviderType != "" && c.ProviderType != string(provider.TypeNone)
}

// ProviderConfig maps the settings onto the provider factory's input. The
// registry resolves local model ids to their Ollama tags.
func (c *Config) ProviderConfig(registry *provider.Registry) provider.Config {
	pc := provider.Config{
		Type:        provider.Type(c.ProviderType),
		APIURL:      c.APIURL,
		APIEndpoint: c.APIEndpoint,
		APIKey:      c.APIKey,
		Model:       c.Model,
		OllamaHost:  c.OllamaHost,
	}

	if pc.Type == provider.TypeLocal {
		switch id := c.LocalModel; {
		case id == "":
			pc.LocalModel = registry.Default().OllamaName
		default:
			if m, ok := registry.Lookup(id); ok {
				pc.LocalModel = m.OllamaName
			} else {
				// Not in the registry; pass through as a raw Ollama tag.
				pc.LocalModel = id
			}
		}
	}
	return pc
}

func CheckDebug() bool {
	debug := os.Getenv("CONTACTCMD_DEBUG")
	return debug == "true" || debug == "1"
}

// InitDebugLog opens the debug log in the data directory when
// CONTACTCMD_DEBUG is set. Restricted permissions; transcripts may land
// in here.
func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (CONTACTCMD_DEBUG=%s) ===", os.Getenv("CONTACTCMD_DEBUG"))
}

// Debugf writes to the debug log when enabled.
func Debugf(format string, args ...any) {
	if Debug && DebugLog != nil {
		DebugLog.Printf(format, args...)
	}
}

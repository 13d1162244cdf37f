package provider

import (
	"errors"
	"fmt"

	"github.com/jnun/contactcmd-sub001/model"
)

// Type selects which backend a Config describes.
type Type string

const (
	// TypeRemote is any OpenAI-compatible chat-completions endpoint.
	TypeRemote Type = "remote"
	// TypeLocal is an Ollama server on this machine.
	TypeLocal Type = "local"
	// TypeAnthropic is the Anthropic Messages API.
	TypeAnthropic Type = "anthropic"
	// TypeNone means the user has not chosen a provider yet.
	TypeNone Type = "none"
)

// ErrNotConfigured is returned when no provider has been selected. Callers
// should direct the user to setup rather than report a failure.
var ErrNotConfigured = errors.New("no AI provider configured")

// Config carries everything the factory needs to construct any provider.
// Only the fields relevant to the chosen Type are consulted.
type Config struct {
	Type Type

	// Remote and Anthropic.
	APIURL      string
	APIEndpoint string
	APIKey      string
	Model       string

	// Local.
	OllamaHost string
	LocalModel string
}

// ModelInfo describes one model installed on a local inference server.
type ModelInfo struct {
	Name string
	Size int64
}

// NewProvider constructs the provider named by cfg.Type. It is the single
// place backend selection happens; everything downstream works against
// model.Provider.
func NewProvider(cfg Config) (model.Provider, error) {
	switch cfg.Type {
	case TypeRemote:
		return NewRemoteProvider(cfg.APIURL, cfg.APIEndpoint, cfg.APIKey, cfg.Model)
	case TypeLocal:
		return NewLocalProvider(cfg.OllamaHost, cfg.LocalModel)
	case TypeAnthropic:
		return NewAnthropicProvider(cfg.APIURL, cfg.APIKey, cfg.Model)
	case TypeNone, "":
		return nil, ErrNotConfigured
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}

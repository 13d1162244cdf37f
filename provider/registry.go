package provider

import "strings"

// LocalModel is one entry in the curated registry of models known to work
// well for command suggestion on consumer hardware.
type LocalModel struct {
	// ID is the stable identifier used in config files.
	ID string
	// DisplayName is what setup screens show.
	DisplayName string
	// OllamaName is the tag passed to the Ollama server.
	OllamaName string
	// MinRAMGB is the minimum system memory to run the model comfortably.
	MinRAMGB int
}

// DefaultLocalModelID is used when a local provider is selected without an
// explicit model choice.
const DefaultLocalModelID = "qwen3-4b"

// Registry holds the curated local-model table. It is constructed once and
// passed by reference to whichever component needs model metadata.
type Registry struct {
	models []LocalModel
}

// NewLocalModelRegistry builds the curated registry, default model first.
func NewLocalModelRegistry() *Registry {
	return &Registry{models: []LocalModel{
		{
			ID:          "qwen3-4b",
			DisplayName: "Qwen3 4B (Default - 2.75 GB)",
			OllamaName:  "qwen3:4b",
			MinRAMGB:    4,
		},
		{
			ID:          "gemma3n-e4b",
			DisplayName: "Gemma 3n E4B (5.5 GB)",
			OllamaName:  "gemma3n:e4b",
			MinRAMGB:    8,
		},
		{
			ID:          "llama31-8b",
			DisplayName: "Llama 3.1 8B (6-7 GB)",
			OllamaName:  "llama3.1:8b",
			MinRAMGB:    8,
		},
		{
			ID:          "magistral-small-24b",
			DisplayName: "Magistral Small 24B (13 GB)",
			OllamaName:  "magistral:24b",
			MinRAMGB:    16,
		},
	}}
}

// Models returns the registry entries in recommendation order.
func (r *Registry) Models() []LocalModel {
	out := make([]LocalModel, len(r.models))
	copy(out, r.models)
	return out
}

// Default returns the entry selected when the user has not chosen one.
func (r *Registry) Default() LocalModel {
	m, _ := r.Lookup(DefaultLocalModelID)
	return m
}

// Lookup resolves a config identifier to a registry entry. It tolerates
// underscore and dot spellings that show up in hand-edited config files.
func (r *Registry) Lookup(id string) (LocalModel, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(id, "_", "-"))
	normalized = strings.ReplaceAll(normalized, "llama3.1-8b", "llama31-8b")
	for _, m := range r.models {
		if m.ID == normalized {
			return m, true
		}
	}
	return LocalModel{}, false
}

package provider

import "testing"

func TestChatBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		apiURL   string
		endpoint string
		want     string
	}{
		{
			"defaults",
			"", "",
			"https://api.openai.com/v1",
		},
		{
			"explicit openai",
			"https://api.openai.com", "/v1/chat/completions",
			"https://api.openai.com/v1",
		},
		{
			"trailing slash on url",
			"https://api.groq.com/", "/openai/v1/chat/completions",
			"https://api.groq.com/openai/v1",
		},
		{
			"endpoint without completions suffix",
			"https://example.com", "/v1",
			"https://example.com/v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chatBaseURL(tt.apiURL, tt.endpoint); got != tt.want {
				t.Errorf("chatBaseURL(%q, %q) = %q, want %q", tt.apiURL, tt.endpoint, got, tt.want)
			}
		})
	}
}

func TestRemoteProviderRequiresKey(t *testing.T) {
	if _, err := NewRemoteProvider("", "", "", ""); err == nil {
		t.Fatal("expected error for missing API key")
	}

	p, err := NewRemoteProvider("", "", "sk-test", "")
	if err != nil {
		t.Fatalf("NewRemoteProvider() error = %v", err)
	}
	if !p.Ready() {
		t.Error("provider with key reports not ready")
	}
	if p.model != defaultRemoteModel {
		t.Errorf("model = %q, want default %q", p.model, defaultRemoteModel)
	}
}

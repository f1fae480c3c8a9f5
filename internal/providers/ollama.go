package providers

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultOllamaURL = "http://localhost:11434"

// Ollama implements the Chatter interface for Ollama and LM Studio
// (OpenAI-compatible API). It reuses the OpenAI request cycle with a
// different base URL and an optional key.
type Ollama struct {
	inner *OpenAI
}

// NewOllama creates a new Ollama provider. No API key is required by default.
func NewOllama(model, endpoint string) (*Ollama, error) {
	baseURL := endpoint
	if baseURL == "" {
		baseURL = os.Getenv("OLLAMA_HOST")
	}
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}

	// Normalize URL: strip trailing /, /v1, /v1/chat/completions
	baseURL = strings.TrimRight(baseURL, "/")
	baseURL = strings.TrimSuffix(baseURL, "/v1/chat/completions")
	baseURL = strings.TrimSuffix(baseURL, "/v1")

	// Optional API key for servers that require it (e.g., LM Studio)
	apiKey := os.Getenv("SIDEKICK_OLLAMA_API_KEY")

	return &Ollama{
		inner: &OpenAI{
			apiKey:  apiKey,
			model:   model,
			baseURL: baseURL + "/v1/chat/completions",
			client:  &http.Client{Timeout: 300 * time.Second},
		},
	}, nil
}

func (o *Ollama) Name() string { return "ollama" }

func (o *Ollama) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	return o.inner.Chat(ctx, req)
}

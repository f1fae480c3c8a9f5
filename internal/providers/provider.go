package providers

import (
	"context"
	"fmt"
)

// ChatRequest contains a single rendered prompt and its sampling parameters.
type ChatRequest struct {
	Prompt      string
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// ChatResponse contains the raw reply from a model.
type ChatResponse struct {
	Content    string
	TokensUsed int
}

// Chatter is the provider abstraction interface.
type Chatter interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	Name() string
}

// New creates a provider by name.
func New(provider, model, endpoint string) (Chatter, error) {
	switch provider {
	case "azure":
		return NewAzure(model, endpoint)
	case "openai":
		return NewOpenAI(model, endpoint)
	case "ollama", "lmstudio":
		return NewOllama(model, endpoint)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Azure implements the Chatter interface for Azure OpenAI deployments.
// The endpoint is the full chat-completions URL of a deployment; the key is
// sent in the api-key header.
type Azure struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewAzure creates a new Azure provider. The endpoint argument wins over the
// AZURE_OPENAI_ENDPOINT and API_ENDPOINT environment variables; the key
// comes from AZURE_OPENAI_API_KEY or API_KEY.
func NewAzure(model, endpoint string) (*Azure, error) {
	if endpoint == "" {
		endpoint = os.Getenv("AZURE_OPENAI_ENDPOINT")
	}
	if endpoint == "" {
		endpoint = os.Getenv("API_ENDPOINT")
	}
	if endpoint == "" {
		return nil, fmt.Errorf("no endpoint configured: set endpoint in config or AZURE_OPENAI_ENDPOINT")
	}
	key := os.Getenv("AZURE_OPENAI_API_KEY")
	if key == "" {
		key = os.Getenv("API_KEY")
	}
	if key == "" {
		return nil, fmt.Errorf("AZURE_OPENAI_API_KEY environment variable is not set")
	}
	return &Azure{
		apiKey:   key,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (a *Azure) Name() string { return "azure" }

func (a *Azure) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	fillDefaults(&req)

	body := chatPayload{
		Messages: []chatMessage{
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("marshaling request: %w", err)
	}

	var resp ChatResponse
	err = retryWithBackoff(ctx, 3, func() error {
		httpReq, err := http.NewRequestWithContext(ctx, "POST", a.endpoint, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("api-key", a.apiKey)

		httpResp, err := a.client.Do(httpReq)
		if err != nil {
			return fmt.Errorf("sending request: %w", err)
		}
		defer httpResp.Body.Close()

		respBody, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}

		if httpResp.StatusCode == 429 {
			return &rateLimitError{}
		}
		if httpResp.StatusCode == 401 || httpResp.StatusCode == 403 {
			return &authError{message: string(respBody)}
		}
		if httpResp.StatusCode >= 500 {
			return &serverError{statusCode: httpResp.StatusCode, body: string(respBody)}
		}
		if httpResp.StatusCode != 200 {
			return fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody))
		}

		var result chatResult
		if err := json.Unmarshal(respBody, &result); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}

		if len(result.Choices) == 0 {
			return fmt.Errorf("no response generated")
		}

		resp = ChatResponse{
			Content:    result.Choices[0].Message.Content,
			TokensUsed: result.Usage.TotalTokens,
		}
		return nil
	})

	return resp, err
}

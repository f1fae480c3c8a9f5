package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAzure_Chat(t *testing.T) {
	var gotPayload chatPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "test-key" {
			t.Error("Missing or wrong api-key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
		resp := chatResult{
			Choices: []chatChoice{
				{Message: chatMessage{Role: "assistant", Content: "use a for loop"}},
			},
			Usage: chatUsage{TotalTokens: 42},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	a := &Azure{
		apiKey:   "test-key",
		endpoint: server.URL,
		client:   server.Client(),
	}

	resp, err := a.Chat(context.Background(), ChatRequest{Prompt: "complete this"})
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if resp.Content != "use a for loop" {
		t.Errorf("Content = %q, want %q", resp.Content, "use a for loop")
	}
	if resp.TokensUsed != 42 {
		t.Errorf("TokensUsed = %d, want 42", resp.TokensUsed)
	}

	// Defaults match the request the assistant has always sent.
	if gotPayload.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", gotPayload.Temperature)
	}
	if gotPayload.TopP != 0.95 {
		t.Errorf("TopP = %v, want 0.95", gotPayload.TopP)
	}
	if gotPayload.MaxTokens != 500 {
		t.Errorf("MaxTokens = %d, want 500", gotPayload.MaxTokens)
	}
	if len(gotPayload.Messages) != 1 || gotPayload.Messages[0].Role != "user" {
		t.Errorf("Messages = %+v, want single user message", gotPayload.Messages)
	}
	if gotPayload.Model != "" {
		t.Errorf("Model = %q, want empty for azure deployments", gotPayload.Model)
	}
}

func TestAzure_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResult{})
	}))
	defer server.Close()

	a := &Azure{apiKey: "test-key", endpoint: server.URL, client: server.Client()}

	_, err := a.Chat(context.Background(), ChatRequest{Prompt: "hello"})
	if err == nil {
		t.Fatal("Expected error for empty choices")
	}
}

func TestAzure_AuthErrorNotRetried(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(401)
		w.Write([]byte(`{"error":"bad key"}`))
	}))
	defer server.Close()

	a := &Azure{apiKey: "bad-key", endpoint: server.URL, client: server.Client()}

	_, err := a.Chat(context.Background(), ChatRequest{Prompt: "hello"})
	if err == nil {
		t.Fatal("Expected auth error")
	}
	if !IsAuthError(err) {
		t.Errorf("IsAuthError = false for %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (auth errors are not retried)", attempts)
	}
}

func TestNewAzure_MissingEndpoint(t *testing.T) {
	t.Setenv("AZURE_OPENAI_ENDPOINT", "")
	t.Setenv("API_ENDPOINT", "")
	if _, err := NewAzure("gpt-4o", ""); err == nil {
		t.Error("Expected error when no endpoint is configured")
	}
}

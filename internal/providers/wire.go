package providers

// Chat-completions wire format shared by all providers. Azure deployments
// carry the model in the URL, so Model is omitted when empty.
type chatPayload struct {
	Model       string        `json:"model,omitempty"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResult struct {
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatUsage struct {
	TotalTokens int `json:"total_tokens"`
}

const (
	defaultTemperature = 0.7
	defaultTopP        = 0.95
	defaultMaxTokens   = 500
)

func fillDefaults(req *ChatRequest) {
	if req.Temperature == 0 {
		req.Temperature = defaultTemperature
	}
	if req.TopP == 0 {
		req.TopP = defaultTopP
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = defaultMaxTokens
	}
}

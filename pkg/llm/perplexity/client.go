package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akunal1/smart-resume-backend/pkg/apperr"
	"github.com/akunal1/smart-resume-backend/pkg/chat"
	"github.com/akunal1/smart-resume-backend/pkg/llm"
)

const (
	DefaultBaseURL = "https://api.perplexity.ai"
	DefaultModel   = "sonar"
)

// Client is a minimal Perplexity (OpenAI-compatible) chat completions client.
type Client struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	httpDo      *http.Client
}

// New creates a client. A zero timeout leaves the call unbounded.
func New(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		APIKey:      apiKey,
		BaseURL:     baseURL,
		Model:       model,
		Temperature: 0.3,
		MaxTokens:   1000,
		httpDo:      &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c != nil && c.APIKey != ""
}

type chatCompletionsRequest struct {
	Model       string         `json:"model"`
	Messages    []chat.Message `json:"messages"`
	Stream      bool           `json:"stream"`
	Temperature float32        `json:"temperature,omitempty"`
	MaxTokens   int            `json:"max_tokens,omitempty"`
}

// Chat sends messages to the model and returns the parsed completion.
// A missing API key is an apperr.CodeConfiguration error; every other
// failure is an apperr.CodeUpstream error.
func (c *Client) Chat(ctx context.Context, messages []chat.Message) (llm.Completion, error) {
	if c.APIKey == "" {
		return llm.Completion{}, apperr.Configuration("PERPLEXITY_API_KEY")
	}
	data, err := json.Marshal(chatCompletionsRequest{
		Model:       c.Model,
		Messages:    messages,
		Stream:      false,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	})
	if err != nil {
		return llm.Completion{}, apperr.Upstream("encode perplexity request", err)
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return llm.Completion{}, apperr.Upstream("build perplexity request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return llm.Completion{}, apperr.Upstream("perplexity request failed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return llm.Completion{}, apperr.Upstream("perplexity request failed",
			fmt.Errorf("perplexity http %d: %s", resp.StatusCode, bytes.TrimSpace(body)))
	}
	var out llm.Completion
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return llm.Completion{}, apperr.Upstream("malformed perplexity response", err)
	}
	if len(out.Choices) == 0 {
		return llm.Completion{}, apperr.Upstream("malformed perplexity response", errors.New("no choices returned by model"))
	}
	if out.Model == "" {
		out.Model = c.Model
	}
	return out, nil
}

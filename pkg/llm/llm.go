package llm

import (
	"context"

	"github.com/akunal1/smart-resume-backend/pkg/chat"
)

// Gateway is the port to a hosted chat-completion model.
// Concrete providers live in subpackages.
type Gateway interface {
	Chat(ctx context.Context, messages []chat.Message) (Completion, error)
}

// Usage holds token counters reported by the provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type Choice struct {
	Message      chat.Message `json:"message"`
	FinishReason string       `json:"finish_reason"`
}

// Completion is a successful chat-completion result with at least one choice.
type Completion struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Text returns the first choice's content.
func (c Completion) Text() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Message.Content
}

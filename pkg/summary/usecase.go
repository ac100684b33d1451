// Package summary condenses a chat into bullet points and a follow-up suggestion.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/akunal1/smart-resume-backend/pkg/chat"
	"github.com/akunal1/smart-resume-backend/pkg/llm"
	"github.com/akunal1/smart-resume-backend/pkg/logger"
)

const (
	ModeEmail   = "email"
	ModeMeeting = "meeting"

	historyWindow = 10

	FallbackSummary = "• Discussion about project requirements\n• Need for follow-up\n• Action items identified"
	FallbackTitle   = "Project Discussion"
)

// Result is what the client pre-fills its email or meeting form with.
type Result struct {
	Summary        string `json:"summary"`
	SuggestedTitle string `json:"suggestedTitle"`
	SuggestedMode  string `json:"suggestedMode"`
}

// UseCase summarizes a conversation. It never fails; model problems yield
// the fallback result.
type UseCase interface {
	Summarize(ctx context.Context, history []chat.Message) Result
}

type service struct {
	gateway llm.Gateway
	log     *zap.Logger
}

func NewService(gateway llm.Gateway, log *zap.Logger) UseCase {
	return &service{gateway: gateway, log: logger.Component(log, "summary")}
}

func Fallback() Result {
	return Result{Summary: FallbackSummary, SuggestedTitle: FallbackTitle, SuggestedMode: ModeEmail}
}

func (s *service) Summarize(ctx context.Context, history []chat.Message) Result {
	if s.gateway == nil {
		return Fallback()
	}
	messages := []chat.Message{
		chat.System(buildPrompt(history)),
		chat.User("Please analyze this conversation and provide the summary, title, and suggested mode."),
	}
	out, err := s.gateway.Chat(ctx, messages)
	if err != nil {
		s.log.Warn("summary generation failed", zap.Error(err))
		return Fallback()
	}
	res, err := parse(out.Text())
	if err != nil {
		s.log.Warn("summary response not parseable", zap.Error(err), zap.String("raw", out.Text()))
		return Fallback()
	}
	return res
}

func buildPrompt(history []chat.Message) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	lines := make([]string, 0, len(history))
	for _, m := range history {
		who := "Assistant"
		if m.Role == chat.RoleUser {
			who = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", who, m.Content))
	}

	return fmt.Sprintf(`You are an AI assistant that summarizes conversations and suggests meeting titles.

Based on the following conversation, provide:
1. A concise summary in 3-5 bullet points covering decisions, blockers, next steps
2. A suggested meeting title (max 8 words)
3. Whether this seems like it needs a meeting ('meeting') or just an email follow-up ('email')

Keep the total summary under 120 words.

Conversation:
%s

Respond in JSON format:
{
  "summary": "• Point 1\n• Point 2\n• Point 3",
  "title": "Suggested Meeting Title",
  "suggestedMode": "meeting" or "email"
}`, strings.Join(lines, "\n"))
}

var fencedJSON = regexp.MustCompile("```json\\s*(\\{[\\s\\S]*?\\})\\s*```")

type modelSummary struct {
	Summary       string `json:"summary"`
	Title         string `json:"title"`
	SuggestedMode string `json:"suggestedMode"`
}

// parse accepts bare JSON or JSON inside a ```json fence.
func parse(raw string) (Result, error) {
	content := strings.TrimSpace(raw)
	payload := content
	if strings.HasPrefix(content, "```json") {
		start, end := strings.Index(content, "{"), strings.LastIndex(content, "}")
		if start != -1 && end > start {
			payload = content[start : end+1]
		}
	} else if m := fencedJSON.FindStringSubmatch(content); m != nil {
		payload = m[1]
	}

	var ms modelSummary
	if err := json.Unmarshal([]byte(payload), &ms); err != nil {
		return Result{}, err
	}
	res := Result{Summary: ms.Summary, SuggestedTitle: ms.Title, SuggestedMode: ModeEmail}
	if res.Summary == "" {
		res.Summary = "Summary not available"
	}
	if res.SuggestedTitle == "" {
		res.SuggestedTitle = "Meeting"
	}
	if ms.SuggestedMode == ModeMeeting {
		res.SuggestedMode = ModeMeeting
	}
	return res, nil
}

// Package assistant routes chat queries to canned answers or the language model.
package assistant

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/akunal1/smart-resume-backend/pkg/chat"
	"github.com/akunal1/smart-resume-backend/pkg/intent"
	"github.com/akunal1/smart-resume-backend/pkg/llm"
	"github.com/akunal1/smart-resume-backend/pkg/logger"
	"github.com/akunal1/smart-resume-backend/pkg/metrics"
)

const (
	ModeText  = "text"
	ModeVoice = "voice"
)

// Request is a validated assistant query.
type Request struct {
	Query    string         `json:"query"`
	Mode     string         `json:"mode"`
	History  []chat.Message `json:"history,omitempty"`
	UserName string         `json:"userName,omitempty"`
}

type Metadata struct {
	Model            string    `json:"model"`
	ShowMeetingPopup *bool     `json:"showMeetingPopup,omitempty"`
	Usage            llm.Usage `json:"usage"`
}

// Response is the uniform envelope returned on every path.
type Response struct {
	Message  string   `json:"message"`
	Metadata Metadata `json:"metadata"`
}

// ResumeContext supplies the persona name and rendered resume.
type ResumeContext interface {
	FullName() string
	Context() string
}

// UseCase answers assistant queries. Ask never fails: upstream problems
// become scripted replies.
type UseCase interface {
	Ask(ctx context.Context, req Request) Response
}

// configurable is implemented by gateways that can report a missing credential.
type configurable interface {
	Configured() bool
}

type service struct {
	gateway     llm.Gateway
	resume      ResumeContext
	downloadURL string
	log         *zap.Logger
}

func NewService(gateway llm.Gateway, resume ResumeContext, downloadURL string, log *zap.Logger) UseCase {
	return &service{
		gateway:     gateway,
		resume:      resume,
		downloadURL: downloadURL,
		log:         logger.Component(log, "assistant"),
	}
}

func (s *service) Ask(ctx context.Context, req Request) Response {
	in := intent.Classify(req.Query, req.History)

	var resp Response
	if in.NeedsModel() {
		resp = s.askModel(ctx, in, req)
	} else {
		resp = s.canned(in, req)
	}

	metrics.AssistantQueries.WithLabelValues(string(in), resp.Metadata.Model).Inc()
	s.log.Debug("assistant query answered",
		zap.String("intent", string(in)),
		zap.String("model", resp.Metadata.Model),
		zap.String("mode", req.Mode),
		zap.Int("history", len(req.History)),
	)
	return resp
}

func (s *service) askModel(ctx context.Context, in intent.Intent, req Request) Response {
	var system string
	if in == intent.Conversational {
		system = personaPrompt(s.resume.FullName())
	} else {
		system = guardianPrompt(s.resume.FullName(), s.resume.Context())
	}
	messages := chat.Assemble(system, req.History, req.Query)

	if !s.modelConfigured() {
		s.log.Warn("language model credential not configured, answering with demo reply")
		return Response{Message: demoText, Metadata: Metadata{Model: ModelDemo, Usage: scriptedUsage}}
	}

	start := time.Now()
	out, err := s.gateway.Chat(ctx, messages)
	if err != nil {
		metrics.ModelCallDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		s.log.Error("language model call failed",
			zap.String("intent", string(in)),
			zap.Int("messages", len(messages)),
			zap.Error(err),
		)
		return Response{Message: demoFallbackText, Metadata: Metadata{Model: ModelDemoFallback, Usage: scriptedUsage}}
	}
	metrics.ModelCallDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
	metrics.ModelTokens.WithLabelValues("prompt").Add(float64(out.Usage.PromptTokens))
	metrics.ModelTokens.WithLabelValues("completion").Add(float64(out.Usage.CompletionTokens))

	s.log.Info("language model answered",
		zap.String("intent", string(in)),
		zap.String("model", out.Model),
		zap.Int("total_tokens", out.Usage.TotalTokens),
	)
	return Response{
		Message:  out.Text(),
		Metadata: Metadata{Model: out.Model, Usage: out.Usage},
	}
}

func (s *service) modelConfigured() bool {
	if s.gateway == nil {
		return false
	}
	if c, ok := s.gateway.(configurable); ok {
		return c.Configured()
	}
	return true
}

package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	apihttp "github.com/akunal1/smart-resume-backend/api/http"
	"github.com/akunal1/smart-resume-backend/api/http/handlers"
	"github.com/akunal1/smart-resume-backend/api/http/middleware"
	"github.com/akunal1/smart-resume-backend/pkg/apperr"
	"github.com/akunal1/smart-resume-backend/pkg/assistant"
	"github.com/akunal1/smart-resume-backend/pkg/chat"
	"github.com/akunal1/smart-resume-backend/pkg/llm"
	"github.com/akunal1/smart-resume-backend/pkg/scheduling"
	"github.com/akunal1/smart-resume-backend/pkg/summary"
)

type fakeAssistant struct{ got assistant.Request }

func (f *fakeAssistant) Ask(_ context.Context, req assistant.Request) assistant.Response {
	f.got = req
	return assistant.Response{Message: "Hi there!", Metadata: assistant.Metadata{Model: "sonar", Usage: llm.Usage{TotalTokens: 12}}}
}

type fakeSummary struct{ got []chat.Message }

func (f *fakeSummary) Summarize(_ context.Context, history []chat.Message) summary.Result {
	f.got = history
	return summary.Fallback()
}

type fakeScheduling struct{ err error }

func (f *fakeScheduling) SendSummary(context.Context, scheduling.EmailRequest) (scheduling.Result, error) {
	if f.err != nil {
		return scheduling.Result{}, f.err
	}
	return scheduling.Result{MessageID: "m-1", Status: scheduling.StatusSent}, nil
}

func (f *fakeScheduling) ScheduleMeeting(context.Context, scheduling.MeetingRequest) (scheduling.Result, error) {
	if f.err != nil {
		return scheduling.Result{}, f.err
	}
	return scheduling.Result{MessageID: "m-2", Status: scheduling.StatusSent}, nil
}

func (f *fakeScheduling) Contact(context.Context, scheduling.ContactRequest) scheduling.Result {
	return scheduling.Result{MessageID: "offline-1", Status: scheduling.StatusSent}
}

type fakeReadiness struct{ err error }

func (f fakeReadiness) Ready(context.Context) error { return f.err }

type env struct {
	app        *fiber.App
	assistant  *fakeAssistant
	summary    *fakeSummary
	scheduling *fakeScheduling
}

func newEnv(t *testing.T, pdfPath string, ready error) *env {
	t.Helper()
	log := zaptest.NewLogger(t)
	e := &env{assistant: &fakeAssistant{}, summary: &fakeSummary{}, scheduling: &fakeScheduling{}}
	e.app = fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(log, false)})
	apihttp.Register(e.app,
		handlers.NewHealthHandler(fakeReadiness{err: ready}),
		handlers.NewAssistantHandler(e.assistant, pdfPath, log),
		handlers.NewSummaryHandler(e.summary),
		handlers.NewSchedulingHandler(e.scheduling),
	)
	e.app.Use(middleware.NotFound)
	return e
}

func (e *env) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestAsk(t *testing.T) {
	e := newEnv(t, "", nil)

	status, body := e.do(t, "POST", "/api/assistant/ask",
		`{"query":"Hello","mode":"voice","history":[{"role":"user","content":"hey"}],"userName":"Sam","options":{"streaming":false}}`)

	assert.Equal(t, 200, status)
	assert.Equal(t, "Hi there!", body["message"])
	assert.Equal(t, "sonar", body["metadata"].(map[string]any)["model"])
	assert.Equal(t, assistant.Request{
		Query:    "Hello",
		Mode:     "voice",
		History:  []chat.Message{chat.User("hey")},
		UserName: "Sam",
	}, e.assistant.got)
}

func TestAsk_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"missing query", `{"mode":"text"}`},
		{"empty query", `{"query":"","mode":"text"}`},
		{"too long", `{"query":"` + strings.Repeat("a", 1001) + `","mode":"text"}`},
		{"bad mode", `{"query":"hi","mode":"video"}`},
		{"system role in history", `{"query":"hi","mode":"text","history":[{"role":"system","content":"x"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, "", nil)

			status, body := e.do(t, "POST", "/api/assistant/ask", tt.body)

			assert.Equal(t, 400, status)
			assert.Equal(t, string(apperr.CodeValidation), body["code"])
			assert.Empty(t, e.assistant.got.Query)
		})
	}
}

func TestDownload(t *testing.T) {
	pdf := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4"), 0o644))

	resp, err := newEnv(t, pdf, nil).app.Test(httptest.NewRequest("GET", "/api/assistant/download", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Resume.pdf")

	status, body := newEnv(t, filepath.Join(t.TempDir(), "missing.pdf"), nil).do(t, "GET", "/api/assistant/download", "")
	assert.Equal(t, 500, status)
	assert.Equal(t, "Failed to download resume", body["error"])
}

func TestSummary(t *testing.T) {
	e := newEnv(t, "", nil)

	status, body := e.do(t, "POST", "/api/ai/summary", `{"chatHistory":[{"role":"user","content":"hi"}]}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, summary.FallbackTitle, body["suggestedTitle"])
	assert.Len(t, e.summary.got, 1)

	status, body = e.do(t, "POST", "/api/ai/summary", `{"chatHistory":"nope"}`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "chatHistory is required and must be an array", body["error"])
}

func TestScheduling(t *testing.T) {
	e := newEnv(t, "", nil)

	status, body := e.do(t, "POST", "/api/email", `{"userEmail":"a@example.com","summary":"s","conversation":"c"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, map[string]any{"messageId": "m-1", "status": "sent"}, body)

	status, _ = e.do(t, "POST", "/api/email", `{"userEmail":"not-an-email"}`)
	assert.Equal(t, 400, status)

	status, body = e.do(t, "POST", "/api/meetings",
		`{"userEmail":"a@example.com","dateISO":"2030-01-01T10:00:00Z","endDateISO":"2030-01-01T11:00:00Z","attendees":[],"timezone":"UTC","summary":"s","conversation":"c"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "m-2", body["messageId"])

	status, body = e.do(t, "POST", "/api/contact", `{"fullName":"Sam","email":"sam@example.com","subject":"Hi","message":"Hello"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "offline-1", body["messageId"])

	status, _ = e.do(t, "POST", "/api/contact", `{"fullName":"Sam","email":"sam@example.com"}`)
	assert.Equal(t, 400, status)
}

func TestScheduling_Errors(t *testing.T) {
	e := newEnv(t, "", nil)
	e.scheduling.err = apperr.MailSend(errors.New("all transports failed"))

	status, body := e.do(t, "POST", "/api/email", `{"userEmail":"a@example.com","summary":"s","conversation":"c"}`)
	assert.Equal(t, 500, status)
	assert.Equal(t, "failed to send email", body["error"])

	e.scheduling.err = apperr.Validation("End time must be after start time", "")
	status, body = e.do(t, "POST", "/api/meetings",
		`{"userEmail":"a@example.com","dateISO":"2030-01-01T10:00:00Z","endDateISO":"2030-01-01T09:00:00Z"}`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "End time must be after start time", body["error"])
}

func TestHealth(t *testing.T) {
	status, body := newEnv(t, "", nil).do(t, "GET", "/api/health", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])

	status, body = newEnv(t, "", nil).do(t, "GET", "/api/ready", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "ready", body["status"])

	status, body = newEnv(t, "", errors.New("redis: connection refused")).do(t, "GET", "/api/ready", "")
	assert.Equal(t, 503, status)
	assert.Equal(t, "not_ready", body["status"])
}

func TestNotFound(t *testing.T) {
	status, body := newEnv(t, "", nil).do(t, "GET", "/api/nowhere", "")

	assert.Equal(t, 404, status)
	assert.Equal(t, "Not found", body["error"])
}

package mail

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	netmail "net/mail"
	"net/smtp"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/akunal1/smart-resume-backend/pkg/apperr"
	"github.com/akunal1/smart-resume-backend/pkg/config"
)

type fakeTransport struct {
	name  string
	err   error
	calls int
}

func (f *fakeTransport) Name() string { return f.name }

func (f *fakeTransport) Send(_ context.Context, _ Message) (Receipt, error) {
	f.calls++
	if f.err != nil {
		return Receipt{}, f.err
	}
	return Receipt{MessageID: f.name + "-id"}, nil
}

var testMsg = Message{To: []string{"user@example.com"}, Subject: "Hello", Text: "plain", HTML: "<p>html</p>"}

func TestChain_FirstSuccessShortCircuits(t *testing.T) {
	first := &fakeTransport{name: "sendgrid", err: errors.New("401")}
	second := &fakeTransport{name: "smtp"}
	third := &fakeTransport{name: "gmail-oauth2"}

	r, err := NewChain(zaptest.NewLogger(t), first, second, third).Send(context.Background(), testMsg)

	require.NoError(t, err)
	assert.Equal(t, Receipt{MessageID: "smtp-id", Transport: "smtp"}, r)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Zero(t, third.calls)
}

func TestChain_AllFail(t *testing.T) {
	a := &fakeTransport{name: "smtp", err: errors.New("dial timeout")}
	b := &fakeTransport{name: "gmail-oauth2", err: errors.New("invalid_grant")}

	_, err := NewChain(zaptest.NewLogger(t), a, b).Send(context.Background(), testMsg)

	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeMailSend))
	assert.Contains(t, err.Error(), "smtp: dial timeout")
	assert.Contains(t, err.Error(), "gmail-oauth2: invalid_grant")
}

func TestChain_NoTransports(t *testing.T) {
	_, err := NewChain(nil).Send(context.Background(), testMsg)

	assert.True(t, apperr.HasCode(err, apperr.CodeConfiguration))
}

func TestChain_NoRecipients(t *testing.T) {
	_, err := NewChain(nil, &fakeTransport{name: "smtp"}).Send(context.Background(), Message{Subject: "x"})

	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestNewChainFromConfig_Order(t *testing.T) {
	cfg := config.MailConfig{
		SendGridAPIKey:     "sg",
		SendGridFromEmail:  "from@example.com",
		SMTPHost:           "smtp.example.com",
		SMTPPort:           587,
		SMTPUser:           "u@example.com",
		SMTPPass:           "p",
		GmailSender:        "g@example.com",
		GoogleClientID:     "id",
		GoogleClientSecret: "secret",
		GoogleRefreshToken: "rt",
	}

	c := NewChainFromConfig(context.Background(), cfg, "Assistant", nil)

	assert.Equal(t, []string{"sendgrid", "smtp", "gmail-oauth2"}, c.Transports())
	assert.Empty(t, NewChainFromConfig(context.Background(), config.MailConfig{SMTPUser: "only-user"}, "", nil).Transports())
}

func TestSendGridTransport(t *testing.T) {
	var got sgRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer sg-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("X-Message-Id", "sg-123")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	tr := newSendGridTransport(srv.URL, "sg-key", "from@example.com", "Assistant")
	msg := testMsg
	msg.To = []string{"a@example.com", "b@example.com"}
	msg.ReplyTo = "reply@example.com"
	msg.Attachments = []Attachment{{Filename: "meeting.ics", ContentType: "text/calendar", Content: []byte("BEGIN:VCALENDAR")}}

	r, err := tr.Send(context.Background(), msg)

	require.NoError(t, err)
	assert.Equal(t, "sg-123", r.MessageID)
	assert.Len(t, got.Personalizations, 2)
	assert.Equal(t, "from@example.com", got.From.Email)
	assert.Equal(t, "reply@example.com", got.ReplyTo.Email)
	require.Len(t, got.Content, 2)
	assert.Equal(t, "text/plain", got.Content[0].Type)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "QkVHSU46VkNBTEVOREFS", got.Attachments[0].Content)
}

func TestSendGridTransport_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer srv.Close()

	_, err := newSendGridTransport(srv.URL, "x", "from@example.com", "").Send(context.Background(), testMsg)

	assert.ErrorContains(t, err, "sendgrid status 401")
}

func TestSMTPTransport_BuildsMessage(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var raw []byte
	tr := NewSMTPTransport("smtp.example.com", 587, "me@example.com", "pw", "Jane Doe")
	tr.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, raw = addr, from, to, msg
		return nil
	}
	msg := testMsg
	msg.Attachments = []Attachment{{Filename: "meeting.ics", ContentType: "text/calendar", Content: []byte("ICS")}}

	r, err := tr.Send(context.Background(), msg)

	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "me@example.com", gotFrom)
	assert.Equal(t, []string{"user@example.com"}, gotTo)
	assert.True(t, strings.HasSuffix(r.MessageID, "@example.com>"))

	parsed, err := netmail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, "Hello", parsed.Header.Get("Subject"))
	assert.Equal(t, r.MessageID, parsed.Header.Get("Message-ID"))
	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/mixed", mediaType)

	mr := multipart.NewReader(parsed.Body, params["boundary"])
	var parts []string
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		parts = append(parts, p.Header.Get("Content-Type"))
	}
	require.Len(t, parts, 2)
	assert.True(t, strings.HasPrefix(parts[0], "multipart/alternative"))
	assert.Equal(t, `text/calendar; name="meeting.ics"`, parts[1])
}

func TestSMTPTransport_Error(t *testing.T) {
	tr := NewSMTPTransport("smtp.example.com", 587, "me@example.com", "pw", "")
	tr.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("535 auth failed") }

	_, err := tr.Send(context.Background(), testMsg)

	assert.ErrorContains(t, err, "535")
}

type fakeSES struct {
	in *ses.SendRawEmailInput
}

func (f *fakeSES) SendRawEmail(_ context.Context, in *ses.SendRawEmailInput, _ ...func(*ses.Options)) (*ses.SendRawEmailOutput, error) {
	f.in = in
	return &ses.SendRawEmailOutput{MessageId: aws.String("ses-1")}, nil
}

func TestSESTransport(t *testing.T) {
	api := &fakeSES{}
	tr := &SESTransport{client: api, from: "noreply@example.com", fromName: "Assistant"}

	r, err := tr.Send(context.Background(), testMsg)

	require.NoError(t, err)
	assert.Equal(t, "ses-1", r.MessageID)
	assert.Equal(t, "noreply@example.com", aws.ToString(api.in.Source))
	assert.Equal(t, testMsg.To, api.in.Destinations)
	assert.Contains(t, string(api.in.RawMessage.Data), "Subject: Hello")
}

func TestXOAUTH2Auth(t *testing.T) {
	a := &xoauth2Auth{user: "me@gmail.com", token: "tok"}

	mech, resp, err := a.Start(&smtp.ServerInfo{Name: "smtp.gmail.com", TLS: true})
	require.NoError(t, err)
	assert.Equal(t, "XOAUTH2", mech)
	assert.Equal(t, "user=me@gmail.com\x01auth=Bearer tok\x01\x01", string(resp))

	_, _, err = a.Start(&smtp.ServerInfo{Name: "smtp.gmail.com"})
	assert.Error(t, err)
}

package mail

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const sendGridBaseURL = "https://api.sendgrid.com"

// SendGridTransport posts to the SendGrid v3 mail/send API.
type SendGridTransport struct {
	client   *resty.Client
	from     string
	fromName string
}

func NewSendGridTransport(apiKey, from, fromName string) *SendGridTransport {
	return newSendGridTransport(sendGridBaseURL, apiKey, from, fromName)
}

func newSendGridTransport(baseURL, apiKey, from, fromName string) *SendGridTransport {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey).
		SetTimeout(60 * time.Second)
	return &SendGridTransport{client: c, from: from, fromName: fromName}
}

func (t *SendGridTransport) Name() string { return "sendgrid" }

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgAttachment struct {
	Content     string `json:"content"`
	Filename    string `json:"filename"`
	Type        string `json:"type,omitempty"`
	Disposition string `json:"disposition"`
}

type sgRequest struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	ReplyTo          *sgAddress          `json:"reply_to,omitempty"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
	Attachments      []sgAttachment      `json:"attachments,omitempty"`
	Categories       []string            `json:"categories,omitempty"`
	Headers          map[string]string   `json:"headers,omitempty"`
}

func (t *SendGridTransport) Send(ctx context.Context, msg Message) (Receipt, error) {
	// One personalization per recipient so addresses are not disclosed to each other.
	req := sgRequest{
		From:    sgAddress{Email: t.from, Name: t.fromName},
		Subject: msg.Subject,
		Content: []sgContent{{Type: "text/plain", Value: msg.Text}},
		Headers: map[string]string{"X-Mailer": "Smart Resume Assistant"},
	}
	for _, to := range msg.To {
		req.Personalizations = append(req.Personalizations, sgPersonalization{To: []sgAddress{{Email: to}}})
	}
	if msg.HTML != "" {
		req.Content = append(req.Content, sgContent{Type: "text/html", Value: msg.HTML})
	}
	if msg.ReplyTo != "" {
		req.ReplyTo = &sgAddress{Email: msg.ReplyTo}
	}
	if msg.Category != "" {
		req.Categories = []string{msg.Category, "transactional"}
	}
	for _, a := range msg.Attachments {
		req.Attachments = append(req.Attachments, sgAttachment{
			Content:     base64.StdEncoding.EncodeToString(a.Content),
			Filename:    a.Filename,
			Type:        a.ContentType,
			Disposition: "attachment",
		})
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(&req).
		Post("/v3/mail/send")
	if err != nil {
		return Receipt{}, fmt.Errorf("sendgrid request: %w", err)
	}
	if resp.StatusCode() != http.StatusAccepted && resp.StatusCode() != http.StatusOK {
		return Receipt{}, fmt.Errorf("sendgrid status %d: %s", resp.StatusCode(), resp.String())
	}
	id := resp.Header().Get("X-Message-Id")
	if id == "" {
		id = "sendgrid-success"
	}
	return Receipt{MessageID: id, Transport: t.Name()}, nil
}

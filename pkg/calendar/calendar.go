// Package calendar creates events on a Google Calendar owned by a service account.
package calendar

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/endpoints"
	"golang.org/x/oauth2/jwt"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/akunal1/smart-resume-backend/pkg/apperr"
	"github.com/akunal1/smart-resume-backend/pkg/config"
	"github.com/akunal1/smart-resume-backend/pkg/logger"
	"github.com/akunal1/smart-resume-backend/pkg/metrics"
)

const (
	defaultCalendarID = "primary"
	defaultSummary    = "Meeting scheduled via AI Assistant"
)

var scopes = []string{
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/calendar.events",
}

// Event is a meeting to put on the owner's calendar.
type Event struct {
	Summary      string
	Notes        string
	Conversation string
	Start        time.Time
	End          time.Time
	TimeZone     string
}

// Created identifies the inserted event. Service accounts cannot create Meet
// conferences, so HangoutLink is always empty.
type Created struct {
	EventID     string `json:"eventId"`
	HTMLLink    string `json:"htmlLink"`
	HangoutLink string `json:"hangoutLink"`
}

type Creator interface {
	CreateEvent(ctx context.Context, ev Event) (Created, error)
}

type Client struct {
	svc        *gcal.Service
	calendarID string
	log        *zap.Logger
}

// New returns a client for the configured service account. Missing credentials
// yield a client whose CreateEvent reports CONFIGURATION_MISSING.
func New(ctx context.Context, cfg config.CalendarConfig, log *zap.Logger) (*Client, error) {
	l := logger.Component(log, "calendar")
	if cfg.ClientEmail == "" || cfg.PrivateKey == "" {
		return &Client{calendarID: calendarID(cfg.CalendarID), log: l}, nil
	}
	jc := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(NormalizePrivateKey(cfg.PrivateKey)),
		Scopes:     scopes,
		TokenURL:   endpoints.Google.TokenURL,
	}
	return newClient(ctx, cfg.CalendarID, l, option.WithTokenSource(jc.TokenSource(ctx)))
}

func newClient(ctx context.Context, id string, log *zap.Logger, opts ...option.ClientOption) (*Client, error) {
	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, apperr.Calendar(err)
	}
	return &Client{svc: svc, calendarID: calendarID(id), log: log}, nil
}

// Configured reports whether service account credentials were supplied.
func (c *Client) Configured() bool { return c != nil && c.svc != nil }

func (c *Client) CreateEvent(ctx context.Context, ev Event) (Created, error) {
	if !c.Configured() {
		return Created{}, apperr.Configuration("GOOGLE_CLIENT_EMAIL/GOOGLE_PRIVATE_KEY")
	}
	body := &gcal.Event{
		Summary:     summaryOrDefault(ev.Summary),
		Description: Description(ev),
		Start:       &gcal.EventDateTime{DateTime: ev.Start.Format(time.RFC3339), TimeZone: ev.TimeZone},
		End:         &gcal.EventDateTime{DateTime: ev.End.Format(time.RFC3339), TimeZone: ev.TimeZone},
		Reminders:   &gcal.EventReminders{UseDefault: true},
	}
	out, err := c.svc.Events.Insert(c.calendarID, body).Context(ctx).Do()
	if err == nil && (out.Id == "" || out.HtmlLink == "") {
		err = errors.New("calendar returned an event without id or link")
	}
	if err != nil {
		metrics.CalendarEvents.WithLabelValues("error").Inc()
		c.log.Error("create calendar event failed", zap.String("calendar_id", c.calendarID), zap.Error(err))
		return Created{}, apperr.Calendar(err)
	}
	metrics.CalendarEvents.WithLabelValues("created").Inc()
	c.log.Info("calendar event created", zap.String("event_id", out.Id))
	return Created{EventID: out.Id, HTMLLink: out.HtmlLink}, nil
}

// Description lays out the AI summary, notes and conversation, skipping empty parts.
func Description(ev Event) string {
	var b strings.Builder
	if ev.Summary != "" {
		b.WriteString("AI Summary:\n" + ev.Summary + "\n\n")
	}
	if ev.Notes != "" {
		b.WriteString("Additional Notes:\n" + ev.Notes + "\n\n")
	}
	if ev.Conversation != "" {
		b.WriteString("Conversation History:\n" + ev.Conversation)
	}
	return strings.TrimSpace(b.String())
}

// NormalizePrivateKey undoes the quoting and escaped newlines that PEM keys
// pick up when stored in a single environment variable.
func NormalizePrivateKey(key string) string {
	key = strings.TrimPrefix(key, `"`)
	key = strings.TrimSuffix(key, `"`)
	key = strings.ReplaceAll(key, `\n`, "\n")
	return strings.ReplaceAll(key, `\"`, `"`)
}

func calendarID(id string) string {
	if id == "" {
		return defaultCalendarID
	}
	return id
}

func summaryOrDefault(s string) string {
	if s == "" {
		return defaultSummary
	}
	return s
}

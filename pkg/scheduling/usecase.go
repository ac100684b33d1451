// Package scheduling sends conversation summaries, meeting invitations and
// portfolio contact messages on behalf of the resume owner.
package scheduling

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/akunal1/smart-resume-backend/pkg/apperr"
	"github.com/akunal1/smart-resume-backend/pkg/calendar"
	"github.com/akunal1/smart-resume-backend/pkg/ics"
	"github.com/akunal1/smart-resume-backend/pkg/logger"
	"github.com/akunal1/smart-resume-backend/pkg/mail"
)

const (
	StatusSent = "sent"

	defaultEmailSubject = "Summary of Virtual Assistance Discussion"
	maxSubjectLength    = 50
	meetingPrefix       = "Meeting: "
)

type EmailRequest struct {
	UserEmail     string `json:"userEmail"`
	UserName      string `json:"userName,omitempty"`
	Description   string `json:"description,omitempty"`
	Summary       string `json:"summary"`
	Conversation  string `json:"conversation"`
	ICSAttachment string `json:"icsAttachment,omitempty"`
	Subject       string `json:"subject,omitempty"`
}

type MeetingRequest struct {
	UserEmail    string   `json:"userEmail"`
	UserName     string   `json:"userName,omitempty"`
	DateISO      string   `json:"dateISO"`
	EndDateISO   string   `json:"endDateISO"`
	Description  string   `json:"description,omitempty"`
	Attendees    []string `json:"attendees"`
	Timezone     string   `json:"timezone"`
	Summary      string   `json:"summary"`
	Conversation string   `json:"conversation"`
}

type ContactRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Company  string `json:"company,omitempty"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// Result is the response body of every scheduling route.
type Result struct {
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
}

// Owner identifies the person the assistant speaks for. Every message is
// copied to Owner.Email.
type Owner struct {
	Name  string
	Email string
}

type UseCase interface {
	SendSummary(ctx context.Context, req EmailRequest) (Result, error)
	ScheduleMeeting(ctx context.Context, req MeetingRequest) (Result, error)
	// Contact never fails: undeliverable messages are logged and acknowledged
	// with an offline message id.
	Contact(ctx context.Context, req ContactRequest) Result
}

type service struct {
	sender   mail.Sender
	calendar calendar.Creator
	owner    Owner
	log      *zap.Logger
	now      func() time.Time
}

func NewService(sender mail.Sender, cal calendar.Creator, owner Owner, log *zap.Logger) UseCase {
	return &service{
		sender:   sender,
		calendar: cal,
		owner:    owner,
		log:      logger.Component(log, "scheduling"),
		now:      time.Now,
	}
}

func (s *service) SendSummary(ctx context.Context, req EmailRequest) (Result, error) {
	msg := mail.Message{
		To:       dedupe(req.UserEmail, s.owner.Email),
		Subject:  req.Subject,
		Text:     summaryText(req, s.owner.Name),
		Category: "summary",
	}
	if msg.Subject == "" {
		msg.Subject = defaultEmailSubject
	}
	html, err := summaryHTML(req, s.owner.Name)
	if err != nil {
		return Result{}, fmt.Errorf("render summary email: %w", err)
	}
	msg.HTML = html
	if req.ICSAttachment != "" {
		raw, err := base64.StdEncoding.DecodeString(req.ICSAttachment)
		if err != nil {
			return Result{}, apperr.Validation("icsAttachment must be base64 encoded", err.Error())
		}
		msg.Attachments = append(msg.Attachments, mail.Attachment{
			Filename:    "meeting.ics",
			ContentType: "text/calendar",
			Content:     raw,
		})
	}

	receipt, err := s.sender.Send(ctx, msg)
	if err != nil {
		return Result{}, err
	}
	return Result{MessageID: receipt.MessageID, Status: StatusSent}, nil
}

func (s *service) ScheduleMeeting(ctx context.Context, req MeetingRequest) (Result, error) {
	start, err := time.Parse(time.RFC3339, req.DateISO)
	if err != nil {
		return Result{}, apperr.Validation("Invalid dateISO", err.Error())
	}
	end, err := time.Parse(time.RFC3339, req.EndDateISO)
	if err != nil {
		return Result{}, apperr.Validation("Invalid endDateISO", err.Error())
	}
	if !start.Before(end) {
		return Result{}, apperr.Validation("End time must be after start time", "")
	}
	if !start.After(s.now()) {
		return Result{}, apperr.Validation("Meeting time must be in the future", "")
	}

	attendees := dedupe(append([]string{req.UserEmail, s.owner.Email}, req.Attendees...)...)

	if created, err := s.calendar.CreateEvent(ctx, calendar.Event{
		Summary:      req.Summary,
		Notes:        req.Description,
		Conversation: req.Conversation,
		Start:        start,
		End:          end,
		TimeZone:     req.Timezone,
	}); err != nil {
		s.log.Warn("calendar event skipped", zap.Error(err))
	} else {
		s.log.Info("calendar event linked", zap.String("event_id", created.EventID))
	}

	when := meetingTimes(start, end, req.Timezone)
	html, err := meetingHTML(req, when)
	if err != nil {
		return Result{}, fmt.Errorf("render meeting email: %w", err)
	}
	invite := ics.Request(ics.Meeting{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       start,
		End:         end,
		Organizer:   s.owner.Email,
		Attendees:   attendees,
	})

	receipt, err := s.sender.Send(ctx, mail.Message{
		To:       attendees,
		Subject:  meetingSubject(req.Summary),
		Text:     meetingText(req, when),
		HTML:     html,
		Category: "meeting",
		Attachments: []mail.Attachment{{
			Filename:    "meeting.ics",
			ContentType: "text/calendar; method=REQUEST",
			Content:     []byte(invite),
		}},
	})
	if err != nil {
		return Result{}, err
	}
	return Result{MessageID: receipt.MessageID, Status: StatusSent}, nil
}

func (s *service) Contact(ctx context.Context, req ContactRequest) Result {
	msg := mail.Message{
		To:       []string{s.owner.Email},
		ReplyTo:  req.Email,
		Subject:  "Portfolio Contact: " + req.Subject,
		Text:     contactText(req),
		Category: "contact",
	}
	html, err := contactHTML(req)
	if err != nil {
		s.log.Warn("contact html not rendered", zap.Error(err))
	}
	msg.HTML = html

	receipt, err := s.sender.Send(ctx, msg)
	if err != nil {
		s.log.Error("contact message not delivered",
			zap.String("from", req.Email),
			zap.String("name", req.FullName),
			zap.String("subject", req.Subject),
			zap.String("message", req.Message),
			zap.Error(err))
		return Result{MessageID: fmt.Sprintf("offline-%d", s.now().UnixMilli()), Status: StatusSent}
	}
	return Result{MessageID: receipt.MessageID, Status: StatusSent}
}

// meetingSubject keeps "Meeting: <summary>" within maxSubjectLength.
func meetingSubject(summary string) string {
	r := []rune(summary)
	if len(r) > maxSubjectLength-len(meetingPrefix) {
		return meetingPrefix + string(r[:maxSubjectLength-len(meetingPrefix)-3]) + "..."
	}
	return meetingPrefix + summary
}

// dedupe drops empty and repeated addresses, keeping first-seen order.
func dedupe(addrs ...string) []string {
	seen := make(map[string]struct{}, len(addrs))
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

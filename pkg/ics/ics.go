// Package ics renders iCalendar invitations attached to meeting emails.
package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	productID       = "-//AI Assistant//Meeting//EN"
	defaultSummary  = "Meeting"
	meetingLocation = "Google Meet"
)

// Meeting describes a single calendar event.
type Meeting struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Organizer   string
	Attendees   []string
}

// Request renders a METHOD:REQUEST invitation. Attendees are asked to RSVP
// and the organizer is set so clients can reply.
func Request(m Meeting) string {
	return render(m, ical.MethodRequest)
}

// Publish renders a METHOD:PUBLISH event that clients import without replying.
func Publish(m Meeting) string {
	return render(m, ical.MethodPublish)
}

func render(m Meeting, method ical.Method) string {
	now := time.Now().UTC()

	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(method)

	ev := cal.AddEvent(newUID(now))
	ev.SetDtStampTime(now)
	ev.SetCreatedTime(now)
	ev.SetStartAt(m.Start.UTC())
	ev.SetEndAt(m.End.UTC())
	ev.SetSummary(summaryOrDefault(m.Summary))
	if m.Description != "" {
		ev.SetDescription(m.Description)
	}
	ev.SetLocation(meetingLocation)
	ev.SetStatus(ical.ObjectStatusConfirmed)
	ev.SetProperty(ical.ComponentPropertySequence, "0")

	for _, a := range m.Attendees {
		if method == ical.MethodRequest {
			ev.AddAttendee(a, ical.WithCN(a), rsvpRequired)
		} else {
			ev.AddAttendee(a, ical.WithCN(a))
		}
	}
	if method == ical.MethodRequest && m.Organizer != "" {
		ev.SetProperty(ical.ComponentPropertyOrganizer, "mailto:"+m.Organizer)
	}
	return cal.Serialize()
}

// RSVP=TRUE in upper case; ical.WithRSVP writes the lower-case form.
var rsvpRequired = &ical.KeyValues{Key: string(ical.ParameterRsvp), Value: []string{"TRUE"}}

func newUID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("meeting-%d-%s@ai-assistant", now.UnixMilli(), suffix)
}

func summaryOrDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return defaultSummary
	}
	return s
}

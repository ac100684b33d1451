// Package intent classifies assistant queries by ordered keyword rules.
package intent

import (
	"strings"

	"github.com/akunal1/smart-resume-backend/pkg/chat"
)

// Intent is the discrete classification of a query.
type Intent string

const (
	ResumeDownload   Intent = "resume_download"
	NameQuery        Intent = "name_query"
	Availability     Intent = "availability_question"
	DirectScheduling Intent = "direct_scheduling_request"
	ExplicitSchedule Intent = "explicit_schedule_confirmation"
	TimeDiscussion   Intent = "time_discussion_redirect"
	Salary           Intent = "salary_redirect"
	Conversational   Intent = "conversational"
	NonCareer        Intent = "obvious_non_career"
	CareerOrGeneral  Intent = "career_or_general"
)

// NeedsModel reports whether the intent is answered by the language model.
func (i Intent) NeedsModel() bool {
	return i == Conversational || i == CareerOrGeneral
}

// signals are computed once per query and shared by all rules.
type signals struct {
	query        string
	history      []chat.Message
	availability bool
	jobContext   bool
}

// Rule is one entry of the classification table.
type Rule struct {
	Intent Intent
	match  func(s *signals) bool
}

// Rules is the classification table in evaluation order. First match wins.
var Rules = []Rule{
	{ResumeDownload, func(s *signals) bool { return containsAny(s.query, resumeDownloadKeywords) }},
	{NameQuery, func(s *signals) bool { return containsAny(s.query, nameQueryKeywords) }},
	// Job-description text suppresses the scheduling intents.
	{Availability, func(s *signals) bool { return s.availability && !s.jobContext }},
	{DirectScheduling, func(s *signals) bool {
		return containsAny(s.query, directSchedulingKeywords) && !s.jobContext
	}},
	{ExplicitSchedule, func(s *signals) bool { return strings.Contains(s.query, explicitSchedulePhrase) }},
	{TimeDiscussion, func(s *signals) bool {
		return containsAny(s.query, timeDiscussionKeywords) &&
			(s.availability || historyMentionsMeeting(s.history))
	}},
	{Salary, func(s *signals) bool { return containsAny(s.query, salaryKeywords) }},
	{Conversational, func(s *signals) bool { return containsAny(s.query, conversationalKeywords) }},
	{NonCareer, func(s *signals) bool { return containsAny(s.query, nonCareerKeywords) }},
}

// Classify returns the first matching intent for query, or CareerOrGeneral.
func Classify(query string, history []chat.Message) Intent {
	q := strings.ToLower(query)
	s := &signals{
		query:        q,
		history:      history,
		availability: containsAny(q, availabilityKeywords),
		jobContext:   containsAny(q, jobContextKeywords),
	}
	for _, r := range Rules {
		if r.match(s) {
			return r.Intent
		}
	}
	return CareerOrGeneral
}

func historyMentionsMeeting(history []chat.Message) bool {
	for _, m := range history {
		if containsAny(strings.ToLower(m.Content), meetingContextKeywords) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

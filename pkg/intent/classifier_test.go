package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akunal1/smart-resume-backend/pkg/chat"
)

func TestClassify(t *testing.T) {
	meetingThread := []chat.Message{
		chat.User("Are you free tomorrow?"),
		chat.Assistant("Would you like to schedule a meeting to talk about potential collaboration?"),
	}

	tests := []struct {
		name    string
		query   string
		history []chat.Message
		want    Intent
	}{
		{"resume download", "Can you download my resume?", nil, ResumeDownload},
		{"resume download wins over name", "Download my resume, who am I?", nil, ResumeDownload},
		{"name query", "What is my name?", nil, NameQuery},
		{"name query wins over availability", "Who am I and are you free today?", nil, NameQuery},
		{"availability", "Are you free tomorrow?", nil, Availability},
		{"availability case insensitive", "ARE YOU AVAILABLE next week?", nil, Availability},
		{"direct scheduling", "Can we meet next Monday?", nil, DirectScheduling},
		{"direct scheduling suppressed by job context", "Let's schedule a meeting about the position", nil, CareerOrGeneral},
		{"explicit schedule", "Schedule meeting", nil, ExplicitSchedule},
		{"explicit schedule with job context", "Please schedule meeting for the senior role", nil, ExplicitSchedule},
		{"time discussion in meeting thread", "What time works for you?", meetingThread, TimeDiscussion},
		{"time discussion without thread", "What time works for you?", nil, CareerOrGeneral},
		{"time discussion flagged by availability", "Are you available tomorrow, what time suits the hiring team?", nil, TimeDiscussion},
		{"salary", "What are your salary expectations?", nil, Salary},
		{"conversational", "Hello, how are you?", nil, Conversational},
		{"non career", "What is the capital of France?", nil, NonCareer},
		{"name etymology", "What does the name Avinash mean?", nil, NonCareer},
		{"career default", "Tell me about your Go projects", nil, CareerOrGeneral},
		{"time zone question", "What's the time zone there?", []chat.Message{}, NonCareer},
		{"hi inside a word", "Which stack do you prefer?", nil, Conversational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.query, tt.history))
		})
	}
}

func TestClassify_HiringSuppressesMeetingIntents(t *testing.T) {
	got := Classify("We are hiring - are you available tomorrow for an interview?", nil)

	assert.NotContains(t, []Intent{Availability, DirectScheduling, ExplicitSchedule, TimeDiscussion}, got)
	assert.True(t, got.NeedsModel())
}

func TestClassify_JobContextNeverDirectScheduling(t *testing.T) {
	for _, sched := range directSchedulingKeywords {
		for _, job := range jobContextKeywords {
			got := Classify(sched+" "+job, nil)
			assert.NotEqual(t, DirectScheduling, got, "%q + %q", sched, job)
		}
	}
}

func TestClassify_EveryDownloadKeyword(t *testing.T) {
	for _, k := range resumeDownloadKeywords {
		assert.Equal(t, ResumeDownload, Classify("please "+k, nil), k)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	history := []chat.Message{chat.Assistant("Happy to set up a meeting")}
	for _, q := range []string{"what time?", "hi", "salary range", "tell me about kafka"} {
		assert.Equal(t, Classify(q, history), Classify(q, history), q)
	}
}

func TestIntent_NeedsModel(t *testing.T) {
	assert.True(t, Conversational.NeedsModel())
	assert.True(t, CareerOrGeneral.NeedsModel())
	for _, r := range Rules {
		if r.Intent != Conversational {
			assert.False(t, r.Intent.NeedsModel(), r.Intent)
		}
	}
}

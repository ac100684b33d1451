package assistant

import (
	"fmt"

	"github.com/akunal1/smart-resume-backend/pkg/intent"
	"github.com/akunal1/smart-resume-backend/pkg/llm"
)

// Metadata model tags for responses not produced by the language model.
const (
	ModelDirect           = "direct"
	ModelMeetingOffer     = "meeting-offer"
	ModelMeetingScheduled = "meeting-scheduled"
	ModelCareerFilter     = "career-filter"
	ModelDemo             = "demo"
	ModelDemoFallback     = "demo-fallback"
)

const (
	nameKnownFormat  = "Your name is %s."
	nameUnknownText  = "I don't have your name on record. Could you please tell me your name?"
	availabilityText = "I'd be happy to discuss opportunities! Would you like to schedule a meeting to talk about potential collaboration or job opportunities? Just say \"Schedule meeting\" if you'd like to proceed."
	schedulingText   = "Great! Let me help you schedule a meeting. Please fill in your details below."
	timeRedirectText = "To schedule our meeting, please send me an email with your preferred time slots and I'll confirm availability. Let me open the email form for you."
	salaryText       = "I'd prefer to discuss compensation details in a meeting where we can talk about the role requirements and mutual fit. Would you like to schedule a time to discuss this further? Just say \"Schedule meeting\""
	nonCareerText    = "I'm set up to help with your professional topics. I can't assist with that request. If you'd like, ask me about your tech stack, projects, job search, or workplace workflows."
	demoText         = "I'm sorry, I'm currently unable to access my full knowledge base. Please try again later or contact me directly if you have questions about my professional background."
	demoFallbackText = "I'm sorry, I'm having trouble connecting to my knowledge base right now. Could you please try asking your question again in a moment?"
)

// scriptedUsage is reported for demo responses.
var scriptedUsage = llm.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150}

func popup(v bool) *bool { return &v }

func downloadText(url string) string {
	return fmt.Sprintf("You can download my resume here: [Download Resume PDF](%s)", url)
}

// canned builds the response for intents answered without the model.
func (s *service) canned(in intent.Intent, req Request) Response {
	switch in {
	case intent.ResumeDownload:
		return direct(downloadText(s.downloadURL), ModelDirect, nil)
	case intent.NameQuery:
		if req.UserName != "" {
			return direct(fmt.Sprintf(nameKnownFormat, req.UserName), ModelDirect, nil)
		}
		return direct(nameUnknownText, ModelDirect, nil)
	case intent.Availability:
		return direct(availabilityText, ModelMeetingOffer, popup(false))
	case intent.DirectScheduling, intent.ExplicitSchedule:
		return direct(schedulingText, ModelMeetingScheduled, popup(true))
	case intent.TimeDiscussion:
		return direct(timeRedirectText, ModelMeetingScheduled, popup(true))
	case intent.Salary:
		return direct(salaryText, ModelMeetingOffer, popup(false))
	default:
		return direct(nonCareerText, ModelCareerFilter, nil)
	}
}

func direct(message, model string, showPopup *bool) Response {
	return Response{
		Message:  message,
		Metadata: Metadata{Model: model, ShowMeetingPopup: showPopup},
	}
}

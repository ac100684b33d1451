package intent

// Keyword lists are matched as lower-case substrings of the query.
// Append only: overlaps between lists are resolved by rule order.

var resumeDownloadKeywords = []string{
	"download resume",
	"download my resume",
	"download cv",
	"download my cv",
	"get resume",
	"get my resume",
	"send resume",
	"send my resume",
	"resume pdf",
	"cv pdf",
	"download pdf",
	"can i download",
	"your resume",
	"curriculum vitae",
	"my resume",
	"give me resume",
	"can i have resume",
	"i want resume",
	"show me resume",
	"share resume",
}

var nameQueryKeywords = []string{
	"what is my name",
	"what's my name",
	"whats my name",
	"my name is",
	"tell me my name",
	"do you know my name",
	"what do you call me",
	"who am i",
}

var availabilityKeywords = []string{
	"are you available",
	"are you free",
	"when are you free",
	"when are you available",
	"available tomorrow",
	"available today",
	"available next week",
	"free tomorrow",
	"free today",
	"free next week",
}

var directSchedulingKeywords = []string{
	"schedule a meeting",
	"schedule a call",
	"book a meeting",
	"set up a meeting",
	"can we schedule",
	"can we meet",
	"let's schedule",
	"let's meet",
	"arrange a meeting",
	"arrange a call",
	"book an appointment",
	"set up an appointment",
}

var jobContextKeywords = []string{
	"we are looking for",
	"looking for a",
	"hiring",
	"job opening",
	"position",
	"developer with",
	"experience",
	"years of experience",
	"candidate",
	"applicant",
	"role",
	"requirements",
	"skills",
	"qualification",
}

const explicitSchedulePhrase = "schedule meeting"

var timeDiscussionKeywords = []string{
	"available at",
	"free at",
	"what time",
	"which time",
	"when would",
	"when can",
	"schedule",
}

// meetingContextKeywords mark a history message as part of a scheduling thread.
var meetingContextKeywords = []string{
	"schedule a meeting",
	"schedule meeting",
	"meeting",
	"available",
	"free",
}

var salaryKeywords = []string{
	"salary",
	"compensation",
	"pay",
	"wage",
	"salary expectations",
	"salary range",
	"what do you charge",
	"hourly rate",
	"annual salary",
	"compensation package",
	"salary requirement",
	"expected salary",
	"market rate",
	"developer salaries",
	"salary data",
}

var conversationalKeywords = []string{
	"hello",
	"hi",
	"hey",
	"good morning",
	"good afternoon",
	"good evening",
	"how are you",
	"how do you do",
	"nice to meet you",
	"pleased to meet you",
	"thank you",
	"thanks",
	"welcome",
	"bye",
	"goodbye",
	"see you",
	"talk to you later",
	"have a good day",
	"have a nice day",
	"how is it going",
	"what's up",
	"how have you been",
	"long time no see",
	"it's been a while",
	"how are things",
	"how is everything",
	"what are you up to",
	"how is your day",
	"how was your day",
	"how is your week",
	"how was your weekend",
	"are you doing well",
	"i hope you are well",
	"i hope you're doing well",
	"tell me about yourself",
	"who are you",
	"what are you",
	"introduce yourself",
	"about yourself",
	"something about yourself",
	"no problem",
	"no worries",
	"sure thing",
	"alright",
	"okay",
	"ok",
	"cool",
	"great",
	"awesome",
	"perfect",
	"sounds good",
}

var nonCareerKeywords = []string{
	"capital of",
	"what is the weather",
	"current president",
	"president of",
	"who is the president",
	"prime minister of",
	"who is the prime minister",
	"population of",
	"currency of",
	"time zone",
	"geography",
	"history of",
	"when was",
	"who invented",
	"recipe for",
	"how to cook",
	"sports score",
	"celebrity",
	"movie",
	"book recommendation",
	"travel",
	"vacation",
	"restaurant",
	"shopping",
	"what does the name",
	"meaning of the name",
	"name means",
	"origin of the name",
	"etymology of",
}

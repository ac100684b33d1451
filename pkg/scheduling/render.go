package scheduling

import (
	"html/template"
	"strings"
	"time"
)

const (
	longLayout  = "Monday, January 2, 2006 at 03:04 PM"
	shortLayout = "03:04 PM"
)

type window struct {
	Start    string
	End      string
	TimeZone string
}

// meetingTimes formats the slot in the attendee's zone, falling back to UTC
// for unknown zone names.
func meetingTimes(start, end time.Time, tz string) window {
	loc, err := time.LoadLocation(tz)
	if err != nil || tz == "" {
		loc = time.UTC
	}
	return window{
		Start:    start.In(loc).Format(longLayout),
		End:      end.In(loc).Format(shortLayout),
		TimeZone: tz,
	}
}

func nameOrUser(name string) string {
	if name == "" {
		return "User"
	}
	return name
}

func summaryText(req EmailRequest, owner string) string {
	var b strings.Builder
	b.WriteString("Summary of Virtual Assistance Discussion\n")
	b.WriteString("=====================================\n\n")
	b.WriteString("SUMMARY:\n" + req.Summary + "\n\n")
	if req.Description != "" {
		b.WriteString(nameOrUser(req.UserName) + "'s NOTE:\n" + req.Description + "\n\n")
	}
	if req.Conversation != "" {
		b.WriteString("CONVERSATION HISTORY:\n" + req.Conversation + "\n\n")
	}
	b.WriteString("---\nGenerated by AI Voice Assistant from your conversation with " + owner + ".\n")
	b.WriteString("This is an automated summary of your discussion. No spam, just insights.\n\n")
	b.WriteString("If you received this email by mistake, you can safely ignore it.")
	return b.String()
}

func meetingText(req MeetingRequest, w window) string {
	var b strings.Builder
	b.WriteString("📅 MEETING SCHEDULED\n")
	b.WriteString("====================\n\n")
	b.WriteString("DATE & TIME: " + w.Start + " - " + w.End + "\n")
	b.WriteString("TIMEZONE: " + w.TimeZone + "\n\n")
	if req.Description != "" {
		b.WriteString(nameOrUser(req.UserName) + "'s NOTE:\n" + req.Description + "\n\n")
	}
	b.WriteString("SUMMARY OF VIRTUAL ASSISTANCE DISCUSSION:\n" + req.Summary + "\n\n")
	if req.Conversation != "" {
		b.WriteString("CONVERSATION HISTORY:\n" + req.Conversation + "\n\n")
	}
	b.WriteString("---\nThis meeting was scheduled by AI Voice Assistant based on your conversation.\n")
	b.WriteString("Powered by AI • Keep your calendar updated")
	return b.String()
}

func contactText(req ContactRequest) string {
	var b strings.Builder
	b.WriteString("New Portfolio Contact\n\n")
	b.WriteString("Contact Information:\n")
	b.WriteString("Name: " + req.FullName + "\n")
	b.WriteString("Email: " + req.Email + "\n")
	if req.Company != "" {
		b.WriteString("Company: " + req.Company + "\n")
	}
	b.WriteString("\nSubject: " + req.Subject + "\n\n")
	b.WriteString("Message:\n" + req.Message + "\n\n")
	b.WriteString("---\nThis message was sent from your portfolio contact form.\n")
	b.WriteString("You can reply directly to this email to respond to " + req.FullName + ".")
	return b.String()
}

type summaryLine struct {
	Bullet bool
	Text   string
}

// summaryLines splits an AI summary so "•" lines render as bullets and the
// rest as headings.
func summaryLines(s string) []summaryLine {
	var out []summaryLine
	for _, line := range strings.Split(s, "\n") {
		if rest, ok := strings.CutPrefix(line, "•"); ok {
			out = append(out, summaryLine{Bullet: true, Text: strings.TrimSpace(rest)})
			continue
		}
		out = append(out, summaryLine{Text: line})
	}
	return out
}

var templates = template.Must(template.New("mail").Funcs(template.FuncMap{
	"lines":     summaryLines,
	"nameOr":    nameOrUser,
	"paragraph": func(s string) []string { return strings.Split(s, "\n") },
}).Parse(`
{{define "summaryBlock"}}
{{range lines .}}{{if .Bullet}}<div style="display:flex;margin-bottom:8px"><span style="color:#0066cc;margin-right:8px;font-weight:bold">•</span><span style="color:#495057;line-height:1.5">{{.Text}}</span></div>{{else}}<div style="margin-bottom:8px"><strong style="color:#0066cc;font-size:16px">{{.Text}}</strong></div>{{end}}{{end}}
{{end}}

{{define "note"}}
<div style="margin-bottom:25px">
  <h3 style="color:#2c3e50;font-size:18px">📝 {{nameOr .UserName}}'s Note</h3>
  <div style="background:#f8f9fa;padding:15px;border-radius:6px;border-left:3px solid #28a745">
    <p style="margin:0;line-height:1.6;color:#495057">{{range $i, $l := paragraph .Description}}{{if $i}}<br>{{end}}{{$l}}{{end}}</p>
  </div>
</div>
{{end}}

{{define "conversation"}}
<div style="margin-bottom:25px">
  <h3 style="color:#2c3e50;font-size:18px">💬 Conversation History</h3>
  <div style="background:#f8f9fa;border:1px solid #dee2e6;padding:15px;border-radius:6px;font-family:'Courier New',monospace;font-size:13px;white-space:pre-wrap">{{.}}</div>
</div>
{{end}}

{{define "summary"}}
<div style="font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;max-width:650px;margin:0 auto;background:#ffffff">
  <div style="background:linear-gradient(135deg,#4facfe 0%,#00f2fe 100%);padding:40px 30px;text-align:center;border-radius:10px 10px 0 0">
    <h1 style="color:#ffffff;margin:0;font-size:28px;font-weight:300">Summary of Virtual Assistance Discussion</h1>
    <p style="color:#e8f8ff;margin:10px 0 0 0;font-size:16px">Conversation insights and next steps</p>
  </div>
  <div style="padding:30px;border:1px solid #e0e0e0">
    <h2 style="color:#2c3e50;font-size:20px">📋 Summary</h2>
    <div style="background:#f0f8ff;border:1px solid #b8daff;padding:20px;border-radius:8px">{{template "summaryBlock" .Req.Summary}}</div>
    {{if .Req.Description}}{{template "note" .Req}}{{end}}
    {{if .Req.Conversation}}{{template "conversation" .Req.Conversation}}{{end}}
  </div>
  <div style="text-align:center;padding:20px;background:#f8f9fa;border-top:1px solid #dee2e6">
    <p style="margin:0;color:#6c757d;font-size:14px">Generated by <strong>AI Voice Assistant</strong> from your conversation with {{.Owner}}.</p>
    <p style="margin:10px 0;color:#adb5bd;font-size:12px">This is an automated summary of your discussion. No spam, just insights.</p>
  </div>
</div>
{{end}}

{{define "meeting"}}
<div style="font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;max-width:650px;margin:0 auto;background:#ffffff">
  <div style="background:linear-gradient(135deg,#667eea 0%,#764ba2 100%);padding:40px 30px;text-align:center;border-radius:10px 10px 0 0">
    <h1 style="color:#ffffff;margin:0;font-size:28px;font-weight:300">📅 Meeting Scheduled</h1>
    <p style="color:#e8e8e8;margin:10px 0 0 0;font-size:16px">AI Assistant has arranged your meeting</p>
  </div>
  <div style="padding:30px;border:1px solid #e0e0e0">
    <div style="background:#f8f9ff;border-left:4px solid #667eea;padding:25px;border-radius:8px;margin-bottom:25px">
      <p><strong style="color:#2c3e50">Date &amp; Time:</strong><br><span style="color:#34495e;font-size:16px">{{.When.Start}} - {{.When.End}}</span></p>
      <p><strong style="color:#2c3e50">Timezone:</strong> <span style="color:#34495e">{{.When.TimeZone}}</span></p>
    </div>
    {{if .Req.Description}}{{template "note" .Req}}{{end}}
    <h3 style="color:#2c3e50;font-size:18px">Summary of Virtual Assistance Discussion</h3>
    <div style="background:#fff3cd;border:1px solid #ffeaa7;padding:20px;border-radius:8px">{{template "summaryBlock" .Req.Summary}}</div>
    {{if .Req.Conversation}}{{template "conversation" .Req.Conversation}}{{end}}
  </div>
  <div style="text-align:center;padding:20px;background:#f8f9fa;border-top:1px solid #dee2e6">
    <p style="margin:0;color:#6c757d;font-size:14px">This meeting was scheduled by <strong>AI Voice Assistant</strong> based on your conversation.</p>
    <p style="margin:10px 0 0 0;color:#adb5bd;font-size:12px">Powered by AI • Keep your calendar updated</p>
  </div>
</div>
{{end}}

{{define "contact"}}
<div style="font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;max-width:650px;margin:0 auto;background:#ffffff;border:1px solid #e0e0e0;border-radius:10px">
  <div style="background:linear-gradient(135deg,#4facfe 0%,#00f2fe 100%);padding:40px 30px;text-align:center;border-radius:10px 10px 0 0">
    <h1 style="color:#ffffff;margin:0;font-size:28px;font-weight:300">New Portfolio Contact</h1>
    <p style="color:#e8f8ff;margin:10px 0 0 0;font-size:16px">Someone reached out through your portfolio</p>
  </div>
  <div style="padding:30px">
    <div style="background:#f8f9fa;padding:20px;border-radius:8px;margin-bottom:20px">
      <h2 style="color:#333;margin:0 0 15px 0;font-size:18px">Contact Information</h2>
      <p><strong>Name:</strong> {{.FullName}}</p>
      <p><strong>Email:</strong> <a href="mailto:{{.Email}}" style="color:#4facfe">{{.Email}}</a></p>
      {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
    </div>
    <h2 style="color:#333;margin:0 0 15px 0;font-size:18px">Message</h2>
    <div style="background:#f8f9fa;padding:20px;border-radius:8px;border-left:4px solid #4facfe">
      <h3 style="color:#333;margin:0 0 10px 0;font-size:16px">{{.Subject}}</h3>
      <div style="color:#555;line-height:1.6;white-space:pre-wrap">{{.Message}}</div>
    </div>
    <div style="text-align:center;padding-top:20px;border-top:1px solid #e0e0e0;color:#666;font-size:14px">
      <p>This message was sent from your portfolio contact form.</p>
      <p>You can reply directly to this email to respond to {{.FullName}}.</p>
    </div>
  </div>
</div>
{{end}}
`))

func execute(name string, data any) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}

func summaryHTML(req EmailRequest, owner string) (string, error) {
	return execute("summary", struct {
		Req   EmailRequest
		Owner string
	}{req, owner})
}

func meetingHTML(req MeetingRequest, w window) (string, error) {
	return execute("meeting", struct {
		Req  MeetingRequest
		When window
	}{req, w})
}

func contactHTML(req ContactRequest) (string, error) {
	return execute("contact", req)
}

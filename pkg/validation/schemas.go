package validation

const emailPattern = `"^[^\\s@]+@[^\\s@]+\\.[^\\s@]+$"`

var (
	Ask = MustCompile("ask", `{
		"type": "object",
		"required": ["query", "mode"],
		"properties": {
			"query": {"type": "string", "minLength": 1, "maxLength": 1000},
			"mode": {"type": "string", "enum": ["text", "voice"]},
			"history": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["role", "content"],
					"properties": {
						"role": {"type": "string", "enum": ["user", "assistant"]},
						"content": {"type": "string"}
					}
				}
			},
			"userName": {"type": "string"},
			"options": {
				"type": "object",
				"properties": {"streaming": {"type": "boolean"}}
			}
		}
	}`)

	Summary = MustCompile("summary", `{
		"type": "object",
		"required": ["chatHistory"],
		"properties": {
			"chatHistory": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["role", "content"],
					"properties": {
						"role": {"type": "string"},
						"content": {"type": "string"},
						"timestamp": {"type": "string"}
					}
				}
			}
		}
	}`)

	Email = MustCompile("email", `{
		"type": "object",
		"required": ["userEmail"],
		"properties": {
			"userEmail": {"type": "string", "pattern": `+emailPattern+`},
			"userName": {"type": "string"},
			"description": {"type": "string"},
			"summary": {"type": "string"},
			"conversation": {"type": "string"},
			"icsAttachment": {"type": "string"},
			"subject": {"type": "string"}
		}
	}`)

	Meeting = MustCompile("meeting", `{
		"type": "object",
		"required": ["userEmail", "dateISO", "endDateISO"],
		"properties": {
			"userEmail": {"type": "string", "pattern": `+emailPattern+`},
			"userName": {"type": "string"},
			"dateISO": {"type": "string", "minLength": 1},
			"endDateISO": {"type": "string", "minLength": 1},
			"description": {"type": "string"},
			"attendees": {"type": "array", "items": {"type": "string"}},
			"timezone": {"type": "string"},
			"summary": {"type": "string"},
			"conversation": {"type": "string"}
		}
	}`)

	Contact = MustCompile("contact", `{
		"type": "object",
		"required": ["fullName", "email", "subject", "message"],
		"properties": {
			"fullName": {"type": "string", "minLength": 1},
			"email": {"type": "string", "pattern": `+emailPattern+`},
			"company": {"type": "string"},
			"subject": {"type": "string", "minLength": 1},
			"message": {"type": "string", "minLength": 1}
		}
	}`)
)

package chat

const (
	historyWindow = 6
	maxKept       = 4
)

// Assemble builds the message sequence sent to the model:
// one system message, at most one user and one assistant message taken from
// the tail of history (chronological order preserved), then the current query.
func Assemble(systemPrompt string, history []Message, query string) []Message {
	recent := history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	kept := make([]Message, 0, 2)
	var haveUser, haveAssistant bool
	for i := len(recent) - 1; i >= 0; i-- {
		msg := recent[i]
		switch msg.Role {
		case RoleUser:
			if haveUser {
				continue
			}
			haveUser = true
		case RoleAssistant:
			if haveAssistant {
				continue
			}
			haveAssistant = true
		default:
			continue
		}
		kept = append([]Message{msg}, kept...)
		if (haveUser && haveAssistant) || len(kept) >= maxKept {
			break
		}
	}

	out := make([]Message, 0, len(kept)+2)
	out = append(out, System(systemPrompt))
	out = append(out, kept...)
	out = append(out, User(query))
	return out
}

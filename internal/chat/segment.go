package chat

import (
	"regexp"
	"strings"
	"time"
)

// RawMessage is one discrete message cut out of a chat export. It is a
// transient value: the classifier consumes it and it is never persisted.
type RawMessage struct {
	SentAt time.Time
	Sender string
	Body   string
	Raw    string // original line(s), newline-joined for continuations
}

// Exported chat header variations, tried in order:
//
//	[D/M/YY, H:MM:SS AM/PM] Name: text
//	[D/M/YYYY, HH:MM:SS] Name: text
//	D/M/YY, HH:MM - Name: text
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}),?\s*(\d{1,2}:\d{2}(?::\d{2})?\s*(?:AM|PM|am|pm)?)\]\s*([^:]+):\s*(.+)`),
	regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}),?\s*(\d{1,2}:\d{2}(?::\d{2})?)\]\s*([^:]+):\s*(.+)`),
	regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),?\s*(\d{1,2}:\d{2})\s*-\s*([^:]+):\s*(.+)`),
}

// Segment splits the full text of a chat export into discrete messages.
// Lines matching no header pattern continue the previous message: their
// text is space-joined onto its body and the raw line appended. Leading
// lines with no message to attach to are dropped. Segment keeps no state
// between calls.
func Segment(document string, now time.Time) []RawMessage {
	var messages []RawMessage
	var cur *RawMessage

	for _, line := range strings.Split(document, "\n") {
		if m := matchHeader(line); m != nil {
			if cur != nil {
				messages = append(messages, *cur)
			}
			cur = &RawMessage{
				SentAt: ResolveTimestamp(m[1], m[2], now),
				Sender: strings.TrimSpace(m[3]),
				Body:   strings.TrimSpace(m[4]),
				Raw:    line,
			}
			continue
		}
		if cur != nil {
			cur.Body += " " + strings.TrimSpace(line)
			cur.Raw += "\n" + line
		}
	}
	if cur != nil {
		messages = append(messages, *cur)
	}
	return messages
}

// ParseLine parses a single message string. A line with no recognizable
// header is wrapped as a manual entry sent now by an unknown sender.
func ParseLine(line string, now time.Time) RawMessage {
	if m := matchHeader(line); m != nil {
		return RawMessage{
			SentAt: ResolveTimestamp(m[1], m[2], now),
			Sender: strings.TrimSpace(m[3]),
			Body:   strings.TrimSpace(m[4]),
			Raw:    line,
		}
	}
	return RawMessage{
		SentAt: now,
		Sender: "Unknown",
		Body:   line,
		Raw:    line,
	}
}

func matchHeader(line string) []string {
	for _, p := range headerPatterns {
		if m := p.FindStringSubmatch(line); m != nil {
			return m
		}
	}
	return nil
}

package chat

import (
	"regexp"
	"strings"
)

// Non-substantive chat-system lines: group management, media placeholders,
// system notices, and bodies with no real text. Patterns run against the
// lowercased body.
var metaPatterns = []*regexp.Regexp{
	// group management
	regexp.MustCompile(`you created group`),
	regexp.MustCompile(`you changed the group name`),
	regexp.MustCompile(`you changed this group's icon`),
	regexp.MustCompile(`added you`),
	regexp.MustCompile(`left the group`),
	regexp.MustCompile(`removed from the group`),
	regexp.MustCompile(`group description changed`),

	// media placeholders and bare links
	regexp.MustCompile(`^https?://`),
	regexp.MustCompile(`omitted`),

	// system notifications
	regexp.MustCompile(`messages and calls are end-to-end encrypted`),
	regexp.MustCompile(`security code changed`),
	regexp.MustCompile(`missed voice call`),
	regexp.MustCompile(`missed video call`),

	// no meaningful text
	regexp.MustCompile(`^[^a-z0-9]*$`),
	regexp.MustCompile(`^[0-9\s]*$`),
}

// minBodyLen is the shortest trimmed body still worth classifying.
const minBodyLen = 5

// IsMeta reports whether a message body is a chat-system notification or
// otherwise too insubstantial to classify. Meta messages are dropped
// before classification and never produce a record or an error.
func IsMeta(body string) bool {
	lower := strings.ToLower(body)
	for _, p := range metaPatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return len(strings.TrimSpace(body)) < minBodyLen
}

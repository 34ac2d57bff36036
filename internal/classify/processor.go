package classify

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/rpillai/babylog/internal/activity"
	"github.com/rpillai/babylog/internal/chat"
)

// Process turns one raw message into a structured activity record. The body
// is filtered for chat-system noise, classified against the keyword catalog,
// and mined for an embedded event time, an amount with unit, and a duration.
// Returns nil when the message is meta, blank, or matches no keyword —
// never an error: recoverable conditions degrade to "no activity".
func Process(msg chat.RawMessage) *activity.Record {
	body := strings.TrimSpace(msg.Body)
	if body == "" || chat.IsMeta(msg.Body) {
		return nil
	}

	m, ok := Classify(body)
	if !ok {
		return nil
	}

	return buildRecord(msg, m, activity.OriginImport)
}

// ProcessManual handles a directly-typed entry. Unlike the import path, a
// line that matches no keyword still becomes an OTHER record: the caller
// asked for it to be kept, so it is kept uncategorized.
func ProcessManual(text, sender string, now time.Time) *activity.Record {
	body := strings.TrimSpace(text)
	if body == "" {
		return nil
	}

	msg := chat.ParseLine(text, now)
	if sender != "" {
		msg.Sender = sender
	}

	m, ok := Classify(msg.Body)
	if !ok {
		m = Match{Type: activity.TypeOther, Category: activity.CategoryOther}
	}
	return buildRecord(msg, m, activity.OriginManual)
}

// ProcessDocument runs the full pipeline over an exported chat log and
// reports how many messages were read and how many classified.
func ProcessDocument(document string, now time.Time) ([]*activity.Record, int) {
	messages := chat.Segment(document, now)
	var records []*activity.Record
	for _, msg := range messages {
		if rec := Process(msg); rec != nil {
			records = append(records, rec)
		}
	}
	return records, len(messages)
}

// ReadDocument loads an export file for ProcessDocument. Unreadable input
// is the one fatal condition in the pipeline.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read export: %w", err)
	}
	return string(data), nil
}

func buildRecord(msg chat.RawMessage, m Match, origin string) *activity.Record {
	rec := &activity.Record{
		ID:          activity.NewID(),
		Timestamp:   chat.EmbeddedTime(msg.Body, msg.SentAt),
		Category:    m.Category,
		Type:        m.Type,
		Description: strings.TrimSpace(msg.Body),
		Notes:       extractNotes(msg.Body, m.Keyword),
		Tags:        ExtractTags(msg.Body),
		Origin:      origin,
		Sender:      msg.Sender,
	}

	if q, ok := ExtractQuantity(msg.Body); ok {
		v := q.Value
		rec.Amount = &v
		rec.Unit = q.Unit
	}
	if d, ok := ExtractDuration(msg.Body); ok {
		mins := d
		rec.DurationMinutes = &mins
	}

	return rec
}

// extractNotes returns the sentence containing the matched keyword, or the
// first 100 characters when no sentence holds it.
func extractNotes(body, keyword string) string {
	if keyword != "" {
		for _, sentence := range strings.Split(body, ".") {
			if strings.Contains(strings.ToLower(sentence), keyword) {
				return strings.TrimSpace(sentence)
			}
		}
	}
	runes := []rune(body)
	if len(runes) > 100 {
		runes = runes[:100]
	}
	return strings.TrimSpace(string(runes))
}

var hashtagPattern = regexp.MustCompile(`#(\w+)`)

var autoTags = []struct {
	tag   string
	words []string
}{
	{"urgent", []string{"urgent", "emergency", "important"}},
	{"positive", []string{"happy", "good", "great", "excellent"}},
	{"concern", []string{"concern", "worried", "problem"}},
	{"milestone", []string{"first", "milestone", "new"}},
}

// ExtractTags collects #hashtags plus automatic sentiment tags, with
// duplicates removed.
func ExtractTags(body string) []string {
	var tags []string
	for _, m := range hashtagPattern.FindAllStringSubmatch(body, -1) {
		tags = append(tags, m[1])
	}

	lower := strings.ToLower(body)
	for _, at := range autoTags {
		for _, w := range at.words {
			if strings.Contains(lower, w) {
				tags = append(tags, at.tag)
				break
			}
		}
	}
	return activity.DedupTags(tags)
}

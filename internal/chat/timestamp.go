package chat

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date layouts tried in order: day-first then month-first, 4- and 2-digit
// years. The first layout that parses wins.
var dateLayouts = []string{
	"2/1/2006",
	"2/1/06",
	"1/2/2006",
	"1/2/06",
}

// Time layouts tried in order: 12-hour forms before 24-hour forms, so a
// meridiem marker is never silently ignored.
var timeLayouts = []string{
	"3:04:05 PM",
	"3:04 PM",
	"15:04:05",
	"15:04",
}

// ResolveTimestamp parses a header date token and time token independently.
// An unparseable date falls back to now's date; an unparseable time falls
// back to now's time of day. This fixes the message's nominal send time
// only; EmbeddedTime decides the event time.
func ResolveTimestamp(dateTok, timeTok string, now time.Time) time.Time {
	date := now
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, strings.TrimSpace(dateTok)); err == nil {
			date = d
			break
		}
	}

	// time.Parse wants an uppercase meridiem; exports write both cases
	tok := strings.ToUpper(strings.TrimSpace(timeTok))
	hour, min, sec := now.Hour(), now.Minute(), now.Second()
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, tok); err == nil {
			hour, min, sec = t.Hour(), t.Minute(), t.Second()
			break
		}
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, min, sec, 0, now.Location())
}

// Embedded time-of-day tokens inside a message body, e.g. "1:18 pm" or
// "13:30". The meridiem form is tried first.
var embeddedTimePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*([ap]m)`),
	regexp.MustCompile(`(\d{1,2}):(\d{2})`),
}

// EmbeddedTime scans a message body for a time-of-day mention and, when
// found, rebuilds the timestamp with the message's calendar date and the
// embedded hour/minute. The embedded time is when the activity actually
// happened, which is usually earlier than when it was reported, so it
// supersedes the send time. The date is never rolled backward even when
// the embedded time lands after the send time; an early-morning report of
// the previous evening keeps the report's date. No match returns def
// unchanged.
func EmbeddedTime(body string, def time.Time) time.Time {
	for _, p := range embeddedTimePatterns {
		m := p.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		hour, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])

		if len(m) > 3 && m[3] != "" {
			switch strings.ToLower(m[3]) {
			case "pm":
				if hour != 12 {
					hour += 12
				}
			case "am":
				if hour == 12 {
					hour = 0
				}
			}
		}

		if hour > 23 || min > 59 {
			continue
		}
		return time.Date(def.Year(), def.Month(), def.Day(), hour, min, 0, 0, def.Location())
	}
	return def
}

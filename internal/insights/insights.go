// Package insights derives short natural-language findings from a batch of
// classified activity records: week-over-week trends, schedule consistency,
// and day/night distribution. Analyses are pure functions of the record set
// and a reference date, so repeated calls over unchanged data yield
// identical findings.
package insights

import (
	"math"
	"sort"
	"time"

	"github.com/rpillai/babylog/internal/activity"
)

// Finding severity levels, rendered as sentiment by the CLI.
const (
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Finding is one templated observation about a pattern in the data. It is
// recomputed on every request and never persisted.
type Finding struct {
	Text     string
	Severity string
	Icon     string
}

// inRange returns the records falling within the window
// [today-(daysBack+offset), today-offset], dates inclusive.
func inRange(records []activity.Record, today time.Time, daysBack, offset int) []activity.Record {
	start := dateOnly(today).AddDate(0, 0, -(daysBack + offset))
	end := dateOnly(today).AddDate(0, 0, -offset)

	var out []activity.Record
	for _, r := range records {
		d := dateOnly(r.Timestamp)
		if !d.Before(start) && !d.After(end) {
			out = append(out, r)
		}
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the sample standard deviation; zero for fewer than two values.
func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		ss += (x - m) * (x - m)
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// sortedByTime returns records ordered by event timestamp, oldest first,
// without touching the caller's slice.
func sortedByTime(records []activity.Record) []activity.Record {
	out := make([]activity.Record, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out
}

// gapsHours returns the hour gaps between consecutive records of a
// time-sorted slice.
func gapsHours(sorted []activity.Record) []float64 {
	var gaps []float64
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, sorted[i].Timestamp.Sub(sorted[i-1].Timestamp).Hours())
	}
	return gaps
}

func filterCategory(records []activity.Record, cat activity.Category) []activity.Record {
	var out []activity.Record
	for _, r := range records {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}

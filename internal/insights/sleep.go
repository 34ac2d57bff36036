package insights

import (
	"fmt"
	"time"

	"github.com/rpillai/babylog/internal/activity"
)

// Sleep analyzes sleep records that carry a duration and returns every
// applicable finding, or a placeholder when there is nothing to say.
func Sleep(records []activity.Record, today time.Time) []Finding {
	var sleeps []activity.Record
	for _, r := range filterCategory(records, activity.CategorySleep) {
		if r.DurationMinutes != nil {
			sleeps = append(sleeps, r)
		}
	}

	if len(sleeps) == 0 {
		return []Finding{{
			Text:     "Add sleep activities with duration to see sleep insights.",
			Severity: SeverityInfo,
			Icon:     "info-circle",
		}}
	}

	var findings []Finding

	thisWeek := inRange(sleeps, today, 7, 0)
	prevWeek := inRange(sleeps, today, 14, 7)

	if len(thisWeek) > 0 && len(prevWeek) > 0 {
		findings = append(findings, sleepDurationTrend(thisWeek, prevWeek)...)
	}
	if len(thisWeek) > 0 {
		findings = append(findings, sleepTiming(thisWeek)...)
	}
	if len(sleeps) >= 5 {
		findings = append(findings, sleepQuality(sleeps)...)
	}

	if len(findings) == 0 {
		return []Finding{{
			Text:     "Track more sleep data to unlock sleep pattern insights!",
			Severity: SeverityInfo,
			Icon:     "clock",
		}}
	}
	return findings
}

// sleepDurationTrend compares mean session length week over week; changes
// of 30 minutes or more are called out.
func sleepDurationTrend(current, previous []activity.Record) []Finding {
	curDur := durations(current)
	prevDur := durations(previous)
	if len(curDur) == 0 || len(prevDur) == 0 {
		return nil
	}

	curAvg := mean(curDur)
	prevAvg := mean(prevDur)
	diff := curAvg - prevAvg

	switch {
	case diff >= 30:
		return []Finding{{
			Text:     fmt.Sprintf("Sleep duration improved by %.0f minutes this week - better rest quality!", diff),
			Severity: SeveritySuccess,
			Icon:     "trending-up",
		}}
	case diff <= -30:
		return []Finding{{
			Text:     fmt.Sprintf("Sleep duration decreased by %.0f minutes. Consider reviewing bedtime routine.", -diff),
			Severity: SeverityWarning,
			Icon:     "trending-down",
		}}
	default:
		return []Finding{{
			Text:     fmt.Sprintf("Consistent sleep patterns with %.1fhr average duration.", curAvg/60),
			Severity: SeverityInfo,
			Icon:     "arrow-right",
		}}
	}
}

// sleepTiming classifies the day/night sleep balance. Day is hour in
// [6, 21); a 30-50% day share is balanced, above 60% is day-heavy, the
// rest is night-dominant.
func sleepTiming(records []activity.Record) []Finding {
	var day, night float64
	for _, r := range records {
		if h := r.Timestamp.Hour(); h >= 6 && h < 21 {
			day += float64(*r.DurationMinutes)
		} else {
			night += float64(*r.DurationMinutes)
		}
	}
	if day == 0 || night == 0 {
		return nil
	}

	dayPct := day / (day + night) * 100
	switch {
	case dayPct >= 30 && dayPct <= 50:
		return []Finding{{
			Text:     fmt.Sprintf("Great sleep balance: %.0f%% night, %.0f%% day sleep - healthy pattern!", 100-dayPct, dayPct),
			Severity: SeveritySuccess,
			Icon:     "sun",
		}}
	case dayPct > 60:
		return []Finding{{
			Text:     fmt.Sprintf("High day sleep (%.0f%%). Consider longer night sleep periods.", dayPct),
			Severity: SeverityWarning,
			Icon:     "sun-fill",
		}}
	default:
		return []Finding{{
			Text:     fmt.Sprintf("Strong night sleep preference (%.0f%%) - good sleep consolidation.", 100-dayPct),
			Severity: SeverityInfo,
			Icon:     "moon-fill",
		}}
	}
}

// sleepQuality looks at session lengths: 60% of sessions at 3+ hours is
// excellent consolidation, a 2+ hour mean is still good.
func sleepQuality(records []activity.Record) []Finding {
	durs := durations(records)
	if len(durs) < 5 {
		return nil
	}

	long := 0
	for _, d := range durs {
		if d >= 180 {
			long++
		}
	}

	if float64(long) >= float64(len(durs))*0.6 {
		return []Finding{{
			Text:     fmt.Sprintf("Excellent sleep consolidation - %d of %d sessions are 3+ hours!", long, len(durs)),
			Severity: SeveritySuccess,
			Icon:     "shield-check",
		}}
	}
	if avg := mean(durs); avg >= 120 {
		return []Finding{{
			Text:     fmt.Sprintf("Good sleep quality with %.1fhr average sessions.", avg/60),
			Severity: SeverityInfo,
			Icon:     "clock",
		}}
	}
	return nil
}

func durations(records []activity.Record) []float64 {
	var out []float64
	for _, r := range records {
		if r.DurationMinutes != nil {
			out = append(out, float64(*r.DurationMinutes))
		}
	}
	return out
}

package insights

import (
	"fmt"
	"time"

	"github.com/rpillai/babylog/internal/activity"
)

// Feeding analyzes feeding records and returns every applicable finding.
// Analyses that lack enough data are skipped silently; an empty result is
// replaced with a single "keep tracking" placeholder.
func Feeding(records []activity.Record, today time.Time) []Finding {
	feeds := filterCategory(records, activity.CategoryFeeding)
	if len(feeds) == 0 {
		return []Finding{{
			Text:     "Add more feeding activities to see personalized insights.",
			Severity: SeverityInfo,
			Icon:     "info-circle",
		}}
	}

	var findings []Finding

	thisWeek := inRange(feeds, today, 7, 0)
	prevWeek := inRange(feeds, today, 14, 7)

	if len(thisWeek) > 0 && len(prevWeek) > 0 {
		findings = append(findings, feedingAmountTrend(thisWeek, prevWeek)...)
	}
	if len(thisWeek) > 0 {
		findings = append(findings, feedingConsistency(thisWeek)...)
	}
	if len(feeds) >= 5 {
		findings = append(findings, feedingTypeMix(feeds)...)
	}
	if len(feeds) >= 3 {
		findings = append(findings, feedingGapPattern(feeds)...)
	}

	if len(findings) == 0 {
		return []Finding{{
			Text:     "Keep tracking to unlock personalized feeding insights!",
			Severity: SeverityInfo,
			Icon:     "clock",
		}}
	}
	return findings
}

// feedingAmountTrend compares mean feed amounts week over week. Changes of
// 5 or more (assumed ml) are called out; anything smaller is steady state.
func feedingAmountTrend(current, previous []activity.Record) []Finding {
	curAmounts := amounts(current)
	prevAmounts := amounts(previous)
	if len(curAmounts) == 0 || len(prevAmounts) == 0 {
		return nil
	}

	curAvg := mean(curAmounts)
	prevAvg := mean(prevAmounts)
	diff := curAvg - prevAvg
	pct := diff / prevAvg * 100

	switch {
	case diff >= 5:
		return []Finding{{
			Text:     fmt.Sprintf("Feeding amounts increased by %.1fml this week (%+.1f%%) - great growth!", diff, pct),
			Severity: SeveritySuccess,
			Icon:     "trending-up",
		}}
	case diff <= -5:
		return []Finding{{
			Text:     fmt.Sprintf("Feeding amounts decreased by %.1fml this week. Monitor if this continues.", -diff),
			Severity: SeverityWarning,
			Icon:     "trending-down",
		}}
	default:
		return []Finding{{
			Text:     fmt.Sprintf("Steady feeding amounts around %.1fml - consistent nutrition intake.", curAvg),
			Severity: SeverityInfo,
			Icon:     "arrow-right",
		}}
	}
}

// feedingConsistency classifies schedule regularity by the standard
// deviation of the gaps between consecutive feeds.
func feedingConsistency(records []activity.Record) []Finding {
	if len(records) < 3 {
		return nil
	}

	gaps := gapsHours(sortedByTime(records))
	if len(gaps) == 0 {
		return nil
	}
	avgGap := mean(gaps)
	variance := stddev(gaps)

	switch {
	case variance < 1.0:
		return []Finding{{
			Text:     fmt.Sprintf("Very consistent feeding schedule with %.1fhr average gaps - excellent routine!", avgGap),
			Severity: SeveritySuccess,
			Icon:     "check-circle",
		}}
	case variance < 2.0:
		return []Finding{{
			Text:     fmt.Sprintf("Good feeding rhythm with %.1fhr gaps. Minor variations are normal.", avgGap),
			Severity: SeverityInfo,
			Icon:     "clock",
		}}
	default:
		return []Finding{{
			Text:     "Feeding times vary significantly. Consider establishing a more regular routine.",
			Severity: SeverityWarning,
			Icon:     "exclamation-triangle",
		}}
	}
}

// feedingTypeMix reports the breast/bottle balance, plus a morning
// preference when at least 70% of 6-12h feeds are breast feeds.
func feedingTypeMix(records []activity.Record) []Finding {
	var findings []Finding
	var breast, bottle []activity.Record
	for _, r := range records {
		switch r.Type {
		case activity.TypeBreastFeed:
			breast = append(breast, r)
		case activity.TypeBottleFeed:
			bottle = append(bottle, r)
		}
	}

	total := len(breast) + len(bottle)
	if total < 5 {
		return nil
	}
	breastPct := float64(len(breast)) / float64(total) * 100

	morningBreast := 0
	morningTotal := 0
	for _, r := range records {
		if h := r.Timestamp.Hour(); h >= 6 && h < 12 {
			morningTotal++
		}
	}
	for _, r := range breast {
		if h := r.Timestamp.Hour(); h >= 6 && h < 12 {
			morningBreast++
		}
	}
	if morningTotal > 0 {
		morningPct := float64(morningBreast) / float64(morningTotal) * 100
		if morningPct >= 70 {
			findings = append(findings, Finding{
				Text:     fmt.Sprintf("Baby prefers breast feeding in morning hours (%.0f%% of AM feeds).", morningPct),
				Severity: SeverityInfo,
				Icon:     "sunrise",
			})
		}
	}

	switch {
	case breastPct >= 70:
		findings = append(findings, Finding{
			Text:     fmt.Sprintf("Primarily breast feeding (%.0f%%) - great for bonding and nutrition!", breastPct),
			Severity: SeveritySuccess,
			Icon:     "heart",
		})
	case breastPct <= 30:
		findings = append(findings, Finding{
			Text:     fmt.Sprintf("Mostly bottle feeding (%.0f%%) - allows flexible feeding schedule.", 100-breastPct),
			Severity: SeverityInfo,
			Icon:     "cup",
		})
	default:
		findings = append(findings, Finding{
			Text:     fmt.Sprintf("Balanced mix of breast (%.0f%%) and bottle feeding - flexibility with bonding.", breastPct),
			Severity: SeverityInfo,
			Icon:     "balance-scale",
		})
	}

	return findings
}

// feedingGapPattern compares average night gaps (previous feed at hour >=21
// or <=6) against day gaps; night gaps 1.5x the day average indicate sleep
// consolidation.
func feedingGapPattern(records []activity.Record) []Finding {
	sorted := sortedByTime(records)

	var nightGaps, dayGaps []float64
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].Timestamp.Sub(sorted[i-1].Timestamp).Hours()
		if h := sorted[i-1].Timestamp.Hour(); h >= 21 || h <= 6 {
			nightGaps = append(nightGaps, gap)
		} else {
			dayGaps = append(dayGaps, gap)
		}
	}

	if len(nightGaps) < 2 || len(dayGaps) < 2 {
		return nil
	}

	avgNight := mean(nightGaps)
	avgDay := mean(dayGaps)
	if avgNight > avgDay*1.5 {
		return []Finding{{
			Text:     fmt.Sprintf("Longer night feeding gaps (%.1fh vs %.1fh) - great sleep consolidation!", avgNight, avgDay),
			Severity: SeveritySuccess,
			Icon:     "moon",
		}}
	}
	return nil
}

func amounts(records []activity.Record) []float64 {
	var out []float64
	for _, r := range records {
		if r.Amount != nil {
			out = append(out, *r.Amount)
		}
	}
	return out
}

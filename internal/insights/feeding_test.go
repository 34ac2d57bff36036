package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpillai/babylog/internal/activity"
)

var today = time.Date(2025, 9, 21, 12, 0, 0, 0, time.UTC)

func feedAt(ts time.Time, typ activity.Type, amount float64) activity.Record {
	r := activity.Record{
		ID:        activity.NewID(),
		Timestamp: ts,
		Category:  activity.CategoryFeeding,
		Type:      typ,
	}
	if amount > 0 {
		r.Amount = &amount
	}
	return r
}

func findingTexts(fs []Finding) []string {
	var out []string
	for _, f := range fs {
		out = append(out, f.Text)
	}
	return out
}

func hasIcon(fs []Finding, icon string) bool {
	for _, f := range fs {
		if f.Icon == icon {
			return true
		}
	}
	return false
}

func TestFeedingEmptyPlaceholder(t *testing.T) {
	fs := Feeding(nil, today)
	require.Len(t, fs, 1)
	require.Equal(t, "Add more feeding activities to see personalized insights.", fs[0].Text)
	require.Equal(t, SeverityInfo, fs[0].Severity)
}

func TestFeedingIgnoresOtherCategories(t *testing.T) {
	recs := []activity.Record{
		{Timestamp: today, Category: activity.CategorySleep, Type: activity.TypeNap},
	}
	fs := Feeding(recs, today)
	require.Len(t, fs, 1)
	require.Equal(t, "Add more feeding activities to see personalized insights.", fs[0].Text)
}

func TestFeedingAmountTrendIncrease(t *testing.T) {
	current := []activity.Record{
		feedAt(today.AddDate(0, 0, -1), activity.TypeBottleFeed, 100),
		feedAt(today.AddDate(0, 0, -2), activity.TypeBottleFeed, 100),
	}
	previous := []activity.Record{
		feedAt(today.AddDate(0, 0, -10), activity.TypeBottleFeed, 80),
		feedAt(today.AddDate(0, 0, -11), activity.TypeBottleFeed, 80),
	}

	fs := feedingAmountTrend(current, previous)
	require.Len(t, fs, 1)
	require.Equal(t, SeveritySuccess, fs[0].Severity)
	require.Contains(t, fs[0].Text, "increased by 20.0ml")
	require.Contains(t, fs[0].Text, "+25.0%")
}

func TestFeedingAmountTrendDecrease(t *testing.T) {
	current := []activity.Record{feedAt(today, activity.TypeBottleFeed, 60)}
	previous := []activity.Record{feedAt(today.AddDate(0, 0, -10), activity.TypeBottleFeed, 90)}

	fs := feedingAmountTrend(current, previous)
	require.Len(t, fs, 1)
	require.Equal(t, SeverityWarning, fs[0].Severity)
	require.Contains(t, fs[0].Text, "decreased by 30.0ml")
}

func TestFeedingAmountTrendSteady(t *testing.T) {
	current := []activity.Record{feedAt(today, activity.TypeBottleFeed, 92)}
	previous := []activity.Record{feedAt(today.AddDate(0, 0, -10), activity.TypeBottleFeed, 90)}

	fs := feedingAmountTrend(current, previous)
	require.Len(t, fs, 1)
	require.Equal(t, SeverityInfo, fs[0].Severity)
	require.Contains(t, fs[0].Text, "Steady feeding amounts around 92.0ml")
}

func TestFeedingAmountTrendNoAmounts(t *testing.T) {
	current := []activity.Record{feedAt(today, activity.TypeBreastFeed, 0)}
	previous := []activity.Record{feedAt(today.AddDate(0, 0, -10), activity.TypeBreastFeed, 0)}
	require.Nil(t, feedingAmountTrend(current, previous))
}

func TestFeedingConsistencyVeryRegular(t *testing.T) {
	base := today.Add(-24 * time.Hour)
	recs := []activity.Record{
		feedAt(base, activity.TypeBottleFeed, 90),
		feedAt(base.Add(3*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(base.Add(6*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(base.Add(9*time.Hour), activity.TypeBottleFeed, 90),
	}

	fs := feedingConsistency(recs)
	require.Len(t, fs, 1)
	require.Equal(t, SeveritySuccess, fs[0].Severity)
	require.Contains(t, fs[0].Text, "3.0hr average gaps")
}

func TestFeedingConsistencyIrregular(t *testing.T) {
	base := today.Add(-48 * time.Hour)
	recs := []activity.Record{
		feedAt(base, activity.TypeBottleFeed, 90),
		feedAt(base.Add(1*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(base.Add(9*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(base.Add(10*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(base.Add(19*time.Hour), activity.TypeBottleFeed, 90),
	}

	fs := feedingConsistency(recs)
	require.Len(t, fs, 1)
	require.Equal(t, SeverityWarning, fs[0].Severity)
}

func TestFeedingConsistencyTooFewRecords(t *testing.T) {
	recs := []activity.Record{
		feedAt(today, activity.TypeBottleFeed, 90),
		feedAt(today.Add(-3*time.Hour), activity.TypeBottleFeed, 90),
	}
	require.Nil(t, feedingConsistency(recs))
}

func TestFeedingTypeMixMostlyBreast(t *testing.T) {
	afternoon := time.Date(2025, 9, 20, 15, 0, 0, 0, time.UTC)
	recs := []activity.Record{
		feedAt(afternoon, activity.TypeBreastFeed, 0),
		feedAt(afternoon.Add(1*time.Hour), activity.TypeBreastFeed, 0),
		feedAt(afternoon.Add(2*time.Hour), activity.TypeBreastFeed, 0),
		feedAt(afternoon.Add(3*time.Hour), activity.TypeBreastFeed, 0),
		feedAt(afternoon.Add(4*time.Hour), activity.TypeBottleFeed, 90),
	}

	fs := feedingTypeMix(recs)
	require.Len(t, fs, 1)
	require.Equal(t, SeveritySuccess, fs[0].Severity)
	require.Contains(t, fs[0].Text, "Primarily breast feeding (80%)")
}

func TestFeedingTypeMixMostlyBottle(t *testing.T) {
	afternoon := time.Date(2025, 9, 20, 15, 0, 0, 0, time.UTC)
	recs := []activity.Record{
		feedAt(afternoon, activity.TypeBottleFeed, 90),
		feedAt(afternoon.Add(1*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(afternoon.Add(2*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(afternoon.Add(3*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(afternoon.Add(4*time.Hour), activity.TypeBreastFeed, 0),
	}

	fs := feedingTypeMix(recs)
	require.Len(t, fs, 1)
	require.Equal(t, SeverityInfo, fs[0].Severity)
	require.Contains(t, fs[0].Text, "Mostly bottle feeding (80%)")
}

func TestFeedingTypeMixMorningPreference(t *testing.T) {
	morning := time.Date(2025, 9, 20, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 9, 20, 18, 0, 0, 0, time.UTC)
	recs := []activity.Record{
		feedAt(morning, activity.TypeBreastFeed, 0),
		feedAt(morning.Add(1*time.Hour), activity.TypeBreastFeed, 0),
		feedAt(morning.Add(2*time.Hour), activity.TypeBreastFeed, 0),
		feedAt(evening, activity.TypeBottleFeed, 90),
		feedAt(evening.Add(1*time.Hour), activity.TypeBottleFeed, 90),
	}

	fs := feedingTypeMix(recs)
	require.True(t, hasIcon(fs, "sunrise"), "findings: %v", findingTexts(fs))
}

func TestFeedingTypeMixTooFewFeeds(t *testing.T) {
	recs := []activity.Record{
		feedAt(today, activity.TypeBreastFeed, 0),
		feedAt(today.Add(-3*time.Hour), activity.TypeBottleFeed, 90),
	}
	require.Nil(t, feedingTypeMix(recs))
}

func TestFeedingGapPatternNightConsolidation(t *testing.T) {
	day := time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC)
	recs := []activity.Record{
		// 2h day gaps through the afternoon
		feedAt(day.Add(9*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(day.Add(11*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(day.Add(13*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(day.Add(15*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(day.Add(17*time.Hour), activity.TypeBottleFeed, 90),
		// 6h night gaps (previous feeds at midnight and 6am)
		feedAt(day.Add(24*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(day.Add(30*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(day.Add(36*time.Hour), activity.TypeBottleFeed, 90),
	}

	fs := feedingGapPattern(recs)
	require.Len(t, fs, 1)
	require.Equal(t, SeveritySuccess, fs[0].Severity)
	require.Contains(t, fs[0].Text, "night feeding gaps")
}

func TestFeedingGapPatternNoSignal(t *testing.T) {
	day := time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC)
	recs := []activity.Record{
		feedAt(day.Add(9*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(day.Add(12*time.Hour), activity.TypeBottleFeed, 90),
		feedAt(day.Add(15*time.Hour), activity.TypeBottleFeed, 90),
	}
	require.Nil(t, feedingGapPattern(recs))
}

func TestFeedingFallbackPlaceholder(t *testing.T) {
	// a lone old feed outside every analysis window
	recs := []activity.Record{
		feedAt(today.AddDate(0, 0, -60), activity.TypeBreastFeed, 0),
	}
	fs := Feeding(recs, today)
	require.Len(t, fs, 1)
	require.Equal(t, "Keep tracking to unlock personalized feeding insights!", fs[0].Text)
}

func TestFeedingIdempotent(t *testing.T) {
	recs := []activity.Record{
		feedAt(today.Add(-2*time.Hour), activity.TypeBottleFeed, 100),
		feedAt(today.Add(-5*time.Hour), activity.TypeBottleFeed, 100),
		feedAt(today.Add(-8*time.Hour), activity.TypeBottleFeed, 100),
		feedAt(today.AddDate(0, 0, -10), activity.TypeBottleFeed, 80),
	}

	first := Feeding(recs, today)
	again := Feeding(recs, today)
	require.Equal(t, findingTexts(first), findingTexts(again))
}

package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpillai/babylog/internal/activity"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "babylog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testRecord(ts time.Time, desc string) *activity.Record {
	amount := 90.0
	dur := 15
	return &activity.Record{
		ID:              activity.NewID(),
		Timestamp:       ts,
		Category:        activity.CategoryFeeding,
		Type:            activity.TypeBottleFeed,
		Description:     desc,
		Amount:          &amount,
		Unit:            "ml",
		DurationMinutes: &dur,
		Notes:           "notes for " + desc,
		Tags:            []string{"positive"},
		Origin:          activity.OriginImport,
		Sender:          "Mum",
	}
}

var ts0 = time.Date(2025, 9, 21, 9, 15, 0, 0, time.Local)

func TestAddAndListRoundTrip(t *testing.T) {
	db := openTestDB(t)

	rec := testRecord(ts0, "fed 90ml formula")
	res, err := db.Add(rec)
	require.NoError(t, err)
	require.Equal(t, Inserted, res)

	got, err := db.List(Query{})
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.Equal(t, rec.ID, got[0].ID)
	require.Equal(t, rec.Description, got[0].Description)
	require.Equal(t, activity.CategoryFeeding, got[0].Category)
	require.Equal(t, activity.TypeBottleFeed, got[0].Type)
	require.True(t, ts0.Equal(got[0].Timestamp))
	require.NotNil(t, got[0].Amount)
	require.Equal(t, 90.0, *got[0].Amount)
	require.Equal(t, "ml", got[0].Unit)
	require.NotNil(t, got[0].DurationMinutes)
	require.Equal(t, 15, *got[0].DurationMinutes)
	require.Equal(t, []string{"positive"}, got[0].Tags)
	require.Equal(t, "Mum", got[0].Sender)
}

func TestAddDuplicate(t *testing.T) {
	db := openTestDB(t)

	first := testRecord(ts0, "fed 90ml formula")
	res, err := db.Add(first)
	require.NoError(t, err)
	require.Equal(t, Inserted, res)

	// same event time and description, fresh id
	second := testRecord(ts0, "fed 90ml formula")
	res, err = db.Add(second)
	require.NoError(t, err)
	require.Equal(t, Duplicate, res)

	n, err := db.Count()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestTimestampRoundTripsInLocalTime(t *testing.T) {
	db := openTestDB(t)

	// the ts column is zoneless, so a record written from any zone must
	// read back as the same local wall-clock instant
	rec := testRecord(time.Date(2025, 9, 21, 23, 45, 0, 0, time.Local), "late feed")
	_, err := db.Add(rec)
	require.NoError(t, err)

	got, err := db.Get(rec.ID)
	require.NoError(t, err)
	require.True(t, rec.Timestamp.Equal(got.Timestamp))
	require.Equal(t, time.Local, got.Timestamp.Location())
}

func TestAddSameDescriptionDifferentTime(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Add(testRecord(ts0, "fed 90ml"))
	require.NoError(t, err)
	res, err := db.Add(testRecord(ts0.Add(3*time.Hour), "fed 90ml"))
	require.NoError(t, err)
	require.Equal(t, Inserted, res)
}

func TestNilAmountAndDurationRoundTrip(t *testing.T) {
	db := openTestDB(t)

	rec := &activity.Record{
		ID:          activity.NewID(),
		Timestamp:   ts0,
		Category:    activity.CategorySleep,
		Type:        activity.TypeNap,
		Description: "short nap",
		Origin:      activity.OriginManual,
	}
	_, err := db.Add(rec)
	require.NoError(t, err)

	got, err := db.Get(rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Nil(t, got.Amount)
	require.Nil(t, got.DurationMinutes)
	require.Nil(t, got.Tags)
}

func TestListFilters(t *testing.T) {
	db := openTestDB(t)

	feed := testRecord(ts0, "fed 90ml")
	_, err := db.Add(feed)
	require.NoError(t, err)

	nap := testRecord(ts0.Add(2*time.Hour), "napped 40 mins")
	nap.Category = activity.CategorySleep
	nap.Type = activity.TypeNap
	_, err = db.Add(nap)
	require.NoError(t, err)

	old := testRecord(ts0.AddDate(0, 0, -30), "fed 80ml last month")
	_, err = db.Add(old)
	require.NoError(t, err)

	got, err := db.List(Query{Category: activity.CategorySleep})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, nap.ID, got[0].ID)

	got, err = db.List(Query{Since: ts0.AddDate(0, 0, -1)})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// newest first
	require.Equal(t, nap.ID, got[0].ID)
	require.Equal(t, feed.ID, got[1].ID)

	got, err = db.List(Query{Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestGetMissing(t *testing.T) {
	db := openTestDB(t)
	got, err := db.Get("no-such-id")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestUpdate(t *testing.T) {
	db := openTestDB(t)

	rec := testRecord(ts0, "fed 90ml")
	_, err := db.Add(rec)
	require.NoError(t, err)

	rec.Description = "fed 100ml actually"
	newAmount := 100.0
	rec.Amount = &newAmount
	require.NoError(t, db.Update(rec))

	got, err := db.Get(rec.ID)
	require.NoError(t, err)
	require.Equal(t, "fed 100ml actually", got.Description)
	require.Equal(t, 100.0, *got.Amount)
}

func TestUpdateCategoryAndType(t *testing.T) {
	db := openTestDB(t)

	// a misclassified feed corrected to a nap keeps everything else
	rec := testRecord(ts0, "dozed off after 90ml")
	_, err := db.Add(rec)
	require.NoError(t, err)

	rec.Category = activity.CategorySleep
	rec.Type = activity.TypeNap
	require.NoError(t, db.Update(rec))

	got, err := db.Get(rec.ID)
	require.NoError(t, err)
	require.Equal(t, activity.CategorySleep, got.Category)
	require.Equal(t, activity.TypeNap, got.Type)
	require.Equal(t, "dozed off after 90ml", got.Description)
}

func TestUpdateMissing(t *testing.T) {
	db := openTestDB(t)
	rec := testRecord(ts0, "phantom")
	err := db.Update(rec)
	require.Error(t, err)
	require.Contains(t, err.Error(), "activity not found")
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)

	rec := testRecord(ts0, "fed 90ml")
	_, err := db.Add(rec)
	require.NoError(t, err)
	require.NoError(t, db.Delete(rec.ID))

	n, err := db.Count()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestUnknownEnumFallsBackToOther(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Raw().Exec(
		`INSERT INTO activities (id, ts, category, activity_type, description)
		 VALUES ('x1', '2025-09-21T09:15:00', 'bogus-cat', 'bogus-type', 'mystery entry')`,
	)
	require.NoError(t, err)

	got, err := db.Get("x1")
	require.NoError(t, err)
	require.Equal(t, activity.CategoryOther, got.Category)
	require.Equal(t, activity.TypeOther, got.Type)
}

func TestCountBy(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Add(testRecord(ts0, "fed 90ml"))
	require.NoError(t, err)
	_, err = db.Add(testRecord(ts0.Add(time.Hour), "fed 100ml"))
	require.NoError(t, err)

	nap := testRecord(ts0.Add(2*time.Hour), "napped")
	nap.Category = activity.CategorySleep
	nap.Type = activity.TypeNap
	_, err = db.Add(nap)
	require.NoError(t, err)

	counts, err := db.CountBy("category")
	require.NoError(t, err)
	require.Equal(t, 2, counts["feeding"])
	require.Equal(t, 1, counts["sleep"])

	_, err = db.CountBy("description")
	require.Error(t, err)
}

func TestDateRange(t *testing.T) {
	db := openTestDB(t)

	_, _, ok, err := db.DateRange()
	require.NoError(t, err)
	require.False(t, ok)

	_, err = db.Add(testRecord(ts0, "fed 90ml"))
	require.NoError(t, err)
	_, err = db.Add(testRecord(ts0.Add(48*time.Hour), "fed 100ml"))
	require.NoError(t, err)

	first, last, ok, err := db.DateRange()
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, ts0.Equal(first))
	require.True(t, ts0.Add(48*time.Hour).Equal(last))
}

func TestSearchFTS(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Add(testRecord(ts0, "fed 90ml formula before nap"))
	require.NoError(t, err)
	_, err = db.Add(testRecord(ts0.Add(time.Hour), "wet diaper changed"))
	require.NoError(t, err)

	results, err := db.Search(SearchOptions{Query: "formula"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Contains(t, results[0].Snippet, "formula")
	require.Equal(t, activity.CategoryFeeding, results[0].Category)
}

func TestSearchCategoryFilter(t *testing.T) {
	db := openTestDB(t)

	feed := testRecord(ts0, "fed 90ml before her nap")
	_, err := db.Add(feed)
	require.NoError(t, err)

	nap := testRecord(ts0.Add(time.Hour), "long nap after lunch")
	nap.Category = activity.CategorySleep
	nap.Type = activity.TypeNap
	_, err = db.Add(nap)
	require.NoError(t, err)

	results, err := db.Search(SearchOptions{Query: "nap", Category: activity.CategorySleep})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, nap.ID, results[0].ID)
}

func TestSearchNoHits(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Add(testRecord(ts0, "fed 90ml"))
	require.NoError(t, err)

	results, err := db.Search(SearchOptions{Query: "zebra"})
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestSearchDeleteKeepsFTSInSync(t *testing.T) {
	db := openTestDB(t)

	rec := testRecord(ts0, "fed 90ml formula")
	_, err := db.Add(rec)
	require.NoError(t, err)
	require.NoError(t, db.Delete(rec.ID))

	results, err := db.Search(SearchOptions{Query: "formula"})
	require.NoError(t, err)
	require.Empty(t, results)
}

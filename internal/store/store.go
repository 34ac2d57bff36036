package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rpillai/babylog/internal/activity"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA cache_size = -64000;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS activities (
    id               TEXT PRIMARY KEY,
    ts               TEXT NOT NULL,
    category         TEXT NOT NULL,
    activity_type    TEXT NOT NULL,
    description      TEXT NOT NULL,
    amount           REAL,
    unit             TEXT NOT NULL DEFAULT '',
    duration_minutes INTEGER,
    notes            TEXT NOT NULL DEFAULT '',
    tags             TEXT NOT NULL DEFAULT '',
    origin           TEXT NOT NULL DEFAULT 'import',
    sender           TEXT NOT NULL DEFAULT '',
    UNIQUE (ts, description)
);

CREATE INDEX IF NOT EXISTS activities_ts ON activities (ts);
CREATE INDEX IF NOT EXISTS activities_category ON activities (category, ts);

CREATE VIRTUAL TABLE IF NOT EXISTS activities_fts USING fts5(
    description,
    content=activities,
    content_rowid=rowid,
    tokenize='unicode61'
);

-- triggers to keep FTS in sync
CREATE TRIGGER IF NOT EXISTS activities_ai AFTER INSERT ON activities BEGIN
    INSERT INTO activities_fts(rowid, description) VALUES (new.rowid, new.description);
END;

CREATE TRIGGER IF NOT EXISTS activities_ad AFTER DELETE ON activities BEGIN
    INSERT INTO activities_fts(activities_fts, rowid, description) VALUES('delete', old.rowid, old.description);
END;

CREATE TRIGGER IF NOT EXISTS activities_au AFTER UPDATE ON activities BEGIN
    INSERT INTO activities_fts(activities_fts, rowid, description) VALUES('delete', old.rowid, old.description);
    INSERT INTO activities_fts(rowid, description) VALUES (new.rowid, new.description);
END;

CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);
`

// tsLayout stores timestamps as zoneless local wall-clock strings; every
// read parses them back in time.Local so the boundary round-trips.
const tsLayout = "2006-01-02T15:04:05"

// schemaVersion is bumped whenever the stored record shape changes.
const schemaVersion = "1"

// DB wraps the activity database.
type DB struct {
	db *sql.DB
}

func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	db.Exec("INSERT OR IGNORE INTO meta (key, value) VALUES ('schema_version', ?)", schemaVersion)

	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

// AddResult says what Add did with a record.
type AddResult int

const (
	Inserted AddResult = iota
	Duplicate
)

// Add stores a record. A record with the same event timestamp and
// description as an existing row is reported as a Duplicate and left
// alone; duplicates are an expected outcome of re-importing an export,
// not an error.
func (d *DB) Add(rec *activity.Record) (AddResult, error) {
	res, err := d.db.Exec(
		`INSERT OR IGNORE INTO activities
		 (id, ts, category, activity_type, description, amount, unit, duration_minutes, notes, tags, origin, sender)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Timestamp.Format(tsLayout),
		string(rec.Category),
		string(rec.Type),
		rec.Description,
		nullFloat(rec.Amount),
		rec.Unit,
		nullInt(rec.DurationMinutes),
		rec.Notes,
		strings.Join(rec.Tags, ","),
		rec.Origin,
		rec.Sender,
	)
	if err != nil {
		return Inserted, fmt.Errorf("insert activity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Inserted, err
	}
	if n == 0 {
		return Duplicate, nil
	}
	return Inserted, nil
}

// Query selects stored records, newest first.
type Query struct {
	Category activity.Category // zero value = all
	Since    time.Time         // zero value = no lower bound
	Until    time.Time         // zero value = no upper bound
	Limit    int               // 0 = no limit
}

func (d *DB) List(q Query) ([]activity.Record, error) {
	conditions := []string{"1=1"}
	var args []interface{}

	if q.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, string(q.Category))
	}
	if !q.Since.IsZero() {
		conditions = append(conditions, "ts >= ?")
		args = append(args, q.Since.Format(tsLayout))
	}
	if !q.Until.IsZero() {
		conditions = append(conditions, "ts <= ?")
		args = append(args, q.Until.Format(tsLayout))
	}

	query := fmt.Sprintf(
		`SELECT id, ts, category, activity_type, description, amount, unit, duration_minutes, notes, tags, origin, sender
		 FROM activities WHERE %s ORDER BY ts DESC`,
		strings.Join(conditions, " AND "),
	)
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (d *DB) Get(id string) (*activity.Record, error) {
	rows, err := d.db.Query(
		`SELECT id, ts, category, activity_type, description, amount, unit, duration_minutes, notes, tags, origin, sender
		 FROM activities WHERE id = ?`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// Update overwrites a stored record with an amended one. Amendments are
// terminal: nothing is re-classified.
func (d *DB) Update(rec *activity.Record) error {
	res, err := d.db.Exec(
		`UPDATE activities SET ts = ?, category = ?, activity_type = ?, description = ?,
		 amount = ?, unit = ?, duration_minutes = ?, notes = ?, tags = ?, origin = ?, sender = ?
		 WHERE id = ?`,
		rec.Timestamp.Format(tsLayout),
		string(rec.Category),
		string(rec.Type),
		rec.Description,
		nullFloat(rec.Amount),
		rec.Unit,
		nullInt(rec.DurationMinutes),
		rec.Notes,
		strings.Join(rec.Tags, ","),
		rec.Origin,
		rec.Sender,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("activity not found: %s", rec.ID)
	}
	return nil
}

func (d *DB) Delete(id string) error {
	_, err := d.db.Exec("DELETE FROM activities WHERE id = ?", id)
	return err
}

func (d *DB) Count() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM activities").Scan(&n)
	return n, err
}

// CountBy returns row counts grouped by the given column ("category" or
// "activity_type").
func (d *DB) CountBy(column string) (map[string]int, error) {
	if column != "category" && column != "activity_type" {
		return nil, fmt.Errorf("unsupported group column: %s", column)
	}
	rows, err := d.db.Query(fmt.Sprintf("SELECT %s, COUNT(*) FROM activities GROUP BY %s", column, column))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var k string
		var n int
		if err := rows.Scan(&k, &n); err != nil {
			return nil, err
		}
		counts[k] = n
	}
	return counts, rows.Err()
}

// DateRange returns the earliest and latest event timestamps, or ok=false
// for an empty database.
func (d *DB) DateRange() (first, last time.Time, ok bool, err error) {
	var lo, hi sql.NullString
	err = d.db.QueryRow("SELECT MIN(ts), MAX(ts) FROM activities").Scan(&lo, &hi)
	if err != nil || !lo.Valid {
		return time.Time{}, time.Time{}, false, err
	}
	first, _ = time.ParseInLocation(tsLayout, lo.String, time.Local)
	last, _ = time.ParseInLocation(tsLayout, hi.String, time.Local)
	return first, last, true, nil
}

func scanRecords(rows *sql.Rows) ([]activity.Record, error) {
	var recs []activity.Record
	for rows.Next() {
		var (
			rec      activity.Record
			ts       string
			cat      string
			typ      string
			amount   sql.NullFloat64
			duration sql.NullInt64
			tags     string
		)
		if err := rows.Scan(&rec.ID, &ts, &cat, &typ, &rec.Description,
			&amount, &rec.Unit, &duration, &rec.Notes, &tags, &rec.Origin, &rec.Sender); err != nil {
			return nil, err
		}
		rec.Timestamp, _ = time.ParseInLocation(tsLayout, ts, time.Local)
		rec.Category = activity.ParseCategory(cat)
		rec.Type = activity.ParseType(typ)
		if amount.Valid {
			v := amount.Float64
			rec.Amount = &v
		}
		if duration.Valid {
			v := int(duration.Int64)
			rec.DurationMinutes = &v
		}
		if tags != "" {
			rec.Tags = strings.Split(tags, ",")
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func nullFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

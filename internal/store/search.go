package store

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rpillai/babylog/internal/activity"
)

// SearchResult is one full-text hit over stored activity descriptions.
type SearchResult struct {
	ID       string
	Ts       string
	Category activity.Category
	Type     activity.Type
	Sender   string
	Snippet  string
}

// SearchOptions filter a search.
type SearchOptions struct {
	Query    string
	Category activity.Category // "" = all
	Limit    int
}

// containsCJK returns true if the string contains any CJK Unified Ideograph.
func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// Search runs a full-text query over activity descriptions. FTS5 tokenizes
// per word, so CJK queries fall back to a LIKE substring scan.
func (d *DB) Search(opts SearchOptions) ([]SearchResult, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if containsCJK(opts.Query) {
		return d.searchLike(opts)
	}
	return d.searchFTS(opts)
}

func (d *DB) searchFTS(opts SearchOptions) ([]SearchResult, error) {
	conditions := []string{"activities_fts MATCH ?"}
	args := []interface{}{opts.Query}

	if opts.Category != "" {
		conditions = append(conditions, "a.category = ?")
		args = append(args, string(opts.Category))
	}

	query := fmt.Sprintf(`
		SELECT
			a.id,
			a.ts,
			a.category,
			a.activity_type,
			a.sender,
			snippet(activities_fts, 0, '>>>', '<<<', '...', 12) AS snip
		FROM activities_fts
		JOIN activities a ON activities_fts.rowid = a.rowid
		WHERE %s
		ORDER BY bm25(activities_fts)
		LIMIT ?
	`, strings.Join(conditions, " AND "))
	args = append(args, opts.Limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		var cat, typ string
		if err := rows.Scan(&r.ID, &r.Ts, &cat, &typ, &r.Sender, &r.Snippet); err != nil {
			return nil, err
		}
		r.Category = activity.ParseCategory(cat)
		r.Type = activity.ParseType(typ)
		results = append(results, r)
	}
	return results, rows.Err()
}

func (d *DB) searchLike(opts SearchOptions) ([]SearchResult, error) {
	conditions := []string{"a.description LIKE ?"}
	args := []interface{}{"%" + opts.Query + "%"}

	if opts.Category != "" {
		conditions = append(conditions, "a.category = ?")
		args = append(args, string(opts.Category))
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.ts, a.category, a.activity_type, a.sender, a.description
		FROM activities a
		WHERE %s
		ORDER BY a.ts DESC
		LIMIT ?
	`, strings.Join(conditions, " AND "))
	args = append(args, opts.Limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		var cat, typ, desc string
		if err := rows.Scan(&r.ID, &r.Ts, &cat, &typ, &r.Sender, &desc); err != nil {
			return nil, err
		}
		r.Category = activity.ParseCategory(cat)
		r.Type = activity.ParseType(typ)
		r.Snippet = makeSnippet(desc, opts.Query, 30)
		results = append(results, r)
	}
	return results, rows.Err()
}

// makeSnippet extracts a snippet around the first occurrence of query in
// text, wrapping the match in >>> <<< markers.
func makeSnippet(text, query string, contextChars int) string {
	lower := strings.ToLower(text)
	qLower := strings.ToLower(query)
	idx := strings.Index(lower, qLower)
	if idx < 0 {
		if len([]rune(text)) > contextChars*2 {
			return string([]rune(text)[:contextChars*2]) + "..."
		}
		return text
	}
	runes := []rune(text)
	qRunes := []rune(query)
	runePos := len([]rune(text[:idx]))
	start := runePos - contextChars
	if start < 0 {
		start = 0
	}
	end := runePos + len(qRunes) + contextChars
	if end > len(runes) {
		end = len(runes)
	}
	prefix := ""
	suffix := ""
	if start > 0 {
		prefix = "..."
	}
	if end < len(runes) {
		suffix = "..."
	}
	snippet := string(runes[start:runePos]) +
		">>>" + string(runes[runePos:runePos+len(qRunes)]) + "<<<" +
		string(runes[runePos+len(qRunes):end])
	return prefix + snippet + suffix
}

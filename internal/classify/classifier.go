package classify

import (
	"strings"

	"github.com/rpillai/babylog/internal/activity"
)

// Match is a successful classification: the activity type, its category,
// and the keyword that fired.
type Match struct {
	Type     activity.Type
	Category activity.Category
	Keyword  string
}

// Classify scans the body against the rule catalog in priority order and
// returns the first keyword hit. Matching is substring containment on the
// lowercased body; a FEEDING hit (other than solid food) is refined by the
// subtype disambiguation. Returns false when no keyword matches.
func Classify(body string) (Match, bool) {
	lower := strings.ToLower(body)
	for _, rule := range activity.Catalog {
		for _, kw := range rule.Keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			m := Match{Type: rule.Type, Category: rule.Category, Keyword: kw}
			if rule.Category == activity.CategoryFeeding && rule.Type != activity.TypeSolidFood {
				m.Type = feedingSubtype(lower)
			}
			return m, true
		}
	}
	return Match{}, false
}

var extractionTerms = []string{"extracted", "pumped", "pumping", "expressing", "expressed milk"}

// "ma" alone is too loose for substring matching ("formula" contains it),
// so the caregiver words stop at "mama".
var breastTerms = []string{
	"mummy", "mother", "mom", "mama",
	"breast", "bf", "nursing", "nursed",
	"direct", "latch",
}

var formulaTerms = []string{
	"powder", "formula", "bottle", "top feed", "topfeed",
	"ebm", "artificial", "supplement", "fortified",
}

// feedingSubtype decides the precise feeding type for an already-lowercased
// body. Extraction terms win over breast indicators, which win over formula
// indicators; a bare volume unit implies expressed or formula milk in a
// bottle; with no cue at all the feed is assumed direct breast.
func feedingSubtype(lower string) activity.Type {
	for _, kw := range extractionTerms {
		if strings.Contains(lower, kw) {
			return activity.TypeExtraction
		}
	}
	for _, kw := range breastTerms {
		if strings.Contains(lower, kw) {
			return activity.TypeBreastFeed
		}
	}
	for _, kw := range formulaTerms {
		if strings.Contains(lower, kw) {
			return activity.TypeBottleFeed
		}
	}
	if strings.Contains(lower, "ml") || strings.Contains(lower, "oz") {
		return activity.TypeBottleFeed
	}
	return activity.TypeBreastFeed
}

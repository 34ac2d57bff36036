package classify

import (
	"regexp"
	"strconv"
)

// Quantity is a numeric amount with its canonical unit label.
type Quantity struct {
	Value float64
	Unit  string
}

type unitPattern struct {
	re   *regexp.Regexp
	unit string
}

// Amount patterns in priority order: a numeric token (integer or decimal)
// followed by optional whitespace and a unit spelling, including plural and
// abbreviated forms. The first pattern that matches wins.
var unitPatterns = []unitPattern{
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:ml|milliliters?)`), "ml"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:oz|ounces?)`), "oz"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:g|grams?)\b`), "g"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:kg|kilograms?)`), "kg"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:lbs?|pounds?)`), "lbs"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:mins?|minutes?)`), "minutes"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hrs?|hours?)`), "hours"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*°?[FC]\b`), "degrees"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:cm|centimeters?)`), "cm"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:in|inches?)\b`), "inches"},
}

// ExtractQuantity finds the first amount-with-unit mention in the body and
// returns the parsed value with its canonical unit. Returns false when no
// pattern matches.
func ExtractQuantity(body string) (Quantity, bool) {
	for _, p := range unitPatterns {
		m := p.re.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return Quantity{Value: v, Unit: p.unit}, true
	}
	return Quantity{}, false
}

var durationPatterns = []struct {
	re         *regexp.Regexp
	multiplier float64
}{
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hrs?|hours?)`), 60},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:mins?|minutes?)`), 1},
}

// ExtractDuration finds an hour or minute quantity and normalizes it to
// whole minutes. It runs independently of ExtractQuantity so a feed like
// "nursed 20 mins, 90ml top-up" keeps both the amount and the duration.
// A mention that rounds to zero minutes is treated as no duration; the
// analyses downstream only ever see positive durations.
func ExtractDuration(body string) (int, bool) {
	for _, p := range durationPatterns {
		m := p.re.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if mins := int(v * p.multiplier); mins > 0 {
			return mins, true
		}
	}
	return 0, false
}

package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/rpillai/babylog/internal/activity"
	"github.com/rpillai/babylog/internal/insights"
)

const (
	colorReset   = "\033[0m"
	colorDim     = "\033[2m"
	colorBold    = "\033[1m"
	colorGreen   = "\033[1;32m"
	colorYellow  = "\033[1;33m"
	colorBlue    = "\033[1;34m"
	colorMagenta = "\033[1;35m"
	colorCyan    = "\033[1;36m"
	colorBoldRed = "\033[1;31m"
)

// categoryColor picks a stable color per category for list output.
func categoryColor(cat activity.Category) string {
	switch cat {
	case activity.CategoryFeeding:
		return colorGreen
	case activity.CategorySleep:
		return colorBlue
	case activity.CategoryDiaper:
		return colorYellow
	case activity.CategoryHealth, activity.CategoryMedicine, activity.CategoryVaccine:
		return colorMagenta
	case activity.CategoryMeasurement:
		return colorCyan
	default:
		return colorDim
	}
}

// Row formats one record as a single tab-separated line for piped output:
// id, timestamp, category, type, amount, sender, description.
func Row(r activity.Record) string {
	amount := "-"
	if r.Amount != nil {
		amount = fmt.Sprintf("%g %s", *r.Amount, r.Unit)
	}
	desc := strings.ReplaceAll(r.Description, "\t", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")
	return fmt.Sprintf("%s\t%s%s%s\t%s%s%s\t%s\t%s\t%s\t%s",
		r.ID,
		colorDim, r.DisplayTime(), colorReset,
		categoryColor(r.Category), r.Category, colorReset,
		r.Type,
		amount,
		r.Sender,
		desc,
	)
}

// Record renders a full detail view of one record, wrapped to width.
func Record(r activity.Record, width int) string {
	var b strings.Builder
	line := func(label, value string) {
		if value == "" {
			return
		}
		for _, wl := range wrapLine(fmt.Sprintf("%s%-10s%s %s", colorDim, label, colorReset, value), width) {
			b.WriteString(wl)
			b.WriteString("\n")
		}
	}

	b.WriteString(fmt.Sprintf("%s%s%s  %s%s / %s%s\n",
		colorBold, r.DisplayTime(), colorReset,
		categoryColor(r.Category), r.Category, r.Type, colorReset))
	line("amount", amountString(r))
	line("duration", durationString(r))
	line("sender", r.Sender)
	line("origin", r.Origin)
	line("tags", strings.Join(r.Tags, ", "))
	line("notes", r.Notes)
	line("text", r.Description)
	line("id", r.ID)
	return b.String()
}

// Findings renders insight findings with severity coloring.
func Findings(fs []insights.Finding) string {
	var b strings.Builder
	for _, f := range fs {
		var color, marker string
		switch f.Severity {
		case insights.SeveritySuccess:
			color, marker = colorGreen, "+"
		case insights.SeverityWarning:
			color, marker = colorBoldRed, "!"
		default:
			color, marker = colorBlue, "*"
		}
		b.WriteString(fmt.Sprintf("%s%s%s %s %s(%s)%s\n", color, marker, colorReset, f.Text, colorDim, f.Icon, colorReset))
	}
	return b.String()
}

func amountString(r activity.Record) string {
	if r.Amount == nil {
		return ""
	}
	return fmt.Sprintf("%g %s", *r.Amount, r.Unit)
}

func durationString(r activity.Record) string {
	if r.DurationMinutes == nil {
		return ""
	}
	return fmt.Sprintf("%d min", *r.DurationMinutes)
}

// HighlightSnippet replaces the >>> <<< match markers emitted by search
// with bold red ANSI codes.
func HighlightSnippet(snippet string) string {
	snippet = strings.ReplaceAll(snippet, ">>>", colorBoldRed)
	snippet = strings.ReplaceAll(snippet, "<<<", colorReset)
	return snippet
}

// wrapLine breaks a single line into multiple lines that fit within
// maxWidth visible columns, skipping ANSI escape sequences when measuring
// width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// ANSI escape sequence: ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}

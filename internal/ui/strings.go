package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// placeholderGlyph is rendered for optional fields with no value, so a
// cell never shows an empty hole or a literal null.
const placeholderGlyph = "-"

// dashIfEmpty substitutes the placeholder glyph for blank values.
func dashIfEmpty(value string) string {
	if strings.TrimSpace(value) == "" {
		return placeholderGlyph
	}
	return value
}

// truncate shortens a string to limit runes, appending an ellipsis.
func truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

// groupThousands inserts dots as thousands separators.
func groupThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// formatMileage renders a mileage value with a km suffix.
func formatMileage(km int) string {
	return groupThousands(int64(km)) + " km"
}

// formatCost renders an optional cost; absent costs show the placeholder.
func formatCost(cost *float64) string {
	if cost == nil {
		return placeholderGlyph
	}
	return "$" + groupThousands(int64(*cost))
}

// formatTotalCost renders the stats cost aggregate.
func formatTotalCost(total float64) string {
	return "$" + groupThousands(int64(total))
}

// formatYear renders an optional year; absent years show the placeholder.
func formatYear(year *int) string {
	if year == nil {
		return placeholderGlyph
	}
	return strconv.Itoa(*year)
}

// formatID renders a record identifier.
func formatID(id int64) string {
	return fmt.Sprintf("%d", id)
}

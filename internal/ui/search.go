package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
)

// filterRows keeps the rows whose concatenated visible text contains the
// term, case-insensitively. An empty term keeps every row. Pure; the
// underlying collections are never touched.
func filterRows(rows []table.Row, term string) []table.Row {
	indexes := visibleIndexes(rows, term)
	if len(indexes) == len(rows) {
		return rows
	}
	kept := make([]table.Row, 0, len(indexes))
	for _, i := range indexes {
		kept = append(kept, rows[i])
	}
	return kept
}

// visibleIndexes returns the indexes of the rows a term keeps visible.
// Callers use the indexes to keep display rows and their source entities
// aligned under filtering.
func visibleIndexes(rows []table.Row, term string) []int {
	term = strings.ToLower(strings.TrimSpace(term))
	indexes := make([]int, 0, len(rows))
	for i, row := range rows {
		if term == "" || rowMatches(row, term) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

func rowMatches(row table.Row, lowerTerm string) bool {
	haystack := strings.ToLower(strings.Join(row, " "))
	return strings.Contains(haystack, lowerTerm)
}

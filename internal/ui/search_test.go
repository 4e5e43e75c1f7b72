package ui

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/bubbles/table"
)

func sampleRows() []table.Row {
	return []table.Row{
		{"1", "Toyota", "Hilux", "AB1234"},
		{"2", "Nissan", "Navara", "CD5678"},
		{"3", "Toyota", "Corolla", "EF9012"},
	}
}

func TestVisibleIndexes(t *testing.T) {
	cases := []struct {
		name string
		term string
		want []int
	}{
		{"empty term keeps everything", "", []int{0, 1, 2}},
		{"whitespace term keeps everything", "   ", []int{0, 1, 2}},
		{"lowercase matches mixed case", "toyota", []int{0, 2}},
		{"uppercase matches mixed case", "TOYOTA", []int{0, 2}},
		{"substring of any cell", "567", []int{1}},
		{"no match hides everything", "kawasaki", []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := visibleIndexes(sampleRows(), tc.term)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("visibleIndexes(%q) = %v, want %v", tc.term, got, tc.want)
			}
		})
	}
}

func TestFilterRowsDoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	kept := filterRows(rows, "nissan")
	if len(kept) != 1 || kept[0][1] != "Nissan" {
		t.Fatalf("kept = %v", kept)
	}
	if len(rows) != 3 {
		t.Errorf("source rows shrank to %d", len(rows))
	}
}

func TestFilterRowsEmptyTermReturnsSameRows(t *testing.T) {
	rows := sampleRows()
	kept := filterRows(rows, "")
	if len(kept) != len(rows) {
		t.Fatalf("kept %d rows, want %d", len(kept), len(rows))
	}
}

package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"

	"github.com/fleetdeck/fleetdeck/internal/fleet"
)

func TestEmptyCollectionsRenderPlaceholderRow(t *testing.T) {
	cases := []struct {
		name    string
		rows    []table.Row
		message string
	}{
		{"owners", ownerRows(nil), noOwnersMessage},
		{"vehicles", vehicleRows(nil), noVehiclesMessage},
		{"maintenance", maintenanceRows(nil), noMaintenanceMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.rows) != 1 {
				t.Fatalf("expected exactly one placeholder row, got %d", len(tc.rows))
			}
			if tc.rows[0][0] != placeholderGlyph {
				t.Errorf("first cell = %q, want %q", tc.rows[0][0], placeholderGlyph)
			}
			if tc.rows[0][1] != tc.message {
				t.Errorf("message cell = %q, want %q", tc.rows[0][1], tc.message)
			}
		})
	}
}

func TestOwnerRowsPreserveInputOrder(t *testing.T) {
	owners := []fleet.Owner{
		{ID: 3, RUT: "11111111-1"},
		{ID: 1, RUT: "22222222-2"},
		{ID: 2, RUT: "33333333-3"},
	}
	rows := ownerRows(owners)
	if len(rows) != len(owners) {
		t.Fatalf("got %d rows, want %d", len(rows), len(owners))
	}
	for i, owner := range owners {
		if rows[i][2] != owner.RUT {
			t.Errorf("row %d RUT = %q, want %q", i, rows[i][2], owner.RUT)
		}
	}
}

func TestVehicleRowsAbsentOptionalsShowDash(t *testing.T) {
	rows := vehicleRows([]fleet.Vehicle{
		{ID: 7, Make: "Toyota", Model: "Hilux", Mileage: 120000},
	})
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row[1] != placeholderGlyph {
		t.Errorf("owner cell = %q, want dash", row[1])
	}
	if row[4] != placeholderGlyph {
		t.Errorf("year cell = %q, want dash", row[4])
	}
	if row[5] != placeholderGlyph {
		t.Errorf("color cell = %q, want dash", row[5])
	}
	if row[6] != "120.000 km" {
		t.Errorf("mileage cell = %q, want %q", row[6], "120.000 km")
	}
	if row[7] != placeholderGlyph {
		t.Errorf("plate cell = %q, want dash", row[7])
	}
}

func TestVehicleRowsPresentOptionals(t *testing.T) {
	year := 2021
	rows := vehicleRows([]fleet.Vehicle{
		{ID: 2, OwnerName: "Ana Rojas", Make: "Nissan", Model: "Navara", Year: &year, Color: "red", Mileage: 500, Plate: "AB1234"},
	})
	row := rows[0]
	if row[1] != "Ana Rojas" {
		t.Errorf("owner cell = %q", row[1])
	}
	if row[4] != "2021" {
		t.Errorf("year cell = %q, want 2021", row[4])
	}
	if row[6] != "500 km" {
		t.Errorf("mileage cell = %q, want %q", row[6], "500 km")
	}
}

func TestMaintenanceRowsCostPolicy(t *testing.T) {
	cost := 45000.0
	rows := maintenanceRows([]fleet.MaintenanceRecord{
		{ID: 1, ServiceDate: "2026-02-10", Type: "oil change", CurrentMileage: 81000, Cost: &cost},
		{ID: 2, ServiceDate: "2026-03-01", Type: "tires", CurrentMileage: 83000},
	})
	if rows[0][5] != "$45.000" {
		t.Errorf("cost cell = %q, want %q", rows[0][5], "$45.000")
	}
	if rows[1][5] != placeholderGlyph {
		t.Errorf("absent cost cell = %q, want dash", rows[1][5])
	}
}

package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fleetdeck/fleetdeck/internal/fleet"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestParseMileageCoercion(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"12k", 0},
		{"120000", 120000},
		{" 500 ", 500},
		{"-3", -3},
	}
	for _, tc := range cases {
		if got := parseMileage(tc.input); got != tc.want {
			t.Errorf("parseMileage(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseOptionalIntCoercion(t *testing.T) {
	if got := parseOptionalInt(""); got != nil {
		t.Errorf("blank year = %v, want nil", *got)
	}
	if got := parseOptionalInt("not a year"); got != nil {
		t.Errorf("garbage year = %v, want nil", *got)
	}
	if got := parseOptionalInt("2021"); got == nil || *got != 2021 {
		t.Errorf("parseOptionalInt(2021) = %v", got)
	}
}

func TestParseOptionalFloatCoercion(t *testing.T) {
	if got := parseOptionalFloat(""); got != nil {
		t.Errorf("blank cost = %v, want nil", *got)
	}
	if got := parseOptionalFloat("free"); got != nil {
		t.Errorf("garbage cost = %v, want nil", *got)
	}
	if got := parseOptionalFloat("45000.5"); got == nil || *got != 45000.5 {
		t.Errorf("parseOptionalFloat(45000.5) = %v", got)
	}
}

func TestVehiclePayloadFromValues(t *testing.T) {
	payload := vehiclePayloadFromValues(map[string]string{
		"owner_id": "4",
		"make":     "  Toyota ",
		"model":    "Hilux",
		"year":     "",
		"color":    "",
		"mileage":  "",
		"plate":    "AB1234",
	})
	if payload.OwnerID != 4 {
		t.Errorf("OwnerID = %d, want 4", payload.OwnerID)
	}
	if payload.Make != "Toyota" {
		t.Errorf("Make = %q, want trimmed Toyota", payload.Make)
	}
	if payload.Year != nil {
		t.Errorf("blank year should stay absent, got %d", *payload.Year)
	}
	if payload.Mileage != 0 {
		t.Errorf("blank mileage should coerce to 0, got %d", payload.Mileage)
	}
}

func TestOwnerPayloadFromValuesTrims(t *testing.T) {
	payload := ownerPayloadFromValues(map[string]string{
		"classification": " Staff ",
		"rut":            " 12345678-9 ",
		"phone":          "",
		"email":          " ana@fleet.cl ",
	})
	if payload.Classification != "Staff" || payload.RUT != "12345678-9" || payload.Email != "ana@fleet.cl" {
		t.Errorf("payload not trimmed: %+v", payload)
	}
}

func TestMaintenancePayloadFillsMileageFromVehicle(t *testing.T) {
	vehicles := []fleet.Vehicle{
		{ID: 1, Mileage: 50000},
		{ID: 2, Mileage: 81000},
	}
	payload := maintenancePayloadFromValues(map[string]string{
		"vehicle_id":       "2",
		"service_date":     "2026-02-10",
		"maintenance_type": "oil change",
		"description":      "",
		"cost":             "",
		"workshop":         "",
	}, vehicles)
	if payload.VehicleID != 2 {
		t.Errorf("VehicleID = %d, want 2", payload.VehicleID)
	}
	if payload.PreviousMileage != 81000 || payload.CurrentMileage != 81000 {
		t.Errorf("mileage fill = %d/%d, want 81000/81000", payload.PreviousMileage, payload.CurrentMileage)
	}
	if payload.Cost != nil {
		t.Errorf("blank cost should stay absent, got %v", *payload.Cost)
	}
}

func TestMaintenancePayloadUnknownVehicleLeavesMileageZero(t *testing.T) {
	payload := maintenancePayloadFromValues(map[string]string{
		"vehicle_id":       "99",
		"service_date":     "2026-02-10",
		"maintenance_type": "oil change",
	}, []fleet.Vehicle{{ID: 1, Mileage: 50000}})
	if payload.PreviousMileage != 0 || payload.CurrentMileage != 0 {
		t.Errorf("mileage = %d/%d, want 0/0", payload.PreviousMileage, payload.CurrentMileage)
	}
}

func TestEntityFormValidateBlocksSubmit(t *testing.T) {
	form := newEntityForm("New owner",
		[]formField{newFormField("rut", "RUT", "", "")},
		func(values map[string]string) error {
			return ownerPayloadFromValues(values).Validate()
		},
		func(map[string]string) tea.Cmd { return nil },
	)
	updated, cmd, closed := form.Update(keyMsg("enter"), DefaultKeyMap())
	if closed {
		t.Fatal("invalid form closed on enter")
	}
	if cmd != nil {
		t.Error("invalid form produced a command")
	}
	if updated.(*entityForm).errText == "" {
		t.Error("expected inline validation error text")
	}
}

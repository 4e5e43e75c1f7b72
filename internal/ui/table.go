package ui

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/fleetdeck/fleetdeck/internal/fleet"
)

// Empty-state messages, one per collection panel.
const (
	noOwnersMessage      = "No personnel records"
	noVehiclesMessage    = "No vehicles registered"
	noMaintenanceMessage = "No maintenance recorded"
)

func ownerColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Classification", Width: 18},
		{Title: "RUT", Width: 14},
		{Title: "Phone", Width: 14},
		{Title: "Email", Width: 26},
	}
}

func vehicleColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Owner", Width: 18},
		{Title: "Make", Width: 12},
		{Title: "Model", Width: 14},
		{Title: "Year", Width: 6},
		{Title: "Color", Width: 10},
		{Title: "Mileage", Width: 12},
		{Title: "Plate", Width: 10},
	}
}

func maintenanceColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Date", Width: 12},
		{Title: "Vehicle", Width: 20},
		{Title: "Type", Width: 16},
		{Title: "Mileage", Width: 12},
		{Title: "Cost", Width: 12},
		{Title: "Workshop", Width: 16},
	}
}

// placeholderRow produces the single row shown for an empty collection,
// so a table never collapses to nothing.
func placeholderRow(columns int, message string) table.Row {
	row := make(table.Row, columns)
	row[0] = placeholderGlyph
	row[1] = message
	return row
}

// ownerRows maps an owners snapshot to display rows, one per owner in
// input order. An empty snapshot yields exactly one placeholder row.
func ownerRows(owners []fleet.Owner) []table.Row {
	if len(owners) == 0 {
		return []table.Row{placeholderRow(len(ownerColumns()), noOwnersMessage)}
	}
	rows := make([]table.Row, 0, len(owners))
	for _, owner := range owners {
		rows = append(rows, table.Row{
			formatID(owner.ID),
			dashIfEmpty(owner.Classification),
			owner.RUT,
			dashIfEmpty(owner.Phone),
			dashIfEmpty(owner.Email),
		})
	}
	return rows
}

// vehicleRows maps a vehicles snapshot to display rows.
func vehicleRows(vehicles []fleet.Vehicle) []table.Row {
	if len(vehicles) == 0 {
		return []table.Row{placeholderRow(len(vehicleColumns()), noVehiclesMessage)}
	}
	rows := make([]table.Row, 0, len(vehicles))
	for _, vehicle := range vehicles {
		rows = append(rows, table.Row{
			formatID(vehicle.ID),
			dashIfEmpty(vehicle.OwnerName),
			vehicle.Make,
			vehicle.Model,
			formatYear(vehicle.Year),
			dashIfEmpty(vehicle.Color),
			formatMileage(vehicle.Mileage),
			dashIfEmpty(vehicle.Plate),
		})
	}
	return rows
}

// maintenanceRows maps a maintenance snapshot to display rows.
func maintenanceRows(records []fleet.MaintenanceRecord) []table.Row {
	if len(records) == 0 {
		return []table.Row{placeholderRow(len(maintenanceColumns()), noMaintenanceMessage)}
	}
	rows := make([]table.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, table.Row{
			formatID(record.ID),
			dashIfEmpty(record.ServiceDate),
			dashIfEmpty(truncate(record.VehicleInfo, 20)),
			record.Type,
			formatMileage(record.CurrentMileage),
			formatCost(record.Cost),
			dashIfEmpty(record.Workshop),
		})
	}
	return rows
}

func newCollectionTable(columns []table.Column, styles table.Styles) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(styles)
	return t
}

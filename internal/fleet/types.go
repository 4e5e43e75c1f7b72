package fleet

import (
	"fmt"
	"strings"
	"time"
)

const serviceDateLayout = "2006-01-02"

// Owner mirrors a personnel record returned by /api/owners.
type Owner struct {
	ID             int64  `json:"id"`
	Classification string `json:"classification"`
	RUT            string `json:"rut"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}

// Vehicle mirrors a vehicle record returned by /api/vehicles.
// OwnerName is a backend-joined display field; it is never sent back.
type Vehicle struct {
	ID        int64  `json:"id"`
	OwnerID   int64  `json:"owner_id"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      *int   `json:"year"`
	Color     string `json:"color"`
	Mileage   int    `json:"mileage"`
	Plate     string `json:"plate"`
	OwnerName string `json:"owner_name"`
}

// MaintenanceRecord mirrors a record returned by /api/maintenance.
// VehicleInfo is a backend-joined display field; it is never sent back.
type MaintenanceRecord struct {
	ID              int64    `json:"id"`
	VehicleID       int64    `json:"vehicle_id"`
	ServiceDate     string   `json:"service_date"`
	Type            string   `json:"maintenance_type"`
	PreviousMileage int      `json:"previous_mileage"`
	CurrentMileage  int      `json:"current_mileage"`
	Description     string   `json:"description"`
	Cost            *float64 `json:"cost"`
	Workshop        string   `json:"workshop"`
	VehicleInfo     string   `json:"vehicle_info"`
}

// Stats mirrors the aggregate payload returned by /api/stats.
type Stats struct {
	TotalOwners      int     `json:"total_owners"`
	TotalVehicles    int     `json:"total_vehicles"`
	TotalMaintenance int     `json:"total_maintenance"`
	TotalCost        float64 `json:"total_cost"`
}

// DisplayName combines make and model for selects and joined rows.
func (v Vehicle) DisplayName() string {
	name := strings.TrimSpace(v.Make + " " + v.Model)
	if name == "" {
		return fmt.Sprintf("vehicle #%d", v.ID)
	}
	return name
}

// ParsedServiceDate returns the service date as time.Time when possible.
func (m MaintenanceRecord) ParsedServiceDate() time.Time {
	return parseDate(m.ServiceDate)
}

func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{serviceDateLayout, time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// OwnerPayload is the mutation body for owner create/update requests.
type OwnerPayload struct {
	Classification string `json:"classification"`
	RUT            string `json:"rut"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
}

// Validate reports the first missing required field, if any.
func (p OwnerPayload) Validate() error {
	if strings.TrimSpace(p.Classification) == "" {
		return &ValidationError{Field: "classification"}
	}
	if strings.TrimSpace(p.RUT) == "" {
		return &ValidationError{Field: "rut"}
	}
	return nil
}

// VehiclePayload is the mutation body for vehicle create/update requests.
type VehiclePayload struct {
	OwnerID int64  `json:"owner_id"`
	Make    string `json:"make"`
	Model   string `json:"model"`
	Year    *int   `json:"year,omitempty"`
	Color   string `json:"color,omitempty"`
	Mileage int    `json:"mileage"`
	Plate   string `json:"plate,omitempty"`
}

// Validate reports the first missing required field, if any.
func (p VehiclePayload) Validate() error {
	if p.OwnerID <= 0 {
		return &ValidationError{Field: "owner_id"}
	}
	if strings.TrimSpace(p.Make) == "" {
		return &ValidationError{Field: "make"}
	}
	if strings.TrimSpace(p.Model) == "" {
		return &ValidationError{Field: "model"}
	}
	if p.Mileage < 0 {
		return &ValidationError{Field: "mileage", Reason: "must not be negative"}
	}
	return nil
}

// MaintenancePayload is the mutation body for maintenance create/update requests.
type MaintenancePayload struct {
	VehicleID       int64    `json:"vehicle_id"`
	ServiceDate     string   `json:"service_date"`
	Type            string   `json:"maintenance_type"`
	PreviousMileage int      `json:"previous_mileage"`
	CurrentMileage  int      `json:"current_mileage"`
	Description     string   `json:"description,omitempty"`
	Cost            *float64 `json:"cost,omitempty"`
	Workshop        string   `json:"workshop,omitempty"`
}

// Validate reports the first missing required field, if any.
func (p MaintenancePayload) Validate() error {
	if p.VehicleID <= 0 {
		return &ValidationError{Field: "vehicle_id"}
	}
	if strings.TrimSpace(p.ServiceDate) == "" {
		return &ValidationError{Field: "service_date"}
	}
	if strings.TrimSpace(p.Type) == "" {
		return &ValidationError{Field: "maintenance_type"}
	}
	return nil
}

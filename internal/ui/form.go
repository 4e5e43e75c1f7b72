package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/fleet"
)

// formField pairs an input with the payload key it feeds.
type formField struct {
	key   string
	label string
	input textinput.Model
}

func newFormField(key, label, value, placeholder string) formField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 64
	input.Width = 32
	input.SetValue(value)
	return formField{key: key, label: label, input: input}
}

// entityForm is the create/edit modal. It captures text input into a
// field map, validates it, and hands the values to its submit callback;
// the request itself runs as the returned command.
type entityForm struct {
	title    string
	fields   []formField
	focus    int
	errText  string
	validate func(values map[string]string) error
	submit   func(values map[string]string) tea.Cmd
}

func newEntityForm(title string, fields []formField, validate func(map[string]string) error, submit func(map[string]string) tea.Cmd) *entityForm {
	form := &entityForm{title: title, fields: fields, validate: validate, submit: submit}
	if len(form.fields) > 0 {
		form.fields[0].input.Focus()
	}
	return form
}

func (f *entityForm) values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		values[field.key] = field.input.Value()
	}
	return values
}

func (f *entityForm) setFocus(index int) {
	if len(f.fields) == 0 {
		return
	}
	f.fields[f.focus].input.Blur()
	f.focus = (index + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

// Update implements Modal.
func (f *entityForm) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
		return f, cmd, false
	}

	switch keyMsg.String() {
	case "esc":
		return f, nil, true
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return f, nil, false
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return f, nil, false
	case "enter":
		values := f.values()
		if err := f.validate(values); err != nil {
			f.errText = err.Error()
			return f, nil, false
		}
		return f, f.submit(values), true
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd, false
}

// View implements Modal.
func (f *entityForm) View(styles Styles, width, height int) string {
	lines := make([]string, 0, len(f.fields)+3)
	lines = append(lines, styles.Title.Render(f.title))
	for _, field := range f.fields {
		lines = append(lines, styles.FieldLabel.Render(field.label)+field.input.View())
	}
	if f.errText != "" {
		lines = append(lines, styles.InlineError.Render(f.errText))
	}
	lines = append(lines, styles.FaintText.Render("enter save · tab next field · esc cancel"))

	box := styles.ModalBox.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// openOwnerForm opens the create surface, or the edit surface when an
// existing owner is passed.
func (m *Model) openOwnerForm(existing *fleet.Owner) {
	title := "New owner"
	var classification, rut, phone, email string
	if existing != nil {
		title = "Edit owner"
		classification = existing.Classification
		rut = existing.RUT
		phone = existing.Phone
		email = existing.Email
	}
	fields := []formField{
		newFormField("classification", "Classification", classification, "Staff"),
		newFormField("rut", "RUT", rut, "12345678-9"),
		newFormField("phone", "Phone", phone, ""),
		newFormField("email", "Email", email, ""),
	}
	var id int64
	if existing != nil {
		id = existing.ID
	}
	m.modal = newEntityForm(title, fields,
		func(values map[string]string) error {
			return ownerPayloadFromValues(values).Validate()
		},
		func(values map[string]string) tea.Cmd {
			return m.saveOwnerCmd(id, ownerPayloadFromValues(values))
		},
	)
}

func (m *Model) openVehicleForm(existing *fleet.Vehicle) {
	title := "New vehicle"
	ownerID := ""
	var make_, model, year, color, mileage, plate string
	if existing != nil {
		title = "Edit vehicle"
		ownerID = strconv.FormatInt(existing.OwnerID, 10)
		make_ = existing.Make
		model = existing.Model
		year = formatOptionalIntInput(existing.Year)
		color = existing.Color
		mileage = strconv.Itoa(existing.Mileage)
		plate = existing.Plate
	} else if owner := m.selectedOwnerOrFirst(); owner != nil {
		ownerID = strconv.FormatInt(owner.ID, 10)
	}
	fields := []formField{
		newFormField("owner_id", "Owner ID", ownerID, "1"),
		newFormField("make", "Make", make_, "Toyota"),
		newFormField("model", "Model", model, "Hilux"),
		newFormField("year", "Year", year, "optional"),
		newFormField("color", "Color", color, "optional"),
		newFormField("mileage", "Mileage", mileage, "0"),
		newFormField("plate", "Plate", plate, "optional"),
	}
	var id int64
	if existing != nil {
		id = existing.ID
	}
	m.modal = newEntityForm(title, fields,
		func(values map[string]string) error {
			return vehiclePayloadFromValues(values).Validate()
		},
		func(values map[string]string) tea.Cmd {
			return m.saveVehicleCmd(id, vehiclePayloadFromValues(values))
		},
	)
}

func (m *Model) openMaintenanceForm(existing *fleet.MaintenanceRecord) {
	title := "New maintenance"
	vehicleID := ""
	serviceDate := time.Now().Format("2006-01-02")
	var kind, description, cost, workshop string
	if existing != nil {
		title = "Edit maintenance"
		vehicleID = strconv.FormatInt(existing.VehicleID, 10)
		serviceDate = existing.ServiceDate
		kind = existing.Type
		description = existing.Description
		cost = formatOptionalFloatInput(existing.Cost)
		workshop = existing.Workshop
	} else if vehicle := m.selectedVehicleOrFirst(); vehicle != nil {
		vehicleID = strconv.FormatInt(vehicle.ID, 10)
	}
	fields := []formField{
		newFormField("vehicle_id", "Vehicle ID", vehicleID, "1"),
		newFormField("service_date", "Date", serviceDate, "2026-01-31"),
		newFormField("maintenance_type", "Type", kind, "oil change"),
		newFormField("description", "Description", description, "optional"),
		newFormField("cost", "Cost", cost, "optional"),
		newFormField("workshop", "Workshop", workshop, "optional"),
	}
	var id int64
	if existing != nil {
		id = existing.ID
	}
	vehicles := m.snapshot.Vehicles
	m.modal = newEntityForm(title, fields,
		func(values map[string]string) error {
			return maintenancePayloadFromValues(values, vehicles).Validate()
		},
		func(values map[string]string) tea.Cmd {
			return m.saveMaintenanceCmd(id, maintenancePayloadFromValues(values, vehicles))
		},
	)
}

// ownerPayloadFromValues builds the mutation body from raw form text.
func ownerPayloadFromValues(values map[string]string) fleet.OwnerPayload {
	return fleet.OwnerPayload{
		Classification: strings.TrimSpace(values["classification"]),
		RUT:            strings.TrimSpace(values["rut"]),
		Phone:          strings.TrimSpace(values["phone"]),
		Email:          strings.TrimSpace(values["email"]),
	}
}

func vehiclePayloadFromValues(values map[string]string) fleet.VehiclePayload {
	return fleet.VehiclePayload{
		OwnerID: parseID(values["owner_id"]),
		Make:    strings.TrimSpace(values["make"]),
		Model:   strings.TrimSpace(values["model"]),
		Year:    parseOptionalInt(values["year"]),
		Color:   strings.TrimSpace(values["color"]),
		Mileage: parseMileage(values["mileage"]),
		Plate:   strings.TrimSpace(values["plate"]),
	}
}

// maintenancePayloadFromValues carries the chosen vehicle's current
// mileage into both mileage fields; the form never edits them directly.
func maintenancePayloadFromValues(values map[string]string, vehicles []fleet.Vehicle) fleet.MaintenancePayload {
	vehicleID := parseID(values["vehicle_id"])
	mileage := 0
	for _, vehicle := range vehicles {
		if vehicle.ID == vehicleID {
			mileage = vehicle.Mileage
			break
		}
	}
	return fleet.MaintenancePayload{
		VehicleID:       vehicleID,
		ServiceDate:     strings.TrimSpace(values["service_date"]),
		Type:            strings.TrimSpace(values["maintenance_type"]),
		PreviousMileage: mileage,
		CurrentMileage:  mileage,
		Description:     strings.TrimSpace(values["description"]),
		Cost:            parseOptionalFloat(values["cost"]),
		Workshop:        strings.TrimSpace(values["workshop"]),
	}
}

// parseMileage coerces free text to a mileage value. Mileage is not
// meaningfully optional, so anything unparseable counts as zero.
func parseMileage(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

// parseOptionalInt returns nil for blank or unparseable input; year is
// meaningfully optional, so garbage must not collapse to a real value.
func parseOptionalInt(value string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &n
}

// parseOptionalFloat returns nil for blank or unparseable input.
func parseOptionalFloat(value string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseID(value string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func formatOptionalIntInput(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func formatOptionalFloatInput(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModal asks before a destructive action runs. Owner and vehicle
// deletes carry a cascade warning, since the backend removes dependent
// records with them.
type confirmModal struct {
	prompt string
	action tea.Cmd
}

// Update implements Modal.
func (c *confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch keyMsg.String() {
	case "enter", "y":
		return c, c.action, true
	case "esc", "n":
		return c, nil, true
	}
	return c, nil, false
}

// View implements Modal.
func (c *confirmModal) View(styles Styles, width, height int) string {
	lines := []string{
		styles.DangerText.Render("Confirm delete"),
		styles.Text.Render(c.prompt),
		styles.FaintText.Render("y/enter delete · n/esc cancel"),
	}
	box := styles.ModalBox.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

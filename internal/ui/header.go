package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) renderHeader() string {
	logo := m.styles.Logo.Render("fleetdeck")

	var tabs []string
	for _, p := range []panel{panelDashboard, panelOwners, panelVehicles, panelMaintenance} {
		label := fmt.Sprintf("%d:%s", int(p)+1, p)
		if p == m.panel {
			tabs = append(tabs, m.styles.AccentText.Render("["+label+"]"))
		} else {
			tabs = append(tabs, m.styles.MutedText.Render(" "+label+" "))
		}
	}

	backend := m.styles.FaintText.Render(m.opts.APIBind)
	if m.snapshot.LastError != nil {
		backend = m.styles.DangerText.Render("backend unreachable")
	} else if !m.snapshot.LastUpdated.IsZero() {
		backend = m.styles.FaintText.Render(m.opts.APIBind + " · " + m.snapshot.LastUpdated.Format("15:04:05"))
	}

	left := logo + "  " + strings.Join(tabs, " ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(backend) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + backend)
}

func (m *Model) renderDashboard() string {
	snap := m.snapshot

	card := func(title, value string) string {
		return m.styles.Card.Render(
			m.styles.MutedText.Render(title) + "\n" + m.styles.CardValue.Render(value),
		)
	}

	var cards string
	if snap.HasStats {
		cards = lipgloss.JoinHorizontal(lipgloss.Top,
			card("Owners", fmt.Sprintf("%d", snap.Stats.TotalOwners)),
			card("Vehicles", fmt.Sprintf("%d", snap.Stats.TotalVehicles)),
			card("Maintenance", fmt.Sprintf("%d", snap.Stats.TotalMaintenance)),
			card("Total cost", formatTotalCost(snap.Stats.TotalCost)),
		)
	} else {
		cards = m.styles.MutedText.Render("No statistics yet")
	}

	lines := []string{
		m.styles.Title.Render("Fleet overview"),
		"",
		cards,
	}
	if snap.LastError != nil {
		lines = append(lines, "", m.styles.DangerText.Render(snap.LastError.Error()))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderTablePanel() string {
	var tbl *table.Model
	var shown, total int
	switch m.panel {
	case panelOwners:
		tbl = &m.ownersTable
		shown, total = len(m.visibleOwners), len(m.snapshot.Owners)
	case panelVehicles:
		tbl = &m.vehiclesTable
		shown, total = len(m.visibleVehicles), len(m.snapshot.Vehicles)
	case panelMaintenance:
		tbl = &m.maintenanceTable
		shown, total = len(m.visibleMaintenance), len(m.snapshot.Maintenance)
	default:
		return ""
	}

	title := fmt.Sprintf("%s (%d)", m.panel, total)
	if term := m.terms[m.panel]; term != "" {
		title = fmt.Sprintf("%s (%d/%d, filter %q)", m.panel, shown, total, term)
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(
		m.styles.Title.Render(title) + "\n" + tbl.View(),
	)
}

func (m *Model) renderFooter() string {
	if m.searching {
		return m.styles.Footer.Width(m.width).Render(m.searchInput.View())
	}

	if m.status.text != "" {
		style := m.styles.MutedText
		switch m.status.level {
		case statusSuccess:
			style = m.styles.SuccessText
		case statusError:
			style = m.styles.DangerText
		}
		return m.styles.Footer.Width(m.width).Render(style.Render(truncate(m.status.text, m.width-2)))
	}

	return m.styles.Footer.Width(m.width).Render(m.help.View(m.keys))
}

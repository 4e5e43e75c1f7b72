package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	SelectionBg   string
	SelectionText string

	Border string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// builtinThemes lists the selectable themes; the first one is the default.
var builtinThemes = []Theme{
	{
		Name:          "Dracula",
		Background:    "#282A36",
		Surface:       "#343746",
		SelectionBg:   "#44475A",
		SelectionText: "#F8F8F2",
		Border:        "#6272A4",
		Text:          "#F8F8F2",
		Muted:         "#BFC7D5",
		Faint:         "#6272A4",
		Accent:        "#BD93F9",
		Success:       "#50FA7B",
		Warning:       "#F1FA8C",
		Danger:        "#FF5555",
	},
	{
		Name:          "Paper",
		Background:    "#FAFAFA",
		Surface:       "#EEEEEE",
		SelectionBg:   "#D0D7DE",
		SelectionText: "#1F2328",
		Border:        "#AFB8C1",
		Text:          "#1F2328",
		Muted:         "#57606A",
		Faint:         "#8C959F",
		Accent:        "#8250DF",
		Success:       "#1A7F37",
		Warning:       "#9A6700",
		Danger:        "#CF222E",
	},
}

// themeByName returns the named theme, or the default when unknown.
func themeByName(name string) Theme {
	for _, t := range builtinThemes {
		if t.Name == name {
			return t
		}
	}
	return builtinThemes[0]
}

// nextTheme cycles to the theme after the given one.
func nextTheme(current Theme) Theme {
	for i, t := range builtinThemes {
		if t.Name == current.Name {
			return builtinThemes[(i+1)%len(builtinThemes)]
		}
	}
	return builtinThemes[0]
}

// Styles contains pre-built lipgloss styles for the theme.
type Styles struct {
	Header      lipgloss.Style
	Logo        lipgloss.Style
	Footer      lipgloss.Style
	Title       lipgloss.Style
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	Card        lipgloss.Style
	CardValue   lipgloss.Style
	ModalBox    lipgloss.Style
	FieldLabel  lipgloss.Style
	InlineError lipgloss.Style
}

// Styles builds the lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),
		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 2).
			Width(24),
		CardValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),
		FieldLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Width(14),
		InlineError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),
	}
}

// TableStyles adapts the theme to the bubbles table component.
func (t Theme) TableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		BorderBottom(true).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true)
	styles.Cell = styles.Cell.
		Foreground(lipgloss.Color(t.Text))
	styles.Selected = styles.Selected.
		Background(lipgloss.Color(t.SelectionBg)).
		Foreground(lipgloss.Color(t.SelectionText)).
		Bold(false)
	return styles
}

package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Label       lipgloss.Style
	Input       lipgloss.Style
	ClearIcon   lipgloss.Style
	Popup       lipgloss.Style
	Item        lipgloss.Style
	ItemFocused lipgloss.Style
	NoData      lipgloss.Style
	Scroll      lipgloss.Style
	Status      lipgloss.Style
	Inspector   lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Input:     lipgloss.NewStyle(),
		ClearIcon: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Item: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true),
		NoData:    lipgloss.NewStyle().Faint(true).Italic(true),
		Scroll:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Inspector: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Help:      lipgloss.NewStyle().Faint(true),
	}
}

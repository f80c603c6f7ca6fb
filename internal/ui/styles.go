package ui

import (
	"github.com/charmbracelet/lipgloss"

	"flingr/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Prompt       lipgloss.Style
	Item         lipgloss.Style
	Selected     lipgloss.Style
	Highlight    lipgloss.Style
	HighlightSel lipgloss.Style
	Placeholder  lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	KindTag      lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
}

// NewStyles builds the style set from a theme
func NewStyles(theme config.Theme) *Styles {
	accent := lipgloss.Color(theme.Accent)
	fg := lipgloss.Color(theme.Foreground)
	hl := lipgloss.Color(theme.Highlight)

	return &Styles{
		Prompt:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		Item:         lipgloss.NewStyle().Foreground(fg),
		Selected:     lipgloss.NewStyle().Foreground(fg).Background(lipgloss.Color("238")).Bold(true),
		Highlight:    lipgloss.NewStyle().Foreground(hl).Bold(true),
		HighlightSel: lipgloss.NewStyle().Foreground(hl).Background(lipgloss.Color("238")).Bold(true),
		Placeholder:  lipgloss.NewStyle().Faint(true).Italic(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		KindTag:      lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(1, 2),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
